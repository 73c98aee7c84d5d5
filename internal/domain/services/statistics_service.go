package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/woyaochigaga/SQL-server/internal/infrastructure/config"
	"github.com/woyaochigaga/SQL-server/pkg/logger"
)

// 统计缓存键和有效期
const (
	statisticsCacheKey = "statistics:overview"
	statisticsCacheTTL = 5 * time.Minute
)

// ScoreDistribution 成绩分布（A-F 五档）
type ScoreDistribution struct {
	A int `json:"A"`
	B int `json:"B"`
	C int `json:"C"`
	D int `json:"D"`
	F int `json:"F"`
}

// Statistics 全局统计数据
type Statistics struct {
	StudentCount      int               `json:"studentCount"`
	TeacherCount      int               `json:"teacherCount"`
	ClassCount        int               `json:"classCount"`
	CourseCount       int               `json:"courseCount"`
	AverageScore      float64           `json:"averageScore"`
	ScoreDistribution ScoreDistribution `json:"scoreDistribution"`
}

// StudentDashboard 学生首页仪表盘数据
type StudentDashboard struct {
	GPA           float64 `json:"gpa"`
	PassedCredits int     `json:"passedCredits"`
	FailedCount   int     `json:"failedCount"`
	ClassName     string  `json:"className"`
	Department    string  `json:"department"`
	TeacherName   string  `json:"teacherName"`
	TeacherEmail  string  `json:"teacherEmail"`
	TeacherPhone  string  `json:"teacherPhone"`
	TeacherTitle  string  `json:"teacherTitle"`
}

// InterfaceStatisticsService 定义统计服务接口
type InterfaceStatisticsService interface {
	GetStatistics() (*Statistics, error)
	GetStudentDashboard(studentID uint) (*StudentDashboard, error)
}

// StatisticsService 提供统计和仪表盘服务
type StatisticsService struct {
	DB     *gorm.DB
	Redis  InterfaceRedisService // 可为 nil，此时退化为纯数据库查询
	Config *config.Config
}

// NewStatisticsService 创建一个新的统计服务
func NewStatisticsService(db *gorm.DB, redisService InterfaceRedisService, cfg *config.Config) InterfaceStatisticsService {
	return &StatisticsService{
		DB:     db,
		Redis:  redisService,
		Config: cfg,
	}
}

// GetStatistics 获取全局统计数据，结果缓存 5 分钟
func (s *StatisticsService) GetStatistics() (*Statistics, error) {
	if s.Redis != nil {
		var cached Statistics
		if err := s.Redis.Get(statisticsCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &Statistics{}

	var counts struct {
		StudentCount int
		TeacherCount int
		ClassCount   int
		CourseCount  int
	}
	err := s.DB.Raw(`
		SELECT
			(SELECT COUNT(*) FROM students) AS student_count,
			(SELECT COUNT(*) FROM teachers) AS teacher_count,
			(SELECT COUNT(*) FROM classes) AS class_count,
			(SELECT COUNT(*) FROM courses) AS course_count
	`).Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	stats.StudentCount = counts.StudentCount
	stats.TeacherCount = counts.TeacherCount
	stats.ClassCount = counts.ClassCount
	stats.CourseCount = counts.CourseCount

	var avg struct {
		AvgScore *float64
	}
	if err := s.DB.Raw(`SELECT AVG(score) AS avg_score FROM grades`).Scan(&avg).Error; err != nil {
		return nil, err
	}
	if avg.AvgScore != nil {
		stats.AverageScore = *avg.AvgScore
	}

	var dist struct {
		A int
		B int
		C int
		D int
		F int
	}
	err = s.DB.Raw(`
		SELECT
			COUNT(CASE WHEN score >= 90 THEN 1 END) AS a,
			COUNT(CASE WHEN score >= 80 AND score < 90 THEN 1 END) AS b,
			COUNT(CASE WHEN score >= 70 AND score < 80 THEN 1 END) AS c,
			COUNT(CASE WHEN score >= 60 AND score < 70 THEN 1 END) AS d,
			COUNT(CASE WHEN score < 60 THEN 1 END) AS f
		FROM grades
	`).Scan(&dist).Error
	if err != nil {
		return nil, err
	}
	stats.ScoreDistribution = ScoreDistribution{A: dist.A, B: dist.B, C: dist.C, D: dist.D, F: dist.F}

	if s.Redis != nil {
		if err := s.Redis.Set(statisticsCacheKey, stats, statisticsCacheTTL); err != nil {
			logger.Warning("统计数据写入缓存失败: %v", err)
		}
	}

	return stats, nil
}

// GetStudentDashboard 获取学生学业概况：学分加权 GPA（4.0 制）、
// 已获学分、挂科数，以及班级和班主任信息
func (s *StatisticsService) GetStudentDashboard(studentID uint) (*StudentDashboard, error) {
	dashboard := &StudentDashboard{}

	var academics struct {
		PassedCredits *int
		FailedCount   int
		GPA           *float64 `gorm:"column:gpa"`
	}
	err := s.DB.Raw(`
		SELECT
			SUM(CASE WHEN g.score >= 60 THEN c.credits ELSE 0 END) AS passed_credits,
			COUNT(CASE WHEN g.score < 60 THEN 1 END) AS failed_count,
			ROUND(
				CASE WHEN SUM(c.credits) > 0 THEN
					SUM(
						c.credits *
						CASE
							WHEN g.score >= 90 THEN 4.0
							WHEN g.score >= 80 THEN 3.0
							WHEN g.score >= 70 THEN 2.0
							WHEN g.score >= 60 THEN 1.0
							ELSE 0.0
						END
					) / SUM(c.credits)
				ELSE 0 END, 2
			) AS gpa
		FROM grades g
		JOIN courses c ON g.course_id = c.course_id
		WHERE g.student_id = ?
	`, studentID).Scan(&academics).Error
	if err != nil {
		return nil, err
	}
	if academics.GPA != nil {
		dashboard.GPA = *academics.GPA
	}
	if academics.PassedCredits != nil {
		dashboard.PassedCredits = *academics.PassedCredits
	}
	dashboard.FailedCount = academics.FailedCount

	var info struct {
		ClassName    *string
		Department   *string
		TeacherName  *string
		TeacherEmail *string
		TeacherPhone *string
		TeacherTitle *string
	}
	err = s.DB.Raw(`
		SELECT c.class_name, c.department,
		       t.name AS teacher_name, u.email AS teacher_email,
		       u.phone AS teacher_phone, t.title AS teacher_title
		FROM students s
		LEFT JOIN classes c ON s.class_id = c.class_id
		LEFT JOIN teachers t ON c.advisor = t.teacher_id
		LEFT JOIN users u ON t.user_id = u.user_id
		WHERE s.student_id = ?
	`, studentID).Scan(&info).Error
	if err != nil {
		return nil, err
	}
	if info.ClassName != nil {
		dashboard.ClassName = *info.ClassName
	}
	if info.Department != nil {
		dashboard.Department = *info.Department
	}
	if info.TeacherName != nil {
		dashboard.TeacherName = *info.TeacherName
	}
	if info.TeacherEmail != nil {
		dashboard.TeacherEmail = *info.TeacherEmail
	}
	if info.TeacherPhone != nil {
		dashboard.TeacherPhone = *info.TeacherPhone
	}
	if info.TeacherTitle != nil {
		dashboard.TeacherTitle = *info.TeacherTitle
	}

	return dashboard, nil
}
