package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/woyaochigaga/SQL-server/internal/domain/models"
	"github.com/woyaochigaga/SQL-server/internal/infrastructure/config"
)

// ErrCourseNoStudents 课程没有选课学生，无法发布活动
var ErrCourseNoStudents = errors.New("该课程暂无学生")

// ActivityRow 学生活动行，联表带出课程和教师信息
type ActivityRow struct {
	CourseID       uint      `json:"CourseID"`
	CourseName     string    `json:"CourseName"`
	CourseCode     string    `json:"CourseCode"`
	TeacherName    *string   `json:"TeacherName"`
	AttendanceID   uint      `json:"AttendanceID"`
	AttendanceDate time.Time `json:"AttendanceDate"`
	Status         string    `json:"Status"`
	Comments       *string   `json:"Comments"`
}

// InterfaceAttendanceService 定义考勤/课程活动服务接口
type InterfaceAttendanceService interface {
	PublishCourseActivity(courseID uint, activityType string, activityDate time.Time, comments *string, recordedBy uint) error
	GetActivitiesByStudent(studentID uint) ([]ActivityRow, error)
}

// AttendanceService 提供考勤和课程活动服务
type AttendanceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAttendanceService 创建一个新的考勤服务
func NewAttendanceService(db *gorm.DB, cfg *config.Config) InterfaceAttendanceService {
	return &AttendanceService{
		DB:     db,
		Config: cfg,
	}
}

// PublishCourseActivity 发布课程活动（签到、考试、通知等）：
// 为该课程的每个选课学生插入一条考勤记录，全部在一个事务内完成
func (s *AttendanceService) PublishCourseActivity(courseID uint, activityType string, activityDate time.Time, comments *string, recordedBy uint) error {
	var enrollments []models.StudentCourse
	if err := s.DB.Where("course_id = ?", courseID).Find(&enrollments).Error; err != nil {
		return err
	}
	if len(enrollments) == 0 {
		return ErrCourseNoStudents
	}

	records := make([]models.Attendance, 0, len(enrollments))
	for _, enrollment := range enrollments {
		records = append(records, models.Attendance{
			StudentID:      enrollment.StudentID,
			CourseID:       courseID,
			AttendanceDate: activityDate,
			Status:         activityType,
			Comments:       comments,
			RecordedBy:     recordedBy,
		})
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
}

// GetActivitiesByStudent 查询学生所有课程的活动，按日期倒序
func (s *AttendanceService) GetActivitiesByStudent(studentID uint) ([]ActivityRow, error) {
	var rows []ActivityRow
	err := s.DB.Table("attendances a").
		Select("c.course_id, c.course_name, c.course_code, t.name AS teacher_name, a.attendance_id, a.attendance_date, a.status, a.comments").
		Joins("JOIN courses c ON a.course_id = c.course_id").
		Joins("LEFT JOIN teachers t ON c.teacher_id = t.teacher_id").
		Where("a.student_id = ?", studentID).
		Order("a.attendance_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
