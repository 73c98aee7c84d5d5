package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/woyaochigaga/SQL-server/internal/domain/models"
	"github.com/woyaochigaga/SQL-server/internal/infrastructure/config"
)

// 成绩相关错误
var (
	ErrGradeNotFound = errors.New("成绩不存在")
	ErrGradeExists   = errors.New("该学生成绩已存在")
)

// GradeRow 成绩列表行，联表带出学生和课程信息
type GradeRow struct {
	GradeID       uint      `json:"GradeID"`
	StudentNumber string    `json:"StudentNumber"`
	StudentName   string    `json:"StudentName"`
	CourseCode    string    `json:"CourseCode"`
	CourseName    string    `json:"CourseName"`
	Score         float64   `json:"Score"`
	GradeDate     time.Time `json:"GradeDate"`
}

// InterfaceGradeService 定义成绩服务接口
type InterfaceGradeService interface {
	GetAllGrades() ([]GradeRow, error)
	AddGrade(studentID, courseID uint, score float64, comments *string, createdBy *uint) error
	UpdateGrade(gradeID uint, score float64) error
	DeleteGrade(gradeID uint) error
}

// GradeService 提供成绩相关的服务
type GradeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewGradeService 创建一个新的成绩服务
func NewGradeService(db *gorm.DB, cfg *config.Config) InterfaceGradeService {
	return &GradeService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllGrades 获取成绩列表（带学生和课程信息）
func (s *GradeService) GetAllGrades() ([]GradeRow, error) {
	var rows []GradeRow
	err := s.DB.Table("grades g").
		Select("g.grade_id, s.student_number, s.name AS student_name, c.course_code, c.course_name, g.score, g.grade_date").
		Joins("JOIN students s ON g.student_id = s.student_id").
		Joins("JOIN courses c ON g.course_id = c.course_id").
		Order("g.grade_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AddGrade 新增成绩，同一学生同一课程只允许一条
func (s *GradeService) AddGrade(studentID, courseID uint, score float64, comments *string, createdBy *uint) error {
	var count int64
	err := s.DB.Model(&models.Grade{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrGradeExists
	}

	grade := models.Grade{
		StudentID: studentID,
		CourseID:  courseID,
		Score:     score,
		GradeDate: time.Now(),
		Comments:  comments,
		CreatedBy: createdBy,
	}
	return s.DB.Create(&grade).Error
}

// UpdateGrade 修改成绩并刷新录入日期
func (s *GradeService) UpdateGrade(gradeID uint, score float64) error {
	result := s.DB.Model(&models.Grade{}).
		Where("grade_id = ?", gradeID).
		Updates(map[string]interface{}{
			"score":      score,
			"grade_date": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGradeNotFound
	}
	return nil
}

// DeleteGrade 删除成绩
func (s *GradeService) DeleteGrade(gradeID uint) error {
	result := s.DB.Where("grade_id = ?", gradeID).Delete(&models.Grade{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGradeNotFound
	}
	return nil
}
