package services

import (
	"gorm.io/gorm"

	"github.com/woyaochigaga/SQL-server/internal/domain/models"
	"github.com/woyaochigaga/SQL-server/internal/infrastructure/config"
)

// InterfaceTeacherService 定义教师服务接口
type InterfaceTeacherService interface {
	GetCoursesByTeacher(teacherID uint) ([]models.Course, error)
	GetClassesByAdvisor(teacherID uint) ([]models.Class, error)
}

// TeacherService 提供教师相关的服务
type TeacherService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTeacherService 创建一个新的教师服务
func NewTeacherService(db *gorm.DB, cfg *config.Config) InterfaceTeacherService {
	return &TeacherService{
		DB:     db,
		Config: cfg,
	}
}

// GetCoursesByTeacher 查询教师讲授的所有课程
func (s *TeacherService) GetCoursesByTeacher(teacherID uint) ([]models.Course, error) {
	var courses []models.Course
	if err := s.DB.Where("teacher_id = ?", teacherID).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// GetClassesByAdvisor 查询教师担任班主任的所有班级
func (s *TeacherService) GetClassesByAdvisor(teacherID uint) ([]models.Class, error) {
	var classes []models.Class
	if err := s.DB.Where("advisor = ?", teacherID).Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}
