package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/woyaochigaga/SQL-server/internal/domain/models"
	"github.com/woyaochigaga/SQL-server/internal/infrastructure/config"
)

// ErrStudentNotFound 学生不存在
var ErrStudentNotFound = errors.New("学生不存在")

// StudentRow 学生列表行，联表带出班级名称
type StudentRow struct {
	StudentID     uint       `json:"StudentID"`
	StudentNumber string     `json:"StudentNumber"`
	Name          string     `json:"Name"`
	Gender        *string    `json:"Gender"`
	Age           *int       `json:"Age"`
	ClassName     *string    `json:"ClassName"`
	Address       *string    `json:"Address"`
	CreatedAt     *time.Time `json:"CreatedAt"`
}

// InterfaceStudentService 定义学生服务接口
type InterfaceStudentService interface {
	GetAllStudents() ([]StudentRow, error)
	GetStudentsByClass(classID uint) ([]models.Student, error)
	AssignToClass(studentID uint, studentNumber string, classID uint) error
	RemoveFromClass(studentID uint, studentNumber string) error
}

// StudentService 提供学生相关的服务
type StudentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewStudentService 创建一个新的学生服务
func NewStudentService(db *gorm.DB, cfg *config.Config) InterfaceStudentService {
	return &StudentService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllStudents 获取学生列表（带班级名称）
func (s *StudentService) GetAllStudents() ([]StudentRow, error) {
	var rows []StudentRow
	err := s.DB.Table("students s").
		Select("s.student_id, s.student_number, s.name, s.gender, s.age, c.class_name, s.address, s.created_at").
		Joins("LEFT JOIN classes c ON s.class_id = c.class_id").
		Order("s.student_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetStudentsByClass 获取某班级的所有学生
func (s *StudentService) GetStudentsByClass(classID uint) ([]models.Student, error) {
	var students []models.Student
	if err := s.DB.Where("class_id = ?", classID).Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// findStudent 按学生ID或学号定位学生
func (s *StudentService) findStudent(studentID uint, studentNumber string) (*models.Student, error) {
	var student models.Student
	var err error
	if studentID != 0 {
		err = s.DB.First(&student, studentID).Error
	} else {
		err = s.DB.Where("student_number = ?", studentNumber).First(&student).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// AssignToClass 把学生加入班级（更新ClassID）
func (s *StudentService) AssignToClass(studentID uint, studentNumber string, classID uint) error {
	student, err := s.findStudent(studentID, studentNumber)
	if err != nil {
		return err
	}
	return s.DB.Model(student).Update("class_id", classID).Error
}

// RemoveFromClass 把学生移出班级（ClassID置空）
func (s *StudentService) RemoveFromClass(studentID uint, studentNumber string) error {
	student, err := s.findStudent(studentID, studentNumber)
	if err != nil {
		return err
	}
	return s.DB.Model(student).Update("class_id", nil).Error
}
