package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/woyaochigaga/SQL-server/internal/domain/models"
	"github.com/woyaochigaga/SQL-server/internal/infrastructure/config"
)

// ErrCourseNotFound 课程不存在
var ErrCourseNotFound = errors.New("未找到该课程")

// CourseRow 课程列表行，联表带出教师姓名
type CourseRow struct {
	CourseID    uint    `json:"CourseID"`
	CourseCode  string  `json:"CourseCode"`
	CourseName  string  `json:"CourseName"`
	Credits     int     `json:"Credits"`
	TeacherName *string `json:"TeacherName"`
	Semester    string  `json:"Semester"`
	Description string  `json:"Description"`
}

// CourseDetail 课程详情（含TeacherID）
type CourseDetail struct {
	CourseID    uint    `json:"CourseID"`
	CourseCode  string  `json:"CourseCode"`
	CourseName  string  `json:"CourseName"`
	Credits     int     `json:"Credits"`
	Semester    string  `json:"Semester"`
	Description string  `json:"Description"`
	TeacherID   *uint   `json:"TeacherID"`
	TeacherName *string `json:"TeacherName"`
}

// StudentCourseRow 学生选课行，带出课程、教师和成绩
type StudentCourseRow struct {
	CourseID    uint       `json:"CourseID"`
	CourseName  string     `json:"CourseName"`
	CourseCode  string     `json:"CourseCode"`
	TeacherName *string    `json:"TeacherName"`
	Score       *float64   `json:"Score"`
	GradeID     *uint      `json:"GradeID"`
	GradeDate   *time.Time `json:"GradeDate"`
}

// InterfaceCourseService 定义课程服务接口
type InterfaceCourseService interface {
	GetAllCourses() ([]CourseRow, error)
	GetCourseDetail(courseID uint) (*CourseDetail, error)
	GetStudentsByCourse(courseID uint) ([]models.Student, error)
	GetCoursesByStudent(studentID uint) ([]StudentCourseRow, error)
}

// CourseService 提供课程相关的服务
type CourseService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCourseService 创建一个新的课程服务
func NewCourseService(db *gorm.DB, cfg *config.Config) InterfaceCourseService {
	return &CourseService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllCourses 获取课程列表（带教师姓名）
func (s *CourseService) GetAllCourses() ([]CourseRow, error) {
	var rows []CourseRow
	err := s.DB.Table("courses c").
		Select("c.course_id, c.course_code, c.course_name, c.credits, t.name AS teacher_name, c.semester, c.description").
		Joins("LEFT JOIN teachers t ON c.teacher_id = t.teacher_id").
		Order("c.course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetCourseDetail 查询课程详情，联表查教师姓名
func (s *CourseService) GetCourseDetail(courseID uint) (*CourseDetail, error) {
	var detail CourseDetail
	err := s.DB.Table("courses c").
		Select("c.course_id, c.course_code, c.course_name, c.credits, c.semester, c.description, c.teacher_id, t.name AS teacher_name").
		Joins("LEFT JOIN teachers t ON c.teacher_id = t.teacher_id").
		Where("c.course_id = ?", courseID).
		Scan(&detail).Error
	if err != nil {
		return nil, err
	}
	if detail.CourseID == 0 {
		return nil, ErrCourseNotFound
	}
	return &detail, nil
}

// GetStudentsByCourse 查询选了某课程的所有学生
func (s *CourseService) GetStudentsByCourse(courseID uint) ([]models.Student, error) {
	var students []models.Student
	err := s.DB.
		Joins("JOIN student_courses sc ON sc.student_id = students.student_id").
		Where("sc.course_id = ?", courseID).
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

// GetCoursesByStudent 查询学生的所有选课及成绩
func (s *CourseService) GetCoursesByStudent(studentID uint) ([]StudentCourseRow, error) {
	var rows []StudentCourseRow
	err := s.DB.Table("student_courses sc").
		Select("c.course_id, c.course_name, c.course_code, t.name AS teacher_name, g.score, g.grade_id, g.grade_date").
		Joins("JOIN courses c ON sc.course_id = c.course_id").
		Joins("LEFT JOIN teachers t ON c.teacher_id = t.teacher_id").
		Joins("LEFT JOIN grades g ON g.student_id = sc.student_id AND g.course_id = sc.course_id").
		Where("sc.student_id = ?", studentID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
