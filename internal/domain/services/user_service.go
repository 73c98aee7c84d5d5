package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/woyaochigaga/SQL-server/internal/domain/models"
	"github.com/woyaochigaga/SQL-server/internal/infrastructure/config"
)

// 资料更新相关错误
var (
	ErrMissingIdentity = errors.New("缺少用户ID或角色")
	ErrUnsupportedRole = errors.New("不支持的角色")
	ErrUserNotFound    = errors.New("用户不存在")
)

// ProfileChanges 稀疏字段变更集。
// 只有显式出现在请求中的字段才会被写入，nil表示保持原值。
// 每个角色可写的字段在这里全部列出，其余键在绑定时即被丢弃
type ProfileChanges struct {
	// 账户级字段
	Email *string `json:"Email"`
	Phone *string `json:"Phone"`

	// 学生字段
	Gender  *string `json:"Gender"`
	Age     *int    `json:"Age"`
	ClassID *uint   `json:"ClassID"`
	Address *string `json:"Address"`

	// 教师字段（Gender与学生共用）
	Title      *string `json:"Title"`
	Department *string `json:"Department"`
}

// ProfileResult 更新后重新读取的完整快照
type ProfileResult struct {
	DetailInfo interface{} `json:"detailInfo"`
	UserInfo   interface{} `json:"userInfo"`
}

// InterfaceUserService 定义用户资料服务接口
type InterfaceUserService interface {
	UpdateProfile(userID uint, role string, changes ProfileChanges) (*ProfileResult, error)
}

// UserService 提供个人资料的部分更新
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的用户资料服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// UpdateProfile 按角色应用字段变更：
// 账户级字段写users表，角色专属字段写对应扩展表，
// 某一层没有变更则完全跳过该层的写入，最后返回重新读取的快照
func (s *UserService) UpdateProfile(userID uint, role string, changes ProfileChanges) (*ProfileResult, error) {
	if userID == 0 || role == "" {
		return nil, ErrMissingIdentity
	}
	if role != models.RoleStudent && role != models.RoleTeacher {
		// admin没有可更新的扩展记录，按现行设计不支持
		return nil, ErrUnsupportedRole
	}

	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 1. 更新users表（通用字段）
	userUpdates := make(map[string]interface{})
	if changes.Email != nil {
		userUpdates["email"] = *changes.Email
	}
	if changes.Phone != nil {
		userUpdates["phone"] = *changes.Phone
	}
	if len(userUpdates) > 0 {
		if err := s.DB.Model(&user).Updates(userUpdates).Error; err != nil {
			return nil, err
		}
	}

	// 2. 更新角色扩展表（专属字段）
	detailUpdates := make(map[string]interface{})
	if changes.Gender != nil {
		detailUpdates["gender"] = *changes.Gender
	}
	switch role {
	case models.RoleStudent:
		if changes.Age != nil {
			detailUpdates["age"] = *changes.Age
		}
		if changes.ClassID != nil {
			detailUpdates["class_id"] = *changes.ClassID
		}
		if changes.Address != nil {
			detailUpdates["address"] = *changes.Address
		}
		if len(detailUpdates) > 0 {
			err := s.DB.Model(&models.Student{}).Where("user_id = ?", userID).Updates(detailUpdates).Error
			if err != nil {
				return nil, err
			}
		}
	case models.RoleTeacher:
		if changes.Title != nil {
			detailUpdates["title"] = *changes.Title
		}
		if changes.Department != nil {
			detailUpdates["department"] = *changes.Department
		}
		if len(detailUpdates) > 0 {
			err := s.DB.Model(&models.Teacher{}).Where("user_id = ?", userID).Updates(detailUpdates).Error
			if err != nil {
				return nil, err
			}
		}
	}

	// 3. 重新读取，返回更新后的一致快照
	if err := s.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	result := &ProfileResult{UserInfo: &user}
	switch role {
	case models.RoleStudent:
		var student models.Student
		if err := s.DB.Where("user_id = ?", userID).First(&student).Error; err == nil {
			result.DetailInfo = &student
		}
	case models.RoleTeacher:
		var teacher models.Teacher
		if err := s.DB.Where("user_id = ?", userID).First(&teacher).Error; err == nil {
			result.DetailInfo = &teacher
		}
	}

	return result, nil
}
