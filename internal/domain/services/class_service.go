package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/woyaochigaga/SQL-server/internal/domain/models"
	"github.com/woyaochigaga/SQL-server/internal/infrastructure/config"
)

// ErrClassNotFound 班级不存在
var ErrClassNotFound = errors.New("未找到该班级")

// InterfaceClassService 定义班级服务接口
type InterfaceClassService interface {
	GetClassByID(classID uint) (*models.Class, error)
}

// ClassService 提供班级相关的服务
type ClassService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewClassService 创建一个新的班级服务
func NewClassService(db *gorm.DB, cfg *config.Config) InterfaceClassService {
	return &ClassService{
		DB:     db,
		Config: cfg,
	}
}

// GetClassByID 查询班级详情
func (s *ClassService) GetClassByID(classID uint) (*models.Class, error) {
	var class models.Class
	if err := s.DB.First(&class, classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	return &class, nil
}
