package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/woyaochigaga/SQL-server/internal/domain/models"
	"github.com/woyaochigaga/SQL-server/internal/infrastructure/config"
	"github.com/woyaochigaga/SQL-server/pkg/logger"
	"github.com/woyaochigaga/SQL-server/utils"
)

// 认证相关错误
var (
	ErrInvalidCredentials = errors.New("用户名或密码不正确")
	ErrUsernameExists     = errors.New("用户名已存在")
	ErrEmailExists        = errors.New("邮箱已被注册")
	ErrInvalidRole        = errors.New("无效的用户角色")
	ErrResetTokenInvalid  = errors.New("无效或已过期的重置令牌")
)

// ResetTokenLifetime 重置令牌有效期
const ResetTokenLifetime = 1 * time.Hour

// LoginUser 登录成功后返回给前端的用户摘要
type LoginUser struct {
	ID         uint        `json:"id"`
	Username   string      `json:"username"`
	Role       string      `json:"role"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	DetailInfo interface{} `json:"detailInfo"`
}

// LoginResult 表示登录结果
type LoginResult struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// RegisterInput 注册参数
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Phone    string
	Role     string
}

// InterfaceAuthService 定义认证服务接口
type InterfaceAuthService interface {
	Login(username, password string) (*LoginResult, error)
	Register(input RegisterInput) (uint, error)
	RequestPasswordReset(username, email string) (string, error)
	ResetPassword(token, newPassword string) error
}

// AuthService 提供登录、注册和密码重置服务
type AuthService struct {
	DB         *gorm.DB
	Config     *config.Config
	JWTService InterfaceJWTService
}

// NewAuthService 创建一个新的认证服务
func NewAuthService(db *gorm.DB, cfg *config.Config, jwtService InterfaceJWTService) InterfaceAuthService {
	return &AuthService{
		DB:         db,
		Config:     cfg,
		JWTService: jwtService,
	}
}

// Login 校验用户名密码并签发令牌。
// 用户不存在和密码错误返回同一个错误，不泄露具体哪个字段不对
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.VerifyPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	// 更新最后登录时间，失败只记录日志，不影响登录
	now := time.Now()
	if err := s.DB.Model(&user).Update("last_login", now).Error; err != nil {
		logger.Warning("更新最后登录时间失败 user_id=%d: %v", user.UserID, err)
	}

	// 查询角色对应的详细信息，不存在时为null
	detailInfo := s.lookupDetail(&user)

	token, err := s.JWTService.GenerateToken(user.UserID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User: LoginUser{
			ID:         user.UserID,
			Username:   user.Username,
			Role:       user.Role,
			Email:      user.Email,
			Phone:      user.Phone,
			DetailInfo: detailInfo,
		},
	}, nil
}

// lookupDetail 查询角色扩展记录，找不到不算错误
func (s *AuthService) lookupDetail(user *models.User) interface{} {
	switch user.Role {
	case models.RoleStudent:
		var student models.Student
		if err := s.DB.Where("user_id = ?", user.UserID).First(&student).Error; err != nil {
			return nil
		}
		return &student
	case models.RoleTeacher:
		var teacher models.Teacher
		if err := s.DB.Where("user_id = ?", user.UserID).First(&teacher).Error; err != nil {
			return nil
		}
		return &teacher
	default:
		return nil
	}
}

// Register 创建账户及角色扩展记录。
// 账户和扩展记录在同一事务中插入，任一失败则全部回滚
func (s *AuthService) Register(input RegisterInput) (uint, error) {
	if !models.IsValidRole(input.Role) {
		return 0, ErrInvalidRole
	}

	// 先做存在性检查给出友好错误；并发竞争由唯一索引兜底
	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", input.Username).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, ErrUsernameExists
	}
	if err := s.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, ErrEmailExists
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return 0, err
	}

	user := models.User{
		Username: input.Username,
		Password: hashedPassword,
		Email:    input.Email,
		Phone:    input.Phone,
		Role:     input.Role,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		switch input.Role {
		case models.RoleStudent:
			student := models.Student{
				StudentNumber: models.FormatStudentNumber(user.UserID),
				Name:          input.Username,
				UserID:        user.UserID,
			}
			return tx.Create(&student).Error
		case models.RoleTeacher:
			teacher := models.Teacher{
				TeacherNumber: models.FormatTeacherNumber(user.UserID),
				Name:          input.Username,
				UserID:        user.UserID,
			}
			return tx.Create(&teacher).Error
		}
		// admin不创建扩展记录
		return nil
	})
	if err != nil {
		return 0, err
	}

	return user.UserID, nil
}

// RequestPasswordReset 生成并保存重置令牌。
// 无论是否匹配到账户，调用方都返回同样的提示，防止账户枚举；
// 匹配成功时返回令牌，投递方式由外部系统负责
func (s *AuthService) RequestPasswordReset(username, email string) (string, error) {
	var user models.User
	if err := s.DB.Where("username = ? AND email = ?", username, email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return "", err
	}
	expiry := time.Now().Add(ResetTokenLifetime)

	updates := map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}
	if err := s.DB.Model(&user).Updates(updates).Error; err != nil {
		return "", err
	}

	return token, nil
}

// ResetPassword 凭重置令牌设置新密码，令牌一次性使用
func (s *AuthService) ResetPassword(token, newPassword string) error {
	var user models.User
	err := s.DB.Where("reset_token = ? AND reset_token_expiry > ?", token, time.Now()).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	// 更新密码并清除重置令牌
	updates := map[string]interface{}{
		"password":           hashedPassword,
		"reset_token":        nil,
		"reset_token_expiry": nil,
	}
	return s.DB.Model(&user).Updates(updates).Error
}
