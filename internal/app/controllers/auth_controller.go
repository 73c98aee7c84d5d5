package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/woyaochigaga/SQL-server/internal/domain/services"
	"github.com/woyaochigaga/SQL-server/internal/domain/services/container"
	"github.com/woyaochigaga/SQL-server/internal/error/code"
	"github.com/woyaochigaga/SQL-server/internal/error/response"
	"github.com/woyaochigaga/SQL-server/pkg/logger"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Login()
	Register()
	RequestPasswordReset()
	ResetPassword()
}

// AuthController 处理登录、注册和密码重置请求
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "register":
			controller.Register()
		case "requestPasswordReset":
			controller.RequestPasswordReset()
		case "resetPassword":
			controller.ResetPassword()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Username string `json:"username" example:"zhangsan"`
	Password string `json:"password" example:"secret123"`
}

// ErrorResponse 表示错误响应
type ErrorResponse struct {
	Message string `json:"message" example:"用户名或密码不正确"`
}

// MessageResponse 表示仅含消息的成功响应
type MessageResponse struct {
	Message string `json:"message" example:"操作成功"`
}

// Login 处理用户登录
// @Summary      用户登录
// @Description  校验用户名密码，返回JWT令牌和用户信息
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录参数"
// @Success      200  {object}  services.LoginResult
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数")
		return
	}
	if req.Username == "" || req.Password == "" {
		response.Fail(c.Ctx, code.ErrMissingCredentials)
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)

	result, err := authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrInvalidCredentials)
			return
		}
		logger.Error("登录失败 username=%s: %v", req.Username, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, result)
}

// RegisterRequest 表示注册请求
type RegisterRequest struct {
	Username string `json:"username" example:"zhangsan"`
	Password string `json:"password" example:"secret123"`
	Email    string `json:"email" example:"zhangsan@example.com"`
	Phone    string `json:"phone" example:"13800001234"`
	Role     string `json:"role" example:"student"`
}

// Register 处理用户注册
// @Summary      用户注册
// @Description  创建账户及对应的学生/教师记录
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "注册参数"
// @Success      201  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数")
		return
	}
	if req.Username == "" || req.Password == "" {
		response.ParamError(c.Ctx, "用户名和密码是必填的")
		return
	}
	if req.Email == "" {
		response.ParamError(c.Ctx, "邮箱是必填的")
		return
	}
	if req.Role == "" {
		response.ParamError(c.Ctx, "用户角色是必填的")
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)

	_, err := authService.Register(services.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			response.Fail(c.Ctx, code.ErrInvalidRole)
		case errors.Is(err, services.ErrUsernameExists):
			response.Fail(c.Ctx, code.ErrUsernameExists)
		case errors.Is(err, services.ErrEmailExists):
			response.Fail(c.Ctx, code.ErrEmailExists)
		default:
			logger.Error("注册失败 username=%s: %v", req.Username, err)
			response.ServerError(c.Ctx)
		}
		return
	}

	response.Created(c.Ctx, "注册成功")
}

// ResetRequestRequest 表示请求重置密码的参数
type ResetRequestRequest struct {
	Username string `json:"username" example:"zhangsan"`
	Email    string `json:"email" example:"zhangsan@example.com"`
}

// RequestPasswordReset 请求重置密码
// @Summary      请求重置密码
// @Description  生成重置令牌；无论账户是否存在都返回相同提示
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body ResetRequestRequest true "用户名和邮箱"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reset-password-request [post]
func (c *AuthController) RequestPasswordReset() {
	var req ResetRequestRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数")
		return
	}
	if req.Username == "" || req.Email == "" {
		response.ParamError(c.Ctx, "用户名和邮箱不能为空")
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)

	token, err := authService.RequestPasswordReset(req.Username, req.Email)
	if err != nil {
		logger.Error("请求重置密码失败 username=%s: %v", req.Username, err)
		response.ServerError(c.Ctx)
		return
	}

	// TODO: 接入邮件服务后改为真正投递重置链接
	if token != "" {
		logger.Info("重置密码令牌已生成 username=%s", req.Username)
	}

	// 无论是否匹配到账户都返回同一提示，不暴露账户是否存在
	response.Message(c.Ctx, "如果用户存在，重置密码的邮件已发送")
}

// ResetPasswordRequest 表示重置密码的参数
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword 凭令牌重置密码
// @Summary      重置密码
// @Description  校验重置令牌并设置新密码，令牌一次性使用
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body ResetPasswordRequest true "令牌和新密码"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reset-password [post]
func (c *AuthController) ResetPassword() {
	var req ResetPasswordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数")
		return
	}
	if req.Token == "" || req.NewPassword == "" {
		response.ParamError(c.Ctx, "令牌和新密码不能为空")
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)

	if err := authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrResetTokenInvalid) {
			response.Fail(c.Ctx, code.ErrResetTokenInvalid)
			return
		}
		logger.Error("重置密码失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Message(c.Ctx, "密码重置成功")
}
