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

// InterfaceUserController 定义用户资料控制器接口
type InterfaceUserController interface {
	UpdateProfile()
}

// UserController 处理个人资料请求
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController 创建一个新的用户资料控制器
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleUserFunc 返回一个处理用户资料请求的Gin处理函数
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "updateProfile":
			controller.UpdateProfile()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// UpdateProfileRequest 表示资料更新请求。
// 指针字段区分"未提交"和"提交了空值"
type UpdateProfileRequest struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	services.ProfileChanges
}

// UpdateProfile 更新个人资料
// @Summary      更新个人资料
// @Description  按角色稀疏更新账户和学生/教师扩展字段，只能修改本人资料
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body UpdateProfileRequest true "变更字段"
// @Success      200  {object}  services.ProfileResult
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /update-profile [post]
// @Security     BearerAuth
func (c *UserController) UpdateProfile() {
	var req UpdateProfileRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数")
		return
	}
	if req.UserID == 0 || req.Role == "" {
		response.Fail(c.Ctx, code.ErrMissingIdentity)
		return
	}

	// 请求身份必须与令牌一致
	value, exists := c.Ctx.Get("claims")
	claims, ok := value.(*services.JWTClaims)
	if !exists || !ok || claims.UserID != req.UserID || claims.Role != req.Role {
		response.Fail(c.Ctx, code.ErrIdentityMismatch)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)

	result, err := userService.UpdateProfile(req.UserID, req.Role, req.ProfileChanges)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingIdentity):
			response.Fail(c.Ctx, code.ErrMissingIdentity)
		case errors.Is(err, services.ErrUnsupportedRole):
			response.Fail(c.Ctx, code.ErrUnsupportedRole)
		case errors.Is(err, services.ErrUserNotFound):
			response.Fail(c.Ctx, code.ErrUserNotFound)
		default:
			logger.Error("更新个人资料失败 user_id=%d: %v", req.UserID, err)
			response.ServerError(c.Ctx)
		}
		return
	}

	response.Success(c.Ctx, result)
}
