package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/woyaochigaga/SQL-server/internal/domain/services/container"
	"github.com/woyaochigaga/SQL-server/internal/error/response"
)

// HealthController 健康检查控制器
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController 创建健康检查控制器实例
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// Ping 健康检查端点
// @Summary      健康检查
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status 服务状态端点，附带数据库连通性
// @Summary      服务状态
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (c *HealthController) Status() {
	dbStatus := "up"
	if db, err := c.Container.GetDB().DB(); err != nil || db.Ping() != nil {
		dbStatus = "down"
	}

	response.Success(c.Ctx, gin.H{
		"status":   "healthy",
		"database": dbStatus,
	})
}
