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

// InterfaceClassController 定义班级控制器接口
type InterfaceClassController interface {
	GetClassDetail()
	GetClassStudents()
}

// ClassController 处理班级相关的请求
type ClassController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewClassController 创建一个新的班级控制器
func NewClassController(ctx *gin.Context, container *container.ServiceContainer) *ClassController {
	return &ClassController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleClassFunc 返回一个处理班级请求的Gin处理函数
func HandleClassFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewClassController(ctx, container)

		switch method {
		case "getClassDetail":
			controller.GetClassDetail()
		case "getClassStudents":
			controller.GetClassStudents()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// ClassQueryRequest 表示按班级ID查询的请求
type ClassQueryRequest struct {
	ClassID uint `json:"classId"`
}

// GetClassDetail 查询班级详情
// @Summary      查询班级详情
// @Tags         Class
// @Accept       json
// @Produce      json
// @Param        request body ClassQueryRequest true "班级ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /class-detail [post]
// @Security     BearerAuth
func (c *ClassController) GetClassDetail() {
	var req ClassQueryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || req.ClassID == 0 {
		response.ParamError(c.Ctx, "缺少classId")
		return
	}

	classService := c.Container.GetService("class").(services.InterfaceClassService)

	class, err := classService.GetClassByID(req.ClassID)
	if err != nil {
		if errors.Is(err, services.ErrClassNotFound) {
			response.Fail(c.Ctx, code.ErrClassNotFound)
			return
		}
		logger.Error("查询班级详情失败 class_id=%d: %v", req.ClassID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"class": class})
}

// GetClassStudents 查询班级所有学生
// @Summary      查询班级学生
// @Tags         Class
// @Accept       json
// @Produce      json
// @Param        request body ClassQueryRequest true "班级ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /class-students [post]
// @Security     BearerAuth
func (c *ClassController) GetClassStudents() {
	var req ClassQueryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || req.ClassID == 0 {
		response.ParamError(c.Ctx, "缺少classId")
		return
	}

	studentService := c.Container.GetService("student").(services.InterfaceStudentService)

	students, err := studentService.GetStudentsByClass(req.ClassID)
	if err != nil {
		logger.Error("查询班级学生失败 class_id=%d: %v", req.ClassID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"students": students})
}
