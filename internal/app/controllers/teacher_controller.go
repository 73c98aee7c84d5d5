package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/woyaochigaga/SQL-server/internal/domain/services"
	"github.com/woyaochigaga/SQL-server/internal/domain/services/container"
	"github.com/woyaochigaga/SQL-server/internal/error/response"
	"github.com/woyaochigaga/SQL-server/pkg/logger"
)

// InterfaceTeacherController 定义教师控制器接口
type InterfaceTeacherController interface {
	GetTeacherCourses()
	GetTeacherClasses()
}

// TeacherController 处理教师相关的请求
type TeacherController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTeacherController 创建一个新的教师控制器
func NewTeacherController(ctx *gin.Context, container *container.ServiceContainer) *TeacherController {
	return &TeacherController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleTeacherFunc 返回一个处理教师请求的Gin处理函数
func HandleTeacherFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTeacherController(ctx, container)

		switch method {
		case "getTeacherCourses":
			controller.GetTeacherCourses()
		case "getTeacherClasses":
			controller.GetTeacherClasses()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// TeacherQueryRequest 表示按教师ID查询的请求
type TeacherQueryRequest struct {
	TeacherID uint `json:"teacherId"`
}

// GetTeacherCourses 查询教师任教的课程
// @Summary      查询教师课程
// @Tags         Teacher
// @Accept       json
// @Produce      json
// @Param        request body TeacherQueryRequest true "教师ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /teacher-courses [post]
// @Security     BearerAuth
func (c *TeacherController) GetTeacherCourses() {
	var req TeacherQueryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || req.TeacherID == 0 {
		response.ParamError(c.Ctx, "缺少teacherId")
		return
	}

	teacherService := c.Container.GetService("teacher").(services.InterfaceTeacherService)

	courses, err := teacherService.GetCoursesByTeacher(req.TeacherID)
	if err != nil {
		logger.Error("查询教师课程失败 teacher_id=%d: %v", req.TeacherID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"courses": courses})
}

// GetTeacherClasses 查询教师担任班主任的班级
// @Summary      查询教师班级
// @Tags         Teacher
// @Accept       json
// @Produce      json
// @Param        request body TeacherQueryRequest true "教师ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /teacher-classes [post]
// @Security     BearerAuth
func (c *TeacherController) GetTeacherClasses() {
	var req TeacherQueryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || req.TeacherID == 0 {
		response.ParamError(c.Ctx, "缺少teacherId")
		return
	}

	teacherService := c.Container.GetService("teacher").(services.InterfaceTeacherService)

	classes, err := teacherService.GetClassesByAdvisor(req.TeacherID)
	if err != nil {
		logger.Error("查询教师班级失败 teacher_id=%d: %v", req.TeacherID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"classes": classes})
}
