package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/woyaochigaga/SQL-server/internal/domain/services"
	"github.com/woyaochigaga/SQL-server/internal/domain/services/container"
	"github.com/woyaochigaga/SQL-server/internal/error/response"
	"github.com/woyaochigaga/SQL-server/pkg/logger"
)

// InterfaceStudentController 定义学生控制器接口
type InterfaceStudentController interface {
	GetStudents()
	AddStudentToClass()
	RemoveStudentFromClass()
}

// StudentController 处理学生相关的请求
type StudentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStudentController 创建一个新的学生控制器
func NewStudentController(ctx *gin.Context, container *container.ServiceContainer) *StudentController {
	return &StudentController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleStudentFunc 返回一个处理学生请求的Gin处理函数
func HandleStudentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStudentController(ctx, container)

		switch method {
		case "getStudents":
			controller.GetStudents()
		case "addStudentToClass":
			controller.AddStudentToClass()
		case "removeStudentFromClass":
			controller.RemoveStudentFromClass()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// GetStudents 获取学生列表
// @Summary      获取学生列表
// @Description  返回所有学生，附带班级名称
// @Tags         Student
// @Produce      json
// @Success      200  {array}   services.StudentRow
// @Failure      500  {object}  ErrorResponse
// @Router       /students [get]
// @Security     BearerAuth
func (c *StudentController) GetStudents() {
	studentService := c.Container.GetService("student").(services.InterfaceStudentService)

	students, err := studentService.GetAllStudents()
	if err != nil {
		logger.Error("查询学生列表失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, students)
}

// ClassMembershipRequest 表示班级成员变更请求，
// 学生可按ID或学号指定
type ClassMembershipRequest struct {
	StudentID     uint   `json:"StudentID"`
	StudentNumber string `json:"StudentNumber"`
	ClassID       uint   `json:"ClassID"`
}

// AddStudentToClass 将学生加入班级
// @Summary      学生加入班级
// @Description  按学生ID或学号更新学生的班级归属
// @Tags         Student
// @Accept       json
// @Produce      json
// @Param        request body ClassMembershipRequest true "学生标识和班级ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /add-student [post]
// @Security     BearerAuth
func (c *StudentController) AddStudentToClass() {
	var req ClassMembershipRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数")
		return
	}
	if (req.StudentID == 0 && req.StudentNumber == "") || req.ClassID == 0 {
		response.ParamError(c.Ctx, "缺少学生ID/学号或班级ID")
		return
	}

	studentService := c.Container.GetService("student").(services.InterfaceStudentService)

	if err := studentService.AssignToClass(req.StudentID, req.StudentNumber, req.ClassID); err != nil {
		logger.Error("学生加入班级失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Message(c.Ctx, "学生已加入班级")
}

// RemoveStudentFromClass 将学生移出班级
// @Summary      学生移出班级
// @Description  按学生ID或学号清空学生的班级归属
// @Tags         Student
// @Accept       json
// @Produce      json
// @Param        request body ClassMembershipRequest true "学生标识"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /delete-student [post]
// @Security     BearerAuth
func (c *StudentController) RemoveStudentFromClass() {
	var req ClassMembershipRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数")
		return
	}
	if req.StudentID == 0 && req.StudentNumber == "" {
		response.ParamError(c.Ctx, "缺少学生ID/学号")
		return
	}

	studentService := c.Container.GetService("student").(services.InterfaceStudentService)

	if err := studentService.RemoveFromClass(req.StudentID, req.StudentNumber); err != nil {
		logger.Error("学生移出班级失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Message(c.Ctx, "学生已移出班级")
}
