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

// InterfaceGradeController 定义成绩控制器接口
type InterfaceGradeController interface {
	GetGrades()
	AddGrade()
	UpdateGrade()
	DeleteGrade()
}

// GradeController 处理成绩相关的请求
type GradeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewGradeController 创建一个新的成绩控制器
func NewGradeController(ctx *gin.Context, container *container.ServiceContainer) *GradeController {
	return &GradeController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleGradeFunc 返回一个处理成绩请求的Gin处理函数
func HandleGradeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewGradeController(ctx, container)

		switch method {
		case "getGrades":
			controller.GetGrades()
		case "addGrade":
			controller.AddGrade()
		case "updateGrade":
			controller.UpdateGrade()
		case "deleteGrade":
			controller.DeleteGrade()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// GetGrades 获取成绩列表
// @Summary      获取成绩列表
// @Description  返回所有成绩，附带学生和课程信息
// @Tags         Grade
// @Produce      json
// @Success      200  {array}   services.GradeRow
// @Failure      500  {object}  ErrorResponse
// @Router       /grades [get]
// @Security     BearerAuth
func (c *GradeController) GetGrades() {
	gradeService := c.Container.GetService("grade").(services.InterfaceGradeService)

	grades, err := gradeService.GetAllGrades()
	if err != nil {
		logger.Error("查询成绩列表失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, grades)
}

// AddGradeRequest 表示新增成绩请求
type AddGradeRequest struct {
	StudentID uint     `json:"studentId"`
	CourseID  uint     `json:"courseId"`
	Score     *float64 `json:"score"`
	Comments  *string  `json:"comments"`
	CreatedBy *uint    `json:"createdBy"`
}

// AddGrade 新增成绩
// @Summary      新增成绩
// @Description  录入学生某门课程的成绩，同一学生同一课程只能有一条
// @Tags         Grade
// @Accept       json
// @Produce      json
// @Param        request body AddGradeRequest true "成绩参数"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /add-grade [post]
// @Security     BearerAuth
func (c *GradeController) AddGrade() {
	var req AddGradeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数")
		return
	}
	if req.StudentID == 0 || req.CourseID == 0 || req.Score == nil {
		response.ParamError(c.Ctx, "参数不完整")
		return
	}

	gradeService := c.Container.GetService("grade").(services.InterfaceGradeService)

	err := gradeService.AddGrade(req.StudentID, req.CourseID, *req.Score, req.Comments, req.CreatedBy)
	if err != nil {
		if errors.Is(err, services.ErrGradeExists) {
			response.Fail(c.Ctx, code.ErrGradeExists)
			return
		}
		logger.Error("添加成绩失败 student_id=%d course_id=%d: %v", req.StudentID, req.CourseID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Message(c.Ctx, "成绩添加成功")
}

// UpdateGradeRequest 表示修改成绩请求
type UpdateGradeRequest struct {
	GradeID uint     `json:"gradeId"`
	Score   *float64 `json:"score"`
}

// UpdateGrade 修改成绩
// @Summary      修改成绩
// @Description  更新分数并刷新录入日期
// @Tags         Grade
// @Accept       json
// @Produce      json
// @Param        request body UpdateGradeRequest true "成绩ID和新分数"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /update-grade [post]
// @Security     BearerAuth
func (c *GradeController) UpdateGrade() {
	var req UpdateGradeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数")
		return
	}
	if req.GradeID == 0 || req.Score == nil {
		response.ParamError(c.Ctx, "缺少成绩ID或分数")
		return
	}

	gradeService := c.Container.GetService("grade").(services.InterfaceGradeService)

	if err := gradeService.UpdateGrade(req.GradeID, *req.Score); err != nil {
		if errors.Is(err, services.ErrGradeNotFound) {
			response.Fail(c.Ctx, code.ErrGradeNotFound)
			return
		}
		logger.Error("修改成绩失败 grade_id=%d: %v", req.GradeID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Message(c.Ctx, "成绩已更新")
}

// DeleteGradeRequest 表示删除成绩请求
type DeleteGradeRequest struct {
	GradeID uint `json:"gradeId"`
}

// DeleteGrade 删除成绩
// @Summary      删除成绩
// @Tags         Grade
// @Accept       json
// @Produce      json
// @Param        request body DeleteGradeRequest true "成绩ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /delete-grade [post]
// @Security     BearerAuth
func (c *GradeController) DeleteGrade() {
	var req DeleteGradeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || req.GradeID == 0 {
		response.ParamError(c.Ctx, "缺少成绩ID")
		return
	}

	gradeService := c.Container.GetService("grade").(services.InterfaceGradeService)

	if err := gradeService.DeleteGrade(req.GradeID); err != nil {
		if errors.Is(err, services.ErrGradeNotFound) {
			response.Fail(c.Ctx, code.ErrGradeNotFound)
			return
		}
		logger.Error("删除成绩失败 grade_id=%d: %v", req.GradeID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Message(c.Ctx, "成绩已删除")
}
