package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/woyaochigaga/SQL-server/internal/domain/services"
	"github.com/woyaochigaga/SQL-server/internal/domain/services/container"
	"github.com/woyaochigaga/SQL-server/internal/error/response"
	"github.com/woyaochigaga/SQL-server/pkg/logger"
)

// InterfaceStatisticsController 定义统计控制器接口
type InterfaceStatisticsController interface {
	GetStatistics()
	GetStudentDashboard()
}

// StatisticsController 处理统计和仪表盘请求
type StatisticsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStatisticsController 创建一个新的统计控制器
func NewStatisticsController(ctx *gin.Context, container *container.ServiceContainer) *StatisticsController {
	return &StatisticsController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleStatisticsFunc 返回一个处理统计请求的Gin处理函数
func HandleStatisticsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStatisticsController(ctx, container)

		switch method {
		case "getStatistics":
			controller.GetStatistics()
		case "getStudentDashboard":
			controller.GetStudentDashboard()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// GetStatistics 获取统计数据
// @Summary      获取统计数据
// @Description  返回学生/教师/班级/课程数量、平均成绩和成绩分布
// @Tags         Statistics
// @Produce      json
// @Success      200  {object}  services.Statistics
// @Failure      500  {object}  ErrorResponse
// @Router       /statistics [get]
// @Security     BearerAuth
func (c *StatisticsController) GetStatistics() {
	statisticsService := c.Container.GetService("statistics").(services.InterfaceStatisticsService)

	stats, err := statisticsService.GetStatistics()
	if err != nil {
		logger.Error("查询统计数据失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, stats)
}

// GetStudentDashboard 获取学生首页仪表盘
// @Summary      学生仪表盘
// @Description  返回GPA、学分、挂科数及班级班主任信息
// @Tags         Statistics
// @Produce      json
// @Param        studentId query int true "学生ID"
// @Success      200  {object}  services.StudentDashboard
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /student-dashboard [get]
// @Security     BearerAuth
func (c *StatisticsController) GetStudentDashboard() {
	studentID, err := strconv.ParseUint(c.Ctx.Query("studentId"), 10, 32)
	if err != nil || studentID == 0 {
		response.ParamError(c.Ctx, "缺少studentId")
		return
	}

	statisticsService := c.Container.GetService("statistics").(services.InterfaceStatisticsService)

	dashboard, err := statisticsService.GetStudentDashboard(uint(studentID))
	if err != nil {
		logger.Error("查询学生仪表盘失败 student_id=%d: %v", studentID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, dashboard)
}
