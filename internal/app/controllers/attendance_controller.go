package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/woyaochigaga/SQL-server/internal/domain/services"
	"github.com/woyaochigaga/SQL-server/internal/domain/services/container"
	"github.com/woyaochigaga/SQL-server/internal/error/code"
	"github.com/woyaochigaga/SQL-server/internal/error/response"
	"github.com/woyaochigaga/SQL-server/pkg/logger"
)

// InterfaceAttendanceController 定义考勤/课程活动控制器接口
type InterfaceAttendanceController interface {
	PublishCourseActivity()
	GetStudentActivities()
}

// AttendanceController 处理课程活动相关的请求
type AttendanceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAttendanceController 创建一个新的考勤控制器
func NewAttendanceController(ctx *gin.Context, container *container.ServiceContainer) *AttendanceController {
	return &AttendanceController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAttendanceFunc 返回一个处理考勤请求的Gin处理函数
func HandleAttendanceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAttendanceController(ctx, container)

		switch method {
		case "publishCourseActivity":
			controller.PublishCourseActivity()
		case "getStudentActivities":
			controller.GetStudentActivities()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// CourseActivityRequest 表示发布课程活动的请求
type CourseActivityRequest struct {
	CourseID     uint      `json:"courseId"`
	ActivityType string    `json:"activityType"`
	ActivityDate time.Time `json:"activityDate"`
	Comments     *string   `json:"comments"`
	RecordedBy   uint      `json:"recordedBy"`
}

// PublishCourseActivity 发布课程活动
// @Summary      发布课程活动
// @Description  为课程的每个选课学生生成一条活动记录
// @Tags         Attendance
// @Accept       json
// @Produce      json
// @Param        request body CourseActivityRequest true "活动参数"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /course-activity [post]
// @Security     BearerAuth
func (c *AttendanceController) PublishCourseActivity() {
	var req CourseActivityRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "无效的请求参数")
		return
	}
	if req.CourseID == 0 || req.ActivityType == "" || req.ActivityDate.IsZero() || req.RecordedBy == 0 {
		response.ParamError(c.Ctx, "参数不完整")
		return
	}

	attendanceService := c.Container.GetService("attendance").(services.InterfaceAttendanceService)

	err := attendanceService.PublishCourseActivity(req.CourseID, req.ActivityType, req.ActivityDate, req.Comments, req.RecordedBy)
	if err != nil {
		if errors.Is(err, services.ErrCourseNoStudents) {
			response.Fail(c.Ctx, code.ErrCourseNoStudents)
			return
		}
		logger.Error("发布课程活动失败 course_id=%d: %v", req.CourseID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Message(c.Ctx, "活动已发布")
}

// GetStudentActivities 查询学生的所有课程活动
// @Summary      查询学生活动
// @Tags         Attendance
// @Produce      json
// @Param        studentId query int true "学生ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /student-activities [get]
// @Security     BearerAuth
func (c *AttendanceController) GetStudentActivities() {
	studentID, err := strconv.ParseUint(c.Ctx.Query("studentId"), 10, 32)
	if err != nil || studentID == 0 {
		response.ParamError(c.Ctx, "缺少studentId")
		return
	}

	attendanceService := c.Container.GetService("attendance").(services.InterfaceAttendanceService)

	activities, err := attendanceService.GetActivitiesByStudent(uint(studentID))
	if err != nil {
		logger.Error("查询学生活动失败 student_id=%d: %v", studentID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"activities": activities})
}
