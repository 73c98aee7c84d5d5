package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/woyaochigaga/SQL-server/internal/domain/services"
	"github.com/woyaochigaga/SQL-server/internal/domain/services/container"
	"github.com/woyaochigaga/SQL-server/internal/error/code"
	"github.com/woyaochigaga/SQL-server/internal/error/response"
	"github.com/woyaochigaga/SQL-server/pkg/logger"
)

// InterfaceCourseController 定义课程控制器接口
type InterfaceCourseController interface {
	GetCourses()
	GetCourseDetail()
	GetCourseStudents()
	GetStudentCourses()
}

// CourseController 处理课程相关的请求
type CourseController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCourseController 创建一个新的课程控制器
func NewCourseController(ctx *gin.Context, container *container.ServiceContainer) *CourseController {
	return &CourseController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleCourseFunc 返回一个处理课程请求的Gin处理函数
func HandleCourseFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCourseController(ctx, container)

		switch method {
		case "getCourses":
			controller.GetCourses()
		case "getCourseDetail":
			controller.GetCourseDetail()
		case "getCourseStudents":
			controller.GetCourseStudents()
		case "getStudentCourses":
			controller.GetStudentCourses()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

// GetCourses 获取课程列表
// @Summary      获取课程列表
// @Description  返回所有课程，附带任课教师姓名
// @Tags         Course
// @Produce      json
// @Success      200  {array}   services.CourseRow
// @Failure      500  {object}  ErrorResponse
// @Router       /courses [get]
// @Security     BearerAuth
func (c *CourseController) GetCourses() {
	courseService := c.Container.GetService("course").(services.InterfaceCourseService)

	courses, err := courseService.GetAllCourses()
	if err != nil {
		logger.Error("查询课程列表失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, courses)
}

// CourseQueryRequest 表示按课程ID查询的请求
type CourseQueryRequest struct {
	CourseID uint `json:"courseId"`
}

// GetCourseDetail 查询课程详情
// @Summary      查询课程详情
// @Tags         Course
// @Accept       json
// @Produce      json
// @Param        request body CourseQueryRequest true "课程ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /course-detail [post]
// @Security     BearerAuth
func (c *CourseController) GetCourseDetail() {
	var req CourseQueryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || req.CourseID == 0 {
		response.ParamError(c.Ctx, "缺少courseId")
		return
	}

	courseService := c.Container.GetService("course").(services.InterfaceCourseService)

	course, err := courseService.GetCourseDetail(req.CourseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			response.Fail(c.Ctx, code.ErrCourseNotFound)
			return
		}
		logger.Error("查询课程详情失败 course_id=%d: %v", req.CourseID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"course": course})
}

// GetCourseStudents 查询课程的选课学生
// @Summary      查询课程学生
// @Tags         Course
// @Accept       json
// @Produce      json
// @Param        request body CourseQueryRequest true "课程ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /course-students [post]
// @Security     BearerAuth
func (c *CourseController) GetCourseStudents() {
	var req CourseQueryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || req.CourseID == 0 {
		response.ParamError(c.Ctx, "缺少courseId")
		return
	}

	courseService := c.Container.GetService("course").(services.InterfaceCourseService)

	students, err := courseService.GetStudentsByCourse(req.CourseID)
	if err != nil {
		logger.Error("查询课程学生失败 course_id=%d: %v", req.CourseID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"students": students})
}

// GetStudentCourses 查询学生的所有课程及成绩
// @Summary      查询学生课程
// @Tags         Course
// @Produce      json
// @Param        studentId query int true "学生ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /student-courses [get]
// @Security     BearerAuth
func (c *CourseController) GetStudentCourses() {
	studentID, err := strconv.ParseUint(c.Ctx.Query("studentId"), 10, 32)
	if err != nil || studentID == 0 {
		response.ParamError(c.Ctx, "缺少studentId")
		return
	}

	courseService := c.Container.GetService("course").(services.InterfaceCourseService)

	courses, err := courseService.GetCoursesByStudent(uint(studentID))
	if err != nil {
		logger.Error("查询学生课程失败 student_id=%d: %v", studentID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"courses": courses})
}
