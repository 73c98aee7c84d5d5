package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/woyaochigaga/SQL-server/docs"
	"github.com/woyaochigaga/SQL-server/internal/app/controllers"
	"github.com/woyaochigaga/SQL-server/internal/app/middleware"
	"github.com/woyaochigaga/SQL-server/internal/domain/services/container"
	"github.com/woyaochigaga/SQL-server/internal/infrastructure/config"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// 请求ID中间件
	r.Use(middleware.RequestID())

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)
	// 初始化认证中间件
	middleware.InitAuthMiddleware(cfg)

	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册无需令牌的路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查路由
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "status"))

	// 认证路由 - 公开但限流，防止暴力尝试
	authGroup := api.Group("")
	authGroup.Use(middleware.CombinedRateLimiter(5, 10))
	authGroup.POST("/login", controllers.HandleAuthFunc(container, "login"))
	authGroup.POST("/register", controllers.HandleAuthFunc(container, "register"))
	authGroup.POST("/reset-password-request", controllers.HandleAuthFunc(container, "requestPasswordReset"))
	authGroup.POST("/reset-password", controllers.HandleAuthFunc(container, "resetPassword"))
}

// registerAuthenticatedRoutes 注册需要认证的路由。
// 所有业务数据接口统一要求有效令牌
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("")
	auth.Use(middleware.Authentication())
	auth.Use(middleware.IPRateLimiter(30, 50))

	// 个人资料
	auth.POST("/update-profile", controllers.HandleUserFunc(container, "updateProfile"))

	// 列表和统计
	auth.GET("/students", middleware.Cache(1*time.Minute), controllers.HandleStudentFunc(container, "getStudents"))
	auth.GET("/courses", middleware.Cache(1*time.Minute), controllers.HandleCourseFunc(container, "getCourses"))
	auth.GET("/grades", middleware.Cache(30*time.Second), controllers.HandleGradeFunc(container, "getGrades"))
	auth.GET("/statistics", controllers.HandleStatisticsFunc(container, "getStatistics"))

	// 教师视角查询
	auth.POST("/teacher-courses", controllers.HandleTeacherFunc(container, "getTeacherCourses"))
	auth.POST("/teacher-classes", controllers.HandleTeacherFunc(container, "getTeacherClasses"))

	// 课程查询
	auth.POST("/course-students", controllers.HandleCourseFunc(container, "getCourseStudents"))
	auth.POST("/course-detail", controllers.HandleCourseFunc(container, "getCourseDetail"))
	auth.GET("/student-courses", controllers.HandleCourseFunc(container, "getStudentCourses"))

	// 班级查询与成员管理
	auth.POST("/class-students", controllers.HandleClassFunc(container, "getClassStudents"))
	auth.POST("/class-detail", controllers.HandleClassFunc(container, "getClassDetail"))
	auth.POST("/add-student", controllers.HandleStudentFunc(container, "addStudentToClass"))
	auth.POST("/delete-student", controllers.HandleStudentFunc(container, "removeStudentFromClass"))

	// 学生视角查询
	auth.GET("/student-dashboard", controllers.HandleStatisticsFunc(container, "getStudentDashboard"))
	auth.GET("/student-activities", controllers.HandleAttendanceFunc(container, "getStudentActivities"))

	// 成绩管理和课程活动只开放给教师和管理员
	teacher := api.Group("")
	teacher.Use(middleware.AuthenticateTeacher())
	teacher.POST("/add-grade", controllers.HandleGradeFunc(container, "addGrade"))
	teacher.POST("/update-grade", controllers.HandleGradeFunc(container, "updateGrade"))
	teacher.POST("/delete-grade", controllers.HandleGradeFunc(container, "deleteGrade"))
	teacher.POST("/course-activity", controllers.HandleAttendanceFunc(container, "publishCourseActivity"))
}
