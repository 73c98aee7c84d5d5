package container

import (
	"sync"

	"gorm.io/gorm"

	"github.com/woyaochigaga/SQL-server/internal/domain/services"
	"github.com/woyaochigaga/SQL-server/internal/infrastructure/config"
	"github.com/woyaochigaga/SQL-server/pkg/logger"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 基础服务
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// 业务服务
	authService       services.InterfaceAuthService
	userService       services.InterfaceUserService
	studentService    services.InterfaceStudentService
	teacherService    services.InterfaceTeacherService
	classService      services.InterfaceClassService
	courseService     services.InterfaceCourseService
	gradeService      services.InterfaceGradeService
	attendanceService services.InterfaceAttendanceService
	statisticsService services.InterfaceStatisticsService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)

	// 初始化Redis服务，连接不可用时统计服务退化为纯数据库查询
	redisService := services.NewRedisService(c.config)
	if err := redisService.Ping(); err != nil {
		logger.Warning("Redis连接测试失败: %v，将不使用Redis缓存", err)
		redisService = nil
	}
	c.redisService = redisService

	// 初始化业务服务
	c.authService = services.NewAuthService(c.db, c.config, c.jwtService)
	c.userService = services.NewUserService(c.db, c.config)
	c.studentService = services.NewStudentService(c.db, c.config)
	c.teacherService = services.NewTeacherService(c.db, c.config)
	c.classService = services.NewClassService(c.db, c.config)
	c.courseService = services.NewCourseService(c.db, c.config)
	c.gradeService = services.NewGradeService(c.db, c.config)
	c.attendanceService = services.NewAttendanceService(c.db, c.config)
	c.statisticsService = services.NewStatisticsService(c.db, c.redisService, c.config)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "auth":
		return c.authService
	case "user":
		return c.userService
	case "student":
		return c.studentService
	case "teacher":
		return c.teacherService
	case "class":
		return c.classService
	case "course":
		return c.courseService
	case "grade":
		return c.gradeService
	case "attendance":
		return c.attendanceService
	case "statistics":
		return c.statisticsService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
