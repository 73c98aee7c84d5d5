package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/woyaochigaga/SQL-server/internal/domain/models"
	"github.com/woyaochigaga/SQL-server/internal/infrastructure/config"
)

// newTestDB 创建每个测试独立的sqlite数据库并迁移全部模型
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Teacher{},
		&models.Class{},
		&models.Student{},
		&models.Course{},
		&models.StudentCourse{},
		&models.Grade{},
		&models.Attendance{},
	)
	require.NoError(t, err)

	return db
}

// newTestConfig 测试用配置，跳过环境变量加载
func newTestConfig() *config.Config {
	return &config.Config{
		EnvType:      "LOCAL",
		ServerPort:   "3001",
		JWTSecretKey: "test-secret-key",
	}
}
