package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woyaochigaga/SQL-server/internal/domain/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func uintPtr(n uint) *uint    { return &n }

func TestUpdateProfileSparseFields(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	auth := NewAuthService(db, cfg, NewJWTService(cfg))
	svc := NewUserService(db, cfg)

	userID, err := auth.Register(RegisterInput{
		Username: "zhangsan", Password: "pw", Email: "a@example.com", Phone: "100", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	class := models.Class{ClassName: "软件2101", Department: "计算机学院"}
	require.NoError(t, db.Create(&class).Error)

	// 只提交部分字段
	result, err := svc.UpdateProfile(userID, models.RoleStudent, ProfileChanges{
		Phone:   strPtr("13900009999"),
		Age:     intPtr(20),
		ClassID: uintPtr(class.ClassID),
	})
	require.NoError(t, err)

	user, ok := result.UserInfo.(*models.User)
	require.True(t, ok)
	assert.Equal(t, "13900009999", user.Phone)
	// 未提交的字段保持原值
	assert.Equal(t, "a@example.com", user.Email)

	student, ok := result.DetailInfo.(*models.Student)
	require.True(t, ok)
	require.NotNil(t, student.Age)
	assert.Equal(t, 20, *student.Age)
	require.NotNil(t, student.ClassID)
	assert.Equal(t, class.ClassID, *student.ClassID)
	assert.Nil(t, student.Gender)
	assert.Nil(t, student.Address)
}

func TestUpdateProfileTeacherFields(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	auth := NewAuthService(db, cfg, NewJWTService(cfg))
	svc := NewUserService(db, cfg)

	userID, err := auth.Register(RegisterInput{
		Username: "lisi", Password: "pw", Email: "b@example.com", Role: models.RoleTeacher,
	})
	require.NoError(t, err)

	result, err := svc.UpdateProfile(userID, models.RoleTeacher, ProfileChanges{
		Title:      strPtr("副教授"),
		Department: strPtr("数学学院"),
	})
	require.NoError(t, err)

	teacher, ok := result.DetailInfo.(*models.Teacher)
	require.True(t, ok)
	require.NotNil(t, teacher.Title)
	assert.Equal(t, "副教授", *teacher.Title)
	require.NotNil(t, teacher.Department)
	assert.Equal(t, "数学学院", *teacher.Department)
}

func TestUpdateProfileRejectsBadIdentity(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewUserService(db, cfg)

	_, err := svc.UpdateProfile(0, models.RoleStudent, ProfileChanges{})
	assert.ErrorIs(t, err, ErrMissingIdentity)

	_, err = svc.UpdateProfile(1, "", ProfileChanges{})
	assert.ErrorIs(t, err, ErrMissingIdentity)

	// admin没有扩展资料可更新
	_, err = svc.UpdateProfile(1, models.RoleAdmin, ProfileChanges{})
	assert.ErrorIs(t, err, ErrUnsupportedRole)

	_, err = svc.UpdateProfile(999, models.RoleStudent, ProfileChanges{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfileEmptyChangeSetIsNoop(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	auth := NewAuthService(db, cfg, NewJWTService(cfg))
	svc := NewUserService(db, cfg)

	userID, err := auth.Register(RegisterInput{
		Username: "zhangsan", Password: "pw", Email: "a@example.com", Phone: "100", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	result, err := svc.UpdateProfile(userID, models.RoleStudent, ProfileChanges{})
	require.NoError(t, err)

	user, ok := result.UserInfo.(*models.User)
	require.True(t, ok)
	assert.Equal(t, "a@example.com", user.Email)
	assert.Equal(t, "100", user.Phone)
}
