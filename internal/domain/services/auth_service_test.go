package services

import (
	"crypto/md5"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woyaochigaga/SQL-server/internal/domain/models"
	"github.com/woyaochigaga/SQL-server/utils"
)

func TestRegisterStudentCreatesDetail(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg))

	userID, err := svc.Register(RegisterInput{
		Username: "zhangsan",
		Password: "secret123",
		Email:    "zhangsan@example.com",
		Phone:    "13800001234",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)
	require.NotZero(t, userID)

	var user models.User
	require.NoError(t, db.First(&user, userID).Error)
	assert.Equal(t, "zhangsan", user.Username)
	assert.Equal(t, models.RoleStudent, user.Role)
	// 密码必须是bcrypt哈希
	assert.Equal(t, utils.PasswordSalted, utils.ClassifyPassword(user.Password))
	assert.True(t, utils.VerifyPassword("secret123", user.Password))

	var student models.Student
	require.NoError(t, db.Where("user_id = ?", userID).First(&student).Error)
	assert.Equal(t, models.FormatStudentNumber(userID), student.StudentNumber)
	assert.Equal(t, "zhangsan", student.Name)
	assert.Nil(t, student.ClassID)
}

func TestRegisterTeacherCreatesDetail(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg))

	userID, err := svc.Register(RegisterInput{
		Username: "lisi",
		Password: "secret123",
		Email:    "lisi@example.com",
		Role:     models.RoleTeacher,
	})
	require.NoError(t, err)

	var teacher models.Teacher
	require.NoError(t, db.Where("user_id = ?", userID).First(&teacher).Error)
	assert.Equal(t, models.FormatTeacherNumber(userID), teacher.TeacherNumber)
}

func TestRegisterAdminHasNoDetail(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg))

	userID, err := svc.Register(RegisterInput{
		Username: "boss",
		Password: "secret123",
		Email:    "boss@example.com",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	var count int64
	db.Model(&models.Student{}).Where("user_id = ?", userID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Teacher{}).Where("user_id = ?", userID).Count(&count)
	assert.Zero(t, count)
}

func TestRegisterRejectsDuplicatesAndBadRole(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg))

	_, err := svc.Register(RegisterInput{
		Username: "zhangsan", Password: "pw", Email: "a@example.com", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{
		Username: "zhangsan", Password: "pw", Email: "b@example.com", Role: models.RoleStudent,
	})
	assert.ErrorIs(t, err, ErrUsernameExists)

	_, err = svc.Register(RegisterInput{
		Username: "wangwu", Password: "pw", Email: "a@example.com", Role: models.RoleStudent,
	})
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = svc.Register(RegisterInput{
		Username: "wangwu", Password: "pw", Email: "c@example.com", Role: "superuser",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLoginReturnsTokenAndDetail(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg))

	userID, err := svc.Register(RegisterInput{
		Username: "zhangsan", Password: "secret123", Email: "a@example.com", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	result, err := svc.Login("zhangsan", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, userID, result.User.ID)
	assert.Equal(t, models.RoleStudent, result.User.Role)
	require.NotNil(t, result.User.DetailInfo)
	student, ok := result.User.DetailInfo.(*models.Student)
	require.True(t, ok)
	assert.Equal(t, models.FormatStudentNumber(userID), student.StudentNumber)

	// 最后登录时间被更新
	var user models.User
	require.NoError(t, db.First(&user, userID).Error)
	require.NotNil(t, user.LastLogin)
	assert.WithinDuration(t, time.Now(), *user.LastLogin, 5*time.Second)
}

func TestLoginUniformErrorForUnknownUserAndWrongPassword(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg))

	_, err := svc.Register(RegisterInput{
		Username: "zhangsan", Password: "secret123", Email: "a@example.com", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	_, errUnknown := svc.Login("nobody", "secret123")
	_, errWrongPw := svc.Login("zhangsan", "wrongpass")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	// 两种失败对外不可区分
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestLoginAcceptsLegacyMD5Password(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg))

	digest := md5.Sum([]byte("oldpass"))
	user := models.User{
		Username: "legacy",
		Password: hex.EncodeToString(digest[:]),
		Email:    "legacy@example.com",
		Role:     models.RoleAdmin,
	}
	require.NoError(t, db.Create(&user).Error)

	result, err := svc.Login("legacy", "oldpass")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	// 登录成功后不会把MD5密码重新哈希
	var stored models.User
	require.NoError(t, db.First(&stored, user.UserID).Error)
	assert.Equal(t, utils.PasswordLegacy, utils.ClassifyPassword(stored.Password))

	_, err = svc.Login("legacy", "newpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordResetFlow(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg))

	userID, err := svc.Register(RegisterInput{
		Username: "zhangsan", Password: "secret123", Email: "a@example.com", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	// 用户名邮箱不匹配时静默返回空令牌
	token, err := svc.RequestPasswordReset("zhangsan", "wrong@example.com")
	require.NoError(t, err)
	assert.Empty(t, token)

	token, err = svc.RequestPasswordReset("zhangsan", "a@example.com")
	require.NoError(t, err)
	require.Len(t, token, 64)

	var user models.User
	require.NoError(t, db.First(&user, userID).Error)
	require.NotNil(t, user.ResetToken)
	assert.Equal(t, token, *user.ResetToken)
	require.NotNil(t, user.ResetTokenExpiry)
	assert.True(t, user.ResetTokenExpiry.After(time.Now()))

	// 凭令牌重置密码
	require.NoError(t, svc.ResetPassword(token, "brandnew456"))

	_, err = svc.Login("zhangsan", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("zhangsan", "brandnew456")
	assert.NoError(t, err)

	// 令牌一次性使用
	err = svc.ResetPassword(token, "again789")
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthService(db, cfg, NewJWTService(cfg))

	userID, err := svc.Register(RegisterInput{
		Username: "zhangsan", Password: "secret123", Email: "a@example.com", Role: models.RoleStudent,
	})
	require.NoError(t, err)

	expired := time.Now().Add(-time.Minute)
	token := "deadbeef"
	require.NoError(t, db.Model(&models.User{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expired,
	}).Error)

	err = svc.ResetPassword(token, "whatever")
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
}
