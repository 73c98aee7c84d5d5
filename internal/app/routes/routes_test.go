package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/woyaochigaga/SQL-server/internal/domain/models"
	"github.com/woyaochigaga/SQL-server/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Teacher{},
		&models.Class{},
		&models.Student{},
		&models.Course{},
		&models.StudentCourse{},
		&models.Grade{},
		&models.Attendance{},
	))

	cfg := &config.Config{
		EnvType:      "LOCAL",
		ServerPort:   "3001",
		JWTSecretKey: "test-secret-key",
	}
	return SetupRouter(db, cfg), db
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, username, role string) (string, map[string]interface{}) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/register", "", gin.H{
		"username": username,
		"password": "secret123",
		"email":    username + "@example.com",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/api/login", "", gin.H{
		"username": username,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	token, _ := result["token"].(string)
	require.NotEmpty(t, token)
	return token, result
}

func TestLoginUniformUnauthorizedMessage(t *testing.T) {
	r, _ := newTestServer(t)
	registerAndLogin(t, r, "u_login", "student")

	unknown := doJSON(r, http.MethodPost, "/api/login", "", gin.H{
		"username": "nobody", "password": "whatever",
	})
	wrongPw := doJSON(r, http.MethodPost, "/api/login", "", gin.H{
		"username": "u_login", "password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	// 不区分“用户不存在”和“密码错误”
	assert.JSONEq(t, `{"message":"用户名或密码不正确"}`, unknown.Body.String())
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String())
}

func TestRegisterReturnsCreatedAndLoginCarriesDetail(t *testing.T) {
	r, db := newTestServer(t)
	_, result := registerAndLogin(t, r, "u_detail", "student")

	user, ok := result["user"].(map[string]interface{})
	require.True(t, ok, "login响应应包含user对象")
	assert.Equal(t, "student", user["role"])
	assert.NotNil(t, user["detailInfo"])

	var count int64
	require.NoError(t, db.Model(&models.Student{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMissingTokenVersusInvalidToken(t *testing.T) {
	r, _ := newTestServer(t)

	noToken := doJSON(r, http.MethodGet, "/api/statistics", "", nil)
	assert.Equal(t, http.StatusUnauthorized, noToken.Code)
	assert.JSONEq(t, `{"message":"未提供认证令牌"}`, noToken.Body.String())

	badToken := doJSON(r, http.MethodGet, "/api/statistics", "not-a-jwt", nil)
	assert.Equal(t, http.StatusForbidden, badToken.Code)
	assert.JSONEq(t, `{"message":"无效的令牌"}`, badToken.Body.String())
}

func TestResetRequestDoesNotRevealAccountExistence(t *testing.T) {
	r, db := newTestServer(t)
	registerAndLogin(t, r, "u_reset_req", "student")

	matched := doJSON(r, http.MethodPost, "/api/reset-password-request", "", gin.H{
		"username": "u_reset_req",
		"email":    "u_reset_req@example.com",
	})
	unmatched := doJSON(r, http.MethodPost, "/api/reset-password-request", "", gin.H{
		"username": "u_reset_req",
		"email":    "wrong@example.com",
	})

	// 命中与未命中必须不可区分
	assert.Equal(t, http.StatusOK, matched.Code)
	assert.Equal(t, http.StatusOK, unmatched.Code)
	assert.Equal(t, matched.Body.String(), unmatched.Body.String())

	// 命中分支仍然生成了令牌
	var user models.User
	require.NoError(t, db.Where("username = ?", "u_reset_req").First(&user).Error)
	require.NotNil(t, user.ResetToken)
	assert.Len(t, *user.ResetToken, 64)
}

func TestUpdateProfileRejectsOtherUsersIdentity(t *testing.T) {
	r, _ := newTestServer(t)
	token, result := registerAndLogin(t, r, "u_profile", "student")

	user := result["user"].(map[string]interface{})
	userID := uint(user["id"].(float64))

	w := doJSON(r, http.MethodPost, "/api/update-profile", token, gin.H{
		"userId": userID + 1,
		"role":   "student",
		"Phone":  "13800001234",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"只能修改本人的资料"}`, w.Body.String())

	// 本人修改则成功
	w = doJSON(r, http.MethodPost, "/api/update-profile", token, gin.H{
		"userId": userID,
		"role":   "student",
		"Phone":  "13800001234",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestGradeMutationRequiresTeacherRole(t *testing.T) {
	r, _ := newTestServer(t)
	studentToken, _ := registerAndLogin(t, r, "u_stu_role", "student")
	teacherToken, _ := registerAndLogin(t, r, "u_tea_role", "teacher")

	w := doJSON(r, http.MethodPost, "/api/add-grade", studentToken, gin.H{
		"studentId": 1, "courseId": 1, "score": 90,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"权限不足"}`, w.Body.String())

	// 教师能通过角色校验（业务校验在其后）
	w = doJSON(r, http.MethodPost, "/api/add-grade", teacherToken, gin.H{
		"studentId": 0, "courseId": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"参数不完整"}`, w.Body.String())
}
