package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/woyaochigaga/SQL-server/internal/domain/services"
	"github.com/woyaochigaga/SQL-server/internal/error/code"
	"github.com/woyaochigaga/SQL-server/internal/error/response"
	"github.com/woyaochigaga/SQL-server/internal/infrastructure/config"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// authenticate 校验令牌并把声明写入上下文。
// 缺少令牌返回401，令牌无效或已过期返回403
func authenticate(c *gin.Context) *services.JWTClaims {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Fail(c, code.ErrTokenMissing)
		c.Abort()
		return nil
	}

	tokenString := extractToken(authHeader)
	if tokenString == "" {
		response.Fail(c, code.ErrTokenMissing)
		c.Abort()
		return nil
	}

	claims, err := jwtService.ExtractClaims(tokenString)
	if err != nil {
		response.Fail(c, code.ErrTokenInvalid)
		c.Abort()
		return nil
	}

	c.Set("userID", claims.UserID)
	c.Set("username", claims.Username)
	c.Set("role", claims.Role)
	c.Set("claims", claims)
	return claims
}

// Authentication 通用的认证中间件，任何已登录角色均可通过
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := authenticate(c); claims != nil {
			c.Next()
		}
	}
}

// AuthenticateAdmin 验证管理员权限
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := authenticate(c)
		if claims == nil {
			return
		}

		if claims.Role != "admin" {
			response.Fail(c, code.ErrPermissionDenied)
			c.Abort()
			return
		}

		c.Next()
	}
}

// AuthenticateTeacher 验证教师权限（管理员也可以访问教师的接口）
func AuthenticateTeacher() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := authenticate(c)
		if claims == nil {
			return
		}

		if claims.Role != "teacher" && claims.Role != "admin" {
			response.Fail(c, code.ErrPermissionDenied)
			c.Abort()
			return
		}

		c.Next()
	}
}
