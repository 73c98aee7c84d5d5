package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/woyaochigaga/SQL-server/internal/error/code"
)

// 响应体沿用前端既有的扁平JSON约定：
// 成功时直接返回数据对象，失败时返回 {message: "..."}

// Success 成功响应，原样输出数据
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message 成功响应（仅消息）
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Created 创建成功响应
func Created(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, gin.H{"message": message})
}

// Fail 失败响应，状态码和消息由错误码映射决定
func Fail(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), gin.H{"message": code.GetMessage(errorCode)})
}

// FailWithMessage 失败响应（自定义消息）
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), gin.H{"message": message})
}

// ParamError 参数错误响应
func ParamError(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrValidation)
	}
	FailWithMessage(c, code.ErrValidation, message)
}

// ServerError 服务器错误响应，不向调用方泄露内部细节
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown)
}
