package utils

import (
	"github.com/gin-gonic/gin"
)

// Response 统一 API 响应结构
// 成功时携带 data，失败时携带 message
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Success 返回成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Status: "success",
		Data:   data,
	})
}

// SuccessWithMessage 返回成功响应并自定义消息
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(200, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Error 返回错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Status:  "error",
		Message: message,
	})
}

// BadRequest 返回400错误
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// Unauthorized 返回401错误
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "未登录"
	}
	Error(c, 401, message)
}

// Forbidden 返回403错误
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "无权访问"
	}
	Error(c, 403, message)
}

// NotFound 返回404错误
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "资源不存在"
	}
	Error(c, 404, message)
}

// InternalServerError 返回500错误
// 不向客户端透出内部错误详情，细节只打日志
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "服务器内部错误"
	}
	Error(c, 500, message)
}
