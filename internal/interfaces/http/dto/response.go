// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"net/http"
	"time"

	"exam-article-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误响应结构
type ErrorResponse struct {
	Success   bool             `json:"success"`
	ErrorCode errors.ErrorCode `json:"error_code"`
	Message   string           `json:"message"`
	Details   map[string]any   `json:"details,omitempty"`
	TraceID   string           `json:"trace_id,omitempty"`
	Timestamp string           `json:"timestamp"`
}

// Fail 按错误类型写出错误响应
//
// AppError 按自身映射的 HTTP 状态码与使用者讯息返回，
// 其余错误一律视为内部错误。
func Fail(c *gin.Context, err error) {
	appErr := errors.AsAppError(err)
	c.JSON(appErr.HTTPStatus, ErrorResponse{
		Success:   false,
		ErrorCode: appErr.Code,
		Message:   appErr.UserMessage,
		Details:   appErr.Details,
		TraceID:   c.GetString("trace_id"),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// FailBinding 请求体解析失败的错误响应
func FailBinding(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Success:   false,
		ErrorCode: errors.CodeInvalidParam,
		Message:   "請求參數格式錯誤",
		Details:   map[string]any{"error": err.Error()},
		TraceID:   c.GetString("trace_id"),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
