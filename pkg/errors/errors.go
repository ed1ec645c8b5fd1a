// Package errors 提供统一的错误定义
package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode 错误码类型
type ErrorCode string

// 预定义错误码
const (
	// 通用错误 (1xxx)
	CodeSuccess       ErrorCode = "0"
	CodeUnknown       ErrorCode = "1000"
	CodeInvalidParam  ErrorCode = "1001"
	CodeConfiguration ErrorCode = "1002"
	CodeInternalError ErrorCode = "1007"

	// 参数校验错误 (3xxx)
	CodeUnsupportedExamType   ErrorCode = "3001"
	CodeInvalidTopic          ErrorCode = "3002"
	CodeInvalidDifficulty     ErrorCode = "3003"
	CodeInvalidWordCount      ErrorCode = "3004"
	CodeInvalidParagraphCount ErrorCode = "3005"
	CodeInvalidStyle          ErrorCode = "3006"

	// 生成业务错误 (4xxx)
	CodeGenerationFailed  ErrorCode = "4001"
	CodeEmptyCompletion   ErrorCode = "4002"
	CodeGenerationTimeout ErrorCode = "4003"

	// 提供商错误 (5xxx)
	CodeProviderUnavailable   ErrorCode = "5001"
	CodeNoProvidersConfigured ErrorCode = "5002"
	CodeProviderCallFailed    ErrorCode = "5003"
)

// AppError 应用错误
//
// Message 是面向日志的内部诊断信息，UserMessage 是返回给客户端的文案，
// 两者始终分离；API 响应只暴露 UserMessage 和 Details。
type AppError struct {
	Code        ErrorCode      `json:"error_code"`
	Message     string         `json:"-"`
	UserMessage string         `json:"message"`
	Details     map[string]any `json:"details,omitempty"`
	HTTPStatus  int            `json:"-"`
	Err         error          `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails 添加详细信息
func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

// WithError 添加底层错误
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// New 创建新的应用错误
func New(code ErrorCode, message, userMessage string) *AppError {
	return &AppError{
		Code:        code,
		Message:     message,
		UserMessage: userMessage,
		HTTPStatus:  codeToHTTPStatus(code),
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message, userMessage string) *AppError {
	return &AppError{
		Code:        code,
		Message:     message,
		UserMessage: userMessage,
		HTTPStatus:  codeToHTTPStatus(code),
		Err:         err,
	}
}

// codeToHTTPStatus 错误码转 HTTP 状态码
func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParam, CodeUnsupportedExamType, CodeProviderUnavailable:
		return http.StatusBadRequest
	case CodeInvalidTopic, CodeInvalidDifficulty, CodeInvalidWordCount,
		CodeInvalidParagraphCount, CodeInvalidStyle:
		return http.StatusUnprocessableEntity
	case CodeGenerationTimeout:
		return http.StatusRequestTimeout
	case CodeNoProvidersConfigured:
		return http.StatusServiceUnavailable
	case CodeProviderCallFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewConfiguration 配置错误，启动阶段致命
func NewConfiguration(message string) *AppError {
	return New(CodeConfiguration, message, "系統配置錯誤，請聯絡管理員")
}

// NewUnsupportedExamType 不支持的考试类型
func NewUnsupportedExamType(provided string, supported []string) *AppError {
	return New(CodeUnsupportedExamType,
		fmt.Sprintf("unsupported exam type: %s", provided),
		fmt.Sprintf("不支援的考試類型 '%s'，支援的類型: %s", provided, strings.Join(supported, ", ")),
	).WithDetails(map[string]any{
		"exam_type":       provided,
		"supported_types": supported,
	})
}

// NewInvalidTopic 主题不合法
func NewInvalidTopic(topic string, length, minLen, maxLen int) *AppError {
	return New(CodeInvalidTopic,
		fmt.Sprintf("topic length %d outside [%d, %d]", length, minLen, maxLen),
		fmt.Sprintf("主題長度 %d 超出範圍，應在 %d-%d 個字符之間", length, minLen, maxLen),
	).WithDetails(map[string]any{
		"topic":      topic,
		"length":     length,
		"min_length": minLen,
		"max_length": maxLen,
	})
}

// NewInvalidDifficulty 难度等级不合法
func NewInvalidDifficulty(examType, provided string, supported []string) *AppError {
	return New(CodeInvalidDifficulty,
		fmt.Sprintf("%s does not support difficulty: %s", examType, provided),
		fmt.Sprintf("'%s' 不支援難度等級 '%s'，支援的難度: %s", examType, provided, strings.Join(supported, ", ")),
	).WithDetails(map[string]any{
		"exam_type":              examType,
		"provided_difficulty":    provided,
		"supported_difficulties": supported,
	})
}

// NewInvalidWordCount 字数超出范围
func NewInvalidWordCount(wordCount, min, max int) *AppError {
	return New(CodeInvalidWordCount,
		fmt.Sprintf("word count %d outside [%d, %d]", wordCount, min, max),
		fmt.Sprintf("字數 %d 超出範圍，應在 %d-%d 字之間", wordCount, min, max),
	).WithDetails(map[string]any{
		"word_count": wordCount,
		"min_count":  min,
		"max_count":  max,
	})
}

// NewInvalidParagraphCount 段落数超出范围
func NewInvalidParagraphCount(count, min, max int) *AppError {
	return New(CodeInvalidParagraphCount,
		fmt.Sprintf("paragraph count %d outside [%d, %d]", count, min, max),
		fmt.Sprintf("段落數 %d 超出範圍，應在 %d-%d 段之間", count, min, max),
	).WithDetails(map[string]any{
		"paragraph_count": count,
		"min_count":       min,
		"max_count":       max,
	})
}

// NewInvalidStyle 写作风格不合法
func NewInvalidStyle(examType, provided string, supported []string) *AppError {
	return New(CodeInvalidStyle,
		fmt.Sprintf("%s does not support style: %s", examType, provided),
		fmt.Sprintf("'%s' 不支援寫作風格 '%s'，支援的風格: %s", examType, provided, strings.Join(supported, ", ")),
	).WithDetails(map[string]any{
		"exam_type":        examType,
		"provided_style":   provided,
		"supported_styles": supported,
	})
}

// NewProviderUnavailable 请求的提供商不可用
func NewProviderUnavailable(requested string, available []string) *AppError {
	return New(CodeProviderUnavailable,
		fmt.Sprintf("llm provider not available: %s", requested),
		fmt.Sprintf("LLM 提供商 '%s' 不可用，可用的提供商: %s", requested, strings.Join(available, ", ")),
	).WithDetails(map[string]any{
		"requested": requested,
		"available": available,
	})
}

// NewNoProvidersConfigured 没有任何可用的提供商
func NewNoProvidersConfigured() *AppError {
	return New(CodeNoProvidersConfigured,
		"no llm providers configured",
		"AI 服務未配置，請聯絡管理員")
}

// NewEmptyCompletion 提供商返回空内容
func NewEmptyCompletion(provider string) *AppError {
	return New(CodeEmptyCompletion,
		fmt.Sprintf("provider %s returned empty content", provider),
		"AI 服務返回空內容，請稍後再試",
	).WithDetails(map[string]any{
		"provider": provider,
	})
}

// NewGenerationTimeout 生成超时
func NewGenerationTimeout(timeoutSeconds int) *AppError {
	return New(CodeGenerationTimeout,
		fmt.Sprintf("article generation timed out after %ds", timeoutSeconds),
		fmt.Sprintf("文章生成超時，請稍後再試 (超時時間: %d 秒)", timeoutSeconds),
	).WithDetails(map[string]any{
		"timeout_seconds": timeoutSeconds,
	})
}

// NewProviderCallFailed 提供商传输层调用失败
func NewProviderCallFailed(provider string, err error) *AppError {
	return Wrap(err, CodeProviderCallFailed,
		fmt.Sprintf("provider %s call failed", provider),
		"AI 服務暫時無法使用，請稍後再試",
	).WithDetails(map[string]any{
		"provider": provider,
	})
}

// NewGenerationFailed 编排层兜底错误
func NewGenerationFailed(err error) *AppError {
	return Wrap(err, CodeGenerationFailed,
		"article generation failed",
		"文章生成失敗，請稍後再試")
}

// IsAppError 检查是否为 AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// AsAppError 将错误转换为 AppError
func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Wrap(err, CodeUnknown, "unknown error", "發生未預期的錯誤，請稍後再試")
}
