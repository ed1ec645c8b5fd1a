// Package llm 提供统一的 LLM 提供商抽象及具体适配器
package llm

import (
	"context"
	"time"
)

// Role 消息角色
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message 单条带角色标记的消息
type Message struct {
	Role    Role
	Content string
}

// Request 一次补全调用的输入
type Request struct {
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Usage 单次调用的 token 消耗
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Result 归一化后的补全输出
//
// Content 为空不是适配器层错误：传输成功但内容为空时原样返回，
// 由上层服务判定为 EmptyCompletion。
type Result struct {
	Content  string
	Usage    Usage
	Model    string
	Provider string
	Latency  time.Duration
}

// Provider 是 LLM 后端的统一契约
//
// 适配器只负责把角色消息序列翻译成厂商请求并归一化响应；
// 重试、超时与空内容判定都在上层完成。
type Provider interface {
	// Complete 发送消息序列并返回归一化结果。
	// 传输层失败以 CodeProviderCallFailed 包装返回。
	Complete(ctx context.Context, req Request) (*Result, error)

	// Name 返回提供商标识（注册表键）
	Name() string

	// ModelID 返回该提供商配置使用的模型标识
	ModelID() string
}
