package llm

import (
	"context"
	"sync"
	"time"
)

// MockResponse MockProvider 的一条预置响应
type MockResponse struct {
	Content string
	Usage   Usage
	Err     error
	// Delay 返回前的模拟耗时，用于超时类测试
	Delay time.Duration
}

// MockProvider 确定性的测试用 Provider
//
// 按 FIFO 顺序返回预置响应并记录所有请求。
type MockProvider struct {
	mu        sync.Mutex
	name      string
	responses []MockResponse
	Calls     []Request
}

// NewMockProvider 创建带预置响应的 MockProvider
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{name: "mock", responses: responses}
}

// NewNamedMockProvider 创建指定名称的 MockProvider
func NewNamedMockProvider(name string, responses ...MockResponse) *MockProvider {
	return &MockProvider{name: name, responses: responses}
}

func (m *MockProvider) Complete(ctx context.Context, req Request) (*Result, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)

	var resp MockResponse
	if len(m.responses) > 0 {
		resp = m.responses[0]
		m.responses = m.responses[1:]
	}
	m.mu.Unlock()

	if resp.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(resp.Delay):
		}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Result{
		Content:  resp.Content,
		Usage:    resp.Usage,
		Model:    "mock-model",
		Provider: m.name,
		Latency:  resp.Delay,
	}, nil
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) ModelID() string {
	return "mock-model"
}

// AddResponse 追加一条预置响应
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount 返回 Complete 被调用的次数
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
