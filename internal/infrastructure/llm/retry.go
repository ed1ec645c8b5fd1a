package llm

import (
	"context"
	"math"
	"time"
)

// RetryConfig 重试退避配置
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	Multiplier  float64
}

// DefaultRetryConfig 默认重试策略：3 次尝试，1s 起步，倍率 2
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Second,
		Multiplier:  2.0,
	}
}

// RetryProvider 以指数退避重试包装任意 Provider 的装饰器
//
// 重试对所有错误类型一视同仁（context 取消除外）；
// 耗尽尝试次数后返回最后一次的原始错误，不再包装。
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry 用重试策略包装 Provider
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.Multiplier <= 0 {
		cfg.Multiplier = 1
	}
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Complete(ctx context.Context, req Request) (*Result, error) {
	var lastErr error

	for attempt := 0; attempt < r.config.MaxAttempts; attempt++ {
		result, err := r.inner.Complete(ctx, req)
		if err == nil {
			return result, nil
		}
		lastErr = err

		// 外层超时/取消优先于重试循环
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		// 最后一次失败直接返回，不再等待
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) Name() string {
	return r.inner.Name()
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// backoff 计算第 attempt 次失败后的等待时长 (1, 2, 4, ...)
func (r *RetryProvider) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	return time.Duration(wait)
}
