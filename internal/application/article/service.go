package article

import (
	"context"
	goerrors "errors"
	"strings"
	"time"

	"exam-article-api/internal/domain/exam"
	"exam-article-api/internal/infrastructure/llm"
	"exam-article-api/pkg/errors"
	"exam-article-api/pkg/logger"
	"exam-article-api/pkg/metrics"
)

// defaultTemperature 补全调用的默认采样温度
const defaultTemperature = 0.7

// GenerateInput 文章生成的输入参数，均已通过校验
type GenerateInput struct {
	ExamType       string
	Topic          string
	Difficulty     string
	WordCount      int
	ParagraphCount int
	Style          string
	FocusPoints    []string
	Provider       string
}

// GenerationResult 一次成功生成的完整结果
type GenerationResult struct {
	Article         string
	ExamType        string
	ExamFullName    string
	Topic           string
	Difficulty      string
	RequestedWords  int
	ActualWords     int
	ParagraphCount  int
	Style           string
	FocusPoints     []string
	Provider        string
	Model           string
	Usage           llm.Usage
	Latency         time.Duration
}

// Service 封装供应商选择、超时与补全策略
type Service struct {
	registry     *llm.Registry
	builder      *TemplateBuilder
	store        *exam.Store
	timeout      time.Duration
	maxTokensCap int
}

// NewService 创建生成服务
func NewService(registry *llm.Registry, builder *TemplateBuilder, store *exam.Store, timeout time.Duration, maxTokensCap int) *Service {
	return &Service{
		registry:     registry,
		builder:      builder,
		store:        store,
		timeout:      timeout,
		maxTokensCap: maxTokensCap,
	}
}

// SelectProvider 按名称解析供应商，空名称回落到默认供应商
func (s *Service) SelectProvider(name string) (llm.Provider, error) {
	if s.registry.Len() == 0 {
		return nil, errors.NewNoProvidersConfigured()
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = s.registry.DefaultName()
	}
	p, ok := s.registry.Get(name)
	if !ok {
		return nil, errors.NewProviderUnavailable(name, s.registry.Names())
	}
	return p, nil
}

// CompleteWithPolicy 带整体超时执行一次补全调用
//
// 超时覆盖整个调用，包括重试装饰器内的全部尝试。超时后调用方
// 立即收到错误，迟到的结果被丢弃。
func (s *Service) CompleteWithPolicy(ctx context.Context, pair PromptPair, maxTokens int, temperature float64, providerName string) (*llm.Result, error) {
	provider, err := s.SelectProvider(providerName)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithContext(ctx, logger.ProviderKey, provider.Name())

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: pair.System},
			{Role: llm.RoleUser, Content: pair.User},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type outcome struct {
		res *llm.Result
		err error
	}
	// 缓冲通道保证超时后 goroutine 仍能退出
	ch := make(chan outcome, 1)
	start := time.Now()
	go func() {
		res, err := provider.Complete(callCtx, req)
		ch <- outcome{res: res, err: err}
	}()

	var out outcome
	select {
	case <-callCtx.Done():
		if goerrors.Is(callCtx.Err(), context.DeadlineExceeded) {
			s.recordCall(provider, "timeout", time.Since(start))
			return nil, errors.NewGenerationTimeout(int(s.timeout.Seconds()))
		}
		return nil, callCtx.Err()
	case out = <-ch:
	}

	if out.err != nil {
		if goerrors.Is(out.err, context.DeadlineExceeded) {
			s.recordCall(provider, "timeout", time.Since(start))
			return nil, errors.NewGenerationTimeout(int(s.timeout.Seconds()))
		}
		s.recordCall(provider, "error", time.Since(start))
		return nil, out.err
	}

	if strings.TrimSpace(out.res.Content) == "" {
		s.recordCall(provider, "empty", time.Since(start))
		logger.Warn(ctx, "provider returned empty completion", "provider", provider.Name())
		return nil, errors.NewEmptyCompletion(provider.Name())
	}

	s.recordCall(provider, "success", time.Since(start))
	metrics.LLMTokensUsed.WithLabelValues(provider.Name(), provider.ModelID(), "prompt").Add(float64(out.res.Usage.PromptTokens))
	metrics.LLMTokensUsed.WithLabelValues(provider.Name(), provider.ModelID(), "completion").Add(float64(out.res.Usage.CompletionTokens))

	return out.res, nil
}

func (s *Service) recordCall(p llm.Provider, status string, elapsed time.Duration) {
	metrics.LLMCallTotal.WithLabelValues(p.Name(), p.ModelID(), status).Inc()
	metrics.LLMCallDuration.WithLabelValues(p.Name(), p.ModelID()).Observe(elapsed.Seconds())
}

// GenerateArticle 构建提示词并调用补全，返回带考试元数据的结果
func (s *Service) GenerateArticle(ctx context.Context, in *GenerateInput) (*GenerationResult, error) {
	cfg, err := s.store.Get(in.ExamType)
	if err != nil {
		return nil, err
	}

	pair := s.builder.Build(TemplateInput{
		ExamType:       in.ExamType,
		Topic:          in.Topic,
		Difficulty:     in.Difficulty,
		WordCount:      in.WordCount,
		ParagraphCount: in.ParagraphCount,
		Style:          in.Style,
		FocusPoints:    in.FocusPoints,
	})

	maxTokens := in.WordCount * 2
	if maxTokens <= 0 {
		maxTokens = s.maxTokensCap
	}

	res, err := s.CompleteWithPolicy(ctx, pair, maxTokens, defaultTemperature, in.Provider)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(res.Content)

	return &GenerationResult{
		Article:        content,
		ExamType:       in.ExamType,
		ExamFullName:   cfg.FullName,
		Topic:          in.Topic,
		Difficulty:     in.Difficulty,
		RequestedWords: in.WordCount,
		ActualWords:    len(strings.Fields(content)),
		ParagraphCount: in.ParagraphCount,
		Style:          in.Style,
		FocusPoints:    in.FocusPoints,
		Provider:       res.Provider,
		Model:          res.Model,
		Usage:          res.Usage,
		Latency:        res.Latency,
	}, nil
}
