package llm

import (
	"context"
	"fmt"
	"sort"

	"exam-article-api/internal/config"
	"exam-article-api/pkg/logger"
)

// Registry 提供商注册表
//
// 启动时根据可用凭证构建一次，之后只读。
// 不在表内的提供商即为"不可用"，包括默认提供商。
type Registry struct {
	providers   map[string]Provider
	names       []string
	defaultName string
}

// NewRegistry 根据 LLM 配置构建提供商注册表
//
// 缺少凭证的提供商跳过并告警，不视为致命；注册表为空时由
// 服务层在请求时返回 NoProvidersConfigured。
func NewRegistry(ctx context.Context, cfg *config.LLMConfig) (*Registry, error) {
	providers := make(map[string]Provider, len(cfg.Providers))

	names := make([]string, 0, len(cfg.Providers))
	for name := range cfg.Providers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		pc := cfg.Providers[name]

		base, err := newProvider(ctx, name, pc)
		if err != nil {
			logger.Warn(ctx, "skipping llm provider", "provider", name, "reason", err.Error())
			continue
		}

		providers[name] = WithRetry(base, RetryConfig{
			MaxAttempts: cfg.Retry.MaxAttempts,
			InitialWait: cfg.Retry.InitialWait,
			Multiplier:  cfg.Retry.Multiplier,
		})
	}

	available := make([]string, 0, len(providers))
	for _, name := range names {
		if _, ok := providers[name]; ok {
			available = append(available, name)
		}
	}

	return &Registry{
		providers:   providers,
		names:       available,
		defaultName: cfg.DefaultProvider,
	}, nil
}

// newProvider 按名称构建具体适配器
func newProvider(ctx context.Context, name string, pc config.ProviderConfig) (Provider, error) {
	switch name {
	case "openai":
		return NewOpenAIProvider(pc.APIKey, pc.BaseURL, pc.Model)
	case "gemini":
		return NewGeminiProvider(ctx, pc.APIKey, pc.Model)
	case "mock":
		return NewMockProvider(MockResponse{Content: "mock article"}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", name)
	}
}

// NewRegistryFromProviders 直接从现成 Provider 构建注册表，供测试注入
func NewRegistryFromProviders(defaultName string, providers ...Provider) *Registry {
	m := make(map[string]Provider, len(providers))
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
		names = append(names, p.Name())
	}
	sort.Strings(names)
	return &Registry{
		providers:   m,
		names:       names,
		defaultName: defaultName,
	}
}

// Get 按名称获取提供商
func (r *Registry) Get(name string) (Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// Names 返回可用提供商名称（按字典序）
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// DefaultName 返回配置的默认提供商名称
func (r *Registry) DefaultName() string {
	return r.defaultName
}

// Len 返回可用提供商数量
func (r *Registry) Len() int {
	return len(r.providers)
}

// VendorLabel 返回提供商的厂商展示名
func VendorLabel(name string) string {
	switch name {
	case "openai":
		return "OpenAI"
	case "gemini":
		return "Google"
	case "mock":
		return "Mock"
	default:
		return name
	}
}
