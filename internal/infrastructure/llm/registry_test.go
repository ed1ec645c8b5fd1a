package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exam-article-api/internal/config"
)

func TestNewRegistrySkipsProvidersWithoutCredentials(t *testing.T) {
	registry, err := NewRegistry(context.Background(), &config.LLMConfig{
		DefaultProvider: "openai",
		Providers: map[string]config.ProviderConfig{
			"openai": {}, // 无 API key
			"mock":   {},
		},
		Retry: config.RetryConfig{MaxAttempts: 1, InitialWait: time.Millisecond, Multiplier: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, registry.Len())
	assert.Equal(t, []string{"mock"}, registry.Names())

	_, ok := registry.Get("openai")
	assert.False(t, ok)
}

func TestNewRegistryUnknownProviderSkipped(t *testing.T) {
	registry, err := NewRegistry(context.Background(), &config.LLMConfig{
		DefaultProvider: "mock",
		Providers: map[string]config.ProviderConfig{
			"mock":    {},
			"unknown": {APIKey: "key"},
		},
		Retry: config.RetryConfig{MaxAttempts: 1, InitialWait: time.Millisecond, Multiplier: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"mock"}, registry.Names())
}

func TestRegistryFromProviders(t *testing.T) {
	registry := NewRegistryFromProviders("beta",
		NewNamedMockProvider("beta", MockResponse{Content: "b"}),
		NewNamedMockProvider("alpha", MockResponse{Content: "a"}),
	)

	// 名称按字典序
	assert.Equal(t, []string{"alpha", "beta"}, registry.Names())
	assert.Equal(t, "beta", registry.DefaultName())
	assert.Equal(t, 2, registry.Len())

	p, ok := registry.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "alpha", p.Name())
}

func TestVendorLabel(t *testing.T) {
	assert.Equal(t, "OpenAI", VendorLabel("openai"))
	assert.Equal(t, "Google", VendorLabel("gemini"))
	assert.Equal(t, "Mock", VendorLabel("mock"))
	assert.Equal(t, "custom", VendorLabel("custom"))
}
