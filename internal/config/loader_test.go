package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_EXPAND_KEY", "actual")

	// 已定义的变量取环境值
	assert.Equal(t, "actual", expandEnv("${TEST_EXPAND_KEY}"))
	assert.Equal(t, "actual", expandEnv("${TEST_EXPAND_KEY:fallback}"))

	// 未定义但有默认值
	assert.Equal(t, "fallback", expandEnv("${TEST_UNDEFINED_KEY:fallback}"))
	assert.Equal(t, "", expandEnv("${TEST_UNDEFINED_KEY:}"))

	// 未定义且无默认值时原样保留
	assert.Equal(t, "${TEST_UNDEFINED_KEY}", expandEnv("${TEST_UNDEFINED_KEY}"))

	// 混合文本
	assert.Equal(t, "prefix-actual-suffix", expandEnv("prefix-${TEST_EXPAND_KEY}-suffix"))
}

func TestLoadAppliesDefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte(`
app:
  name: exam-article-api
server:
  http:
    port: 9999
llm:
  default_provider: gemini
  providers:
    gemini:
      api_key: ${TEST_GEMINI_KEY:}
      model: gemini-2.5-flash
`), 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	t.Setenv("TEST_GEMINI_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	// 文件中的显式值
	assert.Equal(t, 9999, cfg.Server.HTTP.Port)
	assert.Equal(t, "gemini", cfg.LLM.DefaultProvider)
	assert.Equal(t, "secret", cfg.LLM.Providers["gemini"].APIKey)

	// 未配置项回落默认值
	assert.Equal(t, 30*time.Second, cfg.LLM.GenerationTimeout)
	assert.Equal(t, int64(8), cfg.LLM.MaxConcurrent)
	assert.Equal(t, 2000, cfg.LLM.MaxArticleLength)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, "configs/exam_types.json", cfg.Exam.ConfigPath)
	assert.Equal(t, "/metrics", cfg.Observability.Metrics.Path)
	assert.False(t, cfg.Cache.Redis.Enabled)
}

func TestLoadMissingBaseConfigFails(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	_, err = Load()
	require.Error(t, err)
}
