package exam

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exam-article-api/pkg/errors"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exam_types.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `{
  "exam_types": {
    "TOEIC": {
      "name": "TOEIC",
      "full_name": "Test of English for International Communication",
      "description": "workplace English",
      "supported_difficulties": ["初級", "中級", "高級"],
      "default_word_count": {"初級": 150, "中級": 200, "高級": 300},
      "fallback_difficulty": "中級",
      "validation_rules": {
        "topic_min_length": 3,
        "topic_max_length": 100,
        "word_count_min": 50,
        "word_count_max": 1500
      },
      "writing_styles": ["formal", "informal", "business"],
      "common_topics": ["Business Meetings"]
    },
    "GRE": {
      "name": "GRE",
      "full_name": "Graduate Record Examinations",
      "description": "graduate school admission",
      "supported_difficulties": ["130分", "150分", "170分"],
      "default_word_count": {"150分": 300},
      "fallback_difficulty": "150分",
      "validation_rules": {
        "topic_min_length": 3,
        "topic_max_length": 100,
        "word_count_min": 100,
        "word_count_max": 1500
      },
      "writing_styles": ["academic"],
      "common_topics": ["Philosophy"]
    }
  }
}`

func TestLoadStore(t *testing.T) {
	store, err := LoadStore(writeConfigFile(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"GRE", "TOEIC"}, store.SupportedTypes())
	assert.True(t, store.Has("TOEIC"))
	assert.False(t, store.Has("TOEFL"))

	cfg, err := store.Get("TOEIC")
	require.NoError(t, err)
	assert.Equal(t, "Test of English for International Communication", cfg.FullName)
	assert.Equal(t, 200, cfg.DefaultWordCount["中級"])
	assert.Equal(t, "中級", cfg.FallbackDifficulty)
}

func TestLoadStoreFileNotFound(t *testing.T) {
	_, err := LoadStore(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	appErr := errors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.CodeConfiguration, appErr.Code)
}

func TestLoadStoreMalformedJSON(t *testing.T) {
	_, err := LoadStore(writeConfigFile(t, `{"exam_types": `))
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfiguration, errors.AsAppError(err).Code)
}

func TestLoadStoreEmpty(t *testing.T) {
	_, err := LoadStore(writeConfigFile(t, `{"exam_types": {}}`))
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfiguration, errors.AsAppError(err).Code)
}

func TestLoadStoreRejectsUnknownDefaultWordCountKey(t *testing.T) {
	_, err := LoadStore(writeConfigFile(t, `{
  "exam_types": {
    "TOEIC": {
      "name": "TOEIC",
      "supported_difficulties": ["初級"],
      "default_word_count": {"超級": 500},
      "validation_rules": {
        "topic_min_length": 3, "topic_max_length": 100,
        "word_count_min": 50, "word_count_max": 1500
      }
    }
  }
}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_word_count")
}

func TestLoadStoreRejectsUnknownFallbackDifficulty(t *testing.T) {
	_, err := LoadStore(writeConfigFile(t, `{
  "exam_types": {
    "TOEIC": {
      "name": "TOEIC",
      "supported_difficulties": ["初級"],
      "default_word_count": {"初級": 150},
      "fallback_difficulty": "中級",
      "validation_rules": {
        "topic_min_length": 3, "topic_max_length": 100,
        "word_count_min": 50, "word_count_max": 1500
      }
    }
  }
}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fallback_difficulty")
}

func TestLoadStoreRejectsInvalidBounds(t *testing.T) {
	_, err := LoadStore(writeConfigFile(t, `{
  "exam_types": {
    "TOEIC": {
      "name": "TOEIC",
      "supported_difficulties": ["初級"],
      "validation_rules": {
        "topic_min_length": 10, "topic_max_length": 3,
        "word_count_min": 50, "word_count_max": 1500
      }
    }
  }
}`))
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfiguration, errors.AsAppError(err).Code)
}

func TestStoreGetUnknownType(t *testing.T) {
	store, err := LoadStore(writeConfigFile(t, validConfig))
	require.NoError(t, err)

	_, err = store.Get("TOEFL")
	require.Error(t, err)

	appErr := errors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.CodeUnsupportedExamType, appErr.Code)
	assert.Equal(t, []string{"GRE", "TOEIC"}, appErr.Details["supported_types"])
}
