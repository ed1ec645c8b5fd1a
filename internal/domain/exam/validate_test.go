package exam

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exam-article-api/pkg/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStoreFromConfigs(map[string]TypeConfig{
		"TOEIC": {
			Name:                  "TOEIC",
			FullName:              "Test of English for International Communication",
			SupportedDifficulties: []string{"初級", "中級", "高級"},
			DefaultWordCount:      map[string]int{"初級": 150, "中級": 200, "高級": 300},
			FallbackDifficulty:    "中級",
			ValidationRules: Rules{
				TopicMinLength: 3,
				TopicMaxLength: 100,
				WordCountMin:   50,
				WordCountMax:   1500,
			},
			WritingStyles: []string{"formal", "informal", "business"},
		},
		"GRE": {
			Name:                  "GRE",
			FullName:              "Graduate Record Examinations",
			SupportedDifficulties: []string{"130分", "150分", "170分"},
			DefaultWordCount:      map[string]int{"150分": 300},
			ValidationRules: Rules{
				TopicMinLength: 3,
				TopicMaxLength: 100,
				WordCountMin:   100,
				WordCountMax:   1500,
			},
			WritingStyles: []string{"academic", "analytical"},
		},
	})
	require.NoError(t, err)
	return store
}

func TestValidateExamType(t *testing.T) {
	store := newTestStore(t)

	got, err := ValidateExamType(store, "TOEIC")
	require.NoError(t, err)
	assert.Equal(t, "TOEIC", got)

	// 大小写与空白归一化
	got, err = ValidateExamType(store, "  toeic ")
	require.NoError(t, err)
	assert.Equal(t, "TOEIC", got)

	_, err = ValidateExamType(store, "TOEFL")
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnsupportedExamType, errors.AsAppError(err).Code)
}

func TestValidateTopic(t *testing.T) {
	store := newTestStore(t)

	got, err := ValidateTopic(store, "TOEIC", "  Business Meetings  ")
	require.NoError(t, err)
	assert.Equal(t, "Business Meetings", got)

	// 长度按 rune 计，中文主题不会被字节数误判
	got, err = ValidateTopic(store, "TOEIC", "環境保護")
	require.NoError(t, err)
	assert.Equal(t, "環境保護", got)

	_, err = ValidateTopic(store, "TOEIC", "AI")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidTopic, errors.AsAppError(err).Code)

	_, err = ValidateTopic(store, "TOEIC", strings.Repeat("a", 101))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidTopic, errors.AsAppError(err).Code)
}

func TestValidateDifficulty(t *testing.T) {
	store := newTestStore(t)

	got, err := ValidateDifficulty(store, "TOEIC", "中級")
	require.NoError(t, err)
	assert.Equal(t, "中級", got)

	_, err = ValidateDifficulty(store, "TOEIC", "超級")
	require.Error(t, err)

	appErr := errors.AsAppError(err)
	assert.Equal(t, errors.CodeInvalidDifficulty, appErr.Code)
	assert.Equal(t, []string{"初級", "中級", "高級"}, appErr.Details["supported_difficulties"])

	// 难度档位是考试专属的
	_, err = ValidateDifficulty(store, "GRE", "中級")
	require.Error(t, err)

	got, err = ValidateDifficulty(store, "GRE", "150分")
	require.NoError(t, err)
	assert.Equal(t, "150分", got)
}

func TestValidateWordCountExplicit(t *testing.T) {
	store := newTestStore(t)

	wc := 500
	got, err := ValidateWordCount(store, "TOEIC", "中級", &wc)
	require.NoError(t, err)
	assert.Equal(t, 500, got)

	low := 10
	_, err = ValidateWordCount(store, "TOEIC", "中級", &low)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidWordCount, errors.AsAppError(err).Code)

	high := 2000
	_, err = ValidateWordCount(store, "TOEIC", "中級", &high)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidWordCount, errors.AsAppError(err).Code)
}

func TestValidateWordCountDefaults(t *testing.T) {
	store := newTestStore(t)

	// 难度自身的默认值
	got, err := ValidateWordCount(store, "TOEIC", "高級", nil)
	require.NoError(t, err)
	assert.Equal(t, 300, got)

	got, err = ValidateWordCount(store, "TOEIC", "中級", nil)
	require.NoError(t, err)
	assert.Equal(t, 200, got)

	// GRE 没有 fallback_difficulty，取第一个有默认值的档位
	got, err = ValidateWordCount(store, "GRE", "130分", nil)
	require.NoError(t, err)
	assert.Equal(t, 300, got)
}

func TestValidateParagraphCount(t *testing.T) {
	got, err := ValidateParagraphCount(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultParagraphCount, got)

	five := 5
	got, err = ValidateParagraphCount(&five)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	zero := 0
	_, err = ValidateParagraphCount(&zero)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidParagraphCount, errors.AsAppError(err).Code)

	fifteen := 15
	_, err = ValidateParagraphCount(&fifteen)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidParagraphCount, errors.AsAppError(err).Code)
}

func TestValidateStyle(t *testing.T) {
	store := newTestStore(t)

	// 空风格始终合法
	got, err := ValidateStyle(store, "TOEIC", "")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = ValidateStyle(store, "TOEIC", "business")
	require.NoError(t, err)
	assert.Equal(t, "business", got)

	_, err = ValidateStyle(store, "TOEIC", "poetic")
	require.Error(t, err)

	appErr := errors.AsAppError(err)
	assert.Equal(t, errors.CodeInvalidStyle, appErr.Code)
	assert.Equal(t, []string{"formal", "informal", "business"}, appErr.Details["supported_styles"])
}
