package article

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt(t *testing.T) {
	b := NewTemplateBuilder()
	pair := b.Build(TemplateInput{
		ExamType:       "TOEIC",
		Topic:          "Business Meetings",
		Difficulty:     "中級",
		WordCount:      200,
		ParagraphCount: 3,
	})

	assert.Contains(t, pair.System, "Generate a TOEIC reading passage about Business Meetings of approximately 200 words")
	assert.Contains(t, pair.System, "targeted at a difficulty level of 中級")
	assert.Contains(t, pair.System, "Structure the text into 3 clear paragraphs")
	assert.Contains(t, pair.System, "TOEIC Part VII")
	assert.Contains(t, pair.System, "Realistic scenarios related to Business Meetings")
	assert.NotContains(t, pair.System, "寫作風格")
}

func TestBuildUserPrompt(t *testing.T) {
	b := NewTemplateBuilder()
	pair := b.Build(TemplateInput{
		ExamType:       "GRE",
		Topic:          "Philosophy",
		Difficulty:     "150分",
		WordCount:      300,
		ParagraphCount: 4,
	})

	assert.Contains(t, pair.User, "請生成一篇關於「Philosophy」的 GRE 考試文章。")
	assert.True(t, strings.HasSuffix(pair.User, "請直接輸出文章內容，不需要標題或額外說明。"))
	assert.NotContains(t, pair.User, "請特別關注以下要點")
}

func TestBuildWithStyle(t *testing.T) {
	b := NewTemplateBuilder()
	pair := b.Build(TemplateInput{
		ExamType:       "TOEIC",
		Topic:          "Marketing",
		Difficulty:     "高級",
		WordCount:      300,
		ParagraphCount: 3,
		Style:          "business",
	})

	assert.Contains(t, pair.System, "- 寫作風格：business")
}

func TestBuildWithFocusPoints(t *testing.T) {
	b := NewTemplateBuilder()
	pair := b.Build(TemplateInput{
		ExamType:       "IELTS",
		Topic:          "Environment",
		Difficulty:     "Band 6-7",
		WordCount:      300,
		ParagraphCount: 3,
		FocusPoints:    []string{"氣候變遷", "再生能源"},
	})

	assert.Contains(t, pair.User, "請特別關注以下要點：氣候變遷、再生能源")
}

func TestBuildDeterministic(t *testing.T) {
	b := NewTemplateBuilder()
	in := TemplateInput{
		ExamType:       "SAT",
		Topic:          "U.S. History",
		Difficulty:     "1000分",
		WordCount:      300,
		ParagraphCount: 5,
		Style:          "informational",
		FocusPoints:    []string{"civil rights", "reconstruction"},
	}

	first := b.Build(in)
	second := b.Build(in)

	// 相同输入必须产生字节级相同的提示词
	assert.Equal(t, first.System, second.System)
	assert.Equal(t, first.User, second.User)
}

func TestBuildUnknownExamTypeOmitsInstructionBlocks(t *testing.T) {
	b := NewTemplateBuilder()
	pair := b.Build(TemplateInput{
		ExamType:       "HSK",
		Topic:          "Daily Life",
		Difficulty:     "初級",
		WordCount:      150,
		ParagraphCount: 2,
	})

	// 没有专属指令时骨架仍然完整
	assert.Contains(t, pair.System, "Generate a HSK reading passage about Daily Life")
	assert.Contains(t, pair.System, "The article should include:")
}
