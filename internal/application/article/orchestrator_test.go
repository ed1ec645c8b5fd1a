package article

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exam-article-api/internal/infrastructure/llm"
	"exam-article-api/pkg/errors"
)

func newTestOrchestrator(t *testing.T, providers ...llm.Provider) (*Orchestrator, *llm.MockProvider) {
	t.Helper()
	var mock *llm.MockProvider
	if len(providers) == 0 {
		mock = llm.NewNamedMockProvider("mock", llm.MockResponse{
			Content: "A generated passage about the requested topic spanning several paragraphs.",
			Usage:   llm.Usage{PromptTokens: 100, CompletionTokens: 60, TotalTokens: 160},
		})
		providers = []llm.Provider{mock}
	}
	store := newArticleTestStore(t)
	registry := llm.NewRegistryFromProviders("mock", providers...)
	svc := NewService(registry, NewTemplateBuilder(), store, time.Second, 2000)
	return NewOrchestrator(store, svc), mock
}

func TestOrchestratorGenerate(t *testing.T) {
	o, mock := newTestOrchestrator(t)

	res, err := o.Generate(context.Background(), &GenerateRequest{
		ExamType:   "toeic",
		Topic:      "  Business Meetings ",
		Difficulty: "中級",
	})
	require.NoError(t, err)

	// 归一化后的值进入结果
	assert.Equal(t, "TOEIC", res.ExamType)
	assert.Equal(t, "Business Meetings", res.Topic)
	// 字数缺省取难度默认值
	assert.Equal(t, 200, res.RequestedWords)
	assert.Equal(t, 3, res.ParagraphCount)
	assert.Equal(t, 1, mock.CallCount())
}

func TestOrchestratorValidationShortCircuits(t *testing.T) {
	o, mock := newTestOrchestrator(t)

	cases := []struct {
		name string
		req  *GenerateRequest
		code errors.ErrorCode
	}{
		{
			name: "unsupported exam type",
			req:  &GenerateRequest{ExamType: "TOEFL", Topic: "Business", Difficulty: "中級"},
			code: errors.CodeUnsupportedExamType,
		},
		{
			name: "topic too short",
			req:  &GenerateRequest{ExamType: "TOEIC", Topic: "AI", Difficulty: "中級"},
			code: errors.CodeInvalidTopic,
		},
		{
			name: "unknown difficulty",
			req:  &GenerateRequest{ExamType: "TOEIC", Topic: "Business Meetings", Difficulty: "超級"},
			code: errors.CodeInvalidDifficulty,
		},
		{
			name: "word count out of range",
			req: &GenerateRequest{
				ExamType: "TOEIC", Topic: "Business Meetings", Difficulty: "中級",
				WordCount: intPtr(9000),
			},
			code: errors.CodeInvalidWordCount,
		},
		{
			name: "paragraph count out of range",
			req: &GenerateRequest{
				ExamType: "TOEIC", Topic: "Business Meetings", Difficulty: "中級",
				ParagraphCount: intPtr(15),
			},
			code: errors.CodeInvalidParagraphCount,
		},
		{
			name: "unknown style",
			req: &GenerateRequest{
				ExamType: "TOEIC", Topic: "Business Meetings", Difficulty: "中級",
				Style: "poetic",
			},
			code: errors.CodeInvalidStyle,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := o.Generate(context.Background(), tc.req)
			require.Error(t, err)
			assert.Equal(t, tc.code, errors.AsAppError(err).Code)
		})
	}

	// 校验失败的请求不触达供应商
	assert.Equal(t, 0, mock.CallCount())
}

func TestOrchestratorUnknownProviderNoCall(t *testing.T) {
	o, mock := newTestOrchestrator(t)

	_, err := o.Generate(context.Background(), &GenerateRequest{
		ExamType:   "TOEIC",
		Topic:      "Business Meetings",
		Difficulty: "中級",
		Provider:   "vendorX",
	})
	require.Error(t, err)
	assert.Equal(t, errors.CodeProviderUnavailable, errors.AsAppError(err).Code)
	assert.Equal(t, 0, mock.CallCount())
}

func TestOrchestratorCleansFocusPoints(t *testing.T) {
	o, mock := newTestOrchestrator(t)

	res, err := o.Generate(context.Background(), &GenerateRequest{
		ExamType:    "TOEIC",
		Topic:       "Business Meetings",
		Difficulty:  "中級",
		FocusPoints: []string{"  meetings ", "", "  ", "agenda"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"meetings", "agenda"}, res.FocusPoints)
	require.Equal(t, 1, mock.CallCount())
	assert.Contains(t, mock.Calls[0].Messages[1].Content, "meetings、agenda")
}

func TestOrchestratorWrapsUnknownErrors(t *testing.T) {
	mock := llm.NewNamedMockProvider("mock", llm.MockResponse{Err: assert.AnError})
	o, _ := newTestOrchestrator(t, mock)

	_, err := o.Generate(context.Background(), &GenerateRequest{
		ExamType:   "TOEIC",
		Topic:      "Business Meetings",
		Difficulty: "中級",
	})
	require.Error(t, err)

	appErr := errors.AsAppError(err)
	assert.Equal(t, errors.CodeGenerationFailed, appErr.Code)
	assert.ErrorIs(t, err, assert.AnError)
}

func intPtr(n int) *int {
	return &n
}
