package article

import (
	"context"
	"strings"
	"time"

	"exam-article-api/internal/domain/exam"
	"exam-article-api/pkg/errors"
	"exam-article-api/pkg/logger"
	"exam-article-api/pkg/metrics"
)

// GenerateRequest 外部传入的原始生成请求，字段尚未校验
type GenerateRequest struct {
	ExamType       string
	Topic          string
	Difficulty     string
	WordCount      *int
	ParagraphCount *int
	Style          string
	FocusPoints    []string
	Provider       string
}

// Orchestrator 串联校验、提示词构建与补全调用
type Orchestrator struct {
	store   *exam.Store
	service *Service
}

// NewOrchestrator 创建编排器
func NewOrchestrator(store *exam.Store, service *Service) *Orchestrator {
	return &Orchestrator{
		store:   store,
		service: service,
	}
}

// Generate 执行完整的生成流程
//
// 校验按固定顺序执行：考试类型、主题、难度、字数、段落数、风格。
// 任一校验失败立即返回，不会触达任何供应商。
func (o *Orchestrator) Generate(ctx context.Context, req *GenerateRequest) (*GenerationResult, error) {
	examType, err := exam.ValidateExamType(o.store, req.ExamType)
	if err != nil {
		return nil, err
	}
	topic, err := exam.ValidateTopic(o.store, examType, req.Topic)
	if err != nil {
		return nil, err
	}
	difficulty, err := exam.ValidateDifficulty(o.store, examType, req.Difficulty)
	if err != nil {
		return nil, err
	}
	wordCount, err := exam.ValidateWordCount(o.store, examType, difficulty, req.WordCount)
	if err != nil {
		return nil, err
	}
	paragraphCount, err := exam.ValidateParagraphCount(req.ParagraphCount)
	if err != nil {
		return nil, err
	}
	style, err := exam.ValidateStyle(o.store, examType, req.Style)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithContext(ctx, logger.ExamTypeKey, examType)
	logger.Info(ctx, "article generation started",
		"exam_type", examType,
		"topic", topic,
		"difficulty", difficulty,
		"word_count", wordCount,
	)

	metrics.GenerationInFlight.Inc()
	defer metrics.GenerationInFlight.Dec()
	start := time.Now()

	result, err := o.service.GenerateArticle(ctx, &GenerateInput{
		ExamType:       examType,
		Topic:          topic,
		Difficulty:     difficulty,
		WordCount:      wordCount,
		ParagraphCount: paragraphCount,
		Style:          style,
		FocusPoints:    cleanFocusPoints(req.FocusPoints),
		Provider:       req.Provider,
	})
	if err != nil {
		metrics.ArticleGenerationTotal.WithLabelValues(examType, "error").Inc()
		logger.Error(ctx, "article generation failed", err, "exam_type", examType)
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewGenerationFailed(err)
	}

	elapsed := time.Since(start)
	metrics.ArticleGenerationTotal.WithLabelValues(examType, "success").Inc()
	metrics.ArticleGenerationDuration.WithLabelValues(examType).Observe(elapsed.Seconds())
	metrics.ArticleWordCount.WithLabelValues(examType).Observe(float64(result.ActualWords))

	logger.Info(ctx, "article generation completed",
		"exam_type", examType,
		"provider", result.Provider,
		"actual_words", result.ActualWords,
		"latency_ms", elapsed.Milliseconds(),
	)

	return result, nil
}

// cleanFocusPoints 去除空白项，保持原有顺序
func cleanFocusPoints(points []string) []string {
	if len(points) == 0 {
		return nil
	}
	cleaned := make([]string, 0, len(points))
	for _, p := range points {
		p = strings.TrimSpace(p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}
