package dto

import (
	"time"

	"exam-article-api/internal/application/article"
)

// GenerateArticleRequest 文章生成请求
type GenerateArticleRequest struct {
	ExamType       string   `json:"exam_type" binding:"required"`
	Topic          string   `json:"topic" binding:"required"`
	Difficulty     string   `json:"difficulty" binding:"required"`
	WordCount      *int     `json:"word_count,omitempty"`
	ParagraphCount *int     `json:"paragraph_count,omitempty"`
	Style          string   `json:"style,omitempty"`
	FocusPoints    []string `json:"focus_points,omitempty"`
	Provider       string   `json:"provider,omitempty"`
}

// ToCommand 转换为应用层请求
func (r *GenerateArticleRequest) ToCommand() *article.GenerateRequest {
	return &article.GenerateRequest{
		ExamType:       r.ExamType,
		Topic:          r.Topic,
		Difficulty:     r.Difficulty,
		WordCount:      r.WordCount,
		ParagraphCount: r.ParagraphCount,
		Style:          r.Style,
		FocusPoints:    r.FocusPoints,
		Provider:       r.Provider,
	}
}

// ArticleMetadata 生成文章的考试元数据
type ArticleMetadata struct {
	ExamType       string   `json:"exam_type"`
	ExamFullName   string   `json:"exam_full_name"`
	Topic          string   `json:"topic"`
	Difficulty     string   `json:"difficulty"`
	TargetWords    int      `json:"target_word_count"`
	ActualWords    int      `json:"actual_word_count"`
	ParagraphCount int      `json:"paragraph_count"`
	Style          string   `json:"style,omitempty"`
	FocusPoints    []string `json:"focus_points,omitempty"`
}

// GenerationInfo 本次调用的供应商信息
type GenerationInfo struct {
	Provider         string `json:"provider"`
	Model            string `json:"model"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	TotalTokens      int    `json:"total_tokens"`
	LatencyMs        int64  `json:"latency_ms"`
}

// GenerateArticleResponse 文章生成响应
type GenerateArticleResponse struct {
	Success        bool            `json:"success"`
	Article        string          `json:"article"`
	Metadata       ArticleMetadata `json:"metadata"`
	GenerationInfo GenerationInfo  `json:"generation_info"`
	Timestamp      string          `json:"timestamp"`
}

// NewGenerateArticleResponse 由生成结果构建响应
func NewGenerateArticleResponse(res *article.GenerationResult) *GenerateArticleResponse {
	return &GenerateArticleResponse{
		Success: true,
		Article: res.Article,
		Metadata: ArticleMetadata{
			ExamType:       res.ExamType,
			ExamFullName:   res.ExamFullName,
			Topic:          res.Topic,
			Difficulty:     res.Difficulty,
			TargetWords:    res.RequestedWords,
			ActualWords:    res.ActualWords,
			ParagraphCount: res.ParagraphCount,
			Style:          res.Style,
			FocusPoints:    res.FocusPoints,
		},
		GenerationInfo: GenerationInfo{
			Provider:         res.Provider,
			Model:            res.Model,
			PromptTokens:     res.Usage.PromptTokens,
			CompletionTokens: res.Usage.CompletionTokens,
			TotalTokens:      res.Usage.TotalTokens,
			LatencyMs:        res.Latency.Milliseconds(),
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
