package dto

import (
	"exam-article-api/internal/domain/exam"
)

// ExamTypeSummary 考试类型摘要
type ExamTypeSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
}

// ExamTypesResponse 考试类型列表响应
type ExamTypesResponse struct {
	Success   bool              `json:"success"`
	ExamTypes []ExamTypeSummary `json:"exam_types"`
	Total     int               `json:"total"`
}

// ValidationRules 校验规则
type ValidationRules struct {
	TopicMinLength int `json:"topic_min_length"`
	TopicMaxLength int `json:"topic_max_length"`
	WordCountMin   int `json:"word_count_min"`
	WordCountMax   int `json:"word_count_max"`
}

// ExamTypeDetail 考试类型完整配置
type ExamTypeDetail struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	FullName              string          `json:"full_name"`
	Description           string          `json:"description"`
	SupportedDifficulties []string        `json:"supported_difficulties"`
	DefaultWordCount      map[string]int  `json:"default_word_count"`
	ValidationRules       ValidationRules `json:"validation_rules"`
	WritingStyles         []string        `json:"writing_styles,omitempty"`
	CommonTopics          []string        `json:"common_topics,omitempty"`
}

// ExamTypeDetailResponse 单一考试类型响应
type ExamTypeDetailResponse struct {
	Success  bool           `json:"success"`
	ExamType ExamTypeDetail `json:"exam_type"`
}

// NewExamTypeDetail 由领域配置构建详情
func NewExamTypeDetail(id string, cfg exam.TypeConfig) ExamTypeDetail {
	return ExamTypeDetail{
		ID:                    id,
		Name:                  cfg.Name,
		FullName:              cfg.FullName,
		Description:           cfg.Description,
		SupportedDifficulties: cfg.SupportedDifficulties,
		DefaultWordCount:      cfg.DefaultWordCount,
		ValidationRules: ValidationRules{
			TopicMinLength: cfg.ValidationRules.TopicMinLength,
			TopicMaxLength: cfg.ValidationRules.TopicMaxLength,
			WordCountMin:   cfg.ValidationRules.WordCountMin,
			WordCountMax:   cfg.ValidationRules.WordCountMax,
		},
		WritingStyles: cfg.WritingStyles,
		CommonTopics:  cfg.CommonTopics,
	}
}

// ProviderInfo 可用供应商信息
type ProviderInfo struct {
	Name    string `json:"name"`
	Vendor  string `json:"vendor"`
	Model   string `json:"model"`
	Default bool   `json:"default"`
}

// ProvidersResponse 供应商列表响应
type ProvidersResponse struct {
	Success   bool           `json:"success"`
	Providers []ProviderInfo `json:"providers"`
	Default   string         `json:"default"`
}

// TemplateInfo 单一考试类型的模板素材与示例提示词
type TemplateInfo struct {
	ExamType     string   `json:"exam_type"`
	Topics       []string `json:"topics"`
	Difficulties []string `json:"difficulties"`
	Styles       []string `json:"styles"`
	SystemPrompt string   `json:"system_prompt"`
	UserPrompt   string   `json:"user_prompt"`
}

// TemplatesResponse 模板素材响应
type TemplatesResponse struct {
	Success   bool           `json:"success"`
	Templates []TemplateInfo `json:"templates"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status    string   `json:"status"`
	Service   string   `json:"service"`
	Version   string   `json:"version"`
	ExamTypes []string `json:"exam_types,omitempty"`
	Providers []string `json:"providers,omitempty"`
	Timestamp string   `json:"timestamp"`
}
