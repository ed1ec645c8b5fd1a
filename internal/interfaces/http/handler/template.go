package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"exam-article-api/internal/application/article"
	"exam-article-api/internal/domain/exam"
	"exam-article-api/internal/interfaces/http/dto"
)

// sampleTopic 模板预览使用的默认主题
const sampleTopic = "Technology"

// TemplateHandler 提示词模板预览处理器
type TemplateHandler struct {
	store   *exam.Store
	builder *article.TemplateBuilder
}

// NewTemplateHandler 创建模板预览处理器
func NewTemplateHandler(store *exam.Store, builder *article.TemplateBuilder) *TemplateHandler {
	return &TemplateHandler{
		store:   store,
		builder: builder,
	}
}

// List 返回各考试类型的模板素材及示例提示词
// @Summary 模板素材
// @Description 返回每种考试类型的主题、难度与风格，并用示例参数渲染提示词
// @Tags Template
// @Produce json
// @Success 200 {object} dto.TemplatesResponse
// @Router /api/v1/templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	ids := h.store.SupportedTypes()
	previews := make([]dto.TemplateInfo, 0, len(ids))
	for _, id := range ids {
		cfg, err := h.store.Get(id)
		if err != nil {
			continue
		}

		topic := sampleTopic
		if len(cfg.CommonTopics) > 0 {
			topic = cfg.CommonTopics[0]
		}

		difficulty := cfg.FallbackDifficulty
		if difficulty == "" && len(cfg.SupportedDifficulties) > 0 {
			difficulty = cfg.SupportedDifficulties[0]
		}

		wordCount := cfg.DefaultWordCount[difficulty]
		if wordCount == 0 {
			wordCount = cfg.ValidationRules.WordCountMin
		}

		pair := h.builder.Build(article.TemplateInput{
			ExamType:       id,
			Topic:          topic,
			Difficulty:     difficulty,
			WordCount:      wordCount,
			ParagraphCount: exam.DefaultParagraphCount,
		})

		previews = append(previews, dto.TemplateInfo{
			ExamType:     id,
			Topics:       cfg.CommonTopics,
			Difficulties: cfg.SupportedDifficulties,
			Styles:       cfg.WritingStyles,
			SystemPrompt: pair.System,
			UserPrompt:   pair.User,
		})
	}

	c.JSON(http.StatusOK, dto.TemplatesResponse{
		Success:   true,
		Templates: previews,
	})
}
