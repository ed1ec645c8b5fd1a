package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"exam-article-api/internal/domain/exam"
	"exam-article-api/internal/interfaces/http/dto"
)

// ExamHandler 考试类型查询处理器
type ExamHandler struct {
	store *exam.Store
}

// NewExamHandler 创建考试类型处理器
func NewExamHandler(store *exam.Store) *ExamHandler {
	return &ExamHandler{
		store: store,
	}
}

// List 列出支持的考试类型
// @Summary 考试类型列表
// @Description 返回所有支持的考试类型摘要
// @Tags Exam
// @Produce json
// @Success 200 {object} dto.ExamTypesResponse
// @Router /api/v1/exam-types [get]
func (h *ExamHandler) List(c *gin.Context) {
	ids := h.store.SupportedTypes()
	summaries := make([]dto.ExamTypeSummary, 0, len(ids))
	for _, id := range ids {
		cfg, err := h.store.Get(id)
		if err != nil {
			continue
		}
		summaries = append(summaries, dto.ExamTypeSummary{
			ID:          id,
			Name:        cfg.Name,
			FullName:    cfg.FullName,
			Description: cfg.Description,
		})
	}

	c.JSON(http.StatusOK, dto.ExamTypesResponse{
		Success:   true,
		ExamTypes: summaries,
		Total:     len(summaries),
	})
}

// Detail 返回单一考试类型的完整配置
// @Summary 考试类型详情
// @Description 返回指定考试类型的难度、字数与校验规则
// @Tags Exam
// @Produce json
// @Param exam_type path string true "考试类型"
// @Success 200 {object} dto.ExamTypeDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/exam-types/{exam_type} [get]
func (h *ExamHandler) Detail(c *gin.Context) {
	id, err := exam.ValidateExamType(h.store, c.Param("exam_type"))
	if err != nil {
		dto.Fail(c, err)
		return
	}

	cfg, err := h.store.Get(id)
	if err != nil {
		dto.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExamTypeDetailResponse{
		Success:  true,
		ExamType: dto.NewExamTypeDetail(id, cfg),
	})
}
