// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"exam-article-api/internal/application/article"
	"exam-article-api/internal/interfaces/http/dto"
)

// ArticleHandler 文章生成处理器
type ArticleHandler struct {
	orchestrator *article.Orchestrator
}

// NewArticleHandler 创建文章生成处理器
func NewArticleHandler(orchestrator *article.Orchestrator) *ArticleHandler {
	return &ArticleHandler{
		orchestrator: orchestrator,
	}
}

// Generate 生成考试文章
// @Summary 生成考试文章
// @Description 根据考试类型、主题与难度生成一篇阅读文章
// @Tags Article
// @Accept json
// @Produce json
// @Param request body dto.GenerateArticleRequest true "生成请求"
// @Success 200 {object} dto.GenerateArticleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/generate [post]
func (h *ArticleHandler) Generate(c *gin.Context) {
	var req dto.GenerateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.FailBinding(c, err)
		return
	}

	// 查询参数优先于请求体
	if p := c.Query("provider"); p != "" {
		req.Provider = p
	}

	result, err := h.orchestrator.Generate(c.Request.Context(), req.ToCommand())
	if err != nil {
		dto.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGenerateArticleResponse(result))
}
