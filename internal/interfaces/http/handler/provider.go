package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"exam-article-api/internal/infrastructure/llm"
	"exam-article-api/internal/interfaces/http/dto"
)

// ProviderHandler LLM 供应商查询处理器
type ProviderHandler struct {
	registry *llm.Registry
}

// NewProviderHandler 创建供应商处理器
func NewProviderHandler(registry *llm.Registry) *ProviderHandler {
	return &ProviderHandler{
		registry: registry,
	}
}

// List 列出当前可用的供应商
// @Summary 供应商列表
// @Description 返回已配置凭据且可用的 LLM 供应商
// @Tags Provider
// @Produce json
// @Success 200 {object} dto.ProvidersResponse
// @Router /api/v1/providers [get]
func (h *ProviderHandler) List(c *gin.Context) {
	names := h.registry.Names()
	infos := make([]dto.ProviderInfo, 0, len(names))
	for _, name := range names {
		p, ok := h.registry.Get(name)
		if !ok {
			continue
		}
		infos = append(infos, dto.ProviderInfo{
			Name:    name,
			Vendor:  llm.VendorLabel(name),
			Model:   p.ModelID(),
			Default: name == h.registry.DefaultName(),
		})
	}

	c.JSON(http.StatusOK, dto.ProvidersResponse{
		Success:   true,
		Providers: infos,
		Default:   h.registry.DefaultName(),
	})
}
