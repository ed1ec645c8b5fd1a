package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"exam-article-api/internal/domain/exam"
	"exam-article-api/internal/infrastructure/llm"
	"exam-article-api/internal/interfaces/http/dto"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	registry *llm.Registry
	store    *exam.Store
	service  string
	version  string
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(registry *llm.Registry, store *exam.Store, service, version string) *HealthHandler {
	return &HealthHandler{
		registry: registry,
		store:    store,
		service:  service,
		version:  version,
	}
}

// Health 健康检查接口
// @Summary 健康检查
// @Description 检查服务健康状态，报告已配置的考试类型与供应商
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status := "healthy"
	if h.registry.Len() == 0 {
		// 无可用供应商时服务可响应但不可生成
		status = "degraded"
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    status,
		Service:   h.service,
		Version:   h.version,
		ExamTypes: h.store.SupportedTypes(),
		Providers: h.registry.Names(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Live 存活检查接口
// @Summary 存活检查
// @Description 检查服务是否存活
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Service:   h.service,
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
