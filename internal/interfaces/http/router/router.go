// Package router 提供 HTTP 路由配置
package router

import (
	"exam-article-api/internal/config"
	"exam-article-api/internal/interfaces/http/handler"
	"exam-article-api/internal/interfaces/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers 路由依赖的处理器集合
type Handlers struct {
	Article  *handler.ArticleHandler
	Exam     *handler.ExamHandler
	Provider *handler.ProviderHandler
	Template *handler.TemplateHandler
	Health   *handler.HealthHandler
}

// Router HTTP 路由器
type Router struct {
	engine   *gin.Engine
	cfg      *config.Config
	handlers Handlers
	limiter  middleware.RateLimiter
}

// New 创建新的路由器
func New(cfg *config.Config, handlers Handlers, limiter middleware.RateLimiter) *Router {
	// 设置 Gin 模式
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:   engine,
		cfg:      cfg,
		handlers: handlers,
		limiter:  limiter,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware() {
	// 基础中间件
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	// CORS 中间件
	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	// 追踪中间件
	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	// 指标中间件
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
}

// setupRoutes 配置路由
func (r *Router) setupRoutes() {
	// 系统端点
	r.engine.GET("/health", r.handlers.Health.Health)
	r.engine.GET("/live", r.handlers.Health.Live)

	// Prometheus 指标端点
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// API v1 路由组
	v1 := r.engine.Group("/api/v1")
	{
		// 生成端点带并发准入与可选限流
		generate := v1.Group("")
		generate.Use(middleware.Admission(r.cfg.LLM.MaxConcurrent))
		generate.Use(middleware.RateLimit(middleware.RateLimitConfig{
			Enabled:           r.cfg.Security.RateLimit.Enabled,
			RequestsPerSecond: r.cfg.Security.RateLimit.RequestsPerSecond,
		}, r.limiter))
		generate.POST("/generate", r.handlers.Article.Generate)

		v1.GET("/exam-types", r.handlers.Exam.List)
		v1.GET("/exam-types/:exam_type", r.handlers.Exam.Detail)
		v1.GET("/providers", r.handlers.Provider.List)
		v1.GET("/templates", r.handlers.Template.List)
	}
}
