// Package main 考试文章生成服务入口
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"exam-article-api/internal/application/article"
	"exam-article-api/internal/config"
	"exam-article-api/internal/domain/exam"
	"exam-article-api/internal/infrastructure/cache"
	"exam-article-api/internal/infrastructure/llm"
	"exam-article-api/internal/interfaces/http/handler"
	"exam-article-api/internal/interfaces/http/middleware"
	"exam-article-api/internal/interfaces/http/router"
	"exam-article-api/pkg/logger"
	"exam-article-api/pkg/tracer"

	"github.com/joho/godotenv"
)

// Version 版本信息，构建时注入
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件（如果存在）
	_ = godotenv.Load()

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	logger.Init(
		cfg.Observability.Logging.Level,
		cfg.Observability.Logging.Format,
	)

	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Info("starting api-server",
		"version", Version,
		"build_time", BuildTime,
		"env", cfg.App.Env,
	)

	// 初始化追踪
	shutdown, err := tracer.Init(ctx, tracer.Config{
		ServiceName: cfg.App.Name,
		Endpoint:    cfg.Observability.Tracing.Endpoint,
		SampleRate:  cfg.Observability.Tracing.SampleRate,
		Enabled:     cfg.Observability.Tracing.Enabled,
	})
	if err != nil {
		log.Error("failed to init tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Error("failed to shutdown tracer", "error", err)
		}
	}()

	// 加载考试类型配置
	store, err := exam.LoadStore(cfg.Exam.ConfigPath)
	if err != nil {
		logger.Fatal(ctx, "failed to load exam config", err)
	}
	log.Info("exam config loaded",
		"path", cfg.Exam.ConfigPath,
		"exam_types", store.SupportedTypes(),
	)

	// 配置中未声明任何供应商属于部署错误，直接终止
	if len(cfg.LLM.Providers) == 0 {
		logger.Fatal(ctx, "no llm providers declared in config", nil)
	}

	// 构建供应商注册表，凭据缺失的供应商会被跳过
	registry, err := llm.NewRegistry(ctx, &cfg.LLM)
	if err != nil {
		logger.Fatal(ctx, "failed to build llm registry", err)
	}
	if registry.Len() == 0 {
		log.Warn("no llm providers available, generation requests will fail",
			"declared", len(cfg.LLM.Providers),
		)
	} else {
		log.Info("llm registry ready",
			"providers", registry.Names(),
			"default", registry.DefaultName(),
		)
	}

	// 可选 Redis（限流）
	var limiter middleware.RateLimiter
	var redisClient *cache.Client
	if cfg.Cache.Redis.Enabled {
		redisClient, err = cache.NewClient(&cfg.Cache.Redis)
		if err != nil {
			logger.Fatal(ctx, "failed to connect redis", err)
		}
		defer redisClient.Close()
		limiter = redisClient
	}

	// 组装应用层
	builder := article.NewTemplateBuilder()
	service := article.NewService(registry, builder, store,
		cfg.LLM.GenerationTimeout, cfg.LLM.MaxArticleLength)
	orchestrator := article.NewOrchestrator(store, service)

	r := router.New(cfg, router.Handlers{
		Article:  handler.NewArticleHandler(orchestrator),
		Exam:     handler.NewExamHandler(store),
		Provider: handler.NewProviderHandler(registry),
		Template: handler.NewTemplateHandler(store, builder),
		Health:   handler.NewHealthHandler(registry, store, cfg.App.Name, Version),
	}, limiter)

	// 创建 HTTP 服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.HTTP.Host, cfg.Server.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.HTTP.ReadTimeout,
		WriteTimeout: cfg.Server.HTTP.WriteTimeout,
		IdleTimeout:  cfg.Server.HTTP.IdleTimeout,
	}

	// 启动服务器
	go func() {
		log.Info("http server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// 优雅关闭
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}
