// Package main API Gateway 服务入口
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"z-lesson-ai-api/internal/application/activity"
	"z-lesson-ai-api/internal/application/lessonctx"
	"z-lesson-ai-api/internal/config"
	"z-lesson-ai-api/internal/infrastructure/llm"
	"z-lesson-ai-api/internal/infrastructure/persistence/postgres"
	redisclient "z-lesson-ai-api/internal/infrastructure/persistence/redis"
	"z-lesson-ai-api/internal/interfaces/http/handler"
	"z-lesson-ai-api/internal/interfaces/http/middleware"
	"z-lesson-ai-api/internal/interfaces/http/router"
	"z-lesson-ai-api/pkg/logger"
	"z-lesson-ai-api/pkg/tracer"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
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
	log.Info("starting api-gateway",
		"version", Version,
		"build_time", BuildTime,
		"env", cfg.App.Env,
	)

	// 初始化追踪
	shutdownTracer, err := tracer.Init(ctx, tracer.Config{
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
		if err := shutdownTracer(ctx); err != nil {
			log.Error("failed to shutdown tracer", "error", err)
		}
	}()

	// 基础设施
	pgClient, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		logger.Fatal(ctx, "failed to connect postgres", err)
	}
	defer pgClient.Close()

	redisClient, err := redisclient.NewClient(&cfg.Cache.Redis)
	if err != nil {
		logger.Fatal(ctx, "failed to connect redis", err)
	}
	defer redisClient.Close()

	llmFactory := llm.NewEinoFactory(cfg)
	if !llmFactory.Configured() {
		log.Warn("llm provider not configured, generation endpoints will return 503")
	}

	// 生成流水线
	lessonRepo := postgres.NewLessonRepository(pgClient)
	contextBuilder := lessonctx.NewBuilder(lessonRepo)
	contentGen := activity.NewContentGenerator(llmFactory)
	metadataGen := activity.NewMetadataGenerator(llmFactory)
	orchestrator := activity.NewOrchestrator(contextBuilder, contentGen, metadataGen)
	planner := activity.NewPlanner(orchestrator, cfg.Generation.BatchDelay)

	// HTTP 层
	rateLimit := middleware.NewRateLimitMiddleware(middleware.RateLimitConfig{
		Enabled:           cfg.Security.RateLimit.Enabled,
		RequestsPerSecond: cfg.Security.RateLimit.RequestsPerSecond,
		Burst:             cfg.Security.RateLimit.Burst,
	}, redisClient.RDB())

	r := router.New(cfg, &router.Handlers{
		Health:    handler.NewHealthHandler(pgClient, redisClient),
		Lesson:    handler.NewLessonHandler(lessonRepo),
		Activity:  handler.NewActivityHandler(cfg, orchestrator, planner),
		RateLimit: rateLimit,
	})

	// 创建 HTTP 服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.HTTP.Host, cfg.Server.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.HTTP.ReadTimeout,
		WriteTimeout: cfg.Server.HTTP.WriteTimeout,
		IdleTimeout:  cfg.Server.HTTP.IdleTimeout,
	}

	// 启动与优雅关闭
	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(signalCtx)

	g.Go(func() error {
		log.Info("http server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	log.Info("server exited")
}
