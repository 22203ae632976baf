package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mtallentb/nes-outage-viewer/internal/config"
	v1 "github.com/mtallentb/nes-outage-viewer/internal/handler/http/v1"
	"github.com/mtallentb/nes-outage-viewer/internal/poller"
	"github.com/mtallentb/nes-outage-viewer/internal/repository"
	"github.com/mtallentb/nes-outage-viewer/internal/service"
	"github.com/mtallentb/nes-outage-viewer/internal/upstream"
	"github.com/mtallentb/nes-outage-viewer/pkg/logger"
	redisclient "github.com/mtallentb/nes-outage-viewer/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/mtallentb/nes-outage-viewer/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title NES Outage Viewer API
// @version 1.0
// @description Nearby power outages and outage trends for the NES service area.
// @host localhost:3000
// @BasePath /api
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Источник данных с ограничением частоты запросов
	client := upstream.NewClient(cfg.UpstreamURL, cfg.UpstreamTimeout, log)
	source := upstream.NewRateLimitedSource(client, cfg.UpstreamRPS, cfg.UpstreamBurst)

	// Redis необязателен: без него запросы идут напрямую во внешний API
	var cache service.OutageCache
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.WithError(err).Warn("Redis is unavailable, outage cache disabled")
		} else {
			defer redisClient.Close()
			cache = repository.NewRedisOutageCache(redisClient, cfg.CacheTTL)
			log.Info("Successfully connected to Redis")
		}
	}

	outageService := service.NewOutageService(source, cache, log)

	// Хранилище снимков необязательно: при ошибке сервер работает без трендов
	var trendService service.TrendService
	var pollerDone <-chan struct{}
	if cfg.TrendsEnabled() {
		repo, closeRepo, err := repository.OpenSnapshotRepository(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.WithError(err).Warn("Snapshot store is unavailable, trend tracking disabled")
		} else {
			defer closeRepo()
			trendService = service.NewTrendService(repo, log)

			snapshotService := service.NewSnapshotService(source, repo, log)
			pollerDone = poller.NewSnapshotPoller(snapshotService, cfg.PollInterval, log).Start(ctx)
			log.WithField("interval", cfg.PollInterval.String()).Info("Trend tracking enabled")
		}
	} else {
		log.Info("DATABASE_URL is not set, trend tracking disabled")
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(outageService, trendService, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestLoggerMiddleware(log))
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Статика дашборда для всех остальных путей
	router.NoRoute(gin.WrapH(http.FileServer(gin.Dir(cfg.StaticDir, false))))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("NES Outage Dashboard running at http://localhost:%s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем опрос и ждем текущий цикл до закрытия хранилища
	cancel()
	if pollerDone != nil {
		<-pollerDone
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
