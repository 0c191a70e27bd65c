package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/delivery"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/hiddenstore"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/repository"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/urlcache"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/usecase"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/config"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/middleware"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/sogni"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/logger"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("error initializing config: %v\n", err)
		os.Exit(1)
	}

	err = logger.Init(cfg.LogMode)
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("configuration loaded successfully")
	logger.Debug("debug mode enabled",
		zap.String("log_mode", cfg.LogMode),
		zap.Int("max_requests", cfg.MaxActiveRequests),
	)

	if err := os.MkdirAll(cfg.StoragePath, 0755); err != nil {
		logger.Error("failed to create storage directory", zap.Error(err))
		os.Exit(1)
	}

	var hiddenStore app.HiddenJobStore
	if cfg.RedisAddr != "" {
		redisStore, err := hiddenstore.CreateRedisStore(cfg.RedisAddr)
		if err != nil {
			logger.Error("failed to connect to redis", zap.Error(err))
			os.Exit(1)
		}
		defer redisStore.Close()
		hiddenStore = redisStore
	} else {
		logger.Warn("REDIS_ADDR not set, hidden jobs will not survive restarts")
		hiddenStore = hiddenstore.CreateMemoryStore()
	}

	sogniClient := sogni.NewClient(cfg.SogniAPIURL, cfg.SogniAppID,
		sogni.WithPollInterval(cfg.PollInterval),
	)
	defer sogniClient.Close()

	mediaCache, err := urlcache.CreateCache(context.Background(), sogniClient, hiddenStore,
		urlcache.WithTTL(cfg.URLCacheTTL),
	)
	if err != nil {
		logger.Error("failed to initialize url cache", zap.Error(err))
		os.Exit(1)
	}

	requestRepo := repository.CreateRequestRepository(cfg.MaxActiveRequests)
	restorationUsecase := usecase.CreateRestorationUsecase(
		requestRepo,
		sogniClient,
		usecase.CreateHTTPMediaFetcher(nil),
		mediaCache,
		cfg.StoragePath,
		cfg.ImageTimeout,
		cfg.VideoTimeout,
	)
	restorationDelivery := delivery.CreateRestorationDelivery(restorationUsecase)

	router := mux.NewRouter()
	restorationDelivery.ConfigureRouter(router)

	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.PanicMiddleware)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("starting HTTP server",
			zap.String("address", server.Addr),
			zap.Any("config", cfg),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("failed to start server", zap.Error(err))
		os.Exit(1)
	case sig := <-quit:
		logger.Info("server is shutting down",
			zap.String("signal", sig.String()),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
			os.Exit(1)
		}

		logger.Info("server stopped")
	}
}
