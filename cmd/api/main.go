package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meal-recognizer/internal/api"
	"meal-recognizer/internal/core/cache"
	"meal-recognizer/internal/core/dictionary"
	"meal-recognizer/internal/infrastructure/config"
	"meal-recognizer/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	// 使用 logger 記錄啟動信息
	common.LogInfo("載入設定",
		zap.String("foods_path", cfg.Dictionary.FoodsPath),
		zap.String("dishes_path", cfg.Dictionary.DishesPath),
		zap.String("remote_url", cfg.Dictionary.RemoteURL),
	)

	// 載入字典：優先使用遠端來源
	var dict *dictionary.Dictionary
	if cfg.Dictionary.RemoteURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Dictionary.Timeout)
		dict, err = dictionary.NewRemoteSource(cfg.Dictionary.RemoteURL, cfg.Dictionary.Timeout).Fetch(ctx)
		cancel()
	} else {
		dict, err = dictionary.LoadFromFiles(cfg.Dictionary.FoodsPath, cfg.Dictionary.DishesPath)
	}
	if err != nil {
		common.LogFatal("Failed to load dictionary", zap.Error(err))
	}

	// 初始化快取
	var cacheStore cache.Store
	if cfg.Cache.Enabled {
		switch cfg.Cache.Driver {
		case "redis":
			redisStore, err := cache.NewRedisStore(cfg)
			if err != nil {
				common.LogFatal("Failed to initialize redis cache", zap.Error(err))
			}
			cacheStore = redisStore
		default:
			manager := cache.NewManager(cfg)
			if manager == nil {
				common.LogFatal("Failed to initialize cache manager")
			}
			cacheStore = manager
		}
		defer cacheStore.Close()
	}

	// 設置路由
	router, err := api.SetupRouter(cfg, dict, cacheStore)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
