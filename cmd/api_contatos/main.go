package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"api_contatos/internal/config"
	"api_contatos/internal/dao/database"
	myredis "api_contatos/internal/dao/redis"
	"api_contatos/internal/handler"
	"api_contatos/internal/https_server"
	"api_contatos/internal/infrastructure/logger"
	"api_contatos/internal/infrastructure/mq"
	"api_contatos/internal/infrastructure/worker"
	"api_contatos/internal/service"
	"api_contatos/pkg/constants"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径，留空时按默认路径查找")
	flag.Parse()

	// 1. 加载配置
	if *configPath != "" {
		conf, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config failed: %v", err)
		}
		config.SetConfig(conf)
	}
	conf, err := config.GetConfig()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zap.L().Sync()
	zap.L().Info("日志初始化成功")

	// 3. 初始化参数校验翻译器
	if err := handler.InitTrans(conf.Locale); err != nil {
		zap.L().Fatal("初始化校验翻译器失败", zap.Error(err))
	}

	// 4. 初始化数据库，文件不可访问时直接退出
	store, err := database.Open(&conf.DatabaseConfig, conf.Level)
	if err != nil {
		zap.L().Fatal("数据库初始化失败", zap.Error(err))
	}
	zap.L().Info("数据库初始化成功", zap.String("driver", conf.Driver))

	// 5. 初始化 Redis 缓存（可选）
	cache := initCache(&conf.RedisConfig)

	// 6. 初始化事件发布（可选）
	var publisher mq.EventPublisher = mq.NewNoopPublisher()
	if conf.KafkaConfig.Mode == "kafka" {
		publisher = mq.NewKafkaPublisher(&conf.KafkaConfig)
		zap.L().Info("Kafka 事件发布已启用", zap.String("topic", conf.Topic))
	}
	dispatcher := mq.NewDispatcher(
		publisher,
		worker.NewPool(constants.EVENT_WORKER_NUM, constants.EVENT_WORKER_BUFFER),
		time.Duration(conf.Timeout)*time.Second,
	)

	// 7. 初始化 Service / Handler 层 (依赖注入)
	svc := service.NewServices(store, cache, dispatcher, time.Duration(conf.TTL)*time.Second)
	engine := https_server.Init(conf, handler.NewHandlers(svc))
	zap.L().Info("HTTP 服务器初始化成功")

	// 8. 启动服务
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}
	go func() {
		zap.L().Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// 等待信号
	<-quit
	zap.L().Info("关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), constants.SHUTDOWN_TIMEOUT*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server shutdown", zap.Error(err))
	}

	// 请求处理完毕后再关闭下游，保证已提交的事件发出
	if err := dispatcher.Close(); err != nil {
		zap.L().Error("close event publisher", zap.Error(err))
	}
	if err := cache.Close(); err != nil {
		zap.L().Error("close cache", zap.Error(err))
	}
	if err := store.Close(); err != nil {
		zap.L().Error("close database", zap.Error(err))
	}

	zap.L().Info("服务器已关闭")
}

// initCache Redis 不可用时退化为无缓存，服务仍可启动
func initCache(conf *config.RedisConfig) myredis.CacheService {
	if !conf.Enabled {
		return myredis.NewNoopCache()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	cache, err := myredis.Init(ctx, conf)
	if err != nil {
		zap.L().Warn("Redis 初始化失败，缓存已禁用", zap.Error(err))
		return myredis.NewNoopCache()
	}
	zap.L().Info("Redis 初始化成功")
	return cache
}
