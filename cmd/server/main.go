package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cart-service/internal/config"
	httpctl "cart-service/internal/controllers/http"
	"cart-service/internal/infra/cache"
	"cart-service/internal/infra/database"
	"cart-service/internal/infra/rabbitmq"
	"cart-service/internal/metrics"
	mysqlrepo "cart-service/internal/repository/mysql"
	"cart-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.DB)
	if err != nil {
		logger.Fatal("Failed to open database", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}

	orderRepo := mysqlrepo.NewOrderRepository(db, logger)
	cartItemRepo := mysqlrepo.NewCartItemRepository(db)
	memberRepo := mysqlrepo.NewMemberRepository(db)
	tx := mysqlrepo.NewTransactor(db)

	var publisher rabbitmq.PublisherInterface
	if cfg.AMQP.URL != "" {
		p, err := rabbitmq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
		if err != nil {
			logger.Fatal("Failed to init publisher", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	} else {
		logger.Info("RABBITMQ_URL not set, order events disabled")
	}

	var orderCache cache.OrderCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			DB:           cfg.Redis.DB,
			PoolSize:     50,
			MinIdleConns: 5,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		defer rdb.Close()
		orderCache = cache.NewRedisOrderCache(rdb, cfg.Redis.OrderTTL, logger)
	} else {
		logger.Info("REDIS_ADDR not set, order list cache disabled")
	}

	orderService := services.NewOrderService(orderRepo, cartItemRepo, tx, publisher, logger)
	handler := httpctl.NewHandler(orderService, orderCache, logger)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpctl.NewRouter(handler, httpctl.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Members:        memberRepo,
		Metrics:        metrics.NewServerMetrics(prometheus.DefaultRegisterer, "orders"),
		Gatherer:       prometheus.DefaultGatherer,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Starting cart service", zap.String("port", cfg.Port), zap.String("db_driver", cfg.DB.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Info("Server exited")
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	return cfg.Build()
}
