package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gunpla-hub/service-storefront/internal/adapter"
	"github.com/gunpla-hub/service-storefront/internal/application"
	"github.com/gunpla-hub/service-storefront/internal/config"
	"github.com/gunpla-hub/service-storefront/internal/domain/catalog"
	"github.com/gunpla-hub/service-storefront/internal/domain/discount"
	"github.com/gunpla-hub/service-storefront/internal/domain/order"
	"github.com/gunpla-hub/service-storefront/internal/domain/session"
	storefrontEvents "github.com/gunpla-hub/service-storefront/internal/events"
	"github.com/gunpla-hub/service-storefront/internal/handler"
	"github.com/gunpla-hub/service-storefront/internal/platform/database"
	"github.com/gunpla-hub/service-storefront/internal/platform/health"
	"github.com/gunpla-hub/service-storefront/internal/platform/kafka"
	"github.com/gunpla-hub/service-storefront/internal/platform/logger"
	"github.com/gunpla-hub/service-storefront/internal/platform/metrics"
	"github.com/gunpla-hub/service-storefront/internal/platform/middleware"
	"github.com/gunpla-hub/service-storefront/internal/repository"
	"github.com/gunpla-hub/service-storefront/internal/saga"
)

const serviceName = "service-storefront"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("starting service-storefront",
		zap.String("port", cfg.Port),
		zap.String("storage", cfg.Storage),
		zap.Bool("kafka", cfg.KafkaConfig.Enabled),
	)

	m := metrics.New("storefront")
	ctx := context.Background()

	// Repositories
	var (
		db           *gorm.DB
		productRepo  catalog.Repository
		discountRepo discount.Repository
		orderRepo    order.Repository
	)
	if cfg.Storage == config.StoragePostgres {
		db, err = database.Connect(cfg.DBConfig, zapLogger)
		if err != nil {
			zapLogger.Fatal("failed to connect to database", zap.Error(err))
		}

		if cfg.AppEnv == "development" {
			if err := db.AutoMigrate(&repository.ProductModel{}, &repository.DiscountModel{}, &repository.OrderModel{}); err != nil {
				zapLogger.Fatal("failed to auto-migrate", zap.Error(err))
			}
			zapLogger.Info("database migration completed (dev auto-migrate)")
		} else if err := database.RunMigrations(cfg.DBConfig.DatabaseURL(), "migrations", zapLogger); err != nil {
			zapLogger.Fatal("failed to run migrations", zap.Error(err))
		}

		gormProducts := repository.NewGormProductRepository(db)
		if err := gormProducts.SeedIfEmpty(ctx, catalog.SeedProducts(), zapLogger); err != nil {
			zapLogger.Fatal("failed to seed products", zap.Error(err))
		}
		productRepo = gormProducts
		discountRepo = repository.NewGormDiscountRepository(db)
		orderRepo = repository.NewOrderRepository(db)
	} else {
		productRepo = repository.NewMemoryProductRepository(catalog.SeedProducts())
		discountRepo = repository.NewMemoryDiscountRepository()
		orderRepo = repository.NewMemoryOrderRepository()
	}

	// Session state store
	var (
		rdb        *redis.Client
		stateStore session.Store
	)
	if cfg.RedisConfig.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisConfig.Addr,
			Password: cfg.RedisConfig.Password,
			DB:       cfg.RedisConfig.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			zapLogger.Fatal("failed to connect to redis", zap.Error(err))
		}
		stateStore = repository.NewRedisStateStore(rdb, cfg.StateTTL)
	} else {
		zapLogger.Warn("REDIS_ADDR not set, session state is kept in memory")
		stateStore = repository.NewMemoryStateStore()
	}

	// Event publisher
	var publisher kafka.Publisher = kafka.NewLogPublisher(zapLogger)
	if cfg.KafkaConfig.Enabled {
		producer := kafka.NewProducer(cfg.KafkaConfig.Brokers, zapLogger)
		defer producer.Close()
		publisher = producer
	}

	var clock application.Clock = application.SystemClock
	gateway := adapter.NewSimulatedGateway(cfg.CheckoutDelay, zapLogger)

	// Application services
	discountService := application.NewDiscountService(discountRepo, clock, zapLogger)
	if cfg.Seed.Discounts {
		if err := discountService.SeedDiscounts(ctx, cfg.Seed.ValidFrom, cfg.Seed.ValidTo); err != nil {
			zapLogger.Fatal("failed to seed discounts", zap.Error(err))
		}
	}
	catalogService := application.NewCatalogService(productRepo, zapLogger)
	storefrontService := application.NewStorefrontService(stateStore, productRepo, discountService, clock, m, zapLogger)
	sagaService := saga.NewCheckoutSagaService(orderRepo, discountRepo, gateway, publisher, zapLogger)
	checkoutService := application.NewCheckoutService(stateStore, discountService, sagaService, cfg.Currency, clock, m, zapLogger)
	orderService := application.NewOrderService(orderRepo, zapLogger)

	// Kafka consumer for fulfillment events
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	if cfg.KafkaConfig.Enabled {
		consumerGroupID := cfg.KafkaConfig.GroupPrefix + "storefront-service"
		fulfillmentConsumer := storefrontEvents.NewFulfillmentEventConsumer(
			cfg.KafkaConfig.Brokers,
			consumerGroupID,
			orderService,
			zapLogger,
		)
		defer fulfillmentConsumer.Close()

		go func() {
			zapLogger.Info("starting fulfillment event consumer")
			if err := fulfillmentConsumer.Start(consumerCtx); err != nil {
				if consumerCtx.Err() == nil {
					zapLogger.Error("fulfillment event consumer failed", zap.Error(err))
				}
			}
		}()
	}

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	router.Use(middleware.LoggerMiddleware(zapLogger))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.MetricsMiddleware(m))

	// Health and metrics
	health.NewHandler(db, rdb, serviceName).RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// API routes
	apiV1 := router.Group("/api/v1")
	handler.NewCatalogHandler(catalogService).RegisterRoutes(apiV1)
	handler.NewDiscountHandler(discountService).RegisterRoutes(apiV1)
	handler.NewStorefrontHandler(storefrontService, checkoutService).RegisterRoutes(apiV1)
	handler.NewOrderHandler(orderService).RegisterRoutes(apiV1)

	if cfg.AdminToken == "" {
		zapLogger.Warn("ADMIN_TOKEN not set, admin routes will reject every request")
	}
	handler.NewAdminHandler(discountService, orderService, catalogService).RegisterRoutes(apiV1, cfg.AdminToken)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		zapLogger.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down service-storefront...")

	consumerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("service-storefront stopped")
}
