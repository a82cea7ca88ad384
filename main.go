package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/nishaddev/Mobile-inventory/cache"
	"github.com/nishaddev/Mobile-inventory/controllers"
	"github.com/nishaddev/Mobile-inventory/database"
	"github.com/nishaddev/Mobile-inventory/middleware"
	"github.com/nishaddev/Mobile-inventory/models"
	"github.com/nishaddev/Mobile-inventory/repository"
	"github.com/nishaddev/Mobile-inventory/routes"
	servicepkg "github.com/nishaddev/Mobile-inventory/services"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := database.ConnectPostgres(logger,
		&models.Category{},
		&models.Warehouse{},
		&models.Product{},
		&models.StockEntry{},
		&models.SalesTransaction{},
	)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Redis is optional; without it the product list is served straight
	// from Postgres.
	var cacheClient *cache.Client
	if cfg.RedisAddr != "" {
		rdb, redisErr := cache.NewRedisClient(context.Background(), cfg.RedisAddr, cfg.RedisPassword)
		if redisErr != nil {
			logger.Warn("Redis unavailable, product list caching disabled", zap.Error(redisErr))
		} else {
			cacheClient = cache.NewClient(rdb, time.Duration(cfg.CacheTTLSeconds)*time.Second, logger)
		}
	}

	// DI chain
	catalogRepo := repository.NewGormCatalogRepository(db)
	stockRepo := repository.NewGormStockRepository(db)
	salesRepo := repository.NewGormSalesRepository(db)

	catalogService := servicepkg.NewCatalogService(catalogRepo, stockRepo, cacheClient, logger)
	stockService := servicepkg.NewStockService(stockRepo, cfg.LowStockThreshold, logger)
	salesService := servicepkg.NewSalesService(salesRepo, catalogRepo, logger)
	analyticsService := servicepkg.NewAnalyticsService(catalogRepo, stockRepo, salesRepo, cfg.LowStockThreshold, logger)

	catalogController := controllers.NewCatalogController(catalogService)
	stockController := controllers.NewStockController(stockService)
	salesController := controllers.NewSalesController(salesService)
	analyticsController := controllers.NewAnalyticsController(analyticsService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst, 10*time.Minute)
	r.Use(limiter.Middleware())

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "inventory-api"})
	})

	routes.RegisterRoutes(r, cfg.JWTSecret, catalogController, stockController, salesController, analyticsController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("Inventory service started", zap.String("port", cfg.Port))
	<-quit
	logger.Info("Shutting down inventory service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
