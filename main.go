package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/region-dashboard/app/config"
	"github.com/region-dashboard/app/controllers"
	"github.com/region-dashboard/app/services"
	"github.com/region-dashboard/internal/gazetteer"
	"github.com/region-dashboard/internal/search"
	"github.com/region-dashboard/internal/sheets"
	"github.com/region-dashboard/routes"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	loadConfig()
	if err := config.Load(viper.GetString("app.config_file")); err != nil {
		log.Fatal("Cannot load dashboard config:", err)
	}

	// 2. Initialize logger
	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting Region Dashboard Service")

	// 3. Connect MongoDB
	mongoDB := initMongoDB(logger)
	defer func() {
		if err := mongoDB.Client().Disconnect(context.Background()); err != nil {
			logger.Error("Error disconnecting MongoDB", zap.Error(err))
		}
	}()

	// 4. Sheet store client (optional; seed fallback covers local runs)
	var store *sheets.Client
	if config.C.Sheets.BaseURL != "" {
		store = sheets.NewClient(sheets.Config{
			BaseURL:       config.C.Sheets.BaseURL,
			APIKey:        config.C.Sheets.APIKey,
			SpreadsheetID: config.C.Sheets.SpreadsheetID,
			Timeout:       config.SheetsTimeout(),
		}, logger)
	} else {
		logger.Warn("sheet store unconfigured, serving the embedded seed dataset")
	}

	// 5. Region directory index (optional; mapping scan covers the fallback)
	var regionIndex *search.RegionIndex
	searchCfg := search.Config{
		Host:      viper.GetString("meilisearch.url"),
		APIKey:    viper.GetString("meilisearch.master_key"),
		IndexName: "regions",
		Timeout:   30 * time.Second,
	}
	if searchCfg.Host != "" {
		idx, err := search.NewRegionIndex(searchCfg, logger)
		if err != nil {
			logger.Warn("Meilisearch unavailable, directory search falls back to table scan", zap.Error(err))
		} else {
			regionIndex = idx
		}
	}

	// 6. Cache tiers (in-process LRU L1 + Redis L2)
	l1Size := getEnvInt("L1_CACHE_SIZE", config.C.L1CacheSize)
	memoryCache, err := services.NewMemoryCacheService(l1Size)
	if err != nil {
		logger.Fatal("Failed to initialize memory cache", zap.Error(err))
	}

	redisURL := getEnv("REDIS_URL", "redis://localhost:6379")
	redisCache, err := services.NewRedisCacheService(redisURL, config.CacheTTL(), logger)
	if err != nil {
		logger.Fatal("Failed to initialize Redis cache", zap.Error(err))
	}

	cacheService := services.NewHybridCacheService(memoryCache, redisCache, logger)
	defer cacheService.Close()

	// 7. Services
	mapping := gazetteer.Default()
	dashboardService := services.NewDashboardService(store, mapping, config.PoCThreshold(), logger)
	if err := dashboardService.LoadRecords(context.Background()); err != nil {
		logger.Fatal("Failed to load customer records", zap.Error(err))
	}
	contractService := services.NewContractService(mongoDB, store, logger)
	adminService := services.NewAdminService(mongoDB, dashboardService, logger)

	// 8. Controllers
	dashboardController := controllers.NewDashboardController(dashboardService, adminService, cacheService, regionIndex, logger)
	adminController := controllers.NewAdminController(adminService, contractService, dashboardService, cacheService, logger)

	// 9. Gin router and routes
	router := gin.New()
	routes.SetupAllRoutes(router, dashboardController, adminController)

	// 10. Seed the directory index if search is up
	if regionIndex != nil {
		if err := regionIndex.Seed(dashboardService.Mapping()); err != nil {
			logger.Warn("Failed to seed region directory index", zap.Error(err))
		}
	}

	// 11. Start server
	port := getEnv("APP_PORT", "8080")
	logger.Info("Region Dashboard Service starting", zap.String("port", port))

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// loadConfig loads configuration from file and env vars
func loadConfig() {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.config_file", "config/dashboard.yaml")
	viper.SetDefault("meilisearch.url", "")
	viper.SetDefault("meilisearch.master_key", "")
	viper.SetDefault("mongo.url", "mongodb://localhost:27017/region_dashboard")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Cannot read config file: %v", err)
	}
}

// initLogger initializes the structured logger
func initLogger() *zap.Logger {
	env := getEnv("APP_ENV", "development")

	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}

	return logger
}

// initMongoDB initializes the MongoDB connection
func initMongoDB(logger *zap.Logger) *mongo.Database {
	mongoURL := getEnv("MONGO_URL", "mongodb://localhost:27017/region_dashboard")

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURL))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}

	dbName := "region_dashboard"
	clientOpts := options.Client().ApplyURI(mongoURL)
	if clientOpts.Auth != nil && clientOpts.Auth.AuthSource != "" {
		dbName = clientOpts.Auth.AuthSource
	}

	db := client.Database(dbName)
	logger.Info("Connected to MongoDB", zap.String("database", dbName))

	return db
}

// getEnv returns an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as int with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
