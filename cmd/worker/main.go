package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/region-dashboard/app/config"
	"github.com/region-dashboard/app/services"
	"github.com/region-dashboard/internal/sheets"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const fingerprintKey = "region_dash:dataset_fingerprint"

// The refresh worker polls the spreadsheet store on an interval. When the
// customer rows change it drops the shared resolution cache and re-mirrors
// the contract overlays, so the API replicas pick up fresh data on their
// next reload.
func main() {
	if err := config.Load(getEnv("DASHBOARD_CONFIG", "config/dashboard.yaml")); err != nil {
		panic(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting Region Dashboard Worker")

	if config.C.Sheets.BaseURL == "" {
		logger.Fatal("worker requires SHEETS_BASE_URL; nothing to refresh without the store")
	}
	store := sheets.NewClient(sheets.Config{
		BaseURL:       config.C.Sheets.BaseURL,
		APIKey:        config.C.Sheets.APIKey,
		SpreadsheetID: config.C.Sheets.SpreadsheetID,
		Timeout:       config.SheetsTimeout(),
	}, logger)

	redisOpts, err := redis.ParseURL(getEnv("REDIS_URL", "redis://localhost:6379"))
	if err != nil {
		logger.Fatal("parse Redis URL failed", zap.Error(err))
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	mongoURL := getEnv("MONGO_URL", "mongodb://localhost:27017/region_dashboard")
	mongoClient, err := mongo.Connect(context.Background(), options.Client().ApplyURI(mongoURL))
	if err != nil {
		logger.Fatal("connect MongoDB failed", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())

	contractService := services.NewContractService(mongoClient.Database("region_dashboard"), store, logger)

	ticker := time.NewTicker(config.RefreshInterval())
	defer ticker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// First pass right away so a fresh deploy does not wait a full interval.
	refresh(store, redisClient, contractService, logger)

	for {
		select {
		case <-ticker.C:
			refresh(store, redisClient, contractService, logger)
		case <-quit:
			logger.Info("Shutting down worker")
			return
		}
	}
}

// refresh compares the current customer rows against the stored fingerprint
// and invalidates downstream state when they differ.
func refresh(store *sheets.Client, redisClient *redis.Client, contractService *services.ContractService, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	records, err := store.ListCustomers(ctx)
	if err != nil {
		logger.Warn("refresh: sheet store unavailable", zap.Error(err))
		return
	}

	fingerprint := fingerprintOf(records)
	previous, err := redisClient.Get(ctx, fingerprintKey).Result()
	if err != nil && err != redis.Nil {
		logger.Warn("refresh: fingerprint read failed", zap.Error(err))
		return
	}
	if previous == fingerprint {
		logger.Debug("refresh: dataset unchanged", zap.Int("records", len(records)))
		return
	}

	logger.Info("refresh: dataset changed, invalidating caches",
		zap.Int("records", len(records)),
		zap.String("fingerprint", fingerprint[:12]))

	// Dropping the shared L2 keeps replicas from serving resolutions built on
	// the previous dataset after they reload.
	keys, err := redisClient.Keys(ctx, "region_dash:*").Result()
	if err == nil && len(keys) > 0 {
		if err := redisClient.Del(ctx, keys...).Err(); err != nil {
			logger.Warn("refresh: cache invalidation failed", zap.Error(err))
		}
	}

	if err := contractService.SyncFromStore(ctx); err != nil {
		logger.Warn("refresh: contract sync failed", zap.Error(err))
	}

	if err := redisClient.Set(ctx, fingerprintKey, fingerprint, 0).Err(); err != nil {
		logger.Warn("refresh: fingerprint write failed", zap.Error(err))
	}
}

// fingerprintOf hashes the dataset in row order; order changes count as
// changes because aggregate insertion order follows row order.
func fingerprintOf(records interface{}) string {
	data, err := json.Marshal(records)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// getEnv returns an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
