package bootstrap

import (
	"github.com/apetrenko/file-market/internal/market/infrastructure/storage"
	"github.com/apetrenko/file-market/internal/pkg/database"
	"github.com/apetrenko/file-market/internal/pkg/env"
	"github.com/joho/godotenv"
)

const (
	StorageBackendDisk = "disk"
	StorageBackendS3   = "s3"
)

type MarketConfig struct {
	DbSettings database.PostgresSettings
	HttpPort   string
	JwtSecret  string

	StorageBackend string
	StorageDataDir string
	S3Settings     storage.S3Settings

	// RedisAddr empty disables rate limiting.
	RedisAddr     string
	RedisPassword string
}

func LoadConfig() MarketConfig {
	// Optional .env file for local development.
	_ = godotenv.Load()

	cfg := MarketConfig{
		DbSettings: database.PostgresSettings{
			User:     env.GetOrDefault(env.EnvDatabaseUser, "market"),
			Password: env.GetOrDefault(env.EnvDatabasePassword, "market"),
			Host:     env.GetOrDefault(env.EnvDatabaseHost, "localhost"),
			Port:     env.GetOrDefault(env.EnvDatabasePort, "5432"),
			DBName:   env.GetOrDefault(env.EnvDatabaseName, "file_market_db"),
		},
		HttpPort:  env.GetOrDefault(env.EnvHttpPort, ":8080"),
		JwtSecret: env.GetOrDefault(env.EnvJwtSecret, "dev-secret"),

		StorageBackend: env.GetOrDefault(env.EnvStorageBackend, StorageBackendDisk),
		StorageDataDir: env.GetOrDefault(env.EnvStorageDataDir, "./data"),
		S3Settings: storage.S3Settings{
			Region: env.GetOrDefault(env.EnvS3Region, "us-east-1"),
			Bucket: env.GetOrDefault(env.EnvS3Bucket, "file-market"),
		},
	}

	env.TrySetFromEnv(env.EnvS3Endpoint, &cfg.S3Settings.Endpoint)
	env.TrySetFromEnv(env.EnvS3AccessKey, &cfg.S3Settings.AccessKey)
	env.TrySetFromEnv(env.EnvS3SecretKey, &cfg.S3Settings.SecretKey)
	env.TrySetFromEnv(env.EnvRedisAddr, &cfg.RedisAddr)
	env.TrySetFromEnv(env.EnvRedisPassword, &cfg.RedisPassword)

	return cfg
}
