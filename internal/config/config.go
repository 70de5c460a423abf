package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"article-service/internal/db"
)

// Config holds all configuration for the application
type Config struct {
	HTTPPort        string
	GRPCPort        string
	ShutdownTimeout time.Duration
	LogLevel        string
	Env             string

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	DB          db.Config
	AutoMigrate bool
	Redis       db.RedisConfig
}

// Load reads configuration from the environment. Call godotenv.Load first to
// pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{
		// Server Config
		HTTPPort:        GetEnvString("HTTP_PORT", "3000"),
		GRPCPort:        GetEnvString("GRPC_PORT", "50052"),
		ShutdownTimeout: GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		LogLevel:        GetEnvString("LOG_LEVEL", "info"),
		Env:             GetEnvString("APP_ENV", "development"),

		// JWT
		JWTSecret:  GetEnvString("JWT_SECRET", "insecure-default-secret-change-this"), // default value for Dev
		JWTTTL:     GetEnvDuration("JWT_TTL", 24*time.Hour),
		BcryptCost: GetEnvInt("BCRYPT_COST", 8),

		// Database Config
		DB: db.Config{
			Host:    GetEnvString("DB_HOST", "localhost"),
			Port:    GetEnvString("DB_PORT", "5432"),
			SSLMode: GetEnvString("DB_SSL_MODE", "disable"),

			MaxConns:        GetEnvInt32("DB_MAX_CONNS", 10),
			MinConns:        GetEnvInt32("DB_MIN_CONNS", 2),
			MaxConnLifetime: GetEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
			MaxConnIdleTime: GetEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
			ConnectTimeout:  GetEnvDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		},
		AutoMigrate: GetEnvBool("DB_AUTO_MIGRATE", false),

		// Cache Config
		Redis: db.RedisConfig{
			Addr:     GetEnvString("REDIS_ADDR", "localhost:6379"),
			Password: GetEnvString("REDIS_PASSWORD", ""),
			DB:       GetEnvInt("REDIS_DB", 0),
			TTL:      GetEnvDuration("CACHE_TTL", 0),
		},
	}

	var err error
	if cfg.DB.User, err = RequireEnvString("DB_USER"); err != nil {
		return nil, err
	}
	if cfg.DB.Password, err = RequireEnvString("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.DB.DBName, err = RequireEnvString("DB_NAME"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func GetEnvString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// RequireEnvString fails when key is unset or empty.
func RequireEnvString(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

func GetEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func GetEnvInt32(key string, fallback int32) int32 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 32)
	if err != nil {
		return fallback
	}
	return int32(v)
}

func GetEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
