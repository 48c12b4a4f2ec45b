package config

import (
	"log"
	"os"
	"strings"
	"time"

	"hotelops/constants"
	"hotelops/validator"

	"github.com/joho/godotenv"
)

// Config cấu hình ứng dụng, đọc từ biến môi trường (.env nếu có)
type Config struct {
	Env           string        `validate:"oneof=dev qc prod"`
	Port          string        `validate:"required,numeric"`
	DBDriver      string        `validate:"oneof=postgres pq memory"`
	DatabaseURL   string
	RedisAddr     string
	RedisUser     string
	RedisPassword string
	Timezone      string        `validate:"required"`
	JWTSecret     string
	BoardCacheTTL time.Duration `validate:"gte=0"`
	LogLevel      string        `validate:"omitempty,oneof=debug info warn error"`
	LogFormat     string        `validate:"omitempty,oneof=json console"`
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func getEnvDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load đọc .env rồi biến môi trường và validate kết quả
func Load() (*Config, error) {
	LoadEnv()

	ttl, err := time.ParseDuration(getEnvDefault("BOARD_CACHE_TTL", "30s"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:           strings.ToLower(getEnvDefault("ENV", "dev")),
		Port:          getEnvDefault("PORT", "8083"),
		DBDriver:      strings.ToLower(getEnvDefault("DB_DRIVER", "postgres")),
		DatabaseURL:   GetEnv("DATABASE_URL"),
		RedisAddr:     GetEnv("REDIS_ADDR"),
		RedisUser:     GetEnv("REDIS_USER"),
		RedisPassword: GetEnv("REDIS_PASSWORD"),
		Timezone:      getEnvDefault("HOTEL_TIMEZONE", constants.DefaultTimezone),
		JWTSecret:     GetEnv("JWT_SECRET"),
		BoardCacheTTL: ttl,
		LogLevel:      strings.ToLower(getEnvDefault("LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(getEnvDefault("LOG_FORMAT", "json")),
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, err
	}
	return cfg, nil
}
