package config

import (
	"database/sql"
	"fmt"
	"os"

	"hotelops/repository"
	"hotelops/services/logger"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// getDBConfigByEnv dựng DSN từ DEV_DB_* / QC_DB_* / PROD_DB_*.
// TimeZone=UTC để cột date không bị lệch ngày.
func getDBConfigByEnv(env string) (string, error) {
	var prefix string
	switch env {
	case "dev":
		prefix = "DEV_"
	case "qc":
		prefix = "QC_"
	case "prod":
		prefix = "PROD_"
	default:
		return "", fmt.Errorf("unknown environment: %s", env)
	}

	sslmode := getEnvDefault(prefix+"DB_SSLMODE", "require")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		os.Getenv(prefix+"DB_HOST"),
		os.Getenv(prefix+"DB_USER"),
		os.Getenv(prefix+"DB_PASSWORD"),
		os.Getenv(prefix+"DB_NAME"),
		os.Getenv(prefix+"DB_PORT"),
		sslmode,
	)
	return dsn, nil
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug":
		return gormlogger.Info
	case "error":
		return gormlogger.Error
	}
	return gormlogger.Warn
}

// ConnectDB mở kết nối Postgres qua pgx (DB_DRIVER=postgres) hoặc lib/pq (DB_DRIVER=pq)
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		var err error
		dsn, err = getDBConfigByEnv(cfg.Env)
		if err != nil {
			return nil, err
		}
	}

	var dialector gorm.Dialector
	if cfg.DBDriver == "pq" {
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, err
		}
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	} else {
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}
	return db, nil
}

// NewStore chọn kho dữ liệu theo DB_DRIVER; memory dùng cho chạy thử cục bộ.
// Trả về *sql.DB để health check, nil với memory.
func NewStore(cfg *Config, log logger.Logger) (*repository.Store, *sql.DB, error) {
	if cfg.DBDriver == "memory" {
		log.Info("using in-memory store")
		return repository.NewMemoryStore(), nil, nil
	}

	db, err := ConnectDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := repository.Migrate(db); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}

	DB = db
	log.Info("Successfully connected to db (%s)", cfg.DBDriver)
	return repository.NewPostgresStore(db), sqlDB, nil
}
