package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Ledger   LedgerConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds the summary-cache connection. An empty Addr disables
// caching entirely.
type RedisConfig struct {
	Addr string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

// LedgerConfig carries the threshold and pagination knobs consumed by the
// engines as explicit constructor parameters.
type LedgerConfig struct {
	// BudgetAlertPercent triggers a budget alert when the month's expenses
	// reach this percentage of income.
	BudgetAlertPercent float64
	// LargeTransactionPercent flags any single expense at or above this
	// percentage of the month's income.
	LargeTransactionPercent float64
	DefaultPageSize         int
}

type LoggerConfig struct {
	Level string
}

func Load() (*Config, error) {
	// A missing .env file is fine; plain environment variables work for
	// Docker and CI.
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	budgetPercent, _ := strconv.ParseFloat(getEnv("BUDGET_ALERT_PERCENT", "90"), 64)
	largeTxPercent, _ := strconv.ParseFloat(getEnv("LARGE_TRANSACTION_PERCENT", "25"), 64)
	pageSize, _ := strconv.Atoi(getEnv("DEFAULT_PAGE_SIZE", "20"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "finledger"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		Ledger: LedgerConfig{
			BudgetAlertPercent:      budgetPercent,
			LargeTransactionPercent: largeTxPercent,
			DefaultPageSize:         pageSize,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
