package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Mongo  MongoConfig
	Sheets SheetsConfig
	JWT    JWTConfig
	Cache  CacheConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	CORSOrigins []string
}

// MongoConfig holds the credential database configuration
type MongoConfig struct {
	URL  string
	Name string
}

// SheetsConfig holds the spreadsheet row store configuration
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsFile string
	Timeout         time.Duration
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	Expiration string
}

type CacheConfig struct {
	TTL time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		CORSOrigins: getEnvSlice("CORS_ORIGINS"),
	}
	if len(config.App.CORSOrigins) == 0 {
		config.App.CORSOrigins = []string{"*"}
	}

	// Credential database configuration
	config.Mongo = MongoConfig{
		URL:  getEnv("MONGO_URL", ""),
		Name: getEnv("DB_NAME", "attendance"),
	}

	// Row store configuration
	sheetsTimeout, err := time.ParseDuration(getEnv("SHEETS_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHEETS_TIMEOUT: %w", err)
	}

	config.Sheets = SheetsConfig{
		SpreadsheetID:   getEnv("SPREADSHEET_ID", ""),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		Timeout:         sheetsTimeout,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:     getEnv("JWT_SECRET_KEY", ""),
		Expiration: getEnv("JWT_EXPIRATION_TIME", "24h"),
	}

	// Cache configuration
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	config.Cache = CacheConfig{TTL: cacheTTL}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Mongo.URL == "" {
		return fmt.Errorf("MONGO_URL is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("SPREADSHEET_ID is required")
	}
	if c.Sheets.CredentialsFile == "" {
		return fmt.Errorf("GOOGLE_CREDENTIALS_FILE is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
