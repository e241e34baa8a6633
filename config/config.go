package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds runtime settings read from the environment.
type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	DBDriver      string
	MongoURI      string
	MongoDatabase string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	S3Region      string
	S3Bucket      string
	S3Endpoint    string
	CloudFrontURL string
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Port:     getenv("PORT", "8080"),
		GinMode:  os.Getenv("GIN_MODE"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		DBDriver:      strings.ToLower(getenv("DB_DRIVER", DriverMongo)),
		MongoURI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getenv("MONGO_DATABASE", "diary"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "diary"),
		DBPort:     getenv("DB_PORT", "5432"),

		S3Region:      os.Getenv("S3_REGION"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		S3Endpoint:    os.Getenv("S3_ENDPOINT"),
		CloudFrontURL: os.Getenv("CLOUDFRONT_URL"),
	}
	if cfg.S3Region == "" {
		cfg.S3Region = os.Getenv("AWS_REGION") // fallback
	}

	switch cfg.DBDriver {
	case DriverMongo, DriverPostgres, DriverMemory:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}

// PostgresDSN builds the DSN from the DB_* settings.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func (c *Config) ExportEnabled() bool {
	return c.S3Bucket != ""
}

// NewLogger returns a JSON logger in release mode and a text logger otherwise.
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.GinMode == "release" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
