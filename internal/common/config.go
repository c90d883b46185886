package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Store   StoreConfig
	Server  ServerConfig
	Extract ExtractConfig
	Output  OutputConfig
}

// StoreConfig holds record-store configuration
type StoreConfig struct {
	Path        string
	InMemory    bool
	BusyTimeout time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr        string
	UploadDir   string
	MaxUploadMB int
}

// ExtractConfig holds extraction configuration
type ExtractConfig struct {
	CatalogPath string // optional YAML keyword catalog; empty = embedded defaults
	MaxFileSize int64
}

// OutputConfig holds batch output configuration
type OutputConfig struct {
	Dir        string
	TypeScript bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path:        getEnv("STORE_PATH", "./brochures.db"),
			InMemory:    getEnvAsBool("STORE_INMEM", false),
			BusyTimeout: getEnvAsDuration("STORE_BUSY_TIMEOUT", 5*time.Second),
		},
		Server: ServerConfig{
			Addr:        getEnv("HTTP_ADDR", ":8080"),
			UploadDir:   getEnv("UPLOAD_DIR", "./tmp/uploads"),
			MaxUploadMB: getEnvAsInt("MAX_UPLOAD_MB", 64),
		},
		Extract: ExtractConfig{
			CatalogPath: getEnv("CATALOG_PATH", ""),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 100*1024*1024),
		},
		Output: OutputConfig{
			Dir:        getEnv("OUTPUT_DIR", "./extracted"),
			TypeScript: getEnvAsBool("OUTPUT_TYPESCRIPT", true),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if !c.Store.InMemory && c.Store.Path == "" {
		return NewAppError("CONFIG_ERROR", "STORE_PATH is required", ErrInvalidInput)
	}
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Output.Dir == "" {
		return NewAppError("CONFIG_ERROR", "OUTPUT_DIR is required", ErrInvalidInput)
	}
	return nil
}
