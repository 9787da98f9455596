/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Database backend selection.
type DatabaseBackend string

const (
	DatabasePostgres DatabaseBackend = "postgres"
	DatabaseMySQL    DatabaseBackend = "mysql"
	DatabaseSQLite   DatabaseBackend = "sqlite"
)

// Config covers process level configuration read from environment variables.
type Config struct {
	Environment   string
	HTTPBind      string
	HTTPPort      int
	BaseURL       string // Public base URL (e.g., https://pages.example.com)
	DBBackend     DatabaseBackend
	DBDSN         string
	JWTSigningKey string
	MetricsBind   string

	// Logo upload storage. Backend is "s3" or "fs".
	StorageBackend  string
	UploadRoot      string // Filesystem root when StorageBackend is "fs"
	MaxUploadSizeMB int

	// S3 Object Storage configuration
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3Bucket          string
	S3Endpoint        string // For S3-compatible services (MinIO, Spaces, etc.)
	S3PublicBaseURL   string // Optional CDN/CloudFront URL
	S3UsePathStyle    bool   // Required for MinIO

	// AI assist (OpenAI-compatible chat completion endpoint)
	AssistAPIKey  string
	AssistBaseURL string
	AssistModel   string
	AssistTimeout time.Duration

	// Published page cache
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PageCacheTTL  time.Duration

	// Tracing configuration
	TracingEnabled    bool
	OTLPEndpoint      string
	TracingSampleRate float64

	// GitHub "owner/name" repo polled for newer releases. Empty disables
	// the update check.
	UpdateRepo string
}

// Load reads environment variables, applies defaults, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		Environment:   getEnv("BRANDPAGE_ENV", "development"),
		HTTPBind:      getEnv("BRANDPAGE_HTTP_BIND", "0.0.0.0"),
		HTTPPort:      getEnvInt("BRANDPAGE_HTTP_PORT", 8080),
		BaseURL:       getEnv("BRANDPAGE_BASE_URL", ""),
		DBBackend:     DatabaseBackend(getEnv("BRANDPAGE_DB_BACKEND", string(DatabasePostgres))),
		DBDSN:         getEnv("BRANDPAGE_DB_DSN", ""),
		JWTSigningKey: getEnv("BRANDPAGE_JWT_SIGNING_KEY", ""),
		MetricsBind:   getEnv("BRANDPAGE_METRICS_BIND", "127.0.0.1:9000"),

		StorageBackend:  getEnv("BRANDPAGE_STORAGE_BACKEND", "fs"),
		UploadRoot:      getEnv("BRANDPAGE_UPLOAD_ROOT", "./uploads"),
		MaxUploadSizeMB: getEnvInt("BRANDPAGE_MAX_UPLOAD_SIZE_MB", 10),

		S3AccessKeyID:     getEnvAny([]string{"BRANDPAGE_S3_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID"}, ""),
		S3SecretAccessKey: getEnvAny([]string{"BRANDPAGE_S3_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY"}, ""),
		S3Region:          getEnvAny([]string{"BRANDPAGE_S3_REGION", "AWS_REGION"}, "us-east-1"),
		S3Bucket:          getEnvAny([]string{"BRANDPAGE_S3_BUCKET", "S3_BUCKET"}, ""),
		S3Endpoint:        getEnvAny([]string{"BRANDPAGE_S3_ENDPOINT", "S3_ENDPOINT"}, ""),
		S3PublicBaseURL:   getEnvAny([]string{"BRANDPAGE_S3_PUBLIC_BASE_URL", "S3_PUBLIC_BASE_URL"}, ""),
		S3UsePathStyle:    getEnvBool("BRANDPAGE_S3_USE_PATH_STYLE", false),

		AssistAPIKey:  getEnvAny([]string{"BRANDPAGE_ASSIST_API_KEY", "OPENAI_API_KEY"}, ""),
		AssistBaseURL: getEnv("BRANDPAGE_ASSIST_BASE_URL", "https://api.openai.com/v1"),
		AssistModel:   getEnv("BRANDPAGE_ASSIST_MODEL", "gpt-3.5-turbo"),
		AssistTimeout: time.Duration(getEnvInt("BRANDPAGE_ASSIST_TIMEOUT_SECONDS", 20)) * time.Second,

		RedisAddr:     getEnv("BRANDPAGE_REDIS_ADDR", ""),
		RedisPassword: getEnv("BRANDPAGE_REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("BRANDPAGE_REDIS_DB", 0),
		PageCacheTTL:  time.Duration(getEnvInt("BRANDPAGE_PAGE_CACHE_TTL_SECONDS", 300)) * time.Second,

		TracingEnabled:    getEnvBool("BRANDPAGE_TRACING_ENABLED", false),
		OTLPEndpoint:      getEnv("BRANDPAGE_OTLP_ENDPOINT", "localhost:4317"),
		TracingSampleRate: getEnvFloat("BRANDPAGE_TRACING_SAMPLE_RATE", 1.0),

		UpdateRepo: getEnv("BRANDPAGE_UPDATE_REPO", ""),
	}

	if cfg.DBBackend != DatabasePostgres && cfg.DBBackend != DatabaseMySQL && cfg.DBBackend != DatabaseSQLite {
		return nil, fmt.Errorf("unsupported database backend %q", cfg.DBBackend)
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("BRANDPAGE_DB_DSN must be provided")
	}

	if cfg.JWTSigningKey == "" {
		return nil, fmt.Errorf("BRANDPAGE_JWT_SIGNING_KEY must be provided")
	}

	if cfg.StorageBackend != "fs" && cfg.StorageBackend != "s3" {
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}

	if strings.EqualFold(cfg.Environment, "production") {
		if cfg.StorageBackend == "s3" && cfg.S3Bucket == "" {
			return nil, fmt.Errorf("BRANDPAGE_S3_BUCKET must be set when the s3 storage backend is enabled in production")
		}
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("BRANDPAGE_BASE_URL must be set in production")
		}
	}

	return cfg, nil
}

// MaxUploadSizeBytes returns the configured upload limit in bytes.
func (c *Config) MaxUploadSizeBytes() int64 {
	if c == nil || c.MaxUploadSizeMB <= 0 {
		return 10 * 1024 * 1024
	}
	return int64(c.MaxUploadSizeMB) * 1024 * 1024
}

// AssistConfigured reports whether the AI assist endpoint has credentials.
func (c *Config) AssistConfigured() bool {
	return c != nil && c.AssistAPIKey != ""
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvAny returns the first non-empty environment variable value from keys, or def if none set.
func getEnvAny(keys []string, def string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "true" || v == "1" || v == "yes" {
			return true
		}
		if v == "false" || v == "0" || v == "no" {
			return false
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}
