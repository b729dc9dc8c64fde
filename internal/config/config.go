// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// DefaultTokenSecret is the fallback HMAC secret used when TOKEN_SECRET is
// not set. It exists so that local development works out of the box; running
// with it in production is a deployment error and is logged loudly at startup.
const DefaultTokenSecret = "hireassist-default-secret-change-in-production"

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// StorageDriver selects the key-value store backend ("memory" or "redis").
	StorageDriver string
	// RedisURL is the connection URL for the redis storage driver.
	RedisURL string

	// TokenSecret is the HMAC key for signing session tokens.
	TokenSecret string
	// TokenSecretEncrypted is a base64 ciphertext of the token secret,
	// decrypted through the KMS keeper at KMSKeyURI when set.
	TokenSecretEncrypted string
	// KMSKeyURI is the gocloud.dev/secrets keeper URI used to decrypt
	// TokenSecretEncrypted (e.g., "hashivault://keyname", "base64key://...").
	KMSKeyURI string
	// UsingDefaultSecret reports that TokenSecret fell back to the built-in
	// development default.
	UsingDefaultSecret bool

	// SessionTokenExpiration is the lifetime of minted session tokens.
	SessionTokenExpiration time.Duration

	// EncryptionKey is the passphrase for field-level encryption. When empty,
	// the field encryption key is derived from TokenSecret instead.
	EncryptionKey string

	// RateLimitEnabled indicates whether per-IP rate limiting is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the general per-IP request rate.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the general per-IP burst size.
	RateLimitBurst int
	// RateLimitRegisterPerHour caps registrations per IP per hour.
	RateLimitRegisterPerHour int
	// RateLimitProfilePerMin caps profile updates per IP per minute.
	RateLimitProfilePerMin int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// UsingDerivedEncryptionKey reports that no dedicated encryption passphrase
// was configured and field encryption will derive its key from the token
// secret. This is a known weak default and callers must log it at startup.
func (c *Config) UsingDerivedEncryptionKey() bool {
	return c.EncryptionKey == ""
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	tokenSecret := env.GetString("TOKEN_SECRET", "")
	usingDefault := false
	if tokenSecret == "" {
		tokenSecret = DefaultTokenSecret
		usingDefault = true
	}

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 3000),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Storage
		StorageDriver: env.GetString("STORAGE_DRIVER", "memory"),
		RedisURL:      env.GetString("REDIS_URL", "redis://localhost:6379/0"),

		// Session tokens
		TokenSecret:            tokenSecret,
		TokenSecretEncrypted:   env.GetString("TOKEN_SECRET_ENCRYPTED", ""),
		KMSKeyURI:              env.GetString("KMS_KEY_URI", ""),
		UsingDefaultSecret:     usingDefault,
		SessionTokenExpiration: env.GetDuration("SESSION_TOKEN_EXPIRATION_SECONDS", 86400, time.Second),

		// Field encryption
		EncryptionKey: env.GetString("ENCRYPTION_KEY", ""),

		// Rate Limiting
		RateLimitEnabled:         env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec:  env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:           env.GetInt("RATE_LIMIT_BURST", 20),
		RateLimitRegisterPerHour: env.GetInt("RATE_LIMIT_REGISTER_PER_HOUR", 5),
		RateLimitProfilePerMin:   env.GetInt("RATE_LIMIT_PROFILE_PER_MIN", 10),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", true),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", "chrome-extension://*,moz-extension://*"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "hireassist"),
		MetricsPort:      env.GetInt("METRICS_PORT", 3001),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
