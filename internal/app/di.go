// Package app provides the dependency injection container for assembling
// application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	authService "github.com/hireassist/backend/internal/auth/service"
	"github.com/hireassist/backend/internal/config"
	cryptoService "github.com/hireassist/backend/internal/crypto/service"
	"github.com/hireassist/backend/internal/http"
	"github.com/hireassist/backend/internal/metrics"
	"github.com/hireassist/backend/internal/storage"
	userHTTP "github.com/hireassist/backend/internal/user/http"
	userRepository "github.com/hireassist/backend/internal/user/repository"
	userService "github.com/hireassist/backend/internal/user/service"
	userUsecase "github.com/hireassist/backend/internal/user/usecase"
)

// Container holds all application dependencies and provides methods to
// access them. Components are created lazily on first access.
type Container struct {
	config *config.Config

	logger     *slog.Logger
	store      storage.Store
	redisStore *storage.RedisStore

	tokenSecret string

	tokenService authService.TokenService
	fieldCrypto  *userService.FieldCrypto

	userRepo    userUsecase.UserRepository
	sessionRepo userUsecase.SessionRepository
	directory   userUsecase.Directory

	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                sync.Mutex
	loggerInit        sync.Once
	storeInit         sync.Once
	tokenSecretInit   sync.Once
	tokenServiceInit  sync.Once
	fieldCryptoInit   sync.Once
	userRepoInit      sync.Once
	sessionRepoInit   sync.Once
	directoryInit     sync.Once
	metricsInit       sync.Once
	httpServerInit    sync.Once
	metricsServerInit sync.Once
	initErrors        map[string]error
}

// NewContainer creates a new dependency injection container with the
// provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance. The first access also
// logs the weak-default warnings so they show up exactly once per process.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()

		if c.config.UsingDefaultSecret {
			c.logger.Warn("TOKEN_SECRET is not set; using the built-in development default. " +
				"Set TOKEN_SECRET before deploying.")
		}
		if c.config.UsingDerivedEncryptionKey() {
			c.logger.Warn("ENCRYPTION_KEY is not set; deriving the field encryption key " +
				"from the token secret. Set ENCRYPTION_KEY before deploying.")
		}
	})
	return c.logger
}

// Store returns the key-value store selected by the storage driver config.
func (c *Container) Store() (storage.Store, error) {
	c.storeInit.Do(func() {
		store, err := c.initStore()
		if err != nil {
			c.initErrors["store"] = err
			return
		}
		c.store = store
	})
	if err, exists := c.initErrors["store"]; exists {
		return nil, err
	}
	return c.store, nil
}

// TokenSecret returns the resolved HMAC signing secret. When an encrypted
// secret and a KMS key URI are configured, the plaintext is fetched through
// the KMS keeper; otherwise the plain TOKEN_SECRET value is used.
func (c *Container) TokenSecret() (string, error) {
	c.tokenSecretInit.Do(func() {
		secret, err := c.initTokenSecret()
		if err != nil {
			c.initErrors["tokenSecret"] = err
			return
		}
		c.tokenSecret = secret
	})
	if err, exists := c.initErrors["tokenSecret"]; exists {
		return "", err
	}
	return c.tokenSecret, nil
}

// TokenService returns the session token service.
func (c *Container) TokenService() (authService.TokenService, error) {
	c.tokenServiceInit.Do(func() {
		service, err := c.initTokenService()
		if err != nil {
			c.initErrors["tokenService"] = err
			return
		}
		c.tokenService = service
	})
	if err, exists := c.initErrors["tokenService"]; exists {
		return nil, err
	}
	return c.tokenService, nil
}

// FieldCrypto returns the profile field encryption service.
func (c *Container) FieldCrypto() (*userService.FieldCrypto, error) {
	c.fieldCryptoInit.Do(func() {
		fieldCrypto, err := c.initFieldCrypto()
		if err != nil {
			c.initErrors["fieldCrypto"] = err
			return
		}
		c.fieldCrypto = fieldCrypto
	})
	if err, exists := c.initErrors["fieldCrypto"]; exists {
		return nil, err
	}
	return c.fieldCrypto, nil
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	c.userRepoInit.Do(func() {
		store, err := c.Store()
		if err != nil {
			c.initErrors["userRepo"] = fmt.Errorf("failed to get store for user repository: %w", err)
			return
		}
		c.userRepo = userRepository.NewKVUserRepository(store)
	})
	if err, exists := c.initErrors["userRepo"]; exists {
		return nil, err
	}
	return c.userRepo, nil
}

// SessionRepository returns the session repository instance.
func (c *Container) SessionRepository() (userUsecase.SessionRepository, error) {
	c.sessionRepoInit.Do(func() {
		store, err := c.Store()
		if err != nil {
			c.initErrors["sessionRepo"] = fmt.Errorf("failed to get store for session repository: %w", err)
			return
		}
		c.sessionRepo = userRepository.NewKVSessionRepository(store)
	})
	if err, exists := c.initErrors["sessionRepo"]; exists {
		return nil, err
	}
	return c.sessionRepo, nil
}

// Directory returns the user directory use case, wrapped with metrics when
// metrics are enabled.
func (c *Container) Directory() (userUsecase.Directory, error) {
	c.directoryInit.Do(func() {
		directory, err := c.initDirectory()
		if err != nil {
			c.initErrors["directory"] = err
			return
		}
		c.directory = directory
	})
	if err, exists := c.initErrors["directory"]; exists {
		return nil, err
	}
	return c.directory, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are
// disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	if err := c.initMetrics(); err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. A no-op recorder
// is returned when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	if err := c.initMetrics(); err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the API server with its routes configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if err, exists := c.initErrors["httpServer"]; exists {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are
// disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if err, exists := c.initErrors["metricsServer"]; exists {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.redisStore != nil {
		if err := c.redisStore.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("redis close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates a structured JSON logger from the configured level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initStore selects the key-value store backend from configuration.
func (c *Container) initStore() (storage.Store, error) {
	switch c.config.StorageDriver {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "redis":
		store, err := storage.NewRedisStore(context.Background(), c.config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.redisStore = store
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", c.config.StorageDriver)
	}
}

// initTokenSecret resolves the signing secret, decrypting through the KMS
// keeper when configured.
func (c *Container) initTokenSecret() (string, error) {
	if c.config.TokenSecretEncrypted != "" && c.config.KMSKeyURI != "" {
		kms := cryptoService.NewKMSService()
		secret, err := kms.DecryptSecret(context.Background(), c.config.KMSKeyURI, c.config.TokenSecretEncrypted)
		if err != nil {
			return "", fmt.Errorf("failed to decrypt token secret: %w", err)
		}
		return secret, nil
	}
	return c.config.TokenSecret, nil
}

// initTokenService creates the session token service.
func (c *Container) initTokenService() (authService.TokenService, error) {
	secret, err := c.TokenSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to get token secret for token service: %w", err)
	}

	signer := cryptoService.NewHMACSigner([]byte(secret))
	return authService.NewTokenService(signer, c.config.SessionTokenExpiration), nil
}

// initFieldCrypto derives the field encryption key and creates the cipher.
func (c *Container) initFieldCrypto() (*userService.FieldCrypto, error) {
	secret, err := c.TokenSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to get token secret for field crypto: %w", err)
	}

	key, err := cryptoService.FieldEncryptionKey(c.config.EncryptionKey, secret)
	if err != nil {
		return nil, fmt.Errorf("failed to derive field encryption key: %w", err)
	}

	cipher, err := cryptoService.NewAESGCM(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create field cipher: %w", err)
	}

	return userService.NewFieldCrypto(cipher, c.Logger()), nil
}

// initDirectory creates the user directory with its dependencies and wraps
// it with metrics instrumentation when enabled.
func (c *Container) initDirectory() (userUsecase.Directory, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, err
	}
	sessionRepo, err := c.SessionRepository()
	if err != nil {
		return nil, err
	}
	tokens, err := c.TokenService()
	if err != nil {
		return nil, err
	}
	fieldCrypto, err := c.FieldCrypto()
	if err != nil {
		return nil, err
	}

	directory := userUsecase.NewUserDirectory(userRepo, sessionRepo, tokens, fieldCrypto, c.Logger())

	business, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}
	return userUsecase.NewDirectoryWithMetrics(directory, business), nil
}

// initMetrics creates the metrics provider and business metrics recorder.
func (c *Container) initMetrics() error {
	c.metricsInit.Do(func() {
		if !c.config.MetricsEnabled {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}

		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metrics"] = fmt.Errorf("failed to create metrics provider: %w", err)
			return
		}

		business, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metrics"] = fmt.Errorf("failed to create business metrics: %w", err)
			return
		}

		c.metricsProvider = provider
		c.businessMetrics = business
	})
	if err, exists := c.initErrors["metrics"]; exists {
		return err
	}
	return nil
}

// initHTTPServer creates the API server with its routes configured.
func (c *Container) initHTTPServer() (*http.Server, error) {
	directory, err := c.Directory()
	if err != nil {
		return nil, fmt.Errorf("failed to get directory for http server: %w", err)
	}

	logger := c.Logger()
	server := http.NewServer(c.config, logger)

	handler := userHTTP.NewUserHandler(directory, logger)

	var meterProvider *metrics.Provider
	if c.config.MetricsEnabled {
		meterProvider, err = c.MetricsProvider()
		if err != nil {
			return nil, err
		}
	}
	if meterProvider != nil {
		server.SetupRouter(handler, meterProvider.MeterProvider())
	} else {
		server.SetupRouter(handler, nil)
	}

	return server, nil
}
