package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/mcoot/gamemodules/internal/dependencies/clock"
	"github.com/mcoot/gamemodules/internal/ledger"
	memoryledger "github.com/mcoot/gamemodules/internal/ledger/memory"
	redisledger "github.com/mcoot/gamemodules/internal/ledger/redis"
	"github.com/mcoot/gamemodules/internal/nonce"
	noncememory "github.com/mcoot/gamemodules/internal/nonce/memory"
	nonceredis "github.com/mcoot/gamemodules/internal/nonce/redis"
	"github.com/mcoot/gamemodules/internal/services/asset"
	"github.com/mcoot/gamemodules/internal/services/auth"
	"github.com/mcoot/gamemodules/internal/services/combat"
	"github.com/mcoot/gamemodules/internal/services/registry"
	"github.com/mcoot/gamemodules/internal/services/stub"
	"github.com/mcoot/gamemodules/internal/storage"
	"github.com/mcoot/gamemodules/internal/storage/memory"
	redisstorage "github.com/mcoot/gamemodules/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage
	Ledger  ledger.Ledger
	Nonces  nonce.Store

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService     *auth.Service
	RegistryService *registry.Service
	CombatService   *combat.Service
	AssetService    *asset.Service
	StubService     *stub.Service

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage, ledger and nonce backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string `env:"GMOD_STORAGE_TYPE" envDefault:"memory"`
	// RedisConfig holds Redis connection settings (used if StorageType is "redis")
	RedisConfig redisstorage.Config
	// AuthConfig holds configuration for request proof verification
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// ConfigFromEnv reads the factory configuration from GMOD_* environment variables
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	clk := clock.New()

	var (
		store   storage.Storage
		ldg     ledger.Ledger
		nonces  nonce.Store
		closers []io.Closer
	)

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
		ldg = memoryledger.New()
		nonces = noncememory.New(clk)
	case StorageTypeRedis:
		if cfg.RedisConfig.URL == "" {
			return nil, errors.New("RedisConfig.URL required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		ldg = redisledger.New(redisStore.Client())
		nonces = nonceredis.New(redisStore.Client())
		closers = append(closers, redisStore)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	authCfg := cfg.AuthConfig
	if authCfg.MaxSkew == 0 {
		authCfg = auth.DefaultConfig()
	}

	app := newWithDependencies(store, ldg, nonces, clk, authCfg, logger)
	app.closers = closers
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, ldg ledger.Ledger, nonces nonce.Store, clk clock.Clock, authCfg auth.Config, logger *slog.Logger) *App {
	return &App{
		Storage:         store,
		Ledger:          ldg,
		Nonces:          nonces,
		Clock:           clk,
		AuthService:     auth.New(clk, nonces, authCfg),
		RegistryService: registry.New(store, logger),
		CombatService:   combat.New(store, logger),
		AssetService:    asset.New(ldg, logger),
		StubService:     stub.New(logger),
	}
}

// Close releases backend connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
