package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Wishlist WishlistConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	cfg.Wishlist.KnownCategories = normalizeCategories(cfg.Wishlist.KnownCategories)
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"WISHLIST_APP_ENV" default:"dev"`
	Port         string `envconfig:"WISHLIST_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"WISHLIST_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"WISHLIST_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"WISHLIST_LOG_WARN_STACK" default:"false"`

	// CORSOrigins is comma separated; "*" admits every origin.
	CORSOrigins []string `envconfig:"WISHLIST_CORS_ORIGINS" default:"*"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"WISHLIST_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"WISHLIST_DB_DSN" default:"wishlist.db"`

	MaxOpenConns    int           `envconfig:"WISHLIST_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"WISHLIST_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"WISHLIST_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"WISHLIST_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the configured driver is the embedded sqlite store.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

func (db DBConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(db.Driver)) {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%s must be one of %s, %s (got %q)", EnvDBDriver, DriverSQLite, DriverPostgres, db.Driver)
	}
	if strings.TrimSpace(db.DSN) == "" {
		return fmt.Errorf("%s is required", EnvDBDSN)
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"WISHLIST_REDIS_URL"`
	Address      string        `envconfig:"WISHLIST_REDIS_ADDR"`
	Password     string        `envconfig:"WISHLIST_REDIS_PASSWORD"`
	DB           int           `envconfig:"WISHLIST_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"WISHLIST_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"WISHLIST_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"WISHLIST_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"WISHLIST_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WISHLIST_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured. Redis is optional;
// without it idempotent replay of item submissions is switched off.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type WishlistConfig struct {
	KnownCategories []string      `envconfig:"WISHLIST_KNOWN_CATEGORIES" default:"Clothing,Electronics,Home & Furniture,Books,Miscellaneous,Uncategorized"`
	AutoMigrate     bool          `envconfig:"WISHLIST_AUTO_MIGRATE" default:"true"`
	IdempotencyTTL  time.Duration `envconfig:"WISHLIST_IDEMPOTENCY_TTL" default:"24h"`
}

func normalizeCategories(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		name := strings.TrimSpace(v)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
