package config

const EnvPrefix = "WISHLIST"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	EnvAppEnv          = "WISHLIST_APP_ENV"
	EnvPort            = "WISHLIST_APP_PORT"
	EnvLogLevel        = "WISHLIST_LOG_LEVEL"
	EnvLogFormat       = "WISHLIST_LOG_FORMAT"
	EnvDBDriver        = "WISHLIST_DB_DRIVER"
	EnvDBDSN           = "WISHLIST_DB_DSN"
	EnvRedisURL        = "WISHLIST_REDIS_URL"
	EnvRedisAddr       = "WISHLIST_REDIS_ADDR"
	EnvKnownCategories = "WISHLIST_KNOWN_CATEGORIES"
	EnvAutoMigrate     = "WISHLIST_AUTO_MIGRATE"
	EnvIdempotencyTTL  = "WISHLIST_IDEMPOTENCY_TTL"
	EnvCORSOrigins     = "WISHLIST_CORS_ORIGINS"
)
