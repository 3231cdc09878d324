package config

const (
	EnvPrefix = "BESTSHOP"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside the envconfig tags
// (tests and bootstrap messages).
const (
	EnvAppEnv     = "BESTSHOP_APP_ENV"
	EnvPort       = "BESTSHOP_APP_PORT"
	EnvCatalogURL = "BESTSHOP_CATALOG_URL"
	EnvRedisURL   = "BESTSHOP_REDIS_URL"
)
