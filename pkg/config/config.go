package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Cart    CartConfig
	Redis   RedisConfig
	CORS    CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Cart.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BESTSHOP_APP_ENV" required:"true"`
	Port         string `envconfig:"BESTSHOP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"BESTSHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BESTSHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CatalogConfig struct {
	// URL points at the static catalog document ({"data": [...]}).
	URL          string        `envconfig:"BESTSHOP_CATALOG_URL" required:"true"`
	FetchTimeout time.Duration `envconfig:"BESTSHOP_CATALOG_FETCH_TIMEOUT" default:"10s"`
	// CacheTTL bounds how long a fetched snapshot is reused. The storefront
	// loads the catalog once per page view; the TTL is that window server-side.
	CacheTTL     time.Duration `envconfig:"BESTSHOP_CATALOG_CACHE_TTL" default:"1m"`
	ItemsPerPage int           `envconfig:"BESTSHOP_CATALOG_ITEMS_PER_PAGE" default:"12"`
}

type CartConfig struct {
	// DiscountThreshold is the subtotal at which the percentage discount applies.
	DiscountThreshold int           `envconfig:"BESTSHOP_CART_DISCOUNT_THRESHOLD" default:"3000"`
	DiscountRate      float64       `envconfig:"BESTSHOP_CART_DISCOUNT_RATE" default:"0.1"`
	ShippingCost      int           `envconfig:"BESTSHOP_CART_SHIPPING_COST" default:"30"`
	// MaxQuantity bounds the quantity input of a single request, not the
	// accumulated line quantity.
	MaxQuantity       int           `envconfig:"BESTSHOP_CART_MAX_QUANTITY" default:"99"`
	SessionTTL        time.Duration `envconfig:"BESTSHOP_CART_SESSION_TTL" default:"720h"`
}

func (c CartConfig) validate() error {
	if c.DiscountRate < 0 || c.DiscountRate >= 1 {
		return fmt.Errorf("cart discount rate must be in [0, 1), got %v", c.DiscountRate)
	}
	if c.ShippingCost < 0 {
		return fmt.Errorf("cart shipping cost must be non-negative, got %d", c.ShippingCost)
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"BESTSHOP_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BESTSHOP_REDIS_ADDR"`
	Password     string        `envconfig:"BESTSHOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"BESTSHOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BESTSHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BESTSHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BESTSHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BESTSHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BESTSHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"BESTSHOP_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
