package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Storage       StorageConfig
	Redis         RedisConfig
	Checkout      CheckoutConfig
	Notifications NotificationsConfig
	Orders        OrdersConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(&cfg.Redis); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CAFEORO_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"CAFEORO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CAFEORO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type StorageConfig struct {
	// Backend selects where the serialized cart lives: memory, sqlite or redis.
	Backend    string `envconfig:"CAFEORO_STORAGE_BACKEND" default:"memory"`
	CartKey    string `envconfig:"CAFEORO_STORAGE_CART_KEY" default:"cafeOroCart"`
	SQLitePath string `envconfig:"CAFEORO_STORAGE_SQLITE_PATH" default:"storefront.db"`
}

func (s *StorageConfig) validate(redis *RedisConfig) error {
	backend := strings.ToLower(strings.TrimSpace(s.Backend))
	switch backend {
	case StorageBackendMemory, StorageBackendSQLite:
	case StorageBackendRedis:
		if redis.URL == "" && redis.Address == "" {
			return fmt.Errorf("%s or %s is required for the redis backend", EnvRedisURL, EnvRedisAddr)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", s.Backend)
	}
	s.Backend = backend
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"CAFEORO_REDIS_URL"`
	Address      string        `envconfig:"CAFEORO_REDIS_ADDR"`
	Password     string        `envconfig:"CAFEORO_REDIS_PASSWORD"`
	DB           int           `envconfig:"CAFEORO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CAFEORO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CAFEORO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CAFEORO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CAFEORO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CAFEORO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CheckoutConfig struct {
	// ShippingFeeCents is the flat shipping charge applied to any non-empty cart.
	ShippingFeeCents  int64         `envconfig:"CAFEORO_SHIPPING_FEE_CENTS" default:"5000"`
	SuccessPanelDelay time.Duration `envconfig:"CAFEORO_SUCCESS_PANEL_DELAY" default:"500ms"`
}

type NotificationsConfig struct {
	DisplayDuration time.Duration `envconfig:"CAFEORO_NOTIFICATION_DURATION" default:"2500ms"`
}

type OrdersConfig struct {
	NumberPrefix string `envconfig:"CAFEORO_ORDER_NUMBER_PREFIX" default:"CO-"`
}
