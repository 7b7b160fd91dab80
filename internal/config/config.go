package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// Config carries every runtime knob for the arms service. Values come from
// environment variables prefixed with ARMS_ (ARMS_HTTP_ADDR, ARMS_DB_DSN, ...)
// with an optional .env file for local development.
type Config struct {
	HTTPAddr string

	DBDriver string // "postgres" or "sqlite"
	DBDSN    string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// Invoice factory tuning.
	FactoryFanOut       int
	FactoryMaxRetries   int
	FactoryBaseBackoff  time.Duration
	FactoryBufferSize   int
	FactoryDrainTimeout time.Duration

	MetricsEnabled bool
}

func Load() (*Config, error) {
	// best effort; absence of a .env file is the normal production case
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("ARMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "file:arms.db?cache=shared")
	v.SetDefault("jwt.secret", "defaultSecretKey12345678901234567890")
	v.SetDefault("jwt.access_ttl", time.Hour)
	v.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)
	v.SetDefault("factory.fan_out", 5)
	v.SetDefault("factory.max_retries", 3)
	v.SetDefault("factory.base_backoff", 200*time.Millisecond)
	v.SetDefault("factory.buffer_size", 100)
	v.SetDefault("factory.drain_timeout", 30*time.Second)
	v.SetDefault("metrics.enabled", true)

	cfg := &Config{
		HTTPAddr:            v.GetString("http.addr"),
		DBDriver:            v.GetString("db.driver"),
		DBDSN:               v.GetString("db.dsn"),
		JWTSecret:           v.GetString("jwt.secret"),
		AccessTokenTTL:      v.GetDuration("jwt.access_ttl"),
		RefreshTokenTTL:     v.GetDuration("jwt.refresh_ttl"),
		FactoryFanOut:       v.GetInt("factory.fan_out"),
		FactoryMaxRetries:   v.GetInt("factory.max_retries"),
		FactoryBaseBackoff:  v.GetDuration("factory.base_backoff"),
		FactoryBufferSize:   v.GetInt("factory.buffer_size"),
		FactoryDrainTimeout: v.GetDuration("factory.drain_timeout"),
		MetricsEnabled:      v.GetBool("metrics.enabled"),
	}
	return cfg, nil
}

var Module = fx.Module("config",
	fx.Provide(Load),
)
