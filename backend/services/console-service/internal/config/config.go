package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "aether/backend/libs/config"
)

// OperatorConfig declares one console account.
type OperatorConfig struct {
	Name         string `yaml:"name" env:"-"`
	PasswordHash string `yaml:"passwordHash" env:"-"`
	Role         string `yaml:"role" env:"-"`
}

// Config defines console-service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"CONSOLE_HTTP_PORT"`
	} `yaml:"http"`
	Database struct {
		DSN string `yaml:"dsn" env:"CONSOLE_POSTGRES_DSN"`
	} `yaml:"database"`
	Redis struct {
		Addr       string `yaml:"addr" env:"CONSOLE_REDIS_ADDR"`
		Password   string `yaml:"password" env:"CONSOLE_REDIS_PASSWORD"`
		DB         int    `yaml:"db" env:"CONSOLE_REDIS_DB"`
		TTLSeconds int    `yaml:"ttlSeconds" env:"CONSOLE_REDIS_TTL"`
	} `yaml:"redis"`
	Storage struct {
		Endpoint  string `yaml:"endpoint" env:"CONSOLE_S3_ENDPOINT"`
		AccessKey string `yaml:"accessKey" env:"CONSOLE_S3_ACCESS_KEY"`
		SecretKey string `yaml:"secretKey" env:"CONSOLE_S3_SECRET_KEY"`
		UseSSL    bool   `yaml:"useSSL" env:"CONSOLE_S3_USE_SSL"`
		Bucket    string `yaml:"bucket" env:"CONSOLE_S3_BUCKET"`
		Object    string `yaml:"object" env:"CONSOLE_S3_OBJECT"`
	} `yaml:"storage"`
	Artifacts struct {
		ClassifierPath string `yaml:"classifierPath" env:"CONSOLE_CLASSIFIER_PATH"`
		ForecasterPath string `yaml:"forecasterPath" env:"CONSOLE_FORECASTER_PATH"`
	} `yaml:"artifacts"`
	Auth struct {
		Secret          string           `yaml:"secret" env:"CONSOLE_JWT_SECRET"`
		TokenTTLMinutes int              `yaml:"tokenTtlMinutes" env:"CONSOLE_JWT_TTL_MINUTES"`
		Operators       []OperatorConfig `yaml:"operators" env:"-"`
	} `yaml:"auth"`
	Forecast struct {
		BaselineTemp float64 `yaml:"baselineTemp" env:"CONSOLE_FORECAST_BASELINE"`
	} `yaml:"forecast"`
	Feed struct {
		IntervalSeconds int `yaml:"intervalSeconds" env:"CONSOLE_FEED_INTERVAL"`
	} `yaml:"feed"`
}

// Load reads configuration via the shared helper and applies defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.HTTP.Port = "8090"
	cfg.Redis.Addr = "localhost:6379"
	cfg.Redis.TTLSeconds = 10
	cfg.Storage.Bucket = "aether-project-data"
	cfg.Storage.Object = "telemetry_batch_1.csv"
	cfg.Artifacts.ClassifierPath = "artifacts/classifier.json"
	cfg.Artifacts.ForecasterPath = "artifacts/forecaster.json"
	cfg.Auth.TokenTTLMinutes = 60
	cfg.Forecast.BaselineTemp = 100.0
	cfg.Feed.IntervalSeconds = 1

	if err := libconfig.Load(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, errors.New("config: database dsn required")
	}
	if strings.TrimSpace(cfg.Redis.Addr) == "" {
		return nil, errors.New("config: redis addr required")
	}
	if strings.TrimSpace(cfg.Auth.Secret) == "" {
		return nil, errors.New("config: jwt secret required")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8090"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// DatasetTTL returns the dataset cache TTL as duration.
func (c *Config) DatasetTTL() time.Duration {
	if c.Redis.TTLSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Redis.TTLSeconds) * time.Second
}

// TokenTTL returns JWT lifetime as duration.
func (c *Config) TokenTTL() time.Duration {
	if c.Auth.TokenTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.Auth.TokenTTLMinutes) * time.Minute
}

// FeedInterval returns the live feed tick interval.
func (c *Config) FeedInterval() time.Duration {
	if c.Feed.IntervalSeconds <= 0 {
		return time.Second
	}
	return time.Duration(c.Feed.IntervalSeconds) * time.Second
}
