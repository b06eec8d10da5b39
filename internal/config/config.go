package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "GATEWAY_"

// DefaultBankBaseURL is used when no bank URL is configured.
const DefaultBankBaseURL = "http://localhost:8080"

type Config struct {
	Primary    Primary       `koanf:"primary"`
	Server     ServerConfig  `koanf:"server"`
	BankClient BankConfig    `koanf:"bank_client"`
	Logger     LoggerConfig  `koanf:"logger"`
	Metrics    MetricsConfig `koanf:"metrics"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

type BankConfig struct {
	BankBaseURL     string        `koanf:"bank_base_url" validate:"required,url"`
	BankConnTimeout time.Duration `koanf:"bank_conn_timeout" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `koanf:"format" validate:"omitempty,oneof=json text"`
}

type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace" validate:"required"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                   "development",
		"server.port":                   "8090",
		"server.read_timeout":           "15s",
		"server.write_timeout":          "15s",
		"server.idle_timeout":           "60s",
		"server.request_timeout":        "10s",
		"bank_client.bank_base_url":     DefaultBankBaseURL,
		"bank_client.bank_conn_timeout": "5s",
		"logger.level":                  "info",
		"logger.format":                 "json",
		"metrics.enabled":               true,
		"metrics.namespace":             "gateway",
	}
}

// LoadConfig reads defaults, then GATEWAY_ prefixed environment variables.
// Nested keys use a double underscore: GATEWAY_BANK_CLIENT__BANK_BASE_URL.
func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return mainConfig, nil
}
