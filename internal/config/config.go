// Package config loads the automator settings from an optional YAML file and
// SENDMONEY_ environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"

	"github.com/grez-lucas/sendmoney-automator/internal/automator/transfer"
)

const envPrefix = "SENDMONEY_"

type Config struct {
	Sender   SenderCard     `koanf:"sender" yaml:"sender"`
	Receiver ReceiverCard   `koanf:"receiver" yaml:"receiver"`
	Transfer TransferConfig `koanf:"transfer" yaml:"transfer"`
	Browser  BrowserConfig  `koanf:"browser" yaml:"browser"`
	Logger   LoggerConfig   `koanf:"logger" yaml:"logger"`
}

type SenderCard struct {
	Number       string `koanf:"number" yaml:"number" validate:"required,len=19"`
	ExpiresMonth string `koanf:"expires_month" yaml:"expires_month" validate:"required,len=2,numeric"`
	ExpiresYear  string `koanf:"expires_year" yaml:"expires_year" validate:"required,len=2,numeric"`
	Cvv          string `koanf:"cvv" yaml:"cvv" validate:"required,len=3,numeric"`
}

type ReceiverCard struct {
	Number string `koanf:"number" yaml:"number" validate:"required,len=19"`
}

type TransferConfig struct {
	Amount      string `koanf:"amount" yaml:"amount" validate:"required"`
	PhoneNumber string `koanf:"phone_number" yaml:"phone_number" validate:"omitempty,len=12,numeric,startswith=380"`
}

type BrowserConfig struct {
	Bin          string        `koanf:"bin" yaml:"bin"`
	UserDataDir  string        `koanf:"user_data_dir" yaml:"user_data_dir"`
	Headless     bool          `koanf:"headless" yaml:"headless"`
	HumanTyping  bool          `koanf:"human_typing" yaml:"human_typing"`
	WaitTimeout  time.Duration `koanf:"wait_timeout" yaml:"wait_timeout" validate:"required"`
	PollInterval time.Duration `koanf:"poll_interval" yaml:"poll_interval" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format" validate:"omitempty,oneof=text json"`
}

// Default returns the settings every loaded config starts from.
func Default() *Config {
	return &Config{
		Browser: BrowserConfig{
			Headless:     false,
			WaitTimeout:  10 * time.Second,
			PollInterval: 500 * time.Millisecond,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads path (skipped when empty or missing), then overlays
// SENDMONEY_ environment variables, e.g. SENDMONEY_SENDER__NUMBER.
func LoadConfig(path string) (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				logger.Error("failed to load config file", "path", path, "error", err)
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
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

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		logger.Error("could not unmarshal config", "error", err)
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if _, err := transfer.ParseAmount(c.Transfer.Amount); err != nil {
		return err
	}
	return nil
}

// Request converts the card settings into the transfer request of one run.
func (c *Config) Request() (transfer.Request, error) {
	amount, err := transfer.ParseAmount(c.Transfer.Amount)
	if err != nil {
		return transfer.Request{}, err
	}

	return transfer.Request{
		Sender: transfer.Card{
			Number:       c.Sender.Number,
			ExpiresMonth: c.Sender.ExpiresMonth,
			ExpiresYear:  c.Sender.ExpiresYear,
			SecurityCode: c.Sender.Cvv,
		},
		Receiver:    transfer.Card{Number: c.Receiver.Number},
		Amount:      amount,
		PhoneNumber: c.Transfer.PhoneNumber,
	}, nil
}

func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
