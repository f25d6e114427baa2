// Package config loads boltctl settings and carries them through the cobra
// command context. Settings come from ~/.bolt/config.yaml, BOLT_* environment
// variables, and flags, in increasing precedence.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/authstore"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/client"
)

type contextKey string

const configKey contextKey = "boltctl-config"

// GlobalConfig holds shared configuration for all boltctl commands. It is
// injected into the cobra command context by the root command's
// PersistentPreRun hook and consumed by all subcommands.
type GlobalConfig struct {
	ServerURL      string
	RequestTimeout time.Duration
	NonInteractive bool
	Logger         *zap.Logger
	Provider       *client.Provider
}

// Load reads the config file and environment. Flag values still override the
// result; the caller applies them afterwards.
func Load() (*GlobalConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := authstore.Dir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix("BOLT")
	v.AutomaticEnv()

	v.SetDefault("server", "http://localhost:5000")
	v.SetDefault("timeout", "10s")
	v.SetDefault("log_level", "warn")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", v.GetString("timeout"), err)
	}

	logger, err := buildLogger(v.GetString("log_level"))
	if err != nil {
		return nil, err
	}

	return &GlobalConfig{
		ServerURL:      v.GetString("server"),
		RequestTimeout: timeout,
		Logger:         logger,
	}, nil
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// InjectConfig adds config to the cobra command context. This should be
// called in the root command's PersistentPreRun.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context. Returns
// (nil, false) if config is not present.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics. This should only
// be used in command RunE functions where we know the config has been
// injected by the root command.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("boltctl: config not found in context - this is a bug in boltctl")
	}
	return cfg
}
