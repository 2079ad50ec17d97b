package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Arden28/studely-client/cmd/studelyctl/internal/client"
	"github.com/Arden28/studely-client/pkg/sdk"
)

const (
	configFile = "config.yaml"
	envServer  = "STUDELY_SERVER_URL"
	envDevice  = "STUDELY_DEVICE"
)

// FileConfig is the optional on-disk configuration under ~/.studely.
type FileConfig struct {
	ServerURL string `yaml:"server_url"`
	Device    string `yaml:"device"`
	// ConfirmTimeout bounds the background session confirmation.
	ConfirmTimeout time.Duration `yaml:"confirm_timeout"`
}

// Load reads the config file at path (or the default location when path is
// empty), applies environment overrides, and fills in defaults. A missing
// file is not an error.
func Load(path string) (*FileConfig, error) {
	cfg := &FileConfig{}

	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".studely", configFile)
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Defaults apply.
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv(envServer); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(envDevice); v != "" {
		cfg.Device = v
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:8000"
	}
	if cfg.Device == "" {
		if host, err := os.Hostname(); err == nil && host != "" {
			cfg.Device = host
		} else {
			cfg.Device = "cli"
		}
	}
	if cfg.ConfirmTimeout <= 0 {
		cfg.ConfirmTimeout = sdk.DefaultConfirmTimeout
	}
	return cfg, nil
}

type contextKey string

const configKey contextKey = "studelyctl-config"

// GlobalConfig holds shared configuration for all studelyctl commands.
// The root command's PersistentPreRunE injects it into the cobra command
// context; subcommands read it back with MustFromContext.
type GlobalConfig struct {
	ServerURL      string
	Device         string
	NonInteractive bool
	Logger         *slog.Logger
	Provider       *client.Provider
}

// InjectConfig adds cfg to the cobra command context.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context.
// Returns (nil, false) if config is not present.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics. Only for command
// RunE functions, where the root command has already injected it.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("studelyctl: config not found in context - this is a bug in studelyctl")
	}
	return cfg
}
