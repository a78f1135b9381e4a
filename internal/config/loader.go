package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment settings.
const (
	EnvPrefix = "LINEUP_"
	EnvFile   = "LINEUP_CONFIG"
)

// Load builds a Config by layering defaults, the YAML file named by
// LINEUP_CONFIG, and LINEUP_* environment variables.
func Load(ctx context.Context) (*Config, error) {
	return LoadWithPath(ctx, "")
}

// LoadWithPath is Load with an explicit file path. An empty path falls back
// to LINEUP_CONFIG. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML)
//  3. env (prefix LINEUP_)
func LoadWithPath(_ context.Context, path string) (*Config, error) {
	base := New()
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvFile)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	// LINEUP_MAX_SWAP_ITERATIONS -> max_swap_iterations
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrLoadConfig, err)
	}
	// the file path itself is not a setting
	k.Delete("config")

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
