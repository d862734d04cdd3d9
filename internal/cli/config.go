package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences loaded from a TOML file. All fields are
// optional; zero values fall back to built-in defaults or command flags.
type Config struct {
	// CacheDir overrides the XDG cache directory.
	CacheDir string `toml:"cache_dir"`

	Server ServerConfig `toml:"server"`
	Render RenderConfig `toml:"render"`
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`

	// RedisAddr switches the artifact cache to Redis when set.
	RedisAddr string `toml:"redis_addr"`
}

// RenderConfig configures assembly diagram rendering defaults.
type RenderConfig struct {
	// Detailed includes areas and group IDs in node labels.
	Detailed bool `toml:"detailed"`

	// Scale is the PNG zoom factor.
	Scale float64 `toml:"scale"`
}

// configKey is the context key for the loaded config.
const configKey ctxKey = 1

// withConfig returns a new context with the config attached.
func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the config from ctx, or a zero Config if
// none was loaded.
func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return Config{}
}

// loadConfig reads the config file at path, or searches the default
// locations when path is empty: .planforge.toml in the working directory,
// then ~/.config/planforge/config.toml. A missing or unreadable file
// yields a zero Config; commands still work with flags alone.
func loadConfig(path string) Config {
	var cfg Config
	if path != "" {
		_, _ = toml.DecodeFile(path, &cfg)
		return cfg
	}
	for _, candidate := range configPaths() {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		_, _ = toml.DecodeFile(candidate, &cfg)
		return cfg
	}
	return cfg
}

func configPaths() []string {
	paths := []string{".planforge.toml"}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		paths = append(paths, filepath.Join(configHome, appName, "config.toml"))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}
	return paths
}
