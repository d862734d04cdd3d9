package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
cache_dir = "/tmp/pf-cache"

[server]
addr = ":9090"
redis_addr = "localhost:6379"

[render]
detailed = true
scale = 3.0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := loadConfig(path)
	if cfg.CacheDir != "/tmp/pf-cache" {
		t.Errorf("CacheDir = %q", cfg.CacheDir)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.RedisAddr != "localhost:6379" {
		t.Errorf("Server.RedisAddr = %q", cfg.Server.RedisAddr)
	}
	if !cfg.Render.Detailed || cfg.Render.Scale != 3.0 {
		t.Errorf("Render = %+v", cfg.Render)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if cfg != (Config{}) {
		t.Errorf("missing file should yield zero config, got %+v", cfg)
	}
}

func TestConfigContext(t *testing.T) {
	ctx := context.Background()

	// Zero config when none attached
	if cfg := configFromContext(ctx); cfg != (Config{}) {
		t.Errorf("expected zero config, got %+v", cfg)
	}

	want := Config{CacheDir: "/x"}
	ctx = withConfig(ctx, want)
	if got := configFromContext(ctx); got != want {
		t.Errorf("configFromContext = %+v, want %+v", got, want)
	}
}
