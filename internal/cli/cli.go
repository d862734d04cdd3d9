// Package cli implements the planforge command-line interface.
//
// This package provides commands for solving polygon geometry from sketched
// measurements, joining solved rooms into rigid assemblies, rendering
// assembly diagrams, and exporting plans to CAD formats.
//
// # Commands
//
// The main commands are:
//   - solve: Recompute polygon geometry from edge lengths and angles
//   - join/unlink: Snap rooms together along edges, or sever a link
//   - offset/thickness: Adjust parameters of an existing join
//   - show: Inspect a plan document, optionally interactively
//   - render: Generate assembly diagrams (DOT, SVG, PDF, PNG)
//   - export: Write plans as JSON or DXF
//   - serve: Run the HTTP preview server
//   - cache: Manage the render artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/planforge/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matzehuels/planforge/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "planforge"

// newCache builds the artifact cache for CLI use. Failures to resolve the
// cache directory degrade to a null cache rather than failing the command.
func newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir(ctx)
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory. A cache_dir entry in the config
// file wins; otherwise the XDG standard (~/.cache/planforge/) applies.
func cacheDir(ctx context.Context) (string, error) {
	if cfg := configFromContext(ctx); cfg.CacheDir != "" {
		return cfg.CacheDir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
