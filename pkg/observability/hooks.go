// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about solver runs, assembly operations, and cache usage.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSolverHooks(&mySolverHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Solver().OnSolveStart(polygonID, len(vertices))
//	// ... run the solver ...
//	observability.Solver().OnSolveComplete(polygonID, status, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Solver Hooks
// =============================================================================

// SolverHooks receives events from polygon solving.
type SolverHooks interface {
	// OnSolveStart records the start of a solver run.
	OnSolveStart(polygonID string, vertexCount int)

	// OnSolveComplete records the outcome of a solver run. On success the
	// status is "solved" or "approximated", on failure the error code.
	OnSolveComplete(polygonID string, status string, duration time.Duration)
}

// =============================================================================
// Assembly Hooks
// =============================================================================

// AssemblyHooks receives events from join and unlink operations.
type AssemblyHooks interface {
	// OnJoin records a join attempt between two edges.
	OnJoin(srcEdgeID, dstEdgeID string, err error)

	// OnUnlink records an unlink of a joined edge pair.
	OnUnlink(edgeID string, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSolverHooks is a no-op implementation of SolverHooks.
type NoopSolverHooks struct{}

func (NoopSolverHooks) OnSolveStart(string, int)                      {}
func (NoopSolverHooks) OnSolveComplete(string, string, time.Duration) {}

// NoopAssemblyHooks is a no-op implementation of AssemblyHooks.
type NoopAssemblyHooks struct{}

func (NoopAssemblyHooks) OnJoin(string, string, error) {}
func (NoopAssemblyHooks) OnUnlink(string, error)       {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	solverHooks   SolverHooks   = NoopSolverHooks{}
	assemblyHooks AssemblyHooks = NoopAssemblyHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetSolverHooks registers custom solver hooks.
// This should be called once at application startup before any solver runs.
func SetSolverHooks(h SolverHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		solverHooks = h
	}
}

// SetAssemblyHooks registers custom assembly hooks.
// This should be called once at application startup before any join operations.
func SetAssemblyHooks(h AssemblyHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		assemblyHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Solver returns the registered solver hooks.
func Solver() SolverHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return solverHooks
}

// Assembly returns the registered assembly hooks.
func Assembly() AssemblyHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return assemblyHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	solverHooks = NoopSolverHooks{}
	assemblyHooks = NoopAssemblyHooks{}
	cacheHooks = NoopCacheHooks{}
}
