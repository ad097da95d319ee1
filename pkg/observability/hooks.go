// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about artifact export and deploy
// operations.
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
//	    observability.SetExportHooks(&myExportHooks{})
//	    observability.SetDeployHooks(&myDeployHooks{})
//	    // ... run application
//	}
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from artifact export.
type ExportHooks interface {
	// OnExportStart records the start of an export run for one spec.
	OnExportStart(baseName string)

	// OnArtifact records one written artifact file.
	OnArtifact(kind, path string, size int)

	// OnExportComplete records the end of an export run.
	OnExportComplete(baseName string, duration time.Duration, err error)
}

// =============================================================================
// Deploy Hooks
// =============================================================================

// DeployHooks receives events from SFTP deploy operations.
type DeployHooks interface {
	// OnWipe records the removal of one remote entry.
	OnWipe(path string)

	// OnUpload records one uploaded file.
	OnUpload(local, remote string)

	// OnDeployComplete records the end of a deploy run.
	OnDeployComplete(remote string, files int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExportStart(string)                          {}
func (NoopExportHooks) OnArtifact(string, string, int)                {}
func (NoopExportHooks) OnExportComplete(string, time.Duration, error) {}

// NoopDeployHooks is a no-op implementation of DeployHooks.
type NoopDeployHooks struct{}

func (NoopDeployHooks) OnWipe(string)                                      {}
func (NoopDeployHooks) OnUpload(string, string)                            {}
func (NoopDeployHooks) OnDeployComplete(string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	exportHooks ExportHooks = NoopExportHooks{}
	deployHooks DeployHooks = NoopDeployHooks{}
	hooksMu     sync.RWMutex
)

// SetExportHooks registers custom export hooks.
// This should be called once at application startup before any export operations.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// SetDeployHooks registers custom deploy hooks.
// This should be called once at application startup before any deploy operations.
func SetDeployHooks(h DeployHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		deployHooks = h
	}
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Deploy returns the registered deploy hooks.
func Deploy() DeployHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return deployHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	exportHooks = NoopExportHooks{}
	deployHooks = NoopDeployHooks{}
}
