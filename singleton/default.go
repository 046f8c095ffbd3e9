package singleton

import (
	"reflect"
	"sync"
)

// defaultRegistry is the process-wide registry, created on first use.
var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry. It exists for sequential test
// suites that mirror production's single global registry; concurrent tests
// should construct their own with New.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// Package-level convenience functions delegate to the default registry.

// Set stores instance in the default registry.
func Set(instance any) { Default().Set(instance) }

// Get retrieves an instance from the default registry.
func Get(key reflect.Type) (any, bool) { return Default().Get(key) }

// Snapshot captures the default registry's mapping.
func Snapshot() (string, error) { return Default().Snapshot() }

// Restore restores the default registry from its held snapshot.
func Restore() error { return Default().Restore() }

// Replace swaps the default registry's contents while a snapshot is held.
func Replace(instances map[reflect.Type]any) error { return Default().Replace(instances) }
