package testutil

import (
	"reflect"
	"testing"

	"github.com/kbukum/testkit/singleton"
)

// RestoreFunc restores a guarded registry to its snapshot.
type RestoreFunc func() error

// Guard snapshots a registry and returns the function that restores it.
// The restore function should be called (typically with defer) when the
// test is done mutating singletons.
//
// Example:
//
//	restore, err := testutil.Guard(reg)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer restore()
func Guard(reg *singleton.Registry) (RestoreFunc, error) {
	if _, err := reg.Snapshot(); err != nil {
		return nil, err
	}
	return reg.Restore, nil
}

// THelper provides testing.T integration for easier guard setup.
type THelper struct {
	t *testing.T
}

// T wraps a testing.T to provide helper methods with automatic cleanup.
//
// Example:
//
//	func TestMyFeature(t *testing.T) {
//	    testutil.T(t).Guard(reg)
//	    // registry is automatically restored when the test ends
//	}
func T(t *testing.T) *THelper {
	return &THelper{t: t}
}

// Guard snapshots the registry and registers restore with testing.T, so the
// registry is restored when the test ends even if it fails. Returns the
// snapshot ID.
func (h *THelper) Guard(reg *singleton.Registry) string {
	h.t.Helper()
	id, err := reg.Snapshot()
	if err != nil {
		h.t.Fatalf("failed to snapshot registry: %v", err)
	}
	h.t.Cleanup(func() {
		if reg.SnapshotID() != id {
			return // already restored by the test itself
		}
		if err := reg.Restore(); err != nil {
			h.t.Errorf("failed to restore registry snapshot %s: %v", id, err)
		}
	})
	return id
}

// Replace swaps the registry contents, failing the test if no snapshot is
// held. Use after Guard to install a full stub mapping at once.
func (h *THelper) Replace(reg *singleton.Registry, instances map[reflect.Type]any) {
	h.t.Helper()
	if err := reg.Replace(instances); err != nil {
		h.t.Fatalf("failed to replace registry instances: %v", err)
	}
}

// Restore restores the registry immediately, failing the test on error.
// Only needed when a test wants its original singletons back mid-test;
// Guard's cleanup handles the common case.
func (h *THelper) Restore(reg *singleton.Registry) {
	h.t.Helper()
	if err := reg.Restore(); err != nil {
		h.t.Fatalf("failed to restore registry: %v", err)
	}
}
