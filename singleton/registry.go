package singleton

import (
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/kbukum/testkit/errors"
	"github.com/kbukum/testkit/logger"
)

// Registry maps type identity to the sole instance of that type. All
// operations are safe for concurrent use; the snapshot slot belongs to the
// Registry, so tests that run concurrently should each use their own.
type Registry struct {
	mu         sync.RWMutex
	instances  map[reflect.Type]any
	backup     map[reflect.Type]any
	backupID   string
	backupHeld bool
	log        *logger.Logger
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		instances: make(map[reflect.Type]any),
		log:       logger.WithComponent("singleton"),
	}
}

// KeyOf returns the registry key for an instance: its concrete type with
// pointers unwrapped, so *Database and Database share one identity.
func KeyOf(instance any) reflect.Type {
	t := reflect.TypeOf(instance)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// Set stores instance under its type identity, replacing any existing
// instance of that type. A nil instance is ignored.
func (r *Registry) Set(instance any) {
	key := KeyOf(instance)
	if key == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[key] = instance
}

// Get retrieves the instance registered under the given type identity.
func (r *Registry) Get(key reflect.Type) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	instance, ok := r.instances[key]
	return instance, ok
}

// Remove deletes the instance registered under the given type identity.
func (r *Registry) Remove(key reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.instances, key)
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}

// Clear removes all registered instances. The snapshot slot is untouched.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances = make(map[reflect.Type]any)
}

// Instances returns a copy of the current type-to-instance mapping.
func (r *Registry) Instances() map[reflect.Type]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyInstances(r.instances)
}

// Snapshot captures the current mapping into the registry's single backup
// slot and returns the snapshot's ID. It fails with SNAPSHOT_HELD if a
// snapshot is already held.
func (r *Registry) Snapshot() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.backupHeld {
		return "", errors.SnapshotHeld(r.backupID)
	}

	r.backup = copyInstances(r.instances)
	r.backupID = uuid.NewString()
	r.backupHeld = true

	r.log.Debug("snapshot taken", logger.Fields(
		logger.FieldSnapshotID, r.backupID,
		logger.FieldInstances, len(r.backup),
	))
	return r.backupID, nil
}

// Restore replaces the registry contents from the held snapshot and clears
// the slot. It fails with NO_SNAPSHOT if no snapshot is held.
func (r *Registry) Restore() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.backupHeld {
		return errors.NoSnapshot("Restore")
	}

	id := r.backupID
	r.instances = r.backup
	r.backup = nil
	r.backupID = ""
	r.backupHeld = false

	r.log.Debug("snapshot restored", logger.Fields(
		logger.FieldSnapshotID, id,
		logger.FieldInstances, len(r.instances),
	))
	return nil
}

// Replace swaps the registry contents for the supplied mapping while a
// snapshot is held, without clearing the snapshot. It fails with
// NO_SNAPSHOT otherwise, forcing backup-before-mutate discipline.
func (r *Registry) Replace(instances map[reflect.Type]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.backupHeld {
		return errors.NoSnapshot("Replace")
	}

	r.instances = copyInstances(instances)

	r.log.Debug("instances replaced", logger.Fields(
		logger.FieldSnapshotID, r.backupID,
		logger.FieldInstances, len(r.instances),
	))
	return nil
}

// SnapshotHeld reports whether a snapshot is currently held.
func (r *Registry) SnapshotHeld() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.backupHeld
}

// SnapshotID returns the held snapshot's ID, or "" if none is held.
func (r *Registry) SnapshotID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.backupID
}

func copyInstances(src map[reflect.Type]any) map[reflect.Type]any {
	dst := make(map[reflect.Type]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
