package testutil

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kbukum/testkit/singleton"
)

// Manager guards multiple registries together, making it easier to manage
// test setups that span several singleton registries.
type Manager struct {
	mu         sync.RWMutex
	registries []*singleton.Registry
}

// NewManager creates a new registry guard manager.
func NewManager() *Manager {
	return &Manager{}
}

// Add registers a registry with the manager.
func (m *Manager) Add(reg *singleton.Registry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registries = append(m.registries, reg)
}

// SnapshotAll snapshots all registries in order. If any snapshot fails, the
// ones already taken are restored and the error is returned.
func (m *Manager) SnapshotAll() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i, reg := range m.registries {
		if _, err := reg.Snapshot(); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = m.registries[j].Restore()
			}
			return fmt.Errorf("failed to snapshot registry %d: %w", i, err)
		}
	}
	return nil
}

// RestoreAll restores all registries in reverse order. Even if some
// restores fail, the others still run; failures come back joined.
func (m *Manager) RestoreAll() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var errs []error
	for i := len(m.registries) - 1; i >= 0; i-- {
		if err := m.registries[i].Restore(); err != nil {
			errs = append(errs, fmt.Errorf("failed to restore registry %d: %w", i, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Cleanup is an alias for RestoreAll, convenient with defer or
// testing.T.Cleanup.
func (m *Manager) Cleanup() error {
	return m.RestoreAll()
}
