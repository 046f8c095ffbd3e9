// Package singleton provides a type-keyed registry of singleton instances
// with snapshot/restore semantics for tests.
//
// Production code keeps process-wide singletons in a Registry; a test takes
// a snapshot, swaps or mutates instances, and restores the snapshot on
// teardown. A Registry holds at most one snapshot at a time: taking a
// second snapshot fails (so a held backup is never silently overwritten)
// and restoring or bulk-replacing without one fails (so mutation is always
// preceded by an explicit backup).
//
//	reg := singleton.New()
//	singleton.Put(reg, &Database{...})
//
//	id, _ := reg.Snapshot()
//	singleton.Put(reg, &Database{stub: true})
//	...
//	reg.Restore()
//
// Each Registry carries its own snapshot slot and mutex, so concurrent
// tests stay isolated by using one Registry per test. The package-level
// Default registry serves the sequential, process-wide case. For guaranteed
// restore on test teardown use testutil.T(t).Guard.
package singleton
