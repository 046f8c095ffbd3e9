package testutil_test

import (
	"testing"

	"github.com/kbukum/testkit/singleton"
	"github.com/kbukum/testkit/testutil"
)

type db struct{ dsn string }
type mailer struct{ host string }

func TestManager_SnapshotRestoreAll(t *testing.T) {
	regA := singleton.New()
	regB := singleton.New()
	origDB := &db{dsn: "prod"}
	origMailer := &mailer{host: "smtp"}
	singleton.Put(regA, origDB)
	singleton.Put(regB, origMailer)

	m := testutil.NewManager()
	m.Add(regA)
	m.Add(regB)

	if err := m.SnapshotAll(); err != nil {
		t.Fatalf("SnapshotAll() failed: %v", err)
	}

	singleton.Put(regA, &db{dsn: "stub"})
	singleton.Put(regB, &mailer{host: "stub"})

	if err := m.RestoreAll(); err != nil {
		t.Fatalf("RestoreAll() failed: %v", err)
	}

	if got, _ := singleton.Lookup[*db](regA); got != origDB {
		t.Errorf("expected regA restored, got %v", got)
	}
	if got, _ := singleton.Lookup[*mailer](regB); got != origMailer {
		t.Errorf("expected regB restored, got %v", got)
	}
}

func TestManager_SnapshotAll_RollsBackOnFailure(t *testing.T) {
	regA := singleton.New()
	regB := singleton.New()

	// Pre-hold regB's slot so SnapshotAll fails partway.
	if _, err := regB.Snapshot(); err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}

	m := testutil.NewManager()
	m.Add(regA)
	m.Add(regB)

	if err := m.SnapshotAll(); err == nil {
		t.Fatal("expected SnapshotAll to fail")
	}
	if regA.SnapshotHeld() {
		t.Error("expected regA's snapshot rolled back after failure")
	}
}

func TestManager_RestoreAll_JoinsFailures(t *testing.T) {
	regA := singleton.New()
	regB := singleton.New()

	m := testutil.NewManager()
	m.Add(regA)
	m.Add(regB)

	// Only regA holds a snapshot; restoring regB must fail but not stop
	// regA from being restored.
	if _, err := regA.Snapshot(); err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}

	err := m.RestoreAll()
	if err == nil {
		t.Fatal("expected RestoreAll to report regB's failure")
	}
	if regA.SnapshotHeld() {
		t.Error("expected regA restored despite regB's failure")
	}
}

func TestManager_Cleanup(t *testing.T) {
	reg := singleton.New()
	m := testutil.NewManager()
	m.Add(reg)

	if err := m.SnapshotAll(); err != nil {
		t.Fatalf("SnapshotAll() failed: %v", err)
	}
	if err := m.Cleanup(); err != nil {
		t.Fatalf("Cleanup() failed: %v", err)
	}
	if reg.SnapshotHeld() {
		t.Error("expected snapshot released after Cleanup")
	}
}
