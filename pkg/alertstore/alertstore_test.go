package alertstore

import (
	"path/filepath"
	"testing"

	bolt "go.etcd.io/bbolt"

	"github.com/ticdecoder/tic2json/internal/tic"
)

func openTestDB(t *testing.T) *bolt.DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "alerts.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestIsNewOnlyOnce(t *testing.T) {
	db := openTestDB(t)

	isNew, err := IsNew(db, "CutOffCause", "surtension")
	if err != nil {
		t.Fatalf("IsNew: %v", err)
	}
	if !isNew {
		t.Fatalf("first sighting should be new")
	}

	isNew, err = IsNew(db, "CutOffCause", "surtension")
	if err != nil {
		t.Fatalf("IsNew: %v", err)
	}
	if isNew {
		t.Fatalf("second sighting of the same value should not be new")
	}
}

func TestClearAllResetsDedup(t *testing.T) {
	db := openTestDB(t)

	if _, err := IsNew(db, "Producer", "1"); err != nil {
		t.Fatalf("IsNew: %v", err)
	}
	if err := ClearAll(db); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	isNew, err := IsNew(db, "Producer", "1")
	if err != nil {
		t.Fatalf("IsNew: %v", err)
	}
	if !isNew {
		t.Fatalf("value should be new again after ClearAll")
	}
}

func TestDiffOnlyReportsChangedFields(t *testing.T) {
	db := openTestDB(t)

	prev := tic.DecodeStge(0)
	cur := tic.DecodeStge(1 << 8) // Producer bit set

	transitions, err := Diff(db, prev, cur)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(transitions) != 1 || transitions[0].Field != "Producer" {
		t.Fatalf("got %+v, want exactly one Producer transition", transitions)
	}

	// Same diff again should report nothing new.
	transitions, err = Diff(db, prev, cur)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(transitions) != 0 {
		t.Fatalf("expected no new transitions on repeat, got %+v", transitions)
	}
}
