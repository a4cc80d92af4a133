package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []RunRecord{
		{Width: 30, Height: 30, Probability: 0.5, Seed: 1, Steps: 40, AshCells: 412, TreeCells: 488},
		{Width: 30, Height: 30, Probability: 0.7, Seed: 2, Steps: 55, AshCells: 801, TreeCells: 99},
		{Width: 10, Height: 10, Probability: 1.0, Seed: 3, Steps: 19, AshCells: 100, TreeCells: 0},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	count, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if count != 3 {
		t.Errorf("RunCount() = %d, want 3", count)
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("RecentRuns() returned %d runs, want 3", len(recent))
	}
	// Newest first
	if recent[0].Seed != 3 {
		t.Errorf("Most recent run seed = %d, want 3", recent[0].Seed)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}

	largest, err := store.LargestBurns(1)
	if err != nil {
		t.Fatalf("LargestBurns() failed: %v", err)
	}
	if len(largest) != 1 || largest[0].AshCells != 801 {
		t.Errorf("LargestBurns(1) = %+v, want the 801-ash run", largest)
	}
}

func TestStoreLimit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(RunRecord{Width: 5, Height: 5, Probability: 0.5, Seed: int64(i), Steps: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("RecentRuns(2) returned %d runs", len(recent))
	}
}

func TestBurnFraction(t *testing.T) {
	r := RunRecord{Width: 10, Height: 10, AshCells: 25}
	if got := r.BurnFraction(); got != 0.25 {
		t.Errorf("BurnFraction() = %v, want 0.25", got)
	}

	empty := RunRecord{}
	if got := empty.BurnFraction(); got != 0 {
		t.Errorf("BurnFraction() on zero-size grid = %v, want 0", got)
	}
}
