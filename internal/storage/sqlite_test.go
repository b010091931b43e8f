package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

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

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveResult(LevelResult{LevelID: "a", ShapesUsed: 1, Stars: 3, Goals: 2}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	results, err := store.Results("a", 10)
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected 1 result after reopen, got %d", len(results))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []LevelResult{
		{LevelID: "01", ShapesUsed: 3, Stars: 2, Goals: 3},
		{LevelID: "01", ShapesUsed: 4, Stars: 1, Goals: 3},
		{LevelID: "01", ShapesUsed: 2, Stars: 3, Goals: 3},
		{LevelID: "02", ShapesUsed: 1, Stars: 3, Goals: 1},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult(%+v) failed: %v", r, err)
		}
	}

	results, err := store.Results("01", 10)
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Newest first
	if results[0].ShapesUsed != 2 || results[2].ShapesUsed != 3 {
		t.Errorf("Results not newest first: %+v", results)
	}
	if results[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	other, err := store.Results("02", 10)
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 result for level 02, got %d", len(other))
	}
}

func TestStoreResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(LevelResult{LevelID: "test", ShapesUsed: i + 1, Stars: 1})
	}

	results, err := store.Results("test", 3)
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(results))
	}
}

func TestStoreSaveResultValidation(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		r    LevelResult
	}{
		{"no level", LevelResult{ShapesUsed: 1, Stars: 3}},
		{"zero stars", LevelResult{LevelID: "a", ShapesUsed: 1, Stars: 0}},
		{"four stars", LevelResult{LevelID: "a", ShapesUsed: 1, Stars: 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := store.SaveResult(tc.r); err == nil {
				t.Errorf("SaveResult(%+v) should fail", tc.r)
			}
		})
	}
}

func TestStoreBestResult(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestResult("01")
	if err != nil {
		t.Fatalf("BestResult() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best result for empty level, got %+v", best)
	}

	store.SaveResult(LevelResult{LevelID: "01", ShapesUsed: 3, Stars: 2})
	firstThree, _ := store.SaveResult(LevelResult{LevelID: "01", ShapesUsed: 2, Stars: 3})
	store.SaveResult(LevelResult{LevelID: "01", ShapesUsed: 2, Stars: 3})
	store.SaveResult(LevelResult{LevelID: "01", ShapesUsed: 5, Stars: 1})

	best, err = store.BestResult("01")
	if err != nil {
		t.Fatalf("BestResult() failed: %v", err)
	}
	if best == nil {
		t.Fatal("Expected a best result")
	}
	if best.Stars != 3 || best.ShapesUsed != 2 {
		t.Errorf("BestResult() = %+v, expected 3 stars with 2 shapes", best)
	}
	if best.ID != firstThree {
		t.Errorf("BestResult() ID = %d, expected the earliest tie %d", best.ID, firstThree)
	}
}

func TestStoreAllBest(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(LevelResult{LevelID: "01", ShapesUsed: 3, Stars: 2})
	store.SaveResult(LevelResult{LevelID: "01", ShapesUsed: 1, Stars: 3})
	store.SaveResult(LevelResult{LevelID: "02", ShapesUsed: 4, Stars: 1})

	best, err := store.AllBest()
	if err != nil {
		t.Fatalf("AllBest() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(best))
	}
	if best["01"].Stars != 3 || best["01"].ShapesUsed != 1 {
		t.Errorf("best[01] = %+v", best["01"])
	}
	if best["02"].Stars != 1 {
		t.Errorf("best[02] = %+v", best["02"])
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(LevelResult{LevelID: "01", ShapesUsed: 1, Stars: 3})
	store.SaveResult(LevelResult{LevelID: "02", ShapesUsed: 1, Stars: 3})

	if err := store.ClearResults("01"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	cleared, _ := store.Results("01", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(cleared))
	}

	kept, _ := store.Results("02", 10)
	if len(kept) != 1 {
		t.Errorf("Level 02 should not be affected by clearing 01")
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetLevelStats("01")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if empty.Completions != 0 || empty.BestStars != 0 {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	store.SaveResult(LevelResult{LevelID: "01", ShapesUsed: 4, Stars: 1})
	store.SaveResult(LevelResult{LevelID: "01", ShapesUsed: 2, Stars: 3})
	store.SaveResult(LevelResult{LevelID: "02", ShapesUsed: 1, Stars: 3})

	stats, err := store.GetLevelStats("01")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Completions != 2 || stats.BestStars != 3 || stats.FewestShapes != 2 {
		t.Errorf("GetLevelStats() = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}

	all, err := store.GetAllLevelStats()
	if err != nil {
		t.Fatalf("GetAllLevelStats() failed: %v", err)
	}
	if len(all) != 2 || all["02"].Completions != 1 {
		t.Errorf("GetAllLevelStats() = %v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
