package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []struct{ score, streak int }{
		{100, 4}, {50, 2}, {200, 9},
	} {
		if _, err := store.SaveRun("duelpong", run.score, run.streak); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun("blaster", 500, 12); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("duelpong", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	// Sorted descending by score.
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	if runs[0].Streak != 9 {
		t.Errorf("Streak = %d, want 9", runs[0].Streak)
	}

	blasterRuns, err := store.TopRuns("blaster", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(blasterRuns) != 1 {
		t.Errorf("Expected 1 blaster run, got %d", len(blasterRuns))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("test", (i+1)*100, 0)
	}

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("flapper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun("flapper", 100, 0)
	store.SaveRun("flapper", 300, 0)
	store.SaveRun("flapper", 200, 0)

	high, err = store.HighScore("flapper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("blaster", 40, 5)
	store.SaveRun("blaster", 80, 14)
	store.SaveRun("blaster", 60, 3)

	stats, err := store.Stats("blaster")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.GamesPlayed != 3 {
		t.Errorf("GamesPlayed = %d, want 3", stats.GamesPlayed)
	}
	if stats.HighScore != 80 {
		t.Errorf("HighScore = %d, want 80", stats.HighScore)
	}
	if stats.BestStreak != 14 {
		t.Errorf("BestStreak = %d, want 14", stats.BestStreak)
	}
	if stats.AvgScore != 60 {
		t.Errorf("AvgScore = %v, want 60", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not recorded")
	}
}

func TestStoreStatsAll(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("duelpong", 10, 8)
	store.SaveRun("blaster", 33, 6)
	store.SaveRun("blaster", 21, 2)

	all, err := store.StatsAll()
	if err != nil {
		t.Fatalf("StatsAll() failed: %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["blaster"].GamesPlayed != 2 {
		t.Errorf("blaster GamesPlayed = %d, want 2", all["blaster"].GamesPlayed)
	}
	if all["duelpong"].BestStreak != 8 {
		t.Errorf("duelpong BestStreak = %d, want 8", all["duelpong"].BestStreak)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("flapper", 100, 0)
	store.SaveRun("flapper", 200, 0)
	store.SaveRun("blaster", 300, 1)

	if err := store.ClearRuns("flapper"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	flapperRuns, _ := store.TopRuns("flapper", 10)
	if len(flapperRuns) != 0 {
		t.Errorf("Expected 0 flapper runs after clear, got %d", len(flapperRuns))
	}

	blasterRuns, _ := store.TopRuns("blaster", 10)
	if len(blasterRuns) != 1 {
		t.Error("Blaster runs should not be affected by clearing flapper")
	}
}
