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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("polyfall", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different variant
	if _, err := store.SaveScore("polyfall_penta", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("polyfall", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	pentaScores, err := store.TopScores("polyfall_penta", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(pentaScores) != 1 {
		t.Errorf("Expected 1 penta score, got %d", len(pentaScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("polyfall", (i+1)*100)
	}

	scores, err := store.TopScores("polyfall", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("polyfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty variant, got %d", high)
	}

	store.SaveScore("polyfall", 100)
	store.SaveScore("polyfall", 300)
	store.SaveScore("polyfall", 200)

	high, err = store.HighScore("polyfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("polyfall", 100)
	store.SaveScore("polyfall", 200)
	store.SaveScore("polyfall_penta", 300)

	if err := store.ClearScores("polyfall"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("polyfall", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	pentaScores, _ := store.TopScores("polyfall_penta", 10)
	if len(pentaScores) != 1 {
		t.Errorf("Penta scores should not be affected by clearing polyfall")
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{GameID: "polyfall", PieceSize: 4, Score: 1200, Level: 3, Lines: 14, Pieces: 40, Duration: 180},
		{GameID: "polyfall", PieceSize: 4, Score: 900, Level: 2, Lines: 9, Pieces: 30, Duration: 120},
		{GameID: "polyfall_penta", PieceSize: 5, Score: 2000, Level: 4, Lines: 18, Pieces: 50, Duration: 300},
	}
	for _, run := range runs {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("polyfall", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(top))
	}
	if top[0].Score != 1200 || top[1].Score != 900 {
		t.Errorf("Runs not sorted by score: %v", top)
	}
	if top[0].Lines != 14 || top[0].Level != 3 || top[0].Duration != 180 {
		t.Errorf("Run fields not round-tripped: %+v", top[0])
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 recent runs, got %d", len(recent))
	}

	bySize, err := store.RunsBySize(5, 10)
	if err != nil {
		t.Fatalf("RunsBySize() failed: %v", err)
	}
	if len(bySize) != 1 || bySize[0].GameID != "polyfall_penta" {
		t.Errorf("RunsBySize(5) = %v", bySize)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{GameID: "polyfall", PieceSize: 4, Score: 100, Level: 1, Lines: 2, Pieces: 10})
	store.SaveRun(RunEntry{GameID: "polyfall", PieceSize: 4, Score: 300, Level: 2, Lines: 6, Pieces: 25})

	stats, err := store.GetGameStats("polyfall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalLines != 8 {
		t.Errorf("TotalLines = %d, want 8", stats.TotalLines)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if _, ok := all["polyfall"]; !ok {
		t.Errorf("GetAllGamesStats missing polyfall: %v", all)
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
