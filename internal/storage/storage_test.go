package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "trainer.db"), true)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.InitDB(); err != nil {
		t.Fatal(err)
	}
	return store
}

// waitForEvents polls until the async writer has flushed the expected rows.
func waitForEvents(t *testing.T, store *Store, want int) []EventRecord {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for {
		records, err := store.RecentEvents(want + 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(records) >= want {
			return records
		}
		if time.Now().After(deadline) {
			t.Fatalf("only %d of %d events flushed", len(records), want)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRecordAndReadEvents(t *testing.T) {
	store := newTestStore(t)
	if !store.IsHealthy() {
		t.Fatal("fresh store should be healthy")
	}

	first := EventRecord{
		EventID:    "ev-1",
		Kind:       "player_move",
		FENBefore:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		FENAfter:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		MoveUCI:    "e2e4",
		MoveSAN:    "e4",
		Evaluation: 75,
		CreatedUTC: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	second := EventRecord{
		EventID:    "ev-2",
		Kind:       "ai_move",
		FENBefore:  first.FENAfter,
		MoveUCI:    "e7e5",
		MoveSAN:    "e5",
		Difficulty: "beginner",
		Evaluation: -40,
		CreatedUTC: time.Date(2026, 3, 1, 10, 0, 5, 0, time.UTC),
	}
	if err := store.RecordEvent(first); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordEvent(second); err != nil {
		t.Fatal(err)
	}

	records := waitForEvents(t, store, 2)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Newest first.
	if records[0].EventID != "ev-2" || records[1].EventID != "ev-1" {
		t.Fatalf("unexpected order: %s, %s", records[0].EventID, records[1].EventID)
	}
	got := records[1]
	if got.Kind != first.Kind || got.MoveUCI != first.MoveUCI ||
		got.MoveSAN != first.MoveSAN || got.Evaluation != first.Evaluation {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestRecentEventsLimit(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := store.RecordEvent(EventRecord{
			EventID:    string(rune('a' + i)),
			Kind:       "hint",
			FENBefore:  "8/8/8/4k3/8/4K3/8/8 w - - 0 1",
			MoveUCI:    "e3e4",
			CreatedUTC: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	waitForEvents(t, store, 5)

	records, err := store.RecentEvents(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("limit ignored: got %d records", len(records))
	}
	if records[0].EventID != "e" {
		t.Errorf("newest event should lead, got %s", records[0].EventID)
	}
}

func TestCloseIsIdempotentEnough(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "trainer.db"), false)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.InitDB(); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
}
