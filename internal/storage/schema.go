package storage

import "time"

// EventRecord is one row in the training log: the outcome of a single
// trainer request (player move, AI move, or hint), kept so parents can
// review practice sessions.
type EventRecord struct {
	EventID    string    `db:"event_id"`
	Kind       string    `db:"kind"` // "player_move", "ai_move", "hint"
	FENBefore  string    `db:"fen_before"`
	FENAfter   string    `db:"fen_after"`
	MoveUCI    string    `db:"move_uci"`
	MoveSAN    string    `db:"move_san"`
	Difficulty string    `db:"difficulty"`
	Evaluation int       `db:"evaluation"`
	CreatedUTC time.Time `db:"created_utc"`
}

// Schema defines the SQLite database structure.
const Schema = `
CREATE TABLE IF NOT EXISTS training_events (
	event_id TEXT PRIMARY KEY,
	kind TEXT NOT NULL CHECK(kind IN ('player_move', 'ai_move', 'hint')),
	fen_before TEXT NOT NULL,
	fen_after TEXT NOT NULL DEFAULT '',
	move_uci TEXT NOT NULL,
	move_san TEXT NOT NULL DEFAULT '',
	difficulty TEXT NOT NULL DEFAULT '',
	evaluation INTEGER NOT NULL DEFAULT 0,
	created_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_training_events_kind ON training_events(kind);
CREATE INDEX IF NOT EXISTS idx_training_events_created ON training_events(created_utc);
`
