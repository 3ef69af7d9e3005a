package storage

import (
	"database/sql"
	"time"
)

// GameRecord represents a row in the games table
type GameRecord struct {
	GameID        string       `db:"game_id"`
	InitialLayout string       `db:"initial_layout"`
	StartingTurn  int          `db:"starting_turn"`
	StartTimeUTC  time.Time    `db:"start_time_utc"`
	Winner        int          `db:"winner"` // 0 while unfinished
	MoveCount     int          `db:"move_count"`
	EndTimeUTC    sql.NullTime `db:"end_time_utc"`
}

// ResultRecord is the outcome written when a game ends
type ResultRecord struct {
	GameID     string
	Winner     int
	MoveCount  int
	EndTimeUTC time.Time
}

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id TEXT PRIMARY KEY,
	initial_layout TEXT NOT NULL,
	starting_turn INTEGER NOT NULL CHECK(starting_turn IN (1, 2)),
	start_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	winner INTEGER NOT NULL DEFAULT 0 CHECK(winner IN (0, 1, 2)),
	move_count INTEGER NOT NULL DEFAULT 0,
	end_time_utc DATETIME
);

CREATE INDEX IF NOT EXISTS idx_games_winner ON games(winner);
`
