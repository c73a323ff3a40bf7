package services

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// resultsSchema bootstraps the table storing finished games. Active game
// state is never persisted; only results land here.
const resultsSchema = `
CREATE TABLE IF NOT EXISTS game_results (
	id          UUID PRIMARY KEY,
	difficulty  TEXT NOT NULL,
	human_color TEXT NOT NULL,
	result      TEXT NOT NULL,
	black_discs INT NOT NULL,
	white_discs INT NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// InitPostgres initializes the database connection
func InitPostgres(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	// Test the connection
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	if _, err = db.Exec(resultsSchema); err != nil {
		return nil, fmt.Errorf("error creating results table: %w", err)
	}

	return db, nil
}
