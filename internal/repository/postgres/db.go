package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Pool sizing for the duel workload: queries are short and transactional
// (a guess submission touches at most a few rows), so a modest pool holds.
const (
	maxOpenConns = 25
	maxIdleConns = 5
)

// Connect opens the connection pool backing the user, match, and guess
// repositories and verifies it with a ping before handing it out.
func Connect(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return db, nil
}
