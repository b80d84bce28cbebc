package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const ProductTableSchema = `
	CREATE TABLE IF NOT EXISTS products (
		asin TEXT PRIMARY KEY,
		brand_id TEXT,
		brand_name TEXT,
		title TEXT,
		country_code TEXT
	);
`

var bootQueries = []string{
	ProductTableSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens the sqlite database at the given path (":memory:" works for
// tests) and runs the idempotent boot queries. The store assumes a single
// writer, so the pool is capped at one connection.
func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return db, nil
}
