// Package storage implements the wardrobe inventory using SQLite.
//
// The inventory is session-scoped and ephemeral: sessions open an
// in-memory database that dies with them. The store only ever grows;
// there is no update or delete operation.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/RackSavant/celebrityRecs/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const schema = `
	CREATE TABLE IF NOT EXISTS wardrobe_items (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		era TEXT NOT NULL,
		confidence REAL NOT NULL,
		glyph TEXT,
		description TEXT,
		historical_context TEXT,
		image_url TEXT,
		created_at DATETIME NOT NULL
	)`

// SQLiteInventory implements the session.Inventory interface using SQLite.
type SQLiteInventory struct {
	db *sql.DB
}

// NewSQLiteInventory opens an inventory database at dsn and creates the
// schema. Sessions pass ":memory:" for an ephemeral per-session closet.
func NewSQLiteInventory(dsn string) (*SQLiteInventory, error) {
	if dsn == "" {
		return nil, fmt.Errorf("inventory dsn cannot be empty")
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory database: %w", err)
	}

	// A single connection keeps an in-memory database alive and is all
	// SQLite benefits from anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping inventory database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create wardrobe schema: %w", err)
	}

	return &SQLiteInventory{db: db}, nil
}

// InsertFront adds an item to the front of the closet. Insertion order is
// the display order reversed; identical uploads produce duplicate entries
// by design. The item's ID and CreatedAt are filled in if unset, and the
// stored item is returned.
func (s *SQLiteInventory) InsertFront(ctx context.Context, item model.WardrobeItem) (model.WardrobeItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO wardrobe_items
			(id, name, era, confidence, glyph, description, historical_context, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		item.ID, item.Name, string(item.Era), item.Confidence,
		item.Glyph, item.Description, item.HistoricalContext, item.ImageURL, item.CreatedAt)
	if err != nil {
		return model.WardrobeItem{}, fmt.Errorf("failed to insert wardrobe item: %w", err)
	}

	slog.Debug("wardrobe item added", "id", item.ID, "name", item.Name, "era", item.Era)
	return item, nil
}

// Count returns the number of items in the closet.
func (s *SQLiteInventory) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wardrobe_items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count wardrobe items: %w", err)
	}
	return count, nil
}

// All returns a snapshot of the closet, most recent first.
func (s *SQLiteInventory) All(ctx context.Context) ([]model.WardrobeItem, error) {
	query := `
		SELECT id, name, era, confidence, glyph, description, historical_context, image_url, created_at
		FROM wardrobe_items
		ORDER BY seq DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query wardrobe items: %w", err)
	}
	defer rows.Close()

	var items []model.WardrobeItem
	for rows.Next() {
		var item model.WardrobeItem
		var era string
		if err := rows.Scan(&item.ID, &item.Name, &era, &item.Confidence,
			&item.Glyph, &item.Description, &item.HistoricalContext, &item.ImageURL, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wardrobe item: %w", err)
		}
		item.Era = model.Era(era)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wardrobe items: %w", err)
	}

	return items, nil
}

// Close closes the database connection, discarding an in-memory closet.
func (s *SQLiteInventory) Close() error {
	return s.db.Close()
}
