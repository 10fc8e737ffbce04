package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single local writer; a small pool is enough
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Foreign keys must be on for association cascades to fire
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		// Photos table - core image metadata
		`CREATE TABLE IF NOT EXISTS photos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			file_uuid TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			original_filename TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			file_type TEXT NOT NULL DEFAULT '',
			file_size INTEGER NOT NULL DEFAULT 0,
			width INTEGER NOT NULL DEFAULT 0,
			height INTEGER NOT NULL DEFAULT 0,
			date_added DATETIME DEFAULT CURRENT_TIMESTAMP,
			favorite BOOLEAN NOT NULL DEFAULT 0,
			checksum TEXT UNIQUE
		)`,

		// Albums table
		`CREATE TABLE IF NOT EXISTS albums (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)`,

		// Tags table
		`CREATE TABLE IF NOT EXISTS tags (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL
		)`,

		// Many-to-many: photos can be in multiple albums
		`CREATE TABLE IF NOT EXISTS photo_albums (
			photo_id INTEGER NOT NULL,
			album_id INTEGER NOT NULL,
			PRIMARY KEY (photo_id, album_id),
			FOREIGN KEY (photo_id) REFERENCES photos(id) ON DELETE CASCADE,
			FOREIGN KEY (album_id) REFERENCES albums(id) ON DELETE CASCADE
		)`,

		// Many-to-many: photos can have multiple tags
		`CREATE TABLE IF NOT EXISTS photo_tags (
			photo_id INTEGER NOT NULL,
			tag_id INTEGER NOT NULL,
			PRIMARY KEY (photo_id, tag_id),
			FOREIGN KEY (photo_id) REFERENCES photos(id) ON DELETE CASCADE,
			FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
		)`,

		// Indexes for search paths
		`CREATE INDEX IF NOT EXISTS idx_photos_name ON photos(name)`,
		`CREATE INDEX IF NOT EXISTS idx_photos_date_added ON photos(date_added)`,
		`CREATE INDEX IF NOT EXISTS idx_photos_checksum ON photos(checksum)`,
		`CREATE INDEX IF NOT EXISTS idx_photos_favorite ON photos(favorite) WHERE favorite = 1`,
		`CREATE INDEX IF NOT EXISTS idx_photo_tags_tag ON photo_tags(tag_id)`,
		`CREATE INDEX IF NOT EXISTS idx_photo_albums_album ON photo_albums(album_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
