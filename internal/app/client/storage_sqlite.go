package client

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteCache keeps the last seen file listing locally so `files list
// --cached` works without the server.
type SQLiteCache struct {
	db *sql.DB
}

func NewSQLiteCache(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	cache := &SQLiteCache{db: db}
	if err := cache.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache tables: %w", err)
	}

	return cache, nil
}

func (s *SQLiteCache) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS files (
			id TEXT PRIMARY KEY,
			file_name TEXT NOT NULL,
			original_name TEXT NOT NULL,
			file_type TEXT NOT NULL,
			file_size INTEGER NOT NULL,
			file_url TEXT NOT NULL,
			uploaded_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_files_uploaded ON files(uploaded_at);
	`)
	return err
}

// ReplaceFiles swaps the cached listing for the server's current one.
func (s *SQLiteCache) ReplaceFiles(files []File) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin cache update: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM files"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	for _, f := range files {
		_, err := tx.Exec(`
			INSERT INTO files (id, file_name, original_name, file_type, file_size, file_url, uploaded_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, f.ID, f.FileName, f.OriginalName, f.FileType, f.FileSize, f.FileUrl, f.UploadedAt)
		if err != nil {
			return fmt.Errorf("cache file %s: %w", f.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteCache) ListFiles() ([]File, error) {
	rows, err := s.db.Query(`
		SELECT id, file_name, original_name, file_type, file_size, file_url, uploaded_at
		FROM files
		ORDER BY uploaded_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}
	defer rows.Close()

	var files []File
	for rows.Next() {
		var f File
		if err := rows.Scan(&f.ID, &f.FileName, &f.OriginalName, &f.FileType, &f.FileSize, &f.FileUrl, &f.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan cached file: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

func (s *SQLiteCache) Close() error {
	return s.db.Close()
}
