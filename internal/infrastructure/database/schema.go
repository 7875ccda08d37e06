package database

import (
	"context"
	"fmt"
)

// schemaStatements tạo các tables nếu chưa tồn tại.
// Đây không phải migration tooling - chỉ là bootstrap tối thiểu cho service.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name     TEXT NOT NULL DEFAULT '',
		role          TEXT NOT NULL DEFAULT 'User',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS authors (
		id         UUID PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name  TEXT NOT NULL,
		birth_date DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS genres (
		id   SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id           UUID PRIMARY KEY,
		title        TEXT NOT NULL,
		isbn         TEXT NOT NULL UNIQUE,
		publish_year INT NOT NULL,
		price        NUMERIC(10,2),
		author_id    UUID NOT NULL REFERENCES authors(id)
	)`,
	// Backstop cho import idempotence: hai import đồng thời của cùng một
	// remote id không thể tạo hai rows (xem catalog importer).
	`CREATE UNIQUE INDEX IF NOT EXISTS books_title_author_uq
		ON books (lower(title), author_id)`,
	`CREATE TABLE IF NOT EXISTS book_genres (
		book_id  UUID NOT NULL REFERENCES books(id) ON DELETE CASCADE,
		genre_id INT NOT NULL REFERENCES genres(id),
		PRIMARY KEY (book_id, genre_id)
	)`,
}

// EnsureSchema chạy các CREATE TABLE IF NOT EXISTS statements
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
