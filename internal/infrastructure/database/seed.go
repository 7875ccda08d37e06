package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedOptions cho startup seed
type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
}

var seedGenres = []string{
	"Unknown", "Fiction", "Non-Fiction", "Science Fiction", "Fantasy",
	"Mystery", "Romance", "Thriller", "History", "Biography", "Self-Help",
}

type seedAuthor struct {
	firstName string
	lastName  string
	birthDate time.Time
}

type seedBook struct {
	title       string
	isbn        string
	publishYear int
	price       string
	authorIdx   int
	genreIDs    []int
}

var seedAuthors = []seedAuthor{
	{"George", "Orwell", date(1903, 6, 25)},
	{"Jane", "Austen", date(1775, 12, 16)},
	{"Ernest", "Hemingway", date(1899, 7, 21)},
	{"Leo", "Tolstoy", date(1828, 9, 9)},
	{"Mark", "Twain", date(1835, 11, 30)},
	{"Agatha", "Christie", date(1890, 9, 15)},
	{"Isaac", "Asimov", date(1920, 1, 2)},
	{"F. Scott", "Fitzgerald", date(1896, 9, 24)},
}

var seedBooks = []seedBook{
	{"1984", "978-0-452-28423-4", 1949, "15.99", 0, []int{2, 4, 8}},
	{"Pride and Prejudice", "978-0-141-43951-8", 1813, "12.99", 1, []int{2, 7}},
	{"The Old Man and the Sea", "978-0-684-80122-3", 1952, "13.99", 2, []int{2}},
	{"War and Peace", "978-0-140-44793-7", 1869, "24.99", 3, []int{2, 9}},
	{"The Adventures of Tom Sawyer", "978-0-486-40077-6", 1876, "11.99", 4, []int{2}},
	{"Murder on the Orient Express", "978-0-062-07348-7", 1934, "14.99", 5, []int{6, 8, 2}},
	{"Foundation", "978-0-553-29335-0", 1951, "16.99", 6, []int{4, 2}},
	{"I, Robot", "978-0-553-38256-3", 1950, "15.99", 6, []int{4, 2}},
	{"The Great Gatsby", "978-0-7432-7356-5", 1925, "14.99", 7, []int{2, 7}},
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Seed chạy một lần khi startup, guarded bằng existence checks.
// Thay thế cho singleton in-memory user store - mọi seed data đều đi qua
// persistence layer.
func (db *PostgresDB) Seed(ctx context.Context, opts SeedOptions) error {
	if err := db.seedAdminUser(ctx, opts); err != nil {
		return err
	}
	if err := db.seedGenres(ctx); err != nil {
		return err
	}
	return db.seedAuthorsAndBooks(ctx)
}

func (db *PostgresDB) seedAdminUser(ctx context.Context, opts SeedOptions) error {
	var exists bool
	err := db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, opts.AdminEmail).Scan(&exists)
	if err != nil {
		return fmt.Errorf("seed admin check: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), 12)
	if err != nil {
		return fmt.Errorf("seed admin hash: %w", err)
	}

	_, err = db.Pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, full_name, role, created_at)
		 VALUES ($1, $2, $3, 'Administrator', 'Admin', now())`,
		uuid.New(), opts.AdminEmail, string(hash))
	if err != nil {
		return fmt.Errorf("seed admin insert: %w", err)
	}

	log.Info().Str("email", opts.AdminEmail).Msg("[SEED] Admin user created")
	return nil
}

func (db *PostgresDB) seedGenres(ctx context.Context) error {
	var count int
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM genres`).Scan(&count); err != nil {
		return fmt.Errorf("seed genres check: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, name := range seedGenres {
		if _, err := db.Pool.Exec(ctx, `INSERT INTO genres (name) VALUES ($1)`, name); err != nil {
			return fmt.Errorf("seed genre %q: %w", name, err)
		}
	}

	log.Info().Int("count", len(seedGenres)).Msg("[SEED] Genres created")
	return nil
}

func (db *PostgresDB) seedAuthorsAndBooks(ctx context.Context) error {
	var count int
	if err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&count); err != nil {
		return fmt.Errorf("seed authors check: %w", err)
	}
	if count > 0 {
		return nil
	}

	// Tất cả trong một transaction để không bao giờ seed nửa chừng
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	authorIDs := make([]uuid.UUID, len(seedAuthors))
	for i, a := range seedAuthors {
		authorIDs[i] = uuid.New()
		_, err := tx.Exec(ctx,
			`INSERT INTO authors (id, first_name, last_name, birth_date) VALUES ($1, $2, $3, $4)`,
			authorIDs[i], a.firstName, a.lastName, a.birthDate)
		if err != nil {
			return fmt.Errorf("seed author %s %s: %w", a.firstName, a.lastName, err)
		}
	}

	for _, b := range seedBooks {
		bookID := uuid.New()
		price, err := decimal.NewFromString(b.price)
		if err != nil {
			return fmt.Errorf("seed book %q price: %w", b.title, err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO books (id, title, isbn, publish_year, price, author_id)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			bookID, b.title, b.isbn, b.publishYear, price, authorIDs[b.authorIdx])
		if err != nil {
			return fmt.Errorf("seed book %q: %w", b.title, err)
		}
		for _, gid := range b.genreIDs {
			_, err = tx.Exec(ctx,
				`INSERT INTO book_genres (book_id, genre_id) VALUES ($1, $2)`, bookID, gid)
			if err != nil {
				return fmt.Errorf("seed book %q genre %d: %w", b.title, gid, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	log.Info().
		Int("authors", len(seedAuthors)).
		Int("books", len(seedBooks)).
		Msg("[SEED] Fixture authors and books created")
	return nil
}
