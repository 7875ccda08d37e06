package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"library-backend/internal/domains/book"
)

const baseSelect = `
	SELECT
		b.id, b.title, b.isbn, b.publish_year, b.price, b.author_id,
		a.first_name, a.last_name,
		COALESCE(array_agg(g.id ORDER BY g.id) FILTER (WHERE g.id IS NOT NULL), '{}') AS genre_ids,
		COALESCE(array_agg(g.name ORDER BY g.id) FILTER (WHERE g.id IS NOT NULL), '{}') AS genre_names
	FROM books b
	JOIN authors a ON a.id = b.author_id
	LEFT JOIN book_genres bg ON bg.book_id = b.id
	LEFT JOIN genres g ON g.id = bg.genre_id`

const baseGroupBy = `
	GROUP BY b.id, b.title, b.isbn, b.publish_year, b.price, b.author_id,
		a.first_name, a.last_name`

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool) book.RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanBookRows(rows pgx.Rows) ([]book.BookWithDetails, error) {
	books := make([]book.BookWithDetails, 0)
	for rows.Next() {
		var b book.BookWithDetails
		err := rows.Scan(
			&b.ID, &b.Title, &b.ISBN, &b.PublishYear, &b.Price, &b.AuthorID,
			&b.AuthorFirstName, &b.AuthorLastName, &b.GenreIDs, &b.GenreNames,
		)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]book.BookWithDetails, error) {
	rows, err := r.pool.Query(ctx, baseSelect+baseGroupBy+` ORDER BY b.title`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()
	return scanBookRows(rows)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.BookWithDetails, error) {
	rows, err := r.pool.Query(ctx, baseSelect+` WHERE b.id = $1`+baseGroupBy, id)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	defer rows.Close()

	books, err := scanBookRows(rows)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, book.ErrBookNotFound
	}
	return &books[0], nil
}

func (r *postgresRepository) GetFiltered(ctx context.Context, filter book.BookFilter) ([]book.BookWithDetails, error) {
	where := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.SearchTitle != "" {
		where = append(where, fmt.Sprintf("b.title ILIKE $%d", argIndex))
		args = append(args, "%"+filter.SearchTitle+"%")
		argIndex++
	}
	if filter.AuthorID != nil {
		where = append(where, fmt.Sprintf("b.author_id = $%d", argIndex))
		args = append(args, *filter.AuthorID)
		argIndex++
	}
	if filter.GenreID != nil {
		where = append(where, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM book_genres fg WHERE fg.book_id = b.id AND fg.genre_id = $%d)", argIndex))
		args = append(args, *filter.GenreID)
		argIndex++
	}

	query := baseSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += baseGroupBy

	// Sort columns are whitelisted - never interpolate user input directly
	sortCol := "b.title"
	if filter.SortBy == "publish_year" {
		sortCol = "b.publish_year"
	}
	sortDir := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		sortDir = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", sortCol, sortDir)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("filter books: %w", err)
	}
	defer rows.Close()
	return scanBookRows(rows)
}

func (r *postgresRepository) GetByGenre(ctx context.Context, genreID int) ([]book.BookWithDetails, error) {
	query := baseSelect + `
	WHERE EXISTS (SELECT 1 FROM book_genres fg WHERE fg.book_id = b.id AND fg.genre_id = $1)` +
		baseGroupBy + ` ORDER BY b.title`

	rows, err := r.pool.Query(ctx, query, genreID)
	if err != nil {
		return nil, fmt.Errorf("books by genre: %w", err)
	}
	defer rows.Close()
	return scanBookRows(rows)
}

func (r *postgresRepository) Add(ctx context.Context, b *book.Book) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO books (id, title, isbn, publish_year, price, author_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID, b.Title, b.ISBN, b.PublishYear, b.Price, b.AuthorID)
	if err != nil {
		return mapConstraintError(err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE books SET title = $2, publish_year = $3, price = $4, author_id = $5 WHERE id = $1`,
		b.ID, b.Title, b.PublishYear, b.Price, b.AuthorID)
	if err != nil {
		return mapConstraintError(err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// AssignGenres thay toàn bộ genre assignments của book
func (r *postgresRepository) AssignGenres(ctx context.Context, bookID uuid.UUID, genreIDs []int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("assign genres begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM book_genres WHERE book_id = $1`, bookID); err != nil {
		return fmt.Errorf("assign genres clear: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO book_genres (book_id, genre_id)
		 SELECT $1, unnest($2::int[]) ON CONFLICT DO NOTHING`,
		bookID, pq.Array(genreIDs))
	if err != nil {
		return mapConstraintError(err)
	}

	return tx.Commit(ctx)
}

func (r *postgresRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)`, isbn).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by isbn: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByTitle(ctx context.Context, title string, authorID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	var err error
	if excludeID != nil {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM books WHERE lower(title) = lower($1) AND author_id = $2 AND id <> $3)`,
			title, authorID, *excludeID).Scan(&exists)
	} else {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM books WHERE lower(title) = lower($1) AND author_id = $2)`,
			title, authorID).Scan(&exists)
	}
	if err != nil {
		return false, fmt.Errorf("exists by title: %w", err)
	}
	return exists, nil
}

// mapConstraintError dịch Postgres constraint violations sang domain errors
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.ConstraintName, "isbn") {
				return book.ErrISBNAlreadyExists
			}
			return book.ErrBookAlreadyExists
		case "23503": // foreign_key_violation
			if strings.Contains(pgErr.ConstraintName, "genre") {
				return book.ErrInvalidGenre
			}
			return book.ErrAuthorNotFound
		}
	}
	return fmt.Errorf("book write: %w", err)
}
