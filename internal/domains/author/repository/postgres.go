package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author"
)

// postgresRepository - raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - Constructor
func NewPostgresRepository(pool *pgxpool.Pool) author.RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, first_name, last_name, birth_date FROM authors ORDER BY last_name, first_name`)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]author.Author, 0)
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.BirthDate); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	var a author.Author
	err := r.pool.QueryRow(ctx,
		`SELECT id, first_name, last_name, birth_date FROM authors WHERE id = $1`, id).
		Scan(&a.ID, &a.FirstName, &a.LastName, &a.BirthDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, author.ErrAuthorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	return &a, nil
}

func (r *postgresRepository) Add(ctx context.Context, a *author.Author) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO authors (id, first_name, last_name, birth_date) VALUES ($1, $2, $3, $4)`,
		a.ID, a.FirstName, a.LastName, a.BirthDate)
	if err != nil {
		return fmt.Errorf("add author: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE authors SET first_name = $2, last_name = $3, birth_date = $4 WHERE id = $1`,
		a.ID, a.FirstName, a.LastName, a.BirthDate)
	if err != nil {
		return fmt.Errorf("update author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) CountBooks(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM books WHERE author_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count author books: %w", err)
	}
	return count, nil
}
