package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const minPublishYear = 1450

// Book entity. ISBN là catalog string - hoặc ISBN thật, hoặc synthetic key
// do catalog importer sinh ra (xem domains/catalog).
type Book struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	ISBN        string           `json:"isbn"`
	PublishYear int              `json:"publish_year"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	AuthorID    uuid.UUID        `json:"author_id"`
}

// BookWithDetails - book row đã join với author và genres
type BookWithDetails struct {
	Book
	AuthorFirstName string
	AuthorLastName  string
	GenreIDs        []int
	GenreNames      []string
}

// AuthorFullName trả về "FirstName LastName" của author sở hữu
func (b BookWithDetails) AuthorFullName() string {
	if b.AuthorFirstName == "" {
		return b.AuthorLastName
	}
	return b.AuthorFirstName + " " + b.AuthorLastName
}

// BookDTO - view object trả về cho client
type BookDTO struct {
	ID             uuid.UUID        `json:"id"`
	Title          string           `json:"title"`
	ISBN           string           `json:"isbn"`
	PublishYear    int              `json:"publish_year"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	AuthorID       uuid.UUID        `json:"author_id"`
	AuthorFullName string           `json:"author_full_name"`
	GenreIDs       []int            `json:"genre_ids"`
	GenreNames     []string         `json:"genre_names"`
}

// ToDTO map joined row sang DTO
func (b BookWithDetails) ToDTO() BookDTO {
	genreIDs := b.GenreIDs
	if genreIDs == nil {
		genreIDs = []int{}
	}
	genreNames := b.GenreNames
	if genreNames == nil {
		genreNames = []string{}
	}
	return BookDTO{
		ID:             b.ID,
		Title:          b.Title,
		ISBN:           b.ISBN,
		PublishYear:    b.PublishYear,
		Price:          b.Price,
		AuthorID:       b.AuthorID,
		AuthorFullName: b.AuthorFullName(),
		GenreIDs:       genreIDs,
		GenreNames:     genreNames,
	}
}

// CreateBookRequest - request body cho create
type CreateBookRequest struct {
	Title       string           `json:"title"`
	ISBN        string           `json:"isbn"`
	PublishYear int              `json:"publish_year"`
	Price       *decimal.Decimal `json:"price"`
	AuthorID    uuid.UUID        `json:"author_id"`
	GenreIDs    []int            `json:"genre_ids"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(2, 500)),
		validation.Field(&r.ISBN, validation.Required, validation.Length(10, 20)),
		validation.Field(&r.PublishYear, validation.Required,
			validation.Min(minPublishYear), validation.Max(time.Now().Year())),
		validation.Field(&r.AuthorID, validation.Required, validation.NotIn(uuid.Nil)),
	)
}

// UpdateBookRequest - request body cho update (ISBN không đổi được)
type UpdateBookRequest struct {
	Title       string           `json:"title"`
	PublishYear int              `json:"publish_year"`
	Price       *decimal.Decimal `json:"price"`
	AuthorID    uuid.UUID        `json:"author_id"`
	GenreIDs    []int            `json:"genre_ids"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(2, 500)),
		validation.Field(&r.PublishYear, validation.Required,
			validation.Min(minPublishYear), validation.Max(time.Now().Year())),
		validation.Field(&r.AuthorID, validation.Required, validation.NotIn(uuid.Nil)),
	)
}

// BookFilter - filter params cho GetFiltered
type BookFilter struct {
	SearchTitle string
	AuthorID    *uuid.UUID
	GenreID     *int
	SortBy      string // "title" | "publish_year"
	SortOrder   string // "asc" | "desc"
}
