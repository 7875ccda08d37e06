package catalog

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/genre"
)

// GutendexAuthor - author entry trong Gutendex payload
type GutendexAuthor struct {
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
}

// GutendexBook - một record từ remote catalog. Transient: fetch per request,
// không bao giờ persist nguyên trạng.
type GutendexBook struct {
	ID            int               `json:"id"`
	Title         string            `json:"title"`
	Authors       []GutendexAuthor  `json:"authors"`
	Summaries     []string          `json:"summaries"`
	Formats       map[string]string `json:"formats"`
	DownloadCount int               `json:"download_count"`
}

// CoverURL ưu tiên format image/jpeg, fallback về URL template chuẩn của Gutenberg
func (b GutendexBook) CoverURL() string {
	if url, ok := b.Formats["image/jpeg"]; ok && url != "" {
		return url
	}
	return gutenbergCoverURL(b.ID)
}

// FirstSummary trả về summary đầu tiên nếu có
func (b GutendexBook) FirstSummary() *string {
	if len(b.Summaries) == 0 {
		return nil
	}
	return &b.Summaries[0]
}

// FirstAuthor trả về author đầu tiên nếu có
func (b GutendexBook) FirstAuthor() *GutendexAuthor {
	if len(b.Authors) == 0 {
		return nil
	}
	return &b.Authors[0]
}

// GutendexResponse - paginated search response từ remote catalog
type GutendexResponse struct {
	Count    int            `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []GutendexBook `json:"results"`
}

// SearchResult - merged view record cho hybrid search.
// ID == uuid.Nil đánh dấu remote-only result chưa được import.
type SearchResult struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	ISBN          string    `json:"isbn"`
	PublishYear   int       `json:"publish_year"`
	AuthorName    string    `json:"author_name"`
	GutendexID    *int      `json:"gutendex_id,omitempty"`
	CoverImageURL *string   `json:"cover_image_url,omitempty"`
	Summary       *string   `json:"summary,omitempty"`
	DownloadCount *int      `json:"download_count,omitempty"`
}

// IsImported báo record đã tồn tại local hay chỉ là remote-only
func (r SearchResult) IsImported() bool {
	return r.ID != uuid.Nil
}

// ImportResult - kết quả của một import operation
type ImportResult struct {
	Ok      bool       `json:"ok"`
	Message string     `json:"message"`
	BookID  *uuid.UUID `json:"book_id,omitempty"`
}

// BookStore - subset của book repository mà catalog engine cần.
// book.RepositoryInterface thỏa mãn interface này về mặt structural.
type BookStore interface {
	GetAll(ctx context.Context) ([]book.BookWithDetails, error)
	Add(ctx context.Context, b *book.Book) error
	AssignGenres(ctx context.Context, bookID uuid.UUID, genreIDs []int) error
}

// AuthorStore - subset của author repository mà catalog engine cần
type AuthorStore interface {
	GetAll(ctx context.Context) ([]author.Author, error)
	Add(ctx context.Context, a *author.Author) error
}

// GenreStore - subset của genre repository mà catalog engine cần
type GenreStore interface {
	GetAll(ctx context.Context) ([]genre.Genre, error)
}
