package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/book"
)

const (
	importGenreName = "Fiction"

	// Remote catalog không có ngày xuất bản - ước lượng từ năm sinh tác giả
	publishYearOffset  = 30
	defaultPublishYear = 1900
)

// Importer biến một Gutendex record thành local author/book/genre rows,
// idempotent: import cùng một remote id nhiều lần hội tụ về một book.
type Importer struct {
	client   *Client
	resolver *AuthorResolver
	books    BookStore
	genres   GenreStore
}

// NewImporter - Constructor
func NewImporter(client *Client, resolver *AuthorResolver, books BookStore, genres GenreStore) *Importer {
	return &Importer{
		client:   client,
		resolver: resolver,
		books:    books,
		genres:   genres,
	}
}

// ImportByGutendexID fetch record từ remote rồi import
func (i *Importer) ImportByGutendexID(ctx context.Context, gutendexID int) ImportResult {
	gb := i.client.GetByID(ctx, gutendexID)
	if gb == nil {
		return ImportResult{Ok: false, Message: fmt.Sprintf("Book %d not found in remote catalog", gutendexID)}
	}
	return i.ImportBook(ctx, gb)
}

// ImportBook import một record đã fetch sẵn
func (i *Importer) ImportBook(ctx context.Context, gb *GutendexBook) ImportResult {
	resolved, err := i.resolver.Resolve(ctx, gb.FirstAuthor())
	if err != nil {
		log.Error().Err(err).Int("gutendex_id", gb.ID).Msg("[Importer] Author resolution failed")
		return ImportResult{Ok: false, Message: "Failed to resolve author"}
	}

	isbn := ISBNFromGutendexID(gb.ID)

	// Idempotence check: case-insensitive title + cùng author
	if existingID, found, err := i.findExisting(ctx, gb.Title, resolved.ID); err != nil {
		return ImportResult{Ok: false, Message: "Failed to check existing books"}
	} else if found {
		return ImportResult{Ok: true, Message: "Book already exists", BookID: &existingID}
	}

	b := &book.Book{
		ID:          uuid.New(),
		Title:       gb.Title,
		ISBN:        isbn,
		PublishYear: estimatePublishYear(gb.FirstAuthor()),
		AuthorID:    resolved.ID,
	}
	if err := i.books.Add(ctx, b); err != nil {
		// Unique constraint bắt được race giữa hai import đồng thời của
		// cùng remote id - map về idempotent success thay vì fail
		if errors.Is(err, book.ErrBookAlreadyExists) || errors.Is(err, book.ErrISBNAlreadyExists) {
			if existingID, found, ferr := i.findExisting(ctx, gb.Title, resolved.ID); ferr == nil && found {
				return ImportResult{Ok: true, Message: "Book already exists", BookID: &existingID}
			}
			return ImportResult{Ok: true, Message: "Book already exists"}
		}
		log.Error().Err(err).Int("gutendex_id", gb.ID).Msg("[Importer] Failed to add book")
		return ImportResult{Ok: false, Message: "Failed to add book"}
	}

	i.assignDefaultGenre(ctx, b.ID)

	log.Info().Int("gutendex_id", gb.ID).Str("title", gb.Title).Msg("[Importer] ✅ Book imported")
	return ImportResult{Ok: true, Message: "Book imported successfully", BookID: &b.ID}
}

func (i *Importer) findExisting(ctx context.Context, title string, authorID uuid.UUID) (uuid.UUID, bool, error) {
	all, err := i.books.GetAll(ctx)
	if err != nil {
		return uuid.Nil, false, err
	}
	for _, b := range all {
		if b.AuthorID == authorID && strings.EqualFold(b.Title, title) {
			return b.ID, true, nil
		}
	}
	return uuid.Nil, false, nil
}

// assignDefaultGenre gán genre "Fiction" nếu tồn tại - best-effort,
// import không fail vì genre
func (i *Importer) assignDefaultGenre(ctx context.Context, bookID uuid.UUID) {
	genres, err := i.genres.GetAll(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("[Importer] Failed to load genres, skipping assignment")
		return
	}
	for _, g := range genres {
		if strings.EqualFold(g.Name, importGenreName) {
			if err := i.books.AssignGenres(ctx, bookID, []int{g.ID}); err != nil {
				log.Warn().Err(err).Msg("[Importer] Failed to assign default genre")
			}
			return
		}
	}
}

func estimatePublishYear(ga *GutendexAuthor) int {
	if ga != nil && ga.BirthYear != nil {
		return *ga.BirthYear + publishYearOffset
	}
	return defaultPublishYear
}
