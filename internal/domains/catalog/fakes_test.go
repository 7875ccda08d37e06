package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/genre"
)

func newUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

type fakeBookStore struct {
	mu       sync.Mutex
	books    []book.BookWithDetails
	addErr   error
	assigned map[uuid.UUID][]int
}

func newFakeBookStore(books ...book.BookWithDetails) *fakeBookStore {
	return &fakeBookStore{
		books:    books,
		assigned: make(map[uuid.UUID][]int),
	}
}

func (f *fakeBookStore) GetAll(_ context.Context) ([]book.BookWithDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]book.BookWithDetails, len(f.books))
	copy(out, f.books)
	return out, nil
}

func (f *fakeBookStore) Add(_ context.Context, b *book.Book) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.books = append(f.books, book.BookWithDetails{Book: *b})
	return nil
}

func (f *fakeBookStore) AssignGenres(_ context.Context, bookID uuid.UUID, genreIDs []int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assigned[bookID] = genreIDs
	return nil
}

type fakeAuthorStore struct {
	mu      sync.Mutex
	authors []author.Author
	addErr  error
}

func (f *fakeAuthorStore) GetAll(_ context.Context) ([]author.Author, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]author.Author, len(f.authors))
	copy(out, f.authors)
	return out, nil
}

func (f *fakeAuthorStore) Add(_ context.Context, a *author.Author) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.authors = append(f.authors, *a)
	return nil
}

type fakeGenreStore struct {
	genres []genre.Genre
}

func (f *fakeGenreStore) GetAll(_ context.Context) ([]genre.Genre, error) {
	return f.genres, nil
}
