package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/genre"
)

func intPtr(v int) *int { return &v }

func newTestImporter(remote http.Handler, books *fakeBookStore, authors *fakeAuthorStore, genres *fakeGenreStore) (*Importer, *httptest.Server) {
	srv := httptest.NewServer(remote)
	client := NewClient(srv.URL, 2*time.Second)
	resolver := NewAuthorResolver(authors)
	return NewImporter(client, resolver, books, genres), srv
}

func serveBook(gb GutendexBook) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(gb)
	})
}

func TestImportByGutendexID(t *testing.T) {
	books := newFakeBookStore()
	authors := &fakeAuthorStore{}
	genres := &fakeGenreStore{genres: []genre.Genre{{ID: 1, Name: "Unknown"}, {ID: 2, Name: "Fiction"}}}

	importer, srv := newTestImporter(serveBook(GutendexBook{
		ID:      1342,
		Title:   "Pride and Prejudice",
		Authors: []GutendexAuthor{{Name: "Austen, Jane", BirthYear: intPtr(1775)}},
	}), books, authors, genres)
	defer srv.Close()

	result := importer.ImportByGutendexID(context.Background(), 1342)
	require.True(t, result.Ok, result.Message)
	require.NotNil(t, result.BookID)

	require.Len(t, books.books, 1)
	imported := books.books[0]
	assert.Equal(t, "Pride and Prejudice", imported.Title)
	assert.Equal(t, "978-3-16-001342-0", imported.ISBN)
	assert.Nil(t, imported.Price)

	require.Len(t, authors.authors, 1)
	assert.Equal(t, "Jane", authors.authors[0].FirstName)
	assert.Equal(t, "Austen", authors.authors[0].LastName)
	assert.Equal(t, authors.authors[0].ID, imported.AuthorID)

	// Default genre "Fiction" được gán best-effort
	assert.Equal(t, []int{2}, books.assigned[imported.ID])
}

func TestImportPublishYearHeuristic(t *testing.T) {
	t.Run("birth year plus thirty", func(t *testing.T) {
		books := newFakeBookStore()
		importer, srv := newTestImporter(serveBook(GutendexBook{
			ID:      10,
			Title:   "Some Book",
			Authors: []GutendexAuthor{{Name: "Doe, John", BirthYear: intPtr(1920)}},
		}), books, &fakeAuthorStore{}, &fakeGenreStore{})
		defer srv.Close()

		result := importer.ImportByGutendexID(context.Background(), 10)
		require.True(t, result.Ok)
		assert.Equal(t, 1950, books.books[0].PublishYear)
	})

	t.Run("missing birth year defaults to 1900", func(t *testing.T) {
		books := newFakeBookStore()
		importer, srv := newTestImporter(serveBook(GutendexBook{
			ID:      11,
			Title:   "Anonymous Work",
			Authors: []GutendexAuthor{{Name: "Anonymous"}},
		}), books, &fakeAuthorStore{}, &fakeGenreStore{})
		defer srv.Close()

		result := importer.ImportByGutendexID(context.Background(), 11)
		require.True(t, result.Ok)
		assert.Equal(t, 1900, books.books[0].PublishYear)
	})
}

func TestImportIsIdempotent(t *testing.T) {
	books := newFakeBookStore()
	importer, srv := newTestImporter(serveBook(GutendexBook{
		ID:      84,
		Title:   "Frankenstein",
		Authors: []GutendexAuthor{{Name: "Shelley, Mary", BirthYear: intPtr(1797)}},
	}), books, &fakeAuthorStore{}, &fakeGenreStore{})
	defer srv.Close()

	ctx := context.Background()
	first := importer.ImportByGutendexID(ctx, 84)
	second := importer.ImportByGutendexID(ctx, 84)

	require.True(t, first.Ok)
	require.True(t, second.Ok)
	require.NotNil(t, first.BookID)
	require.NotNil(t, second.BookID)

	assert.Equal(t, *first.BookID, *second.BookID)
	assert.Equal(t, "Book already exists", second.Message)
	assert.Len(t, books.books, 1)
}

func TestImportTitleMatchIsCaseInsensitive(t *testing.T) {
	books := newFakeBookStore()
	importer, srv := newTestImporter(serveBook(GutendexBook{
		ID:      84,
		Title:   "FRANKENSTEIN",
		Authors: []GutendexAuthor{{Name: "Shelley, Mary"}},
	}), books, &fakeAuthorStore{}, &fakeGenreStore{})
	defer srv.Close()

	ctx := context.Background()
	first := importer.ImportBook(ctx, &GutendexBook{
		ID:      84,
		Title:   "Frankenstein",
		Authors: []GutendexAuthor{{Name: "Shelley, Mary"}},
	})
	require.True(t, first.Ok)

	second := importer.ImportByGutendexID(ctx, 84)
	require.True(t, second.Ok)
	assert.Equal(t, *first.BookID, *second.BookID)
	assert.Len(t, books.books, 1)
}

func TestImportRemoteNotFound(t *testing.T) {
	importer, srv := newTestImporter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}), newFakeBookStore(), &fakeAuthorStore{}, &fakeGenreStore{})
	defer srv.Close()

	result := importer.ImportByGutendexID(context.Background(), 123456)
	assert.False(t, result.Ok)
	assert.Contains(t, result.Message, "not found")
}

func TestImportAuthorResolutionFailureIsFatal(t *testing.T) {
	books := newFakeBookStore()
	importer, srv := newTestImporter(serveBook(GutendexBook{
		ID:      84,
		Title:   "Frankenstein",
		Authors: []GutendexAuthor{{Name: "Shelley, Mary"}},
	}), books, &fakeAuthorStore{addErr: assert.AnError}, &fakeGenreStore{})
	defer srv.Close()

	result := importer.ImportByGutendexID(context.Background(), 84)
	assert.False(t, result.Ok)
	// Không được để lại partial book khi author resolution fail
	assert.Empty(t, books.books)
}

func TestImportUniqueViolationMapsToIdempotentSuccess(t *testing.T) {
	// Giả lập race: idempotence check không thấy gì nhưng insert đụng
	// unique constraint
	books := newFakeBookStore()
	books.addErr = book.ErrBookAlreadyExists

	importer, srv := newTestImporter(serveBook(GutendexBook{
		ID:      84,
		Title:   "Frankenstein",
		Authors: []GutendexAuthor{{Name: "Shelley, Mary"}},
	}), books, &fakeAuthorStore{}, &fakeGenreStore{})
	defer srv.Close()

	result := importer.ImportByGutendexID(context.Background(), 84)
	assert.True(t, result.Ok)
	assert.Equal(t, "Book already exists", result.Message)
}
