package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book"
)

func localBook(title, isbn, authorFirst, authorLast string) book.BookWithDetails {
	return book.BookWithDetails{
		Book: book.Book{
			ID:          uuid.New(),
			Title:       title,
			ISBN:        isbn,
			PublishYear: 1900,
			AuthorID:    uuid.New(),
		},
		AuthorFirstName: authorFirst,
		AuthorLastName:  authorLast,
	}
}

func newTestSearchService(books *fakeBookStore, remote http.Handler) (*SearchService, *httptest.Server) {
	srv := httptest.NewServer(remote)
	client := NewClient(srv.URL, 2*time.Second)
	return NewSearchService(books, client, NewEnricher(client)), srv
}

func remoteSearchResults(n int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		results := make([]GutendexBook, 0, n)
		for i := 1; i <= n; i++ {
			results = append(results, GutendexBook{
				ID:            i,
				Title:         fmt.Sprintf("Remote Book %d", i),
				Authors:       []GutendexAuthor{{Name: "Doe, Jane"}},
				Summaries:     []string{"a summary"},
				DownloadCount: i * 100,
			})
		}
		json.NewEncoder(w).Encode(GutendexResponse{Count: n, Results: results})
	})
}

func TestHybridSearchSupplementsThinLocalResults(t *testing.T) {
	books := newFakeBookStore(
		localBook("Dickens Stories I", "111-1-11-111111-1", "Charles", "Dickens"),
		localBook("Dickens Stories II", "222-2-22-222222-2", "Charles", "Dickens"),
		localBook("Dickens Stories III", "333-3-33-333333-3", "Charles", "Dickens"),
	)
	service, srv := newTestSearchService(books, remoteSearchResults(12))
	defer srv.Close()

	results, err := service.SearchHybrid(context.Background(), "dickens")
	require.NoError(t, err)

	// 3 local + tối đa 10 remote-only
	require.Len(t, results, 13)
	for i := 0; i < 3; i++ {
		assert.True(t, results[i].IsImported(), "local result %d", i)
	}
	for i := 3; i < 13; i++ {
		assert.False(t, results[i].IsImported(), "remote result %d", i)
		assert.NotNil(t, results[i].GutendexID)
		assert.True(t, strings.HasPrefix(results[i].ISBN, "978-3-16-"), "remote results carry synthetic keys")
		assert.NotNil(t, results[i].Summary)
	}
}

func TestHybridSearchSkipsRemoteWhenLocalCoverageIsEnough(t *testing.T) {
	var remoteCalls int64
	books := newFakeBookStore(
		localBook("Go Basics", "111-1-11-111111-1", "A", "One"),
		localBook("Go Patterns", "222-2-22-222222-2", "B", "Two"),
		localBook("Go Services", "333-3-33-333333-3", "C", "Three"),
		localBook("Go Tooling", "444-4-44-444444-4", "D", "Four"),
		localBook("Go Internals", "555-5-55-555555-5", "E", "Five"),
	)
	service, srv := newTestSearchService(books, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&remoteCalls, 1)
		json.NewEncoder(w).Encode(GutendexResponse{})
	}))
	defer srv.Close()

	results, err := service.SearchHybrid(context.Background(), "go")
	require.NoError(t, err)

	assert.Len(t, results, 5)
	for _, r := range results {
		assert.True(t, r.IsImported())
	}
	// Không có local book nào mang synthetic key và local coverage đủ
	// → không một remote call nào được phép xảy ra
	assert.Equal(t, int64(0), atomic.LoadInt64(&remoteCalls))
}

func TestHybridSearchMatchesAuthorName(t *testing.T) {
	books := newFakeBookStore(
		localBook("Animal Farm", "111-1-11-111111-1", "George", "Orwell"),
		localBook("Brave New World", "222-2-22-222222-2", "Aldous", "Huxley"),
		localBook("Nineteen Eighty-Four", "333-3-33-333333-3", "George", "Orwell"),
		localBook("Homage to Catalonia", "444-4-44-444444-4", "George", "Orwell"),
		localBook("Burmese Days", "555-5-55-555555-5", "George", "Orwell"),
	)
	service, srv := newTestSearchService(books, remoteSearchResults(0))
	defer srv.Close()

	results, err := service.SearchHybrid(context.Background(), "orwell")
	require.NoError(t, err)
	assert.Len(t, results, 4)
}

func TestListAllEnrichedIsolation(t *testing.T) {
	// 5 local books có remote origin, remote lookup cho id 2 và 4 fail.
	// Batch vẫn phải trả đủ 5 outcome, record lỗi chỉ thiếu enrichment.
	books := newFakeBookStore(
		localBook("Book One", ISBNFromGutendexID(1), "A", "One"),
		localBook("Book Two", ISBNFromGutendexID(2), "B", "Two"),
		localBook("Book Three", ISBNFromGutendexID(3), "C", "Three"),
		localBook("Book Four", ISBNFromGutendexID(4), "D", "Four"),
		localBook("Book Five", ISBNFromGutendexID(5), "E", "Five"),
	)
	service, srv := newTestSearchService(books, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/"))
		if id == 2 || id == 4 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(GutendexBook{
			ID:            id,
			Formats:       map[string]string{"image/jpeg": fmt.Sprintf("https://example.com/%d.jpg", id)},
			DownloadCount: id * 10,
		})
	}))
	defer srv.Close()

	results, err := service.ListAllEnriched(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 5)

	byID := make(map[int]SearchResult)
	for _, r := range results {
		require.NotNil(t, r.GutendexID)
		byID[*r.GutendexID] = r
	}

	for _, id := range []int{1, 3, 5} {
		r := byID[id]
		require.NotNil(t, r.CoverImageURL, "record %d should be enriched", id)
		assert.Equal(t, fmt.Sprintf("https://example.com/%d.jpg", id), *r.CoverImageURL)
		require.NotNil(t, r.DownloadCount)
		assert.Equal(t, id*10, *r.DownloadCount)
	}
	for _, id := range []int{2, 4} {
		r := byID[id]
		assert.Nil(t, r.CoverImageURL, "record %d enrichment should be absent", id)
		assert.Nil(t, r.DownloadCount)
	}
}

func TestListAllEnrichedSkipsAuthenticISBNs(t *testing.T) {
	var remoteCalls int64
	books := newFakeBookStore(
		localBook("1984", "978-0-452-28423-4", "George", "Orwell"),
	)
	service, srv := newTestSearchService(books, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&remoteCalls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	results, err := service.ListAllEnriched(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Nil(t, results[0].CoverImageURL)
	assert.Nil(t, results[0].GutendexID)
	assert.Equal(t, int64(0), atomic.LoadInt64(&remoteCalls))
}

func TestEnricherCoverByTitle(t *testing.T) {
	t.Run("first result wins", func(t *testing.T) {
		srv := httptest.NewServer(remoteSearchResults(3))
		defer srv.Close()
		enricher := NewEnricher(NewClient(srv.URL, 2*time.Second))

		enrichment := enricher.CoverByTitle(context.Background(), "remote book")
		require.NotNil(t, enrichment.CoverImageURL)
		require.NotNil(t, enrichment.DownloadCount)
		assert.Equal(t, 100, *enrichment.DownloadCount)
	})

	t.Run("no results", func(t *testing.T) {
		srv := httptest.NewServer(remoteSearchResults(0))
		defer srv.Close()
		enricher := NewEnricher(NewClient(srv.URL, 2*time.Second))

		enrichment := enricher.CoverByTitle(context.Background(), "unknown title")
		assert.Nil(t, enrichment.CoverImageURL)
		assert.Nil(t, enrichment.DownloadCount)
	})
}
