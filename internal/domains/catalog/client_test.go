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
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 2*time.Second), srv
}

func TestSearchQueryString(t *testing.T) {
	cases := []struct {
		name      string
		search    string
		page      int
		wantQuery string
	}{
		{"empty search first page", "", 1, ""},
		{"search only", "dickens", 1, "search=dickens"},
		{"search and page", "dickens", 2, "page=2&search=dickens"},
		{"page only", "", 3, "page=3"},
		{"page zero omitted", "dickens", 0, "search=dickens"},
		{"search is url encoded", "war and peace", 1, "search=war+and+peace"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotQuery string
			client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.RawQuery
				json.NewEncoder(w).Encode(GutendexResponse{})
			}))
			defer srv.Close()

			client.Search(context.Background(), tc.search, tc.page)
			assert.Equal(t, tc.wantQuery, gotQuery)
		})
	}
}

func TestSearchDecodesResponse(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GutendexResponse{
			Count: 1,
			Results: []GutendexBook{{
				ID:            1342,
				Title:         "Pride and Prejudice",
				Authors:       []GutendexAuthor{{Name: "Austen, Jane"}},
				Formats:       map[string]string{"image/jpeg": "https://example.com/cover.jpg"},
				DownloadCount: 50000,
			}},
		})
	}))
	defer srv.Close()

	resp := client.Search(context.Background(), "pride", 1)
	require.NotNil(t, resp)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, 1342, resp.Results[0].ID)
	assert.Equal(t, "Pride and Prejudice", resp.Results[0].Title)
}

func TestSearchContainsFailures(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		resp := client.Search(context.Background(), "anything", 1)
		require.NotNil(t, resp)
		assert.Equal(t, 0, resp.Count)
		assert.Empty(t, resp.Results)
	})

	t.Run("malformed payload", func(t *testing.T) {
		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("this is not json"))
		}))
		defer srv.Close()

		resp := client.Search(context.Background(), "anything", 1)
		require.NotNil(t, resp)
		assert.Empty(t, resp.Results)
	})

	t.Run("unreachable server", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1/books", 200*time.Millisecond)

		resp := client.Search(context.Background(), "anything", 1)
		require.NotNil(t, resp)
		assert.Empty(t, resp.Results)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/84", r.URL.Path)
			json.NewEncoder(w).Encode(GutendexBook{ID: 84, Title: "Frankenstein"})
		}))
		defer srv.Close()

		gb := client.GetByID(context.Background(), 84)
		require.NotNil(t, gb)
		assert.Equal(t, "Frankenstein", gb.Title)
	})

	t.Run("not found returns nil", func(t *testing.T) {
		client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		assert.Nil(t, client.GetByID(context.Background(), 999999))
	})

	t.Run("unreachable server returns nil", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1/books", 200*time.Millisecond)
		assert.Nil(t, client.GetByID(context.Background(), 84))
	})
}

func TestCoverURLFallback(t *testing.T) {
	withJpeg := GutendexBook{
		ID:      84,
		Formats: map[string]string{"image/jpeg": "https://example.com/84.jpg"},
	}
	assert.Equal(t, "https://example.com/84.jpg", withJpeg.CoverURL())

	withoutJpeg := GutendexBook{ID: 84, Formats: map[string]string{"text/html": "https://example.com/84.html"}}
	assert.Equal(t, "https://www.gutenberg.org/cache/epub/84/pg84.cover.medium.jpg", withoutJpeg.CoverURL())
}
