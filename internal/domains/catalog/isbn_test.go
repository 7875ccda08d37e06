package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISBNRoundTrip(t *testing.T) {
	for id := 0; id <= 999999; id++ {
		isbn := ISBNFromGutendexID(id)
		decoded, ok := GutendexIDFromISBN(isbn)
		if !ok {
			t.Fatalf("decode failed for id %d (isbn %q)", id, isbn)
		}
		if decoded != id {
			t.Fatalf("round trip mismatch: id %d decoded as %d", id, decoded)
		}
	}
}

func TestISBNFromGutendexIDFormat(t *testing.T) {
	assert.Equal(t, "978-3-16-000000-0", ISBNFromGutendexID(0))
	assert.Equal(t, "978-3-16-000084-0", ISBNFromGutendexID(84))
	assert.Equal(t, "978-3-16-999999-0", ISBNFromGutendexID(999999))
}

func TestGutendexIDFromISBNRejections(t *testing.T) {
	cases := []struct {
		name string
		isbn string
	}{
		{"real isbn", "978-0-452-28423-4"},
		{"empty", ""},
		{"wrong prefix", "979-3-16-000084-0"},
		{"wrong suffix", "978-3-16-000084-1"},
		{"too short", "978-3-16-84-0"},
		{"too long", "978-3-16-0000084-0"},
		{"non-digit group", "978-3-16-00a084-0"},
		{"signed group", "978-3-16-+00084-0"},
		{"random string", "not an isbn at all"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := GutendexIDFromISBN(tc.isbn)
			require.False(t, ok)
		})
	}
}

func TestGutendexIDFromISBNAccepts(t *testing.T) {
	id, ok := GutendexIDFromISBN("978-3-16-001342-0")
	require.True(t, ok)
	assert.Equal(t, 1342, id)
}
