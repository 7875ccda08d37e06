package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
)

func TestParseAuthorName(t *testing.T) {
	cases := []struct {
		name      string
		raw       string
		wantFirst string
		wantLast  string
	}{
		{"comma form", "Orwell, George", "George", "Orwell"},
		{"space form", "George Orwell", "George", "Orwell"},
		{"parenthetical strip", "Twain, Mark (1835-1910)", "Mark", "Twain"},
		{"parenthetical space form", "Alexandre Dumas (1802-1870)", "Alexandre", "Dumas"},
		{"comma with empty given name", "Voltaire,", "Unknown", "Voltaire"},
		{"single token", "Plato", "", "Plato"},
		{"multiple given names", "Gabriel García Márquez", "Gabriel García", "Márquez"},
		{"empty", "", "Unknown", "Author"},
		{"only whitespace", "   ", "Unknown", "Author"},
		{"only parenthetical", "(1802-1870)", "Unknown", "Author"},
		{"only first comma splits", "Le Guin, Ursula K., writer", "Ursula K., writer", "Le Guin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, last := ParseAuthorName(tc.raw)
			assert.Equal(t, tc.wantFirst, first)
			assert.Equal(t, tc.wantLast, last)
		})
	}
}

func TestResolveCreatesAuthor(t *testing.T) {
	store := &fakeAuthorStore{}
	resolver := NewAuthorResolver(store)

	birthYear := 1903
	resolved, err := resolver.Resolve(context.Background(), &GutendexAuthor{
		Name:      "Orwell, George",
		BirthYear: &birthYear,
	})
	require.NoError(t, err)

	assert.Equal(t, "George", resolved.FirstName)
	assert.Equal(t, "Orwell", resolved.LastName)
	assert.Equal(t, time.Date(1903, time.January, 1, 0, 0, 0, 0, time.UTC), resolved.BirthDate)
	assert.Len(t, store.authors, 1)
}

func TestResolveIsIdempotent(t *testing.T) {
	store := &fakeAuthorStore{}
	resolver := NewAuthorResolver(store)
	ctx := context.Background()

	first, err := resolver.Resolve(ctx, &GutendexAuthor{Name: "Orwell, George"})
	require.NoError(t, err)

	// Cùng author dưới naming convention khác vẫn về cùng một row
	second, err := resolver.Resolve(ctx, &GutendexAuthor{Name: "george ORWELL"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, store.authors, 1)
}

func TestResolveReusesExistingLocalAuthor(t *testing.T) {
	existing := author.Author{
		ID:        newUUID(t),
		FirstName: "Jane",
		LastName:  "Austen",
		BirthDate: time.Date(1775, time.December, 16, 0, 0, 0, 0, time.UTC),
	}
	store := &fakeAuthorStore{authors: []author.Author{existing}}
	resolver := NewAuthorResolver(store)

	resolved, err := resolver.Resolve(context.Background(), &GutendexAuthor{Name: "Austen, Jane"})
	require.NoError(t, err)

	assert.Equal(t, existing.ID, resolved.ID)
	assert.Len(t, store.authors, 1)
}

func TestResolveNilAuthorUsesSentinel(t *testing.T) {
	store := &fakeAuthorStore{}
	resolver := NewAuthorResolver(store)

	resolved, err := resolver.Resolve(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Unknown", resolved.FirstName)
	assert.Equal(t, "Author", resolved.LastName)
	assert.Equal(t, 1900, resolved.BirthDate.Year())
}

func TestResolvePersistenceFailure(t *testing.T) {
	store := &fakeAuthorStore{addErr: assert.AnError}
	resolver := NewAuthorResolver(store)

	_, err := resolver.Resolve(context.Background(), &GutendexAuthor{Name: "Orwell, George"})
	require.Error(t, err)
}
