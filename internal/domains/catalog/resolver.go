package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/author"
)

const (
	sentinelAuthorName = "Unknown Author"
	defaultBirthYear   = 1900
)

// AuthorResolver map free-text author name từ remote catalog sang local
// author row, dedup case-insensitive theo (first, last).
type AuthorResolver struct {
	authors AuthorStore
}

// NewAuthorResolver - Constructor
func NewAuthorResolver(authors AuthorStore) *AuthorResolver {
	return &AuthorResolver{authors: authors}
}

// ParseAuthorName tách raw name thành (first, last).
// Gutendex chủ yếu dùng dạng "Surname, Given Names", đôi khi kèm
// "(1802-1870)" phía sau.
func ParseAuthorName(raw string) (string, string) {
	name := stripParenthetical(raw)

	if idx := strings.Index(name, ","); idx >= 0 {
		last := strings.TrimSpace(name[:idx])
		first := strings.TrimSpace(name[idx+1:])
		if first == "" {
			first = "Unknown"
		}
		return first, last
	}

	tokens := strings.Fields(name)
	switch len(tokens) {
	case 0:
		return "Unknown", "Author"
	case 1:
		return "", tokens[0]
	default:
		return strings.Join(tokens[:len(tokens)-1], " "), tokens[len(tokens)-1]
	}
}

// stripParenthetical bỏ đoạn ngoặc đơn đầu tiên khỏi name
func stripParenthetical(name string) string {
	open := strings.Index(name, "(")
	if open < 0 {
		return name
	}
	closing := strings.Index(name[open:], ")")
	if closing < 0 {
		return name[:open]
	}
	return name[:open] + name[open+closing+1:]
}

// Resolve trả về local author cho một Gutendex author entry, tạo mới nếu
// chưa có. Idempotent: hai lần resolve cùng name luôn về cùng một row.
func (r *AuthorResolver) Resolve(ctx context.Context, ga *GutendexAuthor) (*author.Author, error) {
	rawName := sentinelAuthorName
	birthYear := defaultBirthYear
	if ga != nil {
		if ga.Name != "" {
			rawName = ga.Name
		}
		if ga.BirthYear != nil {
			birthYear = *ga.BirthYear
		}
	}

	first, last := ParseAuthorName(rawName)
	birthDate := time.Date(birthYear, time.January, 1, 0, 0, 0, 0, time.UTC)

	existing, err := r.authors.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if strings.EqualFold(existing[i].FirstName, first) && strings.EqualFold(existing[i].LastName, last) {
			return &existing[i], nil
		}
	}

	a := &author.Author{
		ID:        uuid.New(),
		FirstName: first,
		LastName:  last,
		BirthDate: birthDate,
	}
	if err := r.authors.Add(ctx, a); err != nil {
		return nil, err
	}

	log.Info().Str("author", a.FullName()).Msg("[AuthorResolver] Created author from remote record")
	return a, nil
}
