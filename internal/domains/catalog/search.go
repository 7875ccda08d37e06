package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"library-backend/internal/domains/book"
)

const (
	// Dưới ngưỡng này thì bổ sung remote results
	localResultThreshold = 5
	// Tối đa bấy nhiêu remote-only results được append
	remoteSupplementCap = 10
)

// SearchService - hybrid search: ưu tiên local store, bổ sung remote
// results khi local coverage mỏng.
type SearchService struct {
	books    BookStore
	client   *Client
	enricher *Enricher
}

// NewSearchService - Constructor
func NewSearchService(books BookStore, client *Client, enricher *Enricher) *SearchService {
	return &SearchService{
		books:    books,
		client:   client,
		enricher: enricher,
	}
}

// SearchHybrid tìm local books theo title/author name (case-insensitive
// contains), enrich concurrent, và nếu local matches < 5 thì append tối
// đa 10 remote-only results với ID = uuid.Nil.
func (s *SearchService) SearchHybrid(ctx context.Context, query string) ([]SearchResult, error) {
	all, err := s.books.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	results := make([]SearchResult, 0)
	for _, b := range all {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.AuthorFullName()), q) {
			results = append(results, localResult(b))
		}
	}

	if err := s.enrichAll(ctx, results); err != nil {
		return nil, err
	}

	if len(results) < localResultThreshold {
		resp := s.client.Search(ctx, query, 1)
		for idx := range resp.Results {
			if idx >= remoteSupplementCap {
				break
			}
			results = append(results, remoteResult(resp.Results[idx]))
		}
	}

	return results, nil
}

// ListAllEnriched project toàn bộ local books kèm enrichment - dùng cho
// view "full catalog with covers"
func (s *SearchService) ListAllEnriched(ctx context.Context) ([]SearchResult, error) {
	all, err := s.books.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(all))
	for _, b := range all {
		results = append(results, localResult(b))
	}

	if err := s.enrichAll(ctx, results); err != nil {
		return nil, err
	}
	return results, nil
}

// enrichAll fan-out một enrichment call cho mỗi record và chờ tất cả
// hoàn thành. Failure của một call không ảnh hưởng các call khác -
// worker luôn trả về nil, record lỗi giữ nguyên empty fields.
func (s *SearchService) enrichAll(ctx context.Context, results []SearchResult) error {
	g, gctx := errgroup.WithContext(ctx)
	for idx := range results {
		idx := idx
		g.Go(func() error {
			enrichment := s.enricher.EnrichByISBN(gctx, results[idx].ISBN)
			results[idx].CoverImageURL = enrichment.CoverImageURL
			results[idx].DownloadCount = enrichment.DownloadCount
			if id, ok := GutendexIDFromISBN(results[idx].ISBN); ok {
				results[idx].GutendexID = &id
			}
			return nil
		})
	}
	return g.Wait()
}

func localResult(b book.BookWithDetails) SearchResult {
	return SearchResult{
		ID:          b.ID,
		Title:       b.Title,
		ISBN:        b.ISBN,
		PublishYear: b.PublishYear,
		AuthorName:  b.AuthorFullName(),
	}
}

func remoteResult(gb GutendexBook) SearchResult {
	authorName := sentinelAuthorName
	if ga := gb.FirstAuthor(); ga != nil && ga.Name != "" {
		authorName = ga.Name
	}

	gutendexID := gb.ID
	cover := gb.CoverURL()
	count := gb.DownloadCount
	return SearchResult{
		ID:            uuid.Nil,
		Title:         gb.Title,
		ISBN:          ISBNFromGutendexID(gb.ID),
		PublishYear:   estimatePublishYear(gb.FirstAuthor()),
		AuthorName:    authorName,
		GutendexID:    &gutendexID,
		CoverImageURL: &cover,
		Summary:       gb.FirstSummary(),
		DownloadCount: &count,
	}
}
