package catalog

import (
	"context"
)

// Enrichment - cover + popularity metadata lấy từ remote catalog.
// Cả hai field đều nil khi book không có remote origin hoặc remote lỗi.
type Enrichment struct {
	CoverImageURL *string
	DownloadCount *int
}

// Enricher khôi phục metadata từ remote catalog qua synthetic ISBN
type Enricher struct {
	client *Client
}

// NewEnricher - Constructor
func NewEnricher(client *Client) *Enricher {
	return &Enricher{client: client}
}

// EnrichByISBN decode ISBN và query remote catalog. ISBN không phải
// synthetic key → trả về empty ngay, không có network call nào.
func (e *Enricher) EnrichByISBN(ctx context.Context, isbn string) Enrichment {
	gutendexID, ok := GutendexIDFromISBN(isbn)
	if !ok {
		return Enrichment{}
	}

	gb := e.client.GetByID(ctx, gutendexID)
	if gb == nil {
		return Enrichment{}
	}

	cover := gb.CoverURL()
	count := gb.DownloadCount
	return Enrichment{CoverImageURL: &cover, DownloadCount: &count}
}

// CoverByTitle search remote catalog theo title và lấy kết quả đầu tiên
func (e *Enricher) CoverByTitle(ctx context.Context, title string) Enrichment {
	resp := e.client.Search(ctx, title, 1)
	if len(resp.Results) == 0 {
		return Enrichment{}
	}

	gb := resp.Results[0]
	cover := gb.CoverURL()
	count := gb.DownloadCount
	return Enrichment{CoverImageURL: &cover, DownloadCount: &count}
}
