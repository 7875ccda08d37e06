package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Client gọi Gutendex HTTP API. Remote catalog chỉ là best-effort
// enrichment source, không phải system of record: mọi network/decode
// failure được nuốt tại đây và trả về empty page / nil thay vì error.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient - Constructor. baseURL ví dụ "https://gutendex.com/books".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search query remote catalog theo search term + page.
// Query string chỉ chứa search khi non-empty và page khi > 1.
// Không bao giờ trả về nil hoặc error - failure → empty page.
func (c *Client) Search(ctx context.Context, searchTerm string, page int) *GutendexResponse {
	endpoint := c.baseURL
	params := url.Values{}
	if searchTerm != "" {
		params.Set("search", searchTerm)
	}
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var resp GutendexResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		log.Warn().Err(err).Str("search", searchTerm).Int("page", page).
			Msg("[GutendexClient] Search failed, returning empty page")
		return &GutendexResponse{Results: []GutendexBook{}}
	}
	if resp.Results == nil {
		resp.Results = []GutendexBook{}
	}
	return &resp
}

// GetByID fetch một record theo Gutendex id. Trả về nil nếu không tìm
// thấy hoặc remote catalog lỗi - caller phải check nil.
func (c *Client) GetByID(ctx context.Context, gutendexID int) *GutendexBook {
	endpoint := fmt.Sprintf("%s/%d", c.baseURL, gutendexID)

	var gb GutendexBook
	if err := c.getJSON(ctx, endpoint, &gb); err != nil {
		log.Warn().Err(err).Int("gutendex_id", gutendexID).
			Msg("[GutendexClient] GetByID failed")
		return nil
	}
	return &gb
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
