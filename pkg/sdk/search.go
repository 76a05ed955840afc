package sdk

import (
	"context"
	"net/http"
	"net/url"
)

// SearchResult is one annotated hit scoped to a page.
type SearchResult struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	PageID string `json:"page_id"`
	// HighlightHTML holds the match context with <b> markup.
	HighlightHTML string `json:"highlight_html,omitempty"`
}

// SearchResponse is the annotated result set for one query.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}

// Search runs one query scoped to the page subtree.
// Debounce interactive input on the caller side; every call dispatches.
func (c *Client) Search(ctx context.Context, pageID, query string) (SearchResponse, error) {
	q := url.Values{"q": {query}}
	var resp SearchResponse
	if err := c.do(ctx, http.MethodGet, "/v1/pages/"+url.PathEscape(pageID)+"/search", q, nil, &resp); err != nil {
		return SearchResponse{}, err
	}
	return resp, nil
}
