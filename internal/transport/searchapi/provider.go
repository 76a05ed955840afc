// Package searchapi implements the search provider contract against the
// document store's HTTP search API.
package searchapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kailas-cloud/docview/internal/domain/recordmap"
	searchuc "github.com/kailas-cloud/docview/internal/usecase/search"
)

// Compile-time check: Client implements the provider contract.
var _ searchuc.Provider = (*Client)(nil)

// Client is an HTTP search provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithAPIKey attaches a bearer token to every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the default client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a search provider client.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchRequest struct {
	Query      string `json:"query"`
	AncestorID string `json:"ancestorId"`
}

type searchResponse struct {
	Results   []resultDTO     `json:"results"`
	RecordMap json.RawMessage `json:"recordMap"`
	Total     int             `json:"total"`

	Error   string `json:"error,omitempty"`
	ErrorID string `json:"errorId,omitempty"`
	Message string `json:"message,omitempty"`
}

type resultDTO struct {
	ID        string `json:"id"`
	Highlight *struct {
		Text string `json:"text"`
	} `json:"highlight,omitempty"`
}

// Search queries the provider. Provider-reported errors come back in-band on
// the response shape; transport failures return an error.
func (c *Client) Search(ctx context.Context, query, ancestorID string) (searchuc.Response, error) {
	body, err := json.Marshal(searchRequest{Query: query, AncestorID: ancestorID})
	if err != nil {
		return searchuc.Response{}, fmt.Errorf("marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body),
	)
	if err != nil {
		return searchuc.Response{}, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return searchuc.Response{}, fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var dto searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return searchuc.Response{}, fmt.Errorf("decode search response: %w", err)
	}

	return responseFromDTO(dto)
}

func responseFromDTO(dto searchResponse) (searchuc.Response, error) {
	if dto.Error != "" || dto.ErrorID != "" {
		msg := dto.Message
		if msg == "" {
			msg = dto.Error
		}
		return searchuc.Response{ErrorID: dto.ErrorID, ErrorMessage: msg}, nil
	}

	out := searchuc.Response{Total: dto.Total}
	if len(dto.RecordMap) > 0 {
		rm, err := recordmap.Parse(dto.RecordMap)
		if err != nil {
			return searchuc.Response{}, fmt.Errorf("search response record map: %w", err)
		}
		out.RecordMap = rm
	}
	for _, r := range dto.Results {
		raw := searchuc.RawResult{ID: r.ID}
		if r.Highlight != nil {
			raw.HighlightText = r.Highlight.Text
		}
		out.Results = append(out.Results, raw)
	}
	return out, nil
}
