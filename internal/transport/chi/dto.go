package chi

import (
	"github.com/kailas-cloud/docview/internal/domain/render"
)

// Error codes returned on the wire.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codePageNotFound     = "page_not_found"
	codeSearchError      = "search_error"
	codeInternal         = "internal_error"
	codeUnauthorized     = "unauthorized"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// renderedNode is one entry of the flattened presentation tree, in pre-order.
type renderedNode struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Depth    int          `json:"depth"`
	Title    string       `json:"title,omitempty"`
	ParentID string       `json:"parent_id,omitempty"`
	Plan     *render.Plan `json:"plan,omitempty"` // asset nodes only
}

type pageResponse struct {
	PageID string         `json:"page_id"`
	Nodes  []renderedNode `json:"nodes"`
	Total  int            `json:"total"`
}

type searchResultDTO struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	PageID        string `json:"page_id"`
	HighlightHTML string `json:"highlight_html,omitempty"`
}

type searchResponseDTO struct {
	Results []searchResultDTO `json:"results"`
	Total   int               `json:"total"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}
