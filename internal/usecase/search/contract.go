package search

import (
	"context"

	"github.com/kailas-cloud/docview/internal/domain"
	"github.com/kailas-cloud/docview/internal/domain/recordmap"
)

// Provider is the external search contract. The provider owns its own
// timeout and retry policy; the coordinator enforces none.
type Provider interface {
	Search(ctx context.Context, query, ancestorID string) (Response, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, query, ancestorID string) (Response, error)

// Search implements Provider.
func (f ProviderFunc) Search(ctx context.Context, query, ancestorID string) (Response, error) {
	return f(ctx, query, ancestorID)
}

// RawResult is one un-annotated hit as returned by the provider.
type RawResult struct {
	ID            string
	HighlightText string
}

// Response is the provider's reply: results plus the record-map fragment they
// resolve against, or an in-band error shape.
type Response struct {
	Results   []RawResult
	RecordMap recordmap.RecordMap
	Total     int

	// Error payload; a response carrying either field transitions the
	// coordinator to Failed.
	ErrorID      string
	ErrorMessage string
}

// Err returns the response's in-band error, or nil.
func (r Response) Err() error {
	if r.ErrorID == "" && r.ErrorMessage == "" {
		return nil
	}
	return domain.NewSearchProviderError(r.ErrorID, r.ErrorMessage)
}
