// Package domain holds the core value objects and error taxonomy of docview.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingNode signals a referenced node id absent from the record map.
	ErrMissingNode = errors.New("missing node")
	// ErrUnresolvableSource signals an asset with no usable URL.
	ErrUnresolvableSource = errors.New("unresolvable source")
	// ErrFormulaEval signals a formula evaluation failure (always caught locally).
	ErrFormulaEval = errors.New("formula evaluation failed")
	// ErrMalformedNumber signals an unparseable numeric property value.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrSearchProvider signals a failure reported by the search provider.
	ErrSearchProvider = errors.New("search provider error")
	// ErrStaleResponse signals a search response superseded by a newer dispatch.
	ErrStaleResponse = errors.New("stale search response")

	// ErrPageNotFound signals a page id with no stored record map.
	ErrPageNotFound = errors.New("page not found")
	// ErrInvalidRecordMap signals a record map payload that cannot be parsed.
	ErrInvalidRecordMap = errors.New("invalid record map")
)

// SearchProviderError wraps ErrSearchProvider with the provider's error payload.
type SearchProviderError struct {
	ID      string
	Message string
}

func (e *SearchProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", ErrSearchProvider.Error(), e.Message)
	}
	return fmt.Sprintf("%s: %s", ErrSearchProvider.Error(), e.ID)
}

func (e *SearchProviderError) Unwrap() error { return ErrSearchProvider }

// NewSearchProviderError creates a search provider error from the response error shape.
func NewSearchProviderError(id, message string) error {
	return &SearchProviderError{ID: id, Message: message}
}
