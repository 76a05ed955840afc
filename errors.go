package docview

import "github.com/kailas-cloud/docview/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrMissingNode        = domain.ErrMissingNode
	ErrUnresolvableSource = domain.ErrUnresolvableSource
	ErrFormulaEval        = domain.ErrFormulaEval
	ErrMalformedNumber    = domain.ErrMalformedNumber
	ErrSearchProvider     = domain.ErrSearchProvider
	ErrStaleResponse      = domain.ErrStaleResponse
	ErrPageNotFound       = domain.ErrPageNotFound
	ErrInvalidRecordMap   = domain.ErrInvalidRecordMap
)
