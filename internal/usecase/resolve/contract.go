package resolve

// Diagnostics receives skip events from the traversal. Skips are degradation,
// not failure: the record map is externally authored and may be partial or
// cyclic, so a skipped subtree is reported but never raised.
type Diagnostics interface {
	NodeSkipped(id, reason string)
}

// Skip reason constants passed to Diagnostics.
const (
	ReasonMissing = "missing"
	ReasonRevisit = "revisit"
)

// DiagnosticsFunc adapts a function to the Diagnostics interface.
type DiagnosticsFunc func(id, reason string)

// NodeSkipped implements Diagnostics.
func (f DiagnosticsFunc) NodeSkipped(id, reason string) { f(id, reason) }
