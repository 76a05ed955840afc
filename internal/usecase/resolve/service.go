// Package resolve turns a record map and a root id into an ordered, lazy
// pre-order traversal of the reachable node graph.
package resolve

import (
	"iter"

	"github.com/kailas-cloud/docview/internal/domain/node"
	"github.com/kailas-cloud/docview/internal/domain/recordmap"
)

// Service resolves node graphs into presentation order.
// It is a pure function of its inputs and safe for concurrent use.
type Service struct {
	diag Diagnostics
}

// New creates a graph resolver. diag may be nil.
func New(diag Diagnostics) *Service {
	return &Service{diag: diag}
}

// Resolve returns a lazy pre-order depth-first sequence of (node, depth)
// pairs reachable from rootID. The sequence is restartable and deterministic
// for identical inputs. When rootID is empty, the map's stable root is used.
//
// A child id absent from the map is skipped silently, as is a node already on
// the current traversal path: the underlying structure is an arbitrary graph
// with no acyclicity guarantee, and a revisit is treated as missing rather
// than recursed into.
func (s *Service) Resolve(rm recordmap.RecordMap, rootID string) iter.Seq2[node.Node, int] {
	return func(yield func(node.Node, int) bool) {
		id := rootID
		if id == "" {
			stable, ok := rm.StableRoot()
			if !ok {
				return
			}
			id = stable
		}

		onPath := make(map[string]bool, 16)
		s.walk(rm, id, 0, onPath, yield)
	}
}

// walk visits id at the given depth. Returns false when the consumer stopped.
func (s *Service) walk(
	rm recordmap.RecordMap, id string, depth int,
	onPath map[string]bool, yield func(node.Node, int) bool,
) bool {
	if onPath[id] {
		s.skipped(id, ReasonRevisit)
		return true
	}
	n, ok := rm.Node(id)
	if !ok {
		s.skipped(id, ReasonMissing)
		return true
	}

	if !yield(n, depth) {
		return false
	}

	onPath[id] = true
	defer delete(onPath, id)

	for _, child := range n.Content() {
		if !s.walk(rm, child, depth+1, onPath, yield) {
			return false
		}
	}
	return true
}

func (s *Service) skipped(id, reason string) {
	if s.diag != nil {
		s.diag.NodeSkipped(id, reason)
	}
}
