// Package recordmap models the normalized document graph: a flat mapping from
// node id to node record, plus collection schemas and the signed-URL table.
// A RecordMap is immutable for the duration of a render session.
package recordmap

import (
	"github.com/kailas-cloud/docview/internal/domain/node"
	"github.com/kailas-cloud/docview/internal/domain/schema"
)

// RecordMap is the normalized document graph supplied by the caller.
type RecordMap struct {
	blocks     map[string]node.Node
	schemas    map[string]schema.Schema
	signedURLs map[string]string
}

// New creates a RecordMap from its three mappings. The maps are taken over by
// the RecordMap and must not be mutated by the caller afterwards.
func New(
	blocks map[string]node.Node,
	schemas map[string]schema.Schema,
	signedURLs map[string]string,
) RecordMap {
	return RecordMap{blocks: blocks, schemas: schemas, signedURLs: signedURLs}
}

// Node looks up a node record by id.
func (m RecordMap) Node(id string) (node.Node, bool) {
	n, ok := m.blocks[id]
	return n, ok
}

// Schema looks up a collection schema by collection id.
func (m RecordMap) Schema(collectionID string) (schema.Schema, bool) {
	s, ok := m.schemas[collectionID]
	return s, ok
}

// SignedURL looks up a pre-resolved signed asset URL by node id.
func (m RecordMap) SignedURL(id string) (string, bool) {
	u, ok := m.signedURLs[id]
	return u, ok
}

// Len returns the number of node records.
func (m RecordMap) Len() int { return len(m.blocks) }

// StableRoot picks an arbitrary-but-stable root id: the smallest block key.
// Callers needing a specific root must pass one explicitly.
func (m RecordMap) StableRoot() (string, bool) {
	var best string
	found := false
	for id := range m.blocks {
		if !found || id < best {
			best = id
			found = true
		}
	}
	return best, found
}

// Merge returns a new RecordMap containing the union of both maps, with
// entries from other taking precedence. Neither input is mutated; merged
// search fragments stay scoped to their own rendering context.
func (m RecordMap) Merge(other RecordMap) RecordMap {
	out := RecordMap{
		blocks:     make(map[string]node.Node, len(m.blocks)+len(other.blocks)),
		schemas:    make(map[string]schema.Schema, len(m.schemas)+len(other.schemas)),
		signedURLs: make(map[string]string, len(m.signedURLs)+len(other.signedURLs)),
	}
	for id, n := range m.blocks {
		out.blocks[id] = n
	}
	for id, n := range other.blocks {
		out.blocks[id] = n
	}
	for id, s := range m.schemas {
		out.schemas[id] = s
	}
	for id, s := range other.schemas {
		out.schemas[id] = s
	}
	for id, u := range m.signedURLs {
		out.signedURLs[id] = u
	}
	for id, u := range other.signedURLs {
		out.signedURLs[id] = u
	}
	return out
}

// Title returns a node's flattened title, or "" when it has none.
func (m RecordMap) Title(n node.Node) string {
	return n.Title().Plain()
}

// ParentPage walks parent links to the nearest page node. When inclusive is
// true and the node itself is a page, it is returned directly. The walk
// carries a visited set: the parent chain is caller-authored data and may
// contain cycles.
func (m RecordMap) ParentPage(n node.Node, inclusive bool) (node.Node, bool) {
	if inclusive && n.Type() == node.TypePage {
		return n, true
	}

	visited := map[string]bool{n.ID(): true}
	current := n
	for current.Parent() != "" && !visited[current.Parent()] {
		visited[current.Parent()] = true
		next, ok := m.Node(current.Parent())
		if !ok {
			return node.Node{}, false
		}
		if next.Type() == node.TypePage {
			return next, true
		}
		current = next
	}
	return node.Node{}, false
}
