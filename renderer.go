// Package docview renders graph-structured documents: a record map of
// typed nodes is resolved into a depth-annotated node stream, asset
// nodes into geometry-bearing render plans, and collection properties
// into presentation cells. A search coordinator debounces queries
// against a pluggable provider and discards stale responses.
package docview

import (
	"iter"

	"github.com/kailas-cloud/docview/internal/domain/node"
	"github.com/kailas-cloud/docview/internal/domain/recordmap"
	"github.com/kailas-cloud/docview/internal/domain/render"
	"github.com/kailas-cloud/docview/internal/domain/richtext"
	"github.com/kailas-cloud/docview/internal/domain/schema"
	"github.com/kailas-cloud/docview/internal/metrics"
	assetuc "github.com/kailas-cloud/docview/internal/usecase/asset"
	propertyuc "github.com/kailas-cloud/docview/internal/usecase/property"
	resolveuc "github.com/kailas-cloud/docview/internal/usecase/resolve"
	searchuc "github.com/kailas-cloud/docview/internal/usecase/search"
)

// Domain types re-exported for library consumers.
type (
	// Node is one typed block of a document graph.
	Node = node.Node
	// NodeType discriminates node behavior.
	NodeType = node.Type
	// Format holds per-node presentation hints.
	Format = node.Format
	// RecordMap is an immutable snapshot of a document graph.
	RecordMap = recordmap.RecordMap
	// Text is decorated rich text.
	Text = richtext.Text
	// Schema maps property IDs to typed descriptors.
	Schema = schema.Schema
	// Plan describes how to present one asset node.
	Plan = render.Plan
	// Cell is a rendered property value.
	Cell = render.Cell
	// PropertyRequest carries everything needed to render one property.
	PropertyRequest = propertyuc.Request

	// SearchProvider executes search queries against a backend.
	SearchProvider = searchuc.Provider
	// SearchProviderFunc adapts a function to the SearchProvider interface.
	SearchProviderFunc = searchuc.ProviderFunc
	// SearchRawResult is one un-annotated hit as returned by a provider.
	SearchRawResult = searchuc.RawResult
	// SearchResponse is a provider's raw answer.
	SearchResponse = searchuc.Response
	// SearchResult is one annotated search hit.
	SearchResult = searchuc.Result
	// SearchState names a phase of the search lifecycle.
	SearchState = searchuc.State
	// SearchSnapshot is an observable view of search state.
	SearchSnapshot = searchuc.Snapshot
	// Search drives the debounced query lifecycle.
	Search = searchuc.Coordinator
)

// Search lifecycle states.
const (
	SearchIdle     = searchuc.StateIdle
	SearchTyping   = searchuc.StateTyping
	SearchQuerying = searchuc.StateQuerying
	SearchResolved = searchuc.StateResolved
	SearchFailed   = searchuc.StateFailed
)

// ParseRecordMap decodes a wire-format record map.
func ParseRecordMap(data []byte) (RecordMap, error) {
	return recordmap.Parse(data)
}

// Renderer combines graph resolution, asset planning, and property
// rendering over record maps. Safe for concurrent use.
type Renderer struct {
	cfg      rendererConfig
	resolver *resolveuc.Service
	assets   *assetuc.Service
	props    *propertyuc.Service
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	cfg := rendererConfig{}
	for _, o := range opts {
		o.apply(&cfg)
	}

	resolver := resolveuc.New(cfg.diag)

	var assetOpts []assetuc.Option
	if cfg.serverContext {
		assetOpts = append(assetOpts, assetuc.WithServerContext())
	}
	assets := assetuc.New(cfg.urls, assetOpts...)

	var propOpts []propertyuc.Option
	if cfg.override != nil {
		propOpts = append(propOpts, propertyuc.WithOverride(cfg.override))
	}
	props := propertyuc.New(cfg.urls, cfg.pages, propOpts...)

	return &Renderer{
		cfg:      cfg,
		resolver: resolver,
		assets:   assets,
		props:    props,
	}
}

// Walk lazily yields the record map's nodes in pre-order with their
// depth, starting from the stable root. The sequence is restartable:
// ranging over it again replays the same traversal.
func (r *Renderer) Walk(rm RecordMap) iter.Seq2[Node, int] {
	rootID, ok := rm.StableRoot()
	if !ok {
		return func(func(Node, int) bool) {}
	}
	return r.resolver.Resolve(rm, rootID)
}

// WalkFrom is Walk rooted at an explicit node ID.
func (r *Renderer) WalkFrom(rm RecordMap, rootID string) iter.Seq2[Node, int] {
	return r.resolver.Resolve(rm, rootID)
}

// Plan computes the render plan for an asset node. Non-asset nodes and
// unresolvable sources plan nothing.
func (r *Renderer) Plan(n Node, rm RecordMap) Plan {
	return r.assets.Plan(n, rm)
}

// RenderProperty renders one collection property value into a cell.
func (r *Renderer) RenderProperty(req PropertyRequest) Cell {
	if r.cfg.linkTitles {
		req.LinkTitles = true
	}
	return r.props.Render(req)
}

// NewSearch creates a debounced search coordinator scoped to ancestorID.
// onChange observes every state transition; pass nil to poll Snapshot.
func (r *Renderer) NewSearch(provider SearchProvider, ancestorID string, onChange func(SearchSnapshot)) *Search {
	opts := []searchuc.CoordinatorOption{
		searchuc.WithStaleObserver(metrics.ObserveStaleResponse),
	}
	if r.cfg.debounce > 0 {
		opts = append(opts, searchuc.WithDebounce(r.cfg.debounce))
	}
	if onChange != nil {
		opts = append(opts, searchuc.WithOnChange(onChange))
	}
	if r.cfg.logger != nil {
		opts = append(opts, searchuc.WithLogger(r.cfg.logger))
	}
	return searchuc.NewCoordinator(provider, ancestorID, opts...)
}

// ZoomMargin returns the image lightbox margin in pixels for a viewport
// width. Wider viewports get larger margins.
func ZoomMargin(viewportWidth int) int {
	switch {
	case viewportWidth < 500:
		return 8
	case viewportWidth < 800:
		return 20
	case viewportWidth < 1280:
		return 30
	case viewportWidth < 1600:
		return 40
	case viewportWidth < 1920:
		return 48
	default:
		return 72
	}
}
