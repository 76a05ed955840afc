package property

import (
	"github.com/kailas-cloud/docview/internal/domain/node"
	"github.com/kailas-cloud/docview/internal/domain/render"
)

// URLMapper rewrites raw asset references into display URLs (file thumbnails).
type URLMapper interface {
	MapURL(raw string, n node.Node) string
}

// URLMapperFunc adapts a function to the URLMapper interface.
type URLMapperFunc func(raw string, n node.Node) string

// MapURL implements URLMapper.
func (f URLMapperFunc) MapURL(raw string, n node.Node) string { return f(raw, n) }

// PageLinker maps node ids to page URLs for title cross-links.
type PageLinker interface {
	MapPageURL(id string) string
}

// PageLinkerFunc adapts a function to the PageLinker interface.
type PageLinkerFunc func(id string) string

// MapPageURL implements PageLinker.
func (f PageLinkerFunc) MapPageURL(id string) string { return f(id) }

// Renderer is the capability-substitution point: a caller-supplied override
// that fully replaces the default property renderer. Returning false falls
// through to the default.
type Renderer interface {
	RenderProperty(req Request) (render.Cell, bool)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(req Request) (render.Cell, bool)

// RenderProperty implements Renderer.
func (f RendererFunc) RenderProperty(req Request) (render.Cell, bool) { return f(req) }
