package docview

import (
	"time"

	"go.uber.org/zap"

	assetuc "github.com/kailas-cloud/docview/internal/usecase/asset"
	propertyuc "github.com/kailas-cloud/docview/internal/usecase/property"
	resolveuc "github.com/kailas-cloud/docview/internal/usecase/resolve"
)

// Option configures the Renderer.
type Option interface {
	apply(*rendererConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*rendererConfig)

func (f optionFunc) apply(c *rendererConfig) { f(c) }

type rendererConfig struct {
	urls          URLMapper
	pages         PageLinker
	override      PropertyRenderer
	diag          Diagnostics
	serverContext bool
	linkTitles    bool
	debounce      time.Duration
	logger        *zap.Logger
}

// URLMapper rewrites display URLs before they enter a render plan.
// Deployments use it to route images through a proxy or CDN.
type URLMapper = assetuc.URLMapper

// URLMapperFunc adapts a function to the URLMapper interface.
type URLMapperFunc = assetuc.URLMapperFunc

// PageLinker maps a page ID to a navigable URL for title cross-links.
type PageLinker = propertyuc.PageLinker

// PageLinkerFunc adapts a function to the PageLinker interface.
type PageLinkerFunc = propertyuc.PageLinkerFunc

// PropertyRenderer overrides the built-in property rendering for
// selected requests. Return false to fall through to the default.
type PropertyRenderer = propertyuc.Renderer

// PropertyRendererFunc adapts a function to the PropertyRenderer interface.
type PropertyRendererFunc = propertyuc.RendererFunc

// Diagnostics observes subtrees skipped during traversal.
type Diagnostics = resolveuc.Diagnostics

// DiagnosticsFunc adapts a function to the Diagnostics interface.
type DiagnosticsFunc = resolveuc.DiagnosticsFunc

// WithURLMapper sets the display URL rewriter. Defaults to identity.
func WithURLMapper(m URLMapper) Option {
	return optionFunc(func(c *rendererConfig) {
		c.urls = m
	})
}

// WithPageLinker sets the title cross-link target builder.
// Defaults to "/" + page ID.
func WithPageLinker(l PageLinker) Option {
	return optionFunc(func(c *rendererConfig) {
		c.pages = l
	})
}

// WithPropertyOverride installs a caller-supplied property renderer that
// is consulted before the built-in dispatch.
func WithPropertyOverride(r PropertyRenderer) Option {
	return optionFunc(func(c *rendererConfig) {
		c.override = r
	})
}

// WithDiagnostics observes nodes skipped during traversal
// (missing from the record map, or revisited on the current path).
func WithDiagnostics(d Diagnostics) Option {
	return optionFunc(func(c *rendererConfig) {
		c.diag = d
	})
}

// WithServerContext marks plans as computed for a non-interactive context.
// PDFs without signed URLs plan placeholder containers instead of nothing.
func WithServerContext() Option {
	return optionFunc(func(c *rendererConfig) {
		c.serverContext = true
	})
}

// WithLinkTitles renders title properties of linked pages as cross-links.
func WithLinkTitles() Option {
	return optionFunc(func(c *rendererConfig) {
		c.linkTitles = true
	})
}

// WithDebounce sets the search debounce interval. Default: 1 second.
func WithDebounce(d time.Duration) Option {
	return optionFunc(func(c *rendererConfig) {
		c.debounce = d
	})
}

// WithLogger enables structured logging. Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *rendererConfig) {
		c.logger = l
	})
}
