// Package asset computes geometry and content-source render plans for asset
// nodes: which widget renders the node, from which URL, at what size.
package asset

import (
	"github.com/kailas-cloud/docview/internal/domain/node"
	"github.com/kailas-cloud/docview/internal/domain/recordmap"
	"github.com/kailas-cloud/docview/internal/domain/render"
)

// altTextFallback is the alt text for images without a caption.
const altTextFallback = "document image"

// tweetMaxWidthPx caps the tweet widget container width.
const tweetMaxWidthPx = 420

// Service dispatches asset nodes to render plans.
// It is a pure function of its inputs and safe for concurrent use.
type Service struct {
	urls          URLMapper
	serverContext bool
}

// Option configures the service.
type Option func(*Service)

// WithServerContext marks plans as computed for a non-interactive context:
// PDFs without signed URLs plan a placeholder container instead of nothing.
func WithServerContext() Option {
	return func(s *Service) { s.serverContext = true }
}

// New creates an asset dispatcher. urls may be nil (identity mapping).
func New(urls URLMapper, opts ...Option) *Service {
	s := &Service{urls: urls}
	if s.urls == nil {
		s.urls = IdentityURLMapper()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plan computes the render plan for one node against its record map.
// Unrecognized variants and unresolvable sources yield the empty plan;
// no failure ever reaches the presentation layer.
func (s *Service) Plan(n node.Node, rm recordmap.RecordMap) render.Plan {
	if !n.Type().IsAsset() {
		return render.None()
	}

	container, content := computeGeometry(n)

	switch {
	case n.Type() == node.TypeTweet:
		return planTweet(n, container, content)
	case n.Type() == node.TypePDF:
		return s.planPDF(n, rm, container, content)
	case n.Type() == node.TypeImage:
		return s.planImage(n, rm, container, content)
	case n.Type().IsEmbedFamily():
		return planEmbed(n, rm, container, content)
	}
	return render.None()
}

func planTweet(n node.Node, container render.ContainerGeometry, content render.ContentGeometry) render.Plan {
	src := n.Source()
	if src == "" {
		return render.None()
	}
	id := tweetID(src)
	if id == "" {
		return render.None()
	}

	container.MaxWidthPx = tweetMaxWidthPx
	container.Centered = true
	return render.Plan{
		Kind:       render.KindTweet,
		Container:  container,
		Content:    content,
		ExternalID: id,
	}
}

func (s *Service) planPDF(
	n node.Node, rm recordmap.RecordMap,
	container render.ContainerGeometry, content render.ContentGeometry,
) render.Plan {
	container.ScrollableBox = true

	signed, ok := rm.SignedURL(n.ID())
	if !ok || signed == "" {
		if s.serverContext {
			return render.Plan{Kind: render.KindPDF, Container: container, Placeholder: true}
		}
		return render.None()
	}
	return render.Plan{
		Kind:      render.KindPDF,
		Container: container,
		Content:   content,
		Source:    signed,
	}
}

func (s *Service) planImage(
	n node.Node, rm recordmap.RecordMap,
	container render.ContainerGeometry, content render.ContentGeometry,
) render.Plan {
	raw := n.Source()
	if signed, ok := rm.SignedURL(n.ID()); ok && signed != "" {
		raw = signed
	}
	if raw == "" {
		return render.None()
	}

	alt := n.Caption().Plain()
	if alt == "" {
		alt = altTextFallback
	}
	content.HeightHint = container.HeightPx

	return render.Plan{
		Kind:      render.KindImage,
		Container: container,
		Content:   content,
		Source:    s.urls.MapURL(raw, n),
		AltText:   alt,
		Lazy:      true,
	}
}

func planEmbed(
	n node.Node, rm recordmap.RecordMap,
	container render.ContainerGeometry, content render.ContentGeometry,
) render.Plan {
	signed, _ := rm.SignedURL(n.ID())

	// A signed video URL outside the known platform hosts is directly
	// playable media, bypassing frame embedding entirely.
	if n.Type() == node.TypeVideo && signed != "" && !onNativeVideoHost(signed) {
		return render.Plan{
			Kind:      render.KindNativeVideo,
			Container: container,
			Content:   content,
			Source:    signed,
		}
	}

	src := signed
	if src == "" {
		src = n.Format().DisplaySource
	}
	if src == "" {
		src = n.Source()
	}
	if src == "" {
		return render.None()
	}

	if n.Type() == node.TypeVideo {
		if id := videoID(src); id != "" {
			return render.Plan{
				Kind:       render.KindVideoEmbed,
				Container:  container,
				Content:    content,
				ExternalID: id,
			}
		}
	}

	if n.Type() == node.TypeGist {
		content.Width = "100%"
		container.PaddingBottom = "50%"
		return render.Plan{
			Kind:      render.KindFrame,
			Container: container,
			Content:   content,
			Source:    normalizeGist(src),
			Lazy:      true,
		}
	}

	return render.Plan{
		Kind:            render.KindFrame,
		Container:       container,
		Content:         content,
		Source:          src,
		Lazy:            true,
		AllowFullScreen: true,
	}
}
