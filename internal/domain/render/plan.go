// Package render defines the typed outputs of the core: asset render plans
// and rendered property cells. The presentation layer consumes these values;
// it never sees an error from plan or cell computation.
package render

// Kind is one case of the closed content-variant enumeration of a plan.
type Kind string

// Plan kind constants.
const (
	// KindNone renders nothing (unresolvable source or unrecognized variant).
	KindNone Kind = "none"
	// KindNativeVideo renders a directly playable media element.
	KindNativeVideo Kind = "native_video"
	// KindVideoEmbed renders the lightweight video-embed widget keyed by id.
	KindVideoEmbed Kind = "video_embed"
	// KindFrame renders a generic embedded frame.
	KindFrame Kind = "frame"
	// KindImage renders the zoomable lazy image collaborator.
	KindImage Kind = "image"
	// KindTweet renders the tweet widget keyed by external id.
	KindTweet Kind = "tweet"
	// KindPDF renders the PDF viewer, or a placeholder container when the
	// plan was computed in a non-interactive context.
	KindPDF Kind = "pdf"
)

// Fit is a content fit mode.
type Fit string

// Content fit constants.
const (
	FitCover   Fit = "cover"
	FitContain Fit = "contain"
)

// ContainerGeometry positions the asset container. Zero values mean unset.
type ContainerGeometry struct {
	Width         string `json:"width,omitempty"` // CSS length: "100vw", "100%", or px via WidthPx
	WidthPx       int    `json:"width_px,omitempty"`
	HeightPx      int    `json:"height_px,omitempty"`
	PaddingBottom string `json:"padding_bottom,omitempty"` // percentage string, e.g. "50%"
	MinHeightPx   int    `json:"min_height_px,omitempty"`
	MaxWidthPx    int    `json:"max_width_px,omitempty"`
	Centered      bool   `json:"centered,omitempty"`
	ScrollableBox bool   `json:"scrollable_box,omitempty"` // padded, scrollable container (pdf)
}

// ContentGeometry sizes the content inside its container.
type ContentGeometry struct {
	Fit        Fit    `json:"fit,omitempty"`
	Width      string `json:"width,omitempty"`
	Height     string `json:"height,omitempty"`
	HeightHint int    `json:"height_hint,omitempty"` // explicit px hint for lazy images
}

// Plan is the computed geometry and content source for one asset node.
type Plan struct {
	Kind            Kind              `json:"kind"`
	Container       ContainerGeometry `json:"container"`
	Content         ContentGeometry   `json:"content"`
	Source          string            `json:"source,omitempty"`
	ExternalID      string            `json:"external_id,omitempty"` // tweet / video-platform id
	AltText         string            `json:"alt_text,omitempty"`
	Lazy            bool              `json:"lazy,omitempty"`
	AllowFullScreen bool              `json:"allow_full_screen,omitempty"`
	Placeholder     bool              `json:"placeholder,omitempty"` // container only, no content
}

// None is the empty plan: render nothing.
func None() Plan { return Plan{Kind: KindNone} }
