package sdk

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
)

// RenderedNode is one entry of a page's flattened presentation tree,
// in pre-order.
type RenderedNode struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Depth    int    `json:"depth"`
	Title    string `json:"title,omitempty"`
	ParentID string `json:"parent_id,omitempty"`
	Plan     *Plan  `json:"plan,omitempty"`
}

// Plan describes how to present one asset node.
type Plan struct {
	Kind      string            `json:"kind"`
	Container ContainerGeometry `json:"container"`
	Content   ContentGeometry   `json:"content"`
	Source    string            `json:"source,omitempty"`
	// ExternalID carries provider-side identity (tweet ID, video ID).
	ExternalID      string `json:"external_id,omitempty"`
	AltText         string `json:"alt_text,omitempty"`
	Lazy            bool   `json:"lazy,omitempty"`
	AllowFullScreen bool   `json:"allow_full_screen,omitempty"`
	Placeholder     bool   `json:"placeholder,omitempty"`
}

// ContainerGeometry sizes the box the content lives in.
type ContainerGeometry struct {
	Width         string `json:"width,omitempty"`
	WidthPx       int    `json:"width_px,omitempty"`
	HeightPx      int    `json:"height_px,omitempty"`
	PaddingBottom string `json:"padding_bottom,omitempty"`
	MinHeightPx   int    `json:"min_height_px,omitempty"`
	MaxWidthPx    int    `json:"max_width_px,omitempty"`
	Centered      bool   `json:"centered,omitempty"`
	ScrollableBox bool   `json:"scrollable_box,omitempty"`
}

// ContentGeometry sizes the content inside its container.
type ContentGeometry struct {
	Fit        string `json:"fit,omitempty"`
	Width      string `json:"width,omitempty"`
	Height     string `json:"height,omitempty"`
	HeightHint int    `json:"height_hint,omitempty"`
}

// Page is a rendered page.
type Page struct {
	PageID string         `json:"page_id"`
	Nodes  []RenderedNode `json:"nodes"`
	Total  int            `json:"total"`
}

// PutPage stores a record map (wire wrapper shape) under pageID.
func (c *Client) PutPage(ctx context.Context, pageID string, recordMap []byte) error {
	return c.do(ctx, http.MethodPut, "/v1/pages/"+url.PathEscape(pageID), nil, bytes.NewReader(recordMap), nil)
}

// GetPage renders the stored page into its flattened presentation tree.
// rootID overrides the traversal root when non-empty.
func (c *Client) GetPage(ctx context.Context, pageID, rootID string) (Page, error) {
	var q url.Values
	if rootID != "" {
		q = url.Values{"root": {rootID}}
	}
	var page Page
	if err := c.do(ctx, http.MethodGet, "/v1/pages/"+url.PathEscape(pageID), q, nil, &page); err != nil {
		return Page{}, err
	}
	return page, nil
}

// DeletePage removes the stored record map for pageID.
func (c *Client) DeletePage(ctx context.Context, pageID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/pages/"+url.PathEscape(pageID), nil, nil, nil)
}
