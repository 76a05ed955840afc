package render

import (
	"github.com/kailas-cloud/docview/internal/domain/richtext"
)

// CellKind is one case of the closed rendered-cell enumeration.
type CellKind string

// Cell kind constants.
const (
	// CellEmpty renders nothing (absent data, caught formula failure).
	CellEmpty CellKind = "empty"
	// CellText renders rich text.
	CellText CellKind = "text"
	// CellLink renders rich text wrapped in a link.
	CellLink CellKind = "link"
	// CellOptions renders discrete colored select values.
	CellOptions CellKind = "options"
	// CellCheckbox renders a checkbox glyph plus label.
	CellCheckbox CellKind = "checkbox"
	// CellFiles renders file links wrapping lazy thumbnails.
	CellFiles CellKind = "files"
)

// OptionValue is one rendered select value with its matched display color.
// Color is empty for values absent from the schema's declared options.
type OptionValue struct {
	Value string `json:"value"`
	Color string `json:"color,omitempty"`
}

// FileLink is one rendered file row: display name plus resolved asset URL.
type FileLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Cell is a typed rendered property value.
type Cell struct {
	Kind      CellKind      `json:"kind"`
	Text      richtext.Text `json:"text,omitempty"`
	Target    string        `json:"target,omitempty"`     // link target for CellLink
	NewWindow bool          `json:"new_window,omitempty"` // open in a new browsing context
	Options   []OptionValue `json:"options,omitempty"`
	Checked   bool          `json:"checked,omitempty"`
	Label     string        `json:"label,omitempty"`
	Files     []FileLink    `json:"files,omitempty"`
}

// EmptyCell renders nothing.
func EmptyCell() Cell { return Cell{Kind: CellEmpty} }

// TextCell renders plain rich text.
func TextCell(t richtext.Text) Cell { return Cell{Kind: CellText, Text: t} }
