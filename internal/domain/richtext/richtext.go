// Package richtext models styled text as an ordered sequence of decorated segments.
package richtext

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecorationKind is one case of the closed decoration enumeration.
type DecorationKind string

// Decoration kind constants match the wire codes of the document store.
const (
	Bold          DecorationKind = "b"
	Italic        DecorationKind = "i"
	Code          DecorationKind = "c"
	Strikethrough DecorationKind = "s"
	LinkTo        DecorationKind = "a"
)

// Decoration is a single styling or linking annotation on a segment.
type Decoration struct {
	Kind   DecorationKind
	Target string // link target, set only for LinkTo
}

// Segment is one run of text sharing a decoration set.
type Segment struct {
	Content     string
	Decorations []Decoration
}

// Text is an ordered sequence of styled segments.
type Text []Segment

// New creates a single-segment undecorated text.
func New(s string) Text {
	return Text{{Content: s}}
}

// Plain flattens the text to its undecorated string content.
func (t Text) Plain() string {
	var b strings.Builder
	for _, seg := range t {
		b.WriteString(seg.Content)
	}
	return b.String()
}

// IsEmpty reports whether the flattened content is empty.
func (t Text) IsEmpty() bool {
	for _, seg := range t {
		if seg.Content != "" {
			return false
		}
	}
	return true
}

// First returns the content of the first segment, or "".
func (t Text) First() string {
	if len(t) == 0 {
		return ""
	}
	return t[0].Content
}

// Linked returns a copy with a link decoration added to every segment.
func (t Text) Linked(target string) Text {
	out := make(Text, len(t))
	for i, seg := range t {
		decs := make([]Decoration, 0, len(seg.Decorations)+1)
		decs = append(decs, seg.Decorations...)
		decs = append(decs, Decoration{Kind: LinkTo, Target: target})
		out[i] = Segment{Content: seg.Content, Decorations: decs}
	}
	return out
}

// WithFirst returns a copy whose first segment content is replaced.
// Returns the receiver unchanged when empty.
func (t Text) WithFirst(content string) Text {
	if len(t) == 0 {
		return t
	}
	out := make(Text, len(t))
	copy(out, t)
	out[0] = Segment{Content: content, Decorations: t[0].Decorations}
	return out
}

// UnmarshalJSON parses the document store's array-of-arrays wire form:
// [["content", [["b"], ["a", "https://..."]]], ...].
func (t *Text) UnmarshalJSON(data []byte) error {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("rich text rows: %w", err)
	}

	out := make(Text, 0, len(rows))
	for _, row := range rows {
		var cells []json.RawMessage
		if err := json.Unmarshal(row, &cells); err != nil {
			return fmt.Errorf("rich text row: %w", err)
		}
		if len(cells) == 0 {
			continue
		}

		var seg Segment
		if err := json.Unmarshal(cells[0], &seg.Content); err != nil {
			return fmt.Errorf("rich text content: %w", err)
		}

		if len(cells) > 1 {
			var decs [][]string
			if err := json.Unmarshal(cells[1], &decs); err != nil {
				return fmt.Errorf("rich text decorations: %w", err)
			}
			for _, d := range decs {
				if len(d) == 0 {
					continue
				}
				dec := Decoration{Kind: DecorationKind(d[0])}
				if len(d) > 1 {
					dec.Target = d[1]
				}
				seg.Decorations = append(seg.Decorations, dec)
			}
		}

		out = append(out, seg)
	}

	*t = out
	return nil
}

// MarshalJSON writes the array-of-arrays wire form.
func (t Text) MarshalJSON() ([]byte, error) {
	rows := make([]any, 0, len(t))
	for _, seg := range t {
		if len(seg.Decorations) == 0 {
			rows = append(rows, []any{seg.Content})
			continue
		}
		decs := make([][]string, 0, len(seg.Decorations))
		for _, d := range seg.Decorations {
			if d.Kind == LinkTo {
				decs = append(decs, []string{string(d.Kind), d.Target})
			} else {
				decs = append(decs, []string{string(d.Kind)})
			}
		}
		rows = append(rows, []any{seg.Content, decs})
	}
	return json.Marshal(rows) //nolint:wrapcheck // plain container marshal
}
