// Package property renders a single schema-typed value of tabular data: the
// content of one cell, reused across every collection view.
package property

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kailas-cloud/docview/internal/domain/formula"
	"github.com/kailas-cloud/docview/internal/domain/node"
	"github.com/kailas-cloud/docview/internal/domain/render"
	"github.com/kailas-cloud/docview/internal/domain/richtext"
	"github.com/kailas-cloud/docview/internal/domain/schema"
)

// dateLayout is the fixed pattern for formula dates and node timestamps.
const dateLayout = "Jan 2, 2006 03:04 PM"

// checkboxYes is the stored literal marking a checked checkbox.
const checkboxYes = "Yes"

// Request carries everything needed to render one property value.
type Request struct {
	Descriptor schema.Descriptor
	Data       richtext.Text
	Node       *node.Node    // owning node; nil when rendering detached data
	Schema     schema.Schema // collection schema, needed for formulas
	Inline     bool          // compact presentation (urls truncate to hostname)
	LinkTitles bool          // cross-link title cells to their pages
}

// Service is the default schema-driven property renderer.
// It is a pure function of its inputs and safe for concurrent use.
type Service struct {
	urls     URLMapper
	pages    PageLinker
	override Renderer
}

// Option configures the service.
type Option func(*Service)

// WithOverride installs a caller-supplied renderer that fully replaces the
// default dispatch.
func WithOverride(r Renderer) Option {
	return func(s *Service) { s.override = r }
}

// New creates a property renderer. urls and pages may be nil.
func New(urls URLMapper, pages PageLinker, opts ...Option) *Service {
	s := &Service{urls: urls, pages: pages}
	if s.urls == nil {
		s.urls = URLMapperFunc(func(raw string, _ node.Node) string { return raw })
	}
	if s.pages == nil {
		s.pages = PageLinkerFunc(func(id string) string { return "/" + id })
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Render produces the typed rendered value for one property.
// Every failure path degrades: empty cell or raw text, never an error.
//
//nolint:cyclop // flat dispatch over the closed property-type set
func (s *Service) Render(req Request) render.Cell {
	if s.override != nil {
		if cell, ok := s.override.RenderProperty(req); ok {
			return cell
		}
	}

	switch req.Descriptor.Type {
	case schema.TypeFormula:
		return s.renderFormula(req)
	case schema.TypeTitle:
		return s.renderTitle(req)
	case schema.TypeSelect, schema.TypeMultiSelect:
		return renderSelect(req)
	case schema.TypeNumber:
		return renderNumber(req)
	case schema.TypeURL:
		return renderURL(req)
	case schema.TypeEmail:
		return renderLinked(req, "mailto:")
	case schema.TypePhoneNumber:
		return renderLinked(req, "tel:")
	case schema.TypeCheckbox:
		return renderCheckbox(req)
	case schema.TypeFile:
		return s.renderFile(req)
	case schema.TypeCreatedTime:
		return renderTimestamp(req, func(n *node.Node) int64 { return n.CreatedTime() })
	case schema.TypeLastEditedTime:
		return renderTimestamp(req, func(n *node.Node) int64 { return n.LastEditedTime() })
	case schema.TypeCreatedBy, schema.TypeLastEditedBy, schema.TypePerson, schema.TypeRelation:
		// No identity resolution is implemented; these render raw.
		// A deliberate limitation, not to be silently extended.
		return render.TextCell(req.Data)
	}
	return render.TextCell(req.Data)
}

// renderFormula evaluates the descriptor's expression. Every evaluation
// failure, and any non-numeric numeric result, degrades to an empty cell.
func (s *Service) renderFormula(req Request) render.Cell {
	v := formula.Eval(req.Descriptor.Formula, envFor(req.Schema, req.Node))

	switch v.Kind() {
	case formula.KindError:
		return render.EmptyCell()
	case formula.KindNumber:
		if math.IsNaN(v.Num()) || math.IsInf(v.Num(), 0) {
			return render.EmptyCell()
		}
		return render.TextCell(richtext.New(v.Format()))
	case formula.KindDate:
		return render.TextCell(richtext.New(v.Time().Format(dateLayout)))
	case formula.KindString, formula.KindBool:
		return render.TextCell(richtext.New(v.Format()))
	}
	return render.EmptyCell()
}

func (s *Service) renderTitle(req Request) render.Cell {
	if req.Node != nil && req.LinkTitles {
		return render.Cell{
			Kind:   render.CellLink,
			Text:   req.Node.Title(),
			Target: s.pages.MapPageURL(req.Node.ID()),
		}
	}
	return render.TextCell(req.Data)
}

// renderSelect splits the stored comma-separated string into discrete values
// and matches each against the schema's declared options for a display color.
func renderSelect(req Request) render.Cell {
	values := strings.Split(req.Data.First(), ",")

	opts := make([]render.OptionValue, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		ov := render.OptionValue{Value: v}
		if opt, ok := req.Descriptor.OptionByValue(v); ok {
			ov.Color = opt.Color
		}
		opts = append(opts, ov)
	}
	return render.Cell{Kind: render.CellOptions, Options: opts}
}

// renderNumber parses the first raw token; unparseable values fall back to
// the raw rich text, as does an undeclared number format.
func renderNumber(req Request) render.Cell {
	v, err := strconv.ParseFloat(strings.TrimSpace(req.Data.First()), 64)
	if err != nil {
		return render.TextCell(req.Data)
	}

	out, ok := formatNumber(v, req.Descriptor.NumberFormat)
	if !ok {
		return render.TextCell(req.Data)
	}
	return render.TextCell(richtext.New(out))
}

// renderURL links the value into a new browsing context. Inline presentation
// truncates the display to the bare hostname, falling back silently to the
// full value on any parse failure.
func renderURL(req Request) render.Cell {
	raw := req.Data.First()
	display := req.Data
	if req.Inline {
		if u, err := url.Parse(raw); err == nil && u.Hostname() != "" {
			display = display.WithFirst(strings.TrimPrefix(u.Hostname(), "www."))
		}
	}
	return render.Cell{
		Kind:      render.CellLink,
		Text:      display,
		Target:    raw,
		NewWindow: true,
	}
}

func renderLinked(req Request, protocol string) render.Cell {
	return render.Cell{
		Kind:   render.CellLink,
		Text:   req.Data,
		Target: protocol + req.Data.Plain(),
	}
}

func renderCheckbox(req Request) render.Cell {
	return render.Cell{
		Kind:    render.CellCheckbox,
		Checked: req.Data.First() == checkboxYes,
		Label:   req.Descriptor.Name,
	}
}

// renderFile maps raw value rows (display name + asset reference) into links
// wrapping lazy thumbnails.
func (s *Service) renderFile(req Request) render.Cell {
	var owner node.Node
	if req.Node != nil {
		owner = *req.Node
	}

	files := make([]render.FileLink, 0, len(req.Data))
	for _, seg := range req.Data {
		ref := ""
		for _, dec := range seg.Decorations {
			if dec.Kind == richtext.LinkTo {
				ref = dec.Target
				break
			}
		}
		if ref == "" {
			continue
		}
		files = append(files, render.FileLink{
			Name: seg.Content,
			URL:  s.urls.MapURL(ref, owner),
		})
	}
	return render.Cell{Kind: render.CellFiles, Files: files}
}

func renderTimestamp(req Request, pick func(*node.Node) int64) render.Cell {
	if req.Node == nil {
		return render.EmptyCell()
	}
	ts := pick(req.Node)
	if ts == 0 {
		return render.EmptyCell()
	}
	t := time.UnixMilli(ts).UTC()
	return render.TextCell(richtext.New(t.Format(dateLayout)))
}
