package property

import (
	"testing"
	"time"

	"github.com/kailas-cloud/docview/internal/domain/formula"
	"github.com/kailas-cloud/docview/internal/domain/node"
	"github.com/kailas-cloud/docview/internal/domain/render"
	"github.com/kailas-cloud/docview/internal/domain/richtext"
	"github.com/kailas-cloud/docview/internal/domain/schema"
)

func svc() *Service { return New(nil, nil) }

func timeAt(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
}

func textReq(t schema.PropertyType, value string) Request {
	return Request{
		Descriptor: schema.Descriptor{Type: t},
		Data:       richtext.New(value),
	}
}

func TestRender_Number(t *testing.T) {
	t.Run("formats by declared format", func(t *testing.T) {
		req := Request{
			Descriptor: schema.Descriptor{Type: schema.TypeNumber, NumberFormat: schema.FormatDollar},
			Data:       richtext.New("1234.5"),
		}
		got := svc().Render(req)
		if got.Text.Plain() != "$1,234.50" {
			t.Errorf("expected $1,234.50, got %q", got.Text.Plain())
		}
	})

	t.Run("unparseable falls back to raw", func(t *testing.T) {
		req := Request{
			Descriptor: schema.Descriptor{Type: schema.TypeNumber, NumberFormat: schema.FormatDollar},
			Data:       richtext.New("around forty"),
		}
		got := svc().Render(req)
		if got.Text.Plain() != "around forty" {
			t.Errorf("expected raw fallback, got %q", got.Text.Plain())
		}
	})

	t.Run("undeclared format falls back to raw", func(t *testing.T) {
		got := svc().Render(textReq(schema.TypeNumber, "42"))
		if got.Text.Plain() != "42" {
			t.Errorf("expected raw fallback, got %q", got.Text.Plain())
		}
	})
}

func TestRender_Select(t *testing.T) {
	req := Request{
		Descriptor: schema.Descriptor{
			Type: schema.TypeMultiSelect,
			Options: []schema.Option{
				{Value: "red", Color: "red"},
				{Value: "blue", Color: "blue"},
			},
		},
		Data: richtext.New("red,blue,unknown"),
	}

	got := svc().Render(req)

	if got.Kind != render.CellOptions {
		t.Fatalf("expected options cell, got %q", got.Kind)
	}
	if len(got.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(got.Options))
	}
	if got.Options[0].Color != "red" || got.Options[1].Color != "blue" {
		t.Errorf("expected schema colors, got %+v", got.Options)
	}
	if got.Options[2].Color != "" {
		t.Errorf("undeclared value must have no color, got %q", got.Options[2].Color)
	}
}

func TestRender_SelectEmptyValuesDropped(t *testing.T) {
	got := svc().Render(textReq(schema.TypeSelect, ""))
	if len(got.Options) != 0 {
		t.Errorf("expected no options, got %+v", got.Options)
	}
}

func TestRender_URL(t *testing.T) {
	t.Run("inline truncates to hostname", func(t *testing.T) {
		req := textReq(schema.TypeURL, "https://www.example.com/deep/path?x=1")
		req.Inline = true
		got := svc().Render(req)
		if got.Kind != render.CellLink || !got.NewWindow {
			t.Fatalf("expected new-window link, got %+v", got)
		}
		if got.Text.Plain() != "example.com" {
			t.Errorf("expected hostname, got %q", got.Text.Plain())
		}
		if got.Target != "https://www.example.com/deep/path?x=1" {
			t.Errorf("target must keep the full URL, got %q", got.Target)
		}
	})

	t.Run("block presentation keeps full value", func(t *testing.T) {
		got := svc().Render(textReq(schema.TypeURL, "https://example.com/a"))
		if got.Text.Plain() != "https://example.com/a" {
			t.Errorf("expected full URL, got %q", got.Text.Plain())
		}
	})

	t.Run("unparseable inline value keeps raw display", func(t *testing.T) {
		req := textReq(schema.TypeURL, "not a url")
		req.Inline = true
		got := svc().Render(req)
		if got.Text.Plain() != "not a url" {
			t.Errorf("expected raw display, got %q", got.Text.Plain())
		}
	})
}

func TestRender_EmailAndPhone(t *testing.T) {
	email := svc().Render(textReq(schema.TypeEmail, "a@b.c"))
	if email.Target != "mailto:a@b.c" {
		t.Errorf("expected mailto target, got %q", email.Target)
	}
	phone := svc().Render(textReq(schema.TypePhoneNumber, "+1555"))
	if phone.Target != "tel:+1555" {
		t.Errorf("expected tel target, got %q", phone.Target)
	}
}

func TestRender_Checkbox(t *testing.T) {
	req := textReq(schema.TypeCheckbox, "Yes")
	req.Descriptor.Name = "Done"

	got := svc().Render(req)

	if got.Kind != render.CellCheckbox || !got.Checked || got.Label != "Done" {
		t.Errorf("unexpected checkbox cell %+v", got)
	}

	if svc().Render(textReq(schema.TypeCheckbox, "No")).Checked {
		t.Error("only the literal Yes checks")
	}
	if svc().Render(textReq(schema.TypeCheckbox, "yes")).Checked {
		t.Error("match is case-sensitive")
	}
}

func TestRender_Title(t *testing.T) {
	owner := node.Reconstruct("page-1", node.TypePage, map[string]richtext.Text{
		"title": richtext.New("My page"),
	}, node.Format{}, nil, "", 0, 0)

	t.Run("plain without linking", func(t *testing.T) {
		req := textReq(schema.TypeTitle, "My page")
		req.Node = &owner
		got := svc().Render(req)
		if got.Kind != render.CellText {
			t.Errorf("expected text cell, got %q", got.Kind)
		}
	})

	t.Run("links through the page linker", func(t *testing.T) {
		s := New(nil, PageLinkerFunc(func(id string) string { return "/pages/" + id }))
		req := textReq(schema.TypeTitle, "My page")
		req.Node = &owner
		req.LinkTitles = true
		got := s.Render(req)
		if got.Kind != render.CellLink || got.Target != "/pages/page-1" {
			t.Errorf("expected page link, got %+v", got)
		}
	})
}

func TestRender_Formula(t *testing.T) {
	sch := schema.Schema{
		"price": {Type: schema.TypeNumber},
	}
	owner := node.Reconstruct("n", node.TypePage, map[string]richtext.Text{
		"price": richtext.New("10"),
	}, node.Format{}, nil, "", 0, 0)

	t.Run("evaluates against node properties", func(t *testing.T) {
		req := Request{
			Descriptor: schema.Descriptor{
				Type: schema.TypeFormula,
				Formula: formula.Binary{
					Op:    formula.OpMul,
					Left:  formula.PropertyRef{ID: "price"},
					Right: formula.Literal{Value: formula.Number(2)},
				},
			},
			Node:   &owner,
			Schema: sch,
		}
		got := svc().Render(req)
		if got.Text.Plain() != "20" {
			t.Errorf("expected 20, got %q", got.Text.Plain())
		}
	})

	t.Run("undefined reference renders empty", func(t *testing.T) {
		req := Request{
			Descriptor: schema.Descriptor{
				Type:    schema.TypeFormula,
				Formula: formula.PropertyRef{ID: "missing"},
			},
			Node:   &owner,
			Schema: sch,
		}
		got := svc().Render(req)
		if got.Kind != render.CellEmpty {
			t.Errorf("expected empty cell, got %+v", got)
		}
	})

	t.Run("absent formula renders empty", func(t *testing.T) {
		got := svc().Render(Request{Descriptor: schema.Descriptor{Type: schema.TypeFormula}})
		if got.Kind != render.CellEmpty {
			t.Errorf("expected empty cell, got %+v", got)
		}
	})

	t.Run("date result uses display layout", func(t *testing.T) {
		req := Request{
			Descriptor: schema.Descriptor{
				Type:    schema.TypeFormula,
				Formula: formula.Literal{Value: formula.Date(timeAt(t))},
			},
		}
		got := svc().Render(req)
		if got.Text.Plain() != "Jun 1, 2024 09:30 AM" {
			t.Errorf("unexpected date rendering %q", got.Text.Plain())
		}
	})
}

func TestRender_Timestamps(t *testing.T) {
	owner := node.Reconstruct("n", node.TypePage, nil, node.Format{}, nil, "",
		1717234200000, 1717237800000) // 2024-06-01T09:30Z, 10:30Z

	created := Request{Descriptor: schema.Descriptor{Type: schema.TypeCreatedTime}, Node: &owner}
	if got := svc().Render(created); got.Text.Plain() != "Jun 1, 2024 09:30 AM" {
		t.Errorf("unexpected created time %q", got.Text.Plain())
	}

	edited := Request{Descriptor: schema.Descriptor{Type: schema.TypeLastEditedTime}, Node: &owner}
	if got := svc().Render(edited); got.Text.Plain() != "Jun 1, 2024 10:30 AM" {
		t.Errorf("unexpected edited time %q", got.Text.Plain())
	}

	detached := Request{Descriptor: schema.Descriptor{Type: schema.TypeCreatedTime}}
	if got := svc().Render(detached); got.Kind != render.CellEmpty {
		t.Errorf("expected empty cell without a node, got %+v", got)
	}
}

func TestRender_File(t *testing.T) {
	data := richtext.Text{
		{Content: "photo.jpg", Decorations: []richtext.Decoration{
			{Kind: richtext.LinkTo, Target: "https://files.example/photo.jpg"},
		}},
		{Content: "no-link"},
	}
	s := New(URLMapperFunc(func(raw string, _ node.Node) string {
		return "https://proxy/" + raw
	}), nil)

	got := s.Render(Request{Descriptor: schema.Descriptor{Type: schema.TypeFile}, Data: data})

	if got.Kind != render.CellFiles {
		t.Fatalf("expected files cell, got %q", got.Kind)
	}
	if len(got.Files) != 1 {
		t.Fatalf("segments without asset references are dropped, got %+v", got.Files)
	}
	if got.Files[0].Name != "photo.jpg" {
		t.Errorf("unexpected name %q", got.Files[0].Name)
	}
	if got.Files[0].URL != "https://proxy/https://files.example/photo.jpg" {
		t.Errorf("mapper not applied: %q", got.Files[0].URL)
	}
}

func TestRender_UnresolvedIdentityTypesRenderRaw(t *testing.T) {
	for _, pt := range []schema.PropertyType{
		schema.TypePerson, schema.TypeCreatedBy, schema.TypeLastEditedBy, schema.TypeRelation,
	} {
		got := svc().Render(textReq(pt, "u-123"))
		if got.Kind != render.CellText || got.Text.Plain() != "u-123" {
			t.Errorf("%s: expected raw text, got %+v", pt, got)
		}
	}
}

func TestRender_OverrideWins(t *testing.T) {
	override := RendererFunc(func(req Request) (render.Cell, bool) {
		if req.Descriptor.Type == schema.TypeCheckbox {
			return render.TextCell(richtext.New("custom")), true
		}
		return render.Cell{}, false
	})
	s := New(nil, nil, WithOverride(override))

	got := s.Render(textReq(schema.TypeCheckbox, "Yes"))
	if got.Text.Plain() != "custom" {
		t.Errorf("expected override cell, got %+v", got)
	}

	fallthroughCell := s.Render(textReq(schema.TypeEmail, "a@b.c"))
	if fallthroughCell.Target != "mailto:a@b.c" {
		t.Errorf("expected default dispatch on override miss, got %+v", fallthroughCell)
	}
}
