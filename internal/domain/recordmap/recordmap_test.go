package recordmap

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/docview/internal/domain"
	"github.com/kailas-cloud/docview/internal/domain/node"
	"github.com/kailas-cloud/docview/internal/domain/richtext"
)

func makeNode(id string, t node.Type, parent string, content ...string) node.Node {
	return node.Reconstruct(id, t, map[string]richtext.Text{
		"title": richtext.New("title of " + id),
	}, node.Format{}, content, parent, 0, 0)
}

func mapOf(nodes ...node.Node) RecordMap {
	blocks := make(map[string]node.Node, len(nodes))
	for _, n := range nodes {
		blocks[n.ID()] = n
	}
	return New(blocks, nil, nil)
}

func TestStableRoot_SmallestKey(t *testing.T) {
	rm := mapOf(
		makeNode("b", node.TypeText, ""),
		makeNode("a", node.TypePage, ""),
		makeNode("c", node.TypeText, ""),
	)

	root, ok := rm.StableRoot()
	if !ok {
		t.Fatal("expected a root")
	}
	if root != "a" {
		t.Errorf("expected 'a', got %q", root)
	}

	if _, ok := (RecordMap{}).StableRoot(); ok {
		t.Error("empty map should have no root")
	}
}

func TestMerge_OtherWins(t *testing.T) {
	base := New(
		map[string]node.Node{"x": makeNode("x", node.TypeText, "")},
		nil,
		map[string]string{"x": "https://old"},
	)
	other := New(
		map[string]node.Node{
			"x": makeNode("x", node.TypePage, ""),
			"y": makeNode("y", node.TypeText, ""),
		},
		nil,
		map[string]string{"x": "https://new"},
	)

	merged := base.Merge(other)

	if merged.Len() != 2 {
		t.Fatalf("expected 2 blocks, got %d", merged.Len())
	}
	n, _ := merged.Node("x")
	if n.Type() != node.TypePage {
		t.Errorf("expected other's entry to win, got %q", n.Type())
	}
	if u, _ := merged.SignedURL("x"); u != "https://new" {
		t.Errorf("expected other's signed URL, got %q", u)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	base := mapOf(makeNode("x", node.TypeText, ""))
	other := mapOf(makeNode("y", node.TypeText, ""))

	_ = base.Merge(other)

	if base.Len() != 1 {
		t.Errorf("base mutated: %d blocks", base.Len())
	}
	if other.Len() != 1 {
		t.Errorf("other mutated: %d blocks", other.Len())
	}
	if _, ok := base.Node("y"); ok {
		t.Error("base gained other's entry")
	}
}

func TestParentPage(t *testing.T) {
	page := makeNode("page", node.TypePage, "", "list")
	list := makeNode("list", node.TypeBulletedList, "page", "leaf")
	leaf := makeNode("leaf", node.TypeText, "list")
	rm := mapOf(page, list, leaf)

	t.Run("walks to nearest page", func(t *testing.T) {
		got, ok := rm.ParentPage(leaf, false)
		if !ok {
			t.Fatal("expected a parent page")
		}
		if got.ID() != "page" {
			t.Errorf("expected 'page', got %q", got.ID())
		}
	})

	t.Run("inclusive returns page itself", func(t *testing.T) {
		got, ok := rm.ParentPage(page, true)
		if !ok || got.ID() != "page" {
			t.Errorf("expected page itself, got %v %v", got.ID(), ok)
		}
	})

	t.Run("exclusive skips page itself", func(t *testing.T) {
		if _, ok := rm.ParentPage(page, false); ok {
			t.Error("root page has no parent page")
		}
	})

	t.Run("missing parent terminates", func(t *testing.T) {
		orphan := makeNode("orphan", node.TypeText, "gone")
		if _, ok := mapOf(orphan).ParentPage(orphan, false); ok {
			t.Error("expected no parent page")
		}
	})

	t.Run("parent cycle terminates", func(t *testing.T) {
		a := makeNode("a", node.TypeText, "b")
		b := makeNode("b", node.TypeText, "a")
		if _, ok := mapOf(a, b).ParentPage(a, false); ok {
			t.Error("expected cycle walk to terminate without a page")
		}
	})
}

func TestParse_WrapperShape(t *testing.T) {
	raw := `{
		"block": {
			"n1": {"value": {
				"id": "n1",
				"type": "image",
				"properties": {"caption": [["a boat"]]},
				"format": {"block_width": 480, "block_aspect_ratio": 0.75},
				"parent_id": "p1"
			}},
			"dangling": {}
		},
		"collection": {
			"c1": {"value": {"schema": {
				"prop": {"type": "number", "name": "Price", "number_format": "dollar"}
			}}}
		},
		"signed_urls": {"n1": "https://signed.example/n1"}
	}`

	rm, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rm.Len() != 1 {
		t.Fatalf("expected 1 block (dangling wrapper dropped), got %d", rm.Len())
	}
	n, ok := rm.Node("n1")
	if !ok {
		t.Fatal("missing node n1")
	}
	if n.Type() != node.TypeImage {
		t.Errorf("expected image, got %q", n.Type())
	}
	if n.Format().Width != 480 || n.Format().AspectRatio != 0.75 {
		t.Errorf("format not hydrated: %+v", n.Format())
	}
	if n.Caption().Plain() != "a boat" {
		t.Errorf("caption not hydrated: %q", n.Caption().Plain())
	}

	sch, ok := rm.Schema("c1")
	if !ok {
		t.Fatal("missing schema c1")
	}
	if sch["prop"].Name != "Price" {
		t.Errorf("schema not hydrated: %+v", sch["prop"])
	}

	if u, _ := rm.SignedURL("n1"); u != "https://signed.example/n1" {
		t.Errorf("signed URL not hydrated: %q", u)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrInvalidRecordMap) {
		t.Errorf("expected ErrInvalidRecordMap, got %v", err)
	}
}

func TestParse_MalformedFormulaDegradesToAbsent(t *testing.T) {
	raw := `{
		"collection": {
			"c1": {"value": {"schema": {
				"f": {"type": "formula", "name": "F", "formula": {"type": "operator"}}
			}}}
		}
	}`

	rm, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sch, _ := rm.Schema("c1")
	if sch["f"].Formula != nil {
		t.Errorf("expected malformed formula dropped, got %+v", sch["f"].Formula)
	}
}
