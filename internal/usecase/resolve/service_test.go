package resolve

import (
	"testing"

	"github.com/kailas-cloud/docview/internal/domain/node"
	"github.com/kailas-cloud/docview/internal/domain/recordmap"
	"github.com/kailas-cloud/docview/internal/domain/richtext"
)

func makeNode(id string, parent string, content ...string) node.Node {
	return node.Reconstruct(id, node.TypeText, map[string]richtext.Text{
		"title": richtext.New(id),
	}, node.Format{}, content, parent, 0, 0)
}

func mapOf(nodes ...node.Node) recordmap.RecordMap {
	blocks := make(map[string]node.Node, len(nodes))
	for _, n := range nodes {
		blocks[n.ID()] = n
	}
	return recordmap.New(blocks, nil, nil)
}

type visit struct {
	id    string
	depth int
}

func collect(t *testing.T, svc *Service, rm recordmap.RecordMap, root string) []visit {
	t.Helper()
	var out []visit
	for n, depth := range svc.Resolve(rm, root) {
		out = append(out, visit{n.ID(), depth})
	}
	return out
}

func TestResolve_PreOrderWithDepth(t *testing.T) {
	rm := mapOf(
		makeNode("root", "", "a", "b"),
		makeNode("a", "root", "a1", "a2"),
		makeNode("a1", "a"),
		makeNode("a2", "a"),
		makeNode("b", "root"),
	)

	got := collect(t, New(nil), rm, "root")

	want := []visit{
		{"root", 0}, {"a", 1}, {"a1", 2}, {"a2", 2}, {"b", 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d visits, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestResolve_MissingChildSkipped(t *testing.T) {
	rm := mapOf(
		makeNode("root", "", "gone", "b"),
		makeNode("b", "root"),
	)

	var skips []string
	svc := New(DiagnosticsFunc(func(id, reason string) {
		skips = append(skips, id+":"+reason)
	}))

	got := collect(t, svc, rm, "root")

	if len(got) != 2 || got[0].id != "root" || got[1].id != "b" {
		t.Errorf("expected root,b; got %v", got)
	}
	if len(skips) != 1 || skips[0] != "gone:"+ReasonMissing {
		t.Errorf("expected one missing diagnostic, got %v", skips)
	}
}

func TestResolve_CycleDoesNotRecurse(t *testing.T) {
	// a -> b -> a: the revisit of a is skipped, siblings still render.
	rm := mapOf(
		makeNode("a", "", "b", "c"),
		makeNode("b", "a", "a"),
		makeNode("c", "a"),
	)

	var skips []string
	svc := New(DiagnosticsFunc(func(id, reason string) {
		skips = append(skips, id+":"+reason)
	}))

	got := collect(t, svc, rm, "a")

	want := []visit{{"a", 0}, {"b", 1}, {"c", 1}}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if len(skips) != 1 || skips[0] != "a:"+ReasonRevisit {
		t.Errorf("expected one revisit diagnostic, got %v", skips)
	}
}

func TestResolve_RepeatedNonCyclicReferenceRendersTwice(t *testing.T) {
	// The same child under two distinct parents is not a cycle: the path
	// guard clears on ascent, and both occurrences render.
	rm := mapOf(
		makeNode("root", "", "x", "y"),
		makeNode("x", "root", "shared"),
		makeNode("y", "root", "shared"),
		makeNode("shared", "x"),
	)

	got := collect(t, New(nil), rm, "root")

	count := 0
	for _, v := range got {
		if v.id == "shared" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected shared to render twice, got %d in %v", count, got)
	}
}

func TestResolve_Restartable(t *testing.T) {
	rm := mapOf(
		makeNode("root", "", "a"),
		makeNode("a", "root"),
	)
	svc := New(nil)

	seq := svc.Resolve(rm, "root")

	first := ""
	for n := range seq {
		first += n.ID() + ","
	}
	second := ""
	for n := range seq {
		second += n.ID() + ","
	}
	if first != second || first != "root,a," {
		t.Errorf("expected identical replays, got %q and %q", first, second)
	}
}

func TestResolve_EarlyBreak(t *testing.T) {
	rm := mapOf(
		makeNode("root", "", "a", "b"),
		makeNode("a", "root"),
		makeNode("b", "root"),
	)

	var seen []string
	for n := range New(nil).Resolve(rm, "root") {
		seen = append(seen, n.ID())
		if len(seen) == 2 {
			break
		}
	}
	if len(seen) != 2 {
		t.Errorf("expected traversal to stop at 2, got %v", seen)
	}
}

func TestResolve_EmptyRootFallsBackToStableRoot(t *testing.T) {
	rm := mapOf(
		makeNode("m", ""),
		makeNode("a", "", "m"),
	)

	got := collect(t, New(nil), rm, "")
	if len(got) == 0 || got[0].id != "a" {
		t.Errorf("expected traversal from stable root 'a', got %v", got)
	}
}

func TestResolve_MissingRootYieldsNothing(t *testing.T) {
	got := collect(t, New(nil), mapOf(), "nope")
	if len(got) != 0 {
		t.Errorf("expected empty traversal, got %v", got)
	}
}
