package search

import (
	"regexp"

	"github.com/kailas-cloud/docview/internal/domain/node"
	"github.com/kailas-cloud/docview/internal/domain/recordmap"
)

// The provider delimits highlighted ranges with an unguessable marker token;
// annotation rewrites it into bold markup.
var (
	highlightOpen  = regexp.MustCompile(`(?i)<gzkNfoUU>`)
	highlightClose = regexp.MustCompile(`(?i)</gzkNfoUU>`)
)

// Result is one annotated search hit.
type Result struct {
	ID            string
	Title         string
	Node          node.Node
	Page          node.Node // nearest ancestor page (inclusive), or the node itself
	HighlightHTML string
	RecordMap     recordmap.RecordMap // fragment context scoped to this result
}

// Annotate resolves each raw result against the response's record-map
// fragment. Results whose node is missing from the fragment, or has no
// resolvable title, are dropped.
func Annotate(resp Response) []Result {
	out := make([]Result, 0, len(resp.Results))
	for _, raw := range resp.Results {
		n, ok := resp.RecordMap.Node(raw.ID)
		if !ok {
			continue
		}
		title := resp.RecordMap.Title(n)
		if title == "" {
			continue
		}

		page, ok := resp.RecordMap.ParentPage(n, true)
		if !ok {
			page = n
		}

		out = append(out, Result{
			ID:            raw.ID,
			Title:         title,
			Node:          n,
			Page:          page,
			HighlightHTML: rewriteHighlight(raw.HighlightText),
			RecordMap:     resp.RecordMap,
		})
	}
	return out
}

func rewriteHighlight(text string) string {
	if text == "" {
		return ""
	}
	out := highlightOpen.ReplaceAllString(text, "<b>")
	return highlightClose.ReplaceAllString(out, "</b>")
}
