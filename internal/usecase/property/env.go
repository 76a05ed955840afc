package property

import (
	"strconv"
	"strings"

	"github.com/kailas-cloud/docview/internal/domain/formula"
	"github.com/kailas-cloud/docview/internal/domain/node"
	"github.com/kailas-cloud/docview/internal/domain/schema"
)

// envFor builds a formula environment from the collection schema and the
// owning node's raw properties. Property values coerce by their declared
// schema type; anything else resolves as a string.
func envFor(sch schema.Schema, n *node.Node) formula.Env {
	return formula.EnvFunc(func(id string) (formula.Value, bool) {
		if n == nil {
			return formula.Value{}, false
		}
		desc, ok := sch[id]
		if !ok {
			return formula.Value{}, false
		}
		raw := n.Property(id)
		if raw.IsEmpty() {
			return formula.Value{}, false
		}

		switch desc.Type {
		case schema.TypeNumber:
			f, err := strconv.ParseFloat(strings.TrimSpace(raw.First()), 64)
			if err != nil {
				return formula.Value{}, false
			}
			return formula.Number(f), true
		case schema.TypeCheckbox:
			return formula.Boolean(raw.Plain() == checkboxYes), true
		default:
			return formula.String(raw.Plain()), true
		}
	})
}
