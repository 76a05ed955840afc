package recordmap

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/docview/internal/domain"
	"github.com/kailas-cloud/docview/internal/domain/formula"
	"github.com/kailas-cloud/docview/internal/domain/node"
	"github.com/kailas-cloud/docview/internal/domain/richtext"
	"github.com/kailas-cloud/docview/internal/domain/schema"
)

// Wire DTOs for the record-map ingestion shape: every node and collection sits
// inside a {"value": ...} wrapper regardless of transport.

type mapDTO struct {
	Block      map[string]valueWrapper[nodeDTO]       `json:"block"`
	Collection map[string]valueWrapper[collectionDTO] `json:"collection"`
	SignedURLs map[string]string                      `json:"signed_urls"`
}

type valueWrapper[T any] struct {
	Value *T `json:"value"`
}

type nodeDTO struct {
	ID             string                   `json:"id"`
	Type           string                   `json:"type"`
	Properties     map[string]richtext.Text `json:"properties"`
	Format         formatDTO                `json:"format"`
	Content        []string                 `json:"content"`
	ParentID       string                   `json:"parent_id"`
	CreatedTime    int64                    `json:"created_time"`
	LastEditedTime int64                    `json:"last_edited_time"`
}

type formatDTO struct {
	FullWidth     bool    `json:"block_full_width"`
	PageWidth     bool    `json:"block_page_width"`
	PreserveScale bool    `json:"block_preserve_scale"`
	AspectRatio   float64 `json:"block_aspect_ratio"`
	Width         int     `json:"block_width"`
	Height        int     `json:"block_height"`
	DisplaySource string  `json:"display_source"`
}

type collectionDTO struct {
	Schema map[string]descriptorDTO `json:"schema"`
}

type descriptorDTO struct {
	Type         string          `json:"type"`
	Name         string          `json:"name"`
	Options      []optionDTO     `json:"options"`
	NumberFormat string          `json:"number_format"`
	Formula      json.RawMessage `json:"formula"`
}

type optionDTO struct {
	Value string `json:"value"`
	Color string `json:"color"`
}

// Parse decodes a record map from its wrapper-shaped JSON payload.
// Entries with a missing value wrapper are dropped, not failed: the map is
// externally authored and may be partial.
func Parse(data []byte) (RecordMap, error) {
	var dto mapDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return RecordMap{}, fmt.Errorf("%w: %w", domain.ErrInvalidRecordMap, err)
	}

	blocks := make(map[string]node.Node, len(dto.Block))
	for id, w := range dto.Block {
		if w.Value == nil {
			continue
		}
		blocks[id] = nodeFromDTO(id, *w.Value)
	}

	schemas := make(map[string]schema.Schema, len(dto.Collection))
	for id, w := range dto.Collection {
		if w.Value == nil {
			continue
		}
		schemas[id] = schemaFromDTO(w.Value.Schema)
	}

	signed := make(map[string]string, len(dto.SignedURLs))
	for id, u := range dto.SignedURLs {
		signed[id] = u
	}

	return New(blocks, schemas, signed), nil
}

func nodeFromDTO(id string, dto nodeDTO) node.Node {
	if dto.ID != "" {
		id = dto.ID
	}
	return node.Reconstruct(
		id,
		node.Type(dto.Type),
		dto.Properties,
		node.Format{
			FullWidth:     dto.Format.FullWidth,
			PageWidth:     dto.Format.PageWidth,
			PreserveScale: dto.Format.PreserveScale,
			AspectRatio:   dto.Format.AspectRatio,
			Width:         dto.Format.Width,
			Height:        dto.Format.Height,
			DisplaySource: dto.Format.DisplaySource,
		},
		dto.Content,
		dto.ParentID,
		dto.CreatedTime,
		dto.LastEditedTime,
	)
}

func schemaFromDTO(dtos map[string]descriptorDTO) schema.Schema {
	out := make(schema.Schema, len(dtos))
	for pid, d := range dtos {
		desc := schema.Descriptor{
			Type:         schema.PropertyType(d.Type),
			Name:         d.Name,
			NumberFormat: schema.NumberFormat(d.NumberFormat),
		}
		for _, o := range d.Options {
			desc.Options = append(desc.Options, schema.Option{Value: o.Value, Color: o.Color})
		}
		if len(d.Formula) > 0 {
			// A malformed stored formula degrades to an absent one; evaluation
			// of a nil expression yields an error value, which renders empty.
			if expr, err := formula.Parse(d.Formula); err == nil {
				desc.Formula = expr
			}
		}
		out[pid] = desc
	}
	return out
}
