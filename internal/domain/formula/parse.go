package formula

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// exprDTO is the stored wire form of one expression node.
type exprDTO struct {
	Type      string          `json:"type"`
	ID        string          `json:"id,omitempty"`
	ValueType string          `json:"value_type,omitempty"`
	Value     string          `json:"value,omitempty"`
	Operator  string          `json:"operator,omitempty"`
	Operands  []json.RawMessage `json:"operands,omitempty"`
	Name      string          `json:"name,omitempty"`
	Args      []json.RawMessage `json:"args,omitempty"`
}

// Parse decodes a stored formula expression tree.
func Parse(data []byte) (Expr, error) {
	var dto exprDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("formula node: %w", err)
	}

	switch dto.Type {
	case "property":
		if dto.ID == "" {
			return nil, fmt.Errorf("property node requires an id")
		}
		return PropertyRef{ID: dto.ID}, nil
	case "constant":
		return parseConstant(dto)
	case "operator":
		return parseOperator(dto)
	case "function":
		args, err := parseChildren(dto.Args)
		if err != nil {
			return nil, err
		}
		return Call{Fn: Fn(dto.Name), Args: args}, nil
	}
	return nil, fmt.Errorf("unknown formula node type %q", dto.Type)
}

func parseConstant(dto exprDTO) (Expr, error) {
	switch dto.ValueType {
	case "number":
		n, err := strconv.ParseFloat(dto.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("number constant %q: %w", dto.Value, err)
		}
		return Literal{Value: Number(n)}, nil
	case "string":
		return Literal{Value: String(dto.Value)}, nil
	case "boolean":
		return Literal{Value: Boolean(dto.Value == "true")}, nil
	case "date":
		t, err := time.Parse(time.RFC3339, dto.Value)
		if err != nil {
			return nil, fmt.Errorf("date constant %q: %w", dto.Value, err)
		}
		return Literal{Value: Date(t)}, nil
	}
	return nil, fmt.Errorf("unknown constant value type %q", dto.ValueType)
}

func parseOperator(dto exprDTO) (Expr, error) {
	operands, err := parseChildren(dto.Operands)
	if err != nil {
		return nil, err
	}
	if len(operands) != 2 {
		return nil, fmt.Errorf("operator %q requires two operands, got %d", dto.Operator, len(operands))
	}
	return Binary{Op: Op(dto.Operator), Left: operands[0], Right: operands[1]}, nil
}

func parseChildren(raw []json.RawMessage) ([]Expr, error) {
	out := make([]Expr, len(raw))
	for i, r := range raw {
		child, err := Parse(r)
		if err != nil {
			return nil, err
		}
		out[i] = child
	}
	return out, nil
}
