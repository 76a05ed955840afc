// Package schema defines the per-property descriptors of tabular collections.
package schema

import (
	"github.com/kailas-cloud/docview/internal/domain/formula"
)

// PropertyType is one case of the closed property-type enumeration.
type PropertyType string

// Property type constants.
const (
	TypeTitle          PropertyType = "title"
	TypeText           PropertyType = "text"
	TypeNumber         PropertyType = "number"
	TypeSelect         PropertyType = "select"
	TypeMultiSelect    PropertyType = "multi_select"
	TypeCheckbox       PropertyType = "checkbox"
	TypeURL            PropertyType = "url"
	TypeEmail          PropertyType = "email"
	TypePhoneNumber    PropertyType = "phone_number"
	TypeFormula        PropertyType = "formula"
	TypeFile           PropertyType = "file"
	TypeCreatedTime    PropertyType = "created_time"
	TypeLastEditedTime PropertyType = "last_edited_time"
	TypeCreatedBy      PropertyType = "created_by"
	TypeLastEditedBy   PropertyType = "last_edited_by"
	TypePerson         PropertyType = "person"
	TypeRelation       PropertyType = "relation"
)

// NumberFormat is one case of the closed number-format enumeration.
type NumberFormat string

// Number format constants.
const (
	FormatNumberWithCommas NumberFormat = "number_with_commas"
	FormatPercent          NumberFormat = "percent"
	FormatDollar           NumberFormat = "dollar"
	FormatEuro             NumberFormat = "euro"
	FormatPound            NumberFormat = "pound"
	FormatYen              NumberFormat = "yen"
	FormatRupee            NumberFormat = "rupee"
	FormatWon              NumberFormat = "won"
	FormatYuan             NumberFormat = "yuan"
)

// Option is one declared value of a select or multi_select property.
type Option struct {
	Value string
	Color string
}

// Descriptor describes a single collection property: its type plus the
// formatting metadata the property renderer dispatches on.
type Descriptor struct {
	Type         PropertyType
	Name         string
	Options      []Option
	NumberFormat NumberFormat
	Formula      formula.Expr // set only for TypeFormula
}

// OptionByValue finds the declared option matching a stored value.
func (d Descriptor) OptionByValue(value string) (Option, bool) {
	for _, o := range d.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// Schema maps property ids to their descriptors.
type Schema map[string]Descriptor
