// Package node defines the content node value object and its closed type enumeration.
package node

import (
	"github.com/kailas-cloud/docview/internal/domain/richtext"
)

// Type is one case of the closed content-type enumeration.
type Type string

// Content type constants.
const (
	TypePage           Type = "page"
	TypeText           Type = "text"
	TypeHeader         Type = "header"
	TypeSubHeader      Type = "sub_header"
	TypeSubSubHeader   Type = "sub_sub_header"
	TypeBulletedList   Type = "bulleted_list"
	TypeNumberedList   Type = "numbered_list"
	TypeQuote          Type = "quote"
	TypeCallout        Type = "callout"
	TypeDivider        Type = "divider"
	TypeCollectionView Type = "collection_view"

	TypeVideo      Type = "video"
	TypeImage      Type = "image"
	TypeEmbed      Type = "embed"
	TypeFigma      Type = "figma"
	TypeTypeform   Type = "typeform"
	TypeExcalidraw Type = "excalidraw"
	TypeMaps       Type = "maps"
	TypeTweet      Type = "tweet"
	TypePDF        Type = "pdf"
	TypeGist       Type = "gist"
	TypeCodepen    Type = "codepen"
	TypeDrive      Type = "drive"
)

// assetTypes is the closed set of variants the asset dispatcher recognizes.
var assetTypes = map[Type]bool{
	TypeVideo: true, TypeImage: true, TypeEmbed: true, TypeFigma: true,
	TypeTypeform: true, TypeExcalidraw: true, TypeMaps: true, TypeTweet: true,
	TypePDF: true, TypeGist: true, TypeCodepen: true, TypeDrive: true,
}

// IsAsset reports whether the type is dispatched through the asset render plan.
func (t Type) IsAsset() bool { return assetTypes[t] }

// embedFamily is the subset resolved through the frame/widget candidate-source path.
var embedFamily = map[Type]bool{
	TypeEmbed: true, TypeVideo: true, TypeFigma: true, TypeTypeform: true,
	TypeGist: true, TypeMaps: true, TypeExcalidraw: true, TypeCodepen: true,
	TypeDrive: true,
}

// IsEmbedFamily reports whether the type uses the embed candidate-source resolution.
func (t Type) IsEmbedFamily() bool { return embedFamily[t] }

// Format holds the layout hints a node carries for geometry computation.
type Format struct {
	FullWidth     bool
	PageWidth     bool
	PreserveScale bool
	AspectRatio   float64 // 0 = unset
	Width         int     // 0 = unset
	Height        int     // 0 = unset
	DisplaySource string
}

// Node is one content unit of the document graph (immutable value object).
type Node struct {
	id             string
	nodeType       Type
	properties     map[string]richtext.Text
	format         Format
	content        []string
	parent         string
	createdTime    int64
	lastEditedTime int64
}

// Reconstruct creates a Node from stored data without validation (map hydration).
func Reconstruct(
	id string, t Type, properties map[string]richtext.Text, format Format,
	content []string, parent string, createdTime, lastEditedTime int64,
) Node {
	return Node{
		id: id, nodeType: t, properties: properties, format: format,
		content: content, parent: parent,
		createdTime: createdTime, lastEditedTime: lastEditedTime,
	}
}

// ID returns the node identifier.
func (n *Node) ID() string { return n.id }

// Type returns the content type.
func (n *Node) Type() Type { return n.nodeType }

// Property returns the rich text stored under the given property key.
func (n *Node) Property(key string) richtext.Text { return n.properties[key] }

// Properties returns the full property mapping.
func (n *Node) Properties() map[string]richtext.Text { return n.properties }

// Format returns the layout hints.
func (n *Node) Format() Format { return n.format }

// Content returns the ordered child node ids.
func (n *Node) Content() []string { return n.content }

// Parent returns the parent node id ("" for roots).
func (n *Node) Parent() string { return n.parent }

// CreatedTime returns the creation timestamp in epoch milliseconds.
func (n *Node) CreatedTime() int64 { return n.createdTime }

// LastEditedTime returns the last-edit timestamp in epoch milliseconds.
func (n *Node) LastEditedTime() int64 { return n.lastEditedTime }

// Title returns the node's title rich text (the "title" property).
func (n *Node) Title() richtext.Text { return n.properties["title"] }

// Source returns the raw stored asset source (first token of the "source" property).
func (n *Node) Source() string { return n.properties["source"].First() }

// Caption returns the asset caption rich text.
func (n *Node) Caption() richtext.Text { return n.properties["caption"] }
