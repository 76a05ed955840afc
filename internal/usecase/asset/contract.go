package asset

import "github.com/kailas-cloud/docview/internal/domain/node"

// URLMapper rewrites raw or signed asset URLs into display URLs.
// Injectable per deployment, e.g. for CDN rewriting.
type URLMapper interface {
	MapURL(raw string, n node.Node) string
}

// URLMapperFunc adapts a function to the URLMapper interface.
type URLMapperFunc func(raw string, n node.Node) string

// MapURL implements URLMapper.
func (f URLMapperFunc) MapURL(raw string, n node.Node) string { return f(raw, n) }

// IdentityURLMapper returns URLs unchanged.
func IdentityURLMapper() URLMapper {
	return URLMapperFunc(func(raw string, _ node.Node) string { return raw })
}
