package convert

import "github.com/vango-dev/htmlconv/pkg/dom"

// Visit is the node offered to a Replace hook together with its position.
// Hooks must not mutate Node or Parent.
type Visit struct {
	Node   *dom.Node
	Parent *dom.Node // nil for top-level nodes
	Index  int       // position among the parent's children
	Depth  int       // 0 for top-level nodes
}

// ReplaceFunc overrides conversion of a node. Returning ok == true with an
// element the Library accepts replaces the node and its whole subtree.
type ReplaceFunc func(v Visit) (Element, bool)

// replace offers v to the hook. Results the library does not recognize are
// treated as no override.
func (c *converter) replace(v Visit) (Element, bool) {
	if c.opts.Replace == nil {
		return nil, false
	}
	el, ok := c.opts.Replace(v)
	if !ok || !c.lib.IsValidElement(el) {
		return nil, false
	}
	return el, true
}
