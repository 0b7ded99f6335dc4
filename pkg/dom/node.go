// Package dom defines the parsed markup tree consumed by the converter.
//
// A Node tree is produced by a parser (see package parser) or built by hand.
// Converters treat it as immutable: nothing in this module mutates a Node it
// did not create.
//
// Nodes do not store a parent pointer. Code that needs the parent receives it
// as traversal context instead, which keeps the tree free of ownership cycles.
package dom

import "strings"

// NodeType is the node type discriminator.
type NodeType uint8

const (
	ElementNode NodeType = iota + 1 // <div>, <svg>, etc.
	TextNode                        // Character data
	CommentNode                     // <!-- ... -->
	DoctypeNode                     // <!DOCTYPE ...>
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	case DoctypeNode:
		return "Doctype"
	default:
		return "Unknown"
	}
}

// Attribute is a single markup attribute. Val is already entity-decoded.
type Attribute struct {
	Key string
	Val string
}

// Node is one parsed markup node.
type Node struct {
	Type     NodeType
	Name     string      // Tag name for elements, doctype name for doctypes
	Attrs    []Attribute // Attributes in source order
	Children []*Node     // Child nodes in source order
	Data     string      // Text or comment content
}

// Element creates an element node.
func Element(name string, attrs []Attribute, children ...*Node) *Node {
	return &Node{
		Type:     ElementNode,
		Name:     name,
		Attrs:    attrs,
		Children: children,
	}
}

// Text creates a text node.
func Text(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// Comment creates a comment node.
func Comment(data string) *Node {
	return &Node{Type: CommentNode, Data: data}
}

// Doctype creates a doctype node.
func Doctype(name string) *Node {
	return &Node{Type: DoctypeNode, Name: name}
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the node carries the named attribute.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.Attr(key)
	return ok
}

// IsElement reports whether n is an element with one of the given names.
// With no names it reports whether n is an element at all.
func (n *Node) IsElement(names ...string) bool {
	if n == nil || n.Type != ElementNode {
		return false
	}
	if len(names) == 0 {
		return true
	}
	for _, name := range names {
		if strings.EqualFold(n.Name, name) {
			return true
		}
	}
	return false
}

// TextContent concatenates the data of all descendant text nodes.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Type == TextNode {
		return n.Data
	}
	var b strings.Builder
	var walk func(*Node)
	walk = func(node *Node) {
		for _, c := range node.Children {
			if c == nil {
				continue
			}
			if c.Type == TextNode {
				b.WriteString(c.Data)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// voidElements are elements that cannot have children and have no end tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"keygen": true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}
