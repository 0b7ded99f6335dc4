package convert

import (
	"strings"

	"github.com/vango-dev/htmlconv/pkg/attrs"
	"github.com/vango-dev/htmlconv/pkg/dom"
)

// Class is the conversion branch taken for a node.
type Class uint8

const (
	ClassInvalid  Class = iota // Unknown node type
	ClassComment               // Dropped
	ClassDoctype               // Dropped
	ClassText                  // Plain string child
	ClassRawText               // Content passed through as one opaque string
	ClassForeign               // SVG or MathML element
	ClassOrdinary              // HTML element
)

// String returns the string representation of the Class.
func (c Class) String() string {
	switch c {
	case ClassComment:
		return "comment"
	case ClassDoctype:
		return "doctype"
	case ClassText:
		return "text"
	case ClassRawText:
		return "raw-text"
	case ClassForeign:
		return "foreign"
	case ClassOrdinary:
		return "ordinary"
	default:
		return "invalid"
	}
}

// rawTextTags hold content the markup parser does not treat as markup.
var rawTextTags = map[string]bool{
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
	"script":    true,
	"style":     true,
	"textarea":  true,
	"xmp":       true,
}

// Classify returns the branch for node when its parent's children live in
// namespace ns. The first matching rule wins.
func Classify(node *dom.Node, ns attrs.Namespace) Class {
	if node == nil {
		return ClassInvalid
	}
	switch node.Type {
	case dom.CommentNode:
		return ClassComment
	case dom.DoctypeNode:
		return ClassDoctype
	case dom.TextNode:
		return ClassText
	case dom.ElementNode:
	default:
		return ClassInvalid
	}

	name := strings.ToLower(node.Name)
	if rawTextTags[name] && (ns == attrs.HTML || name == "script" || name == "style") {
		return ClassRawText
	}
	if ns != attrs.HTML || name == "svg" || name == "math" {
		return ClassForeign
	}
	return ClassOrdinary
}

// elementNamespace returns the namespace an element's own attributes use.
func elementNamespace(name string, ns attrs.Namespace) attrs.Namespace {
	if ns != attrs.HTML {
		return ns
	}
	switch strings.ToLower(name) {
	case "svg":
		return attrs.SVG
	case "math":
		return attrs.MathML
	}
	return attrs.HTML
}

// childNamespace returns the namespace of an element's children.
func childNamespace(name string, ns attrs.Namespace) attrs.Namespace {
	switch {
	case ns == attrs.SVG && strings.EqualFold(name, "foreignObject"):
		return attrs.HTML
	case ns == attrs.MathML && strings.EqualFold(name, "annotation-xml"):
		return attrs.HTML
	}
	return ns
}
