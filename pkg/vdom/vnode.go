package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the kind as its lowercase name.
func (k VKind) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(k.String())), nil
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind    `json:"kind"`               // Node type
	Tag      string   `json:"tag,omitempty"`      // Element tag name (e.g., "div")
	Props    Props    `json:"props,omitempty"`    // Framework props (className, style, ...)
	Children []*VNode `json:"children,omitempty"` // Child nodes
	Key      string   `json:"key,omitempty"`      // Sibling key
	Text     string   `json:"text,omitempty"`     // For KindText and KindRaw

	// PropOrder lists props in source attribute order. The renderer writes
	// these first and any other props sorted by name.
	PropOrder []string `json:"-"`
}

// Props holds element props.
type Props map[string]any

// Attr represents a single prop.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// IsValid reports whether v is a well-formed node.
func (v *VNode) IsValid() bool {
	if v == nil {
		return false
	}
	switch v.Kind {
	case KindElement:
		return v.Tag != ""
	case KindText, KindFragment, KindRaw:
		return true
	default:
		return false
	}
}
