package vdom

import "fmt"

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, Props, *VNode, []*VNode, []any, string.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			node.setProp(v.Key, v.Value)

		case []Attr:
			for _, a := range v {
				node.setProp(a.Key, a.Value)
			}

		case Props:
			for k, val := range v {
				node.setProp(k, val)
			}

		case map[string]any:
			for k, val := range v {
				node.setProp(k, val)
			}

		default:
			node.Children = appendChildren(node.Children, v)
		}
	}

	return node
}

// setProp stores a prop. The key prop goes to VNode.Key and children props
// are ignored in favor of explicit children.
func (v *VNode) setProp(key string, value any) {
	switch key {
	case "":
		return
	case "key":
		if value != nil {
			v.Key = fmt.Sprint(value)
		}
	case "children":
		return
	default:
		v.Props[key] = value
	}
}

// appendChildren appends child values to dst. Strings become text nodes and
// nested slices are flattened.
func appendChildren(dst []*VNode, child any) []*VNode {
	switch v := child.(type) {
	case nil:
	case *VNode:
		if v != nil {
			dst = append(dst, v)
		}
	case []*VNode:
		for _, c := range v {
			if c != nil {
				dst = append(dst, c)
			}
		}
	case []any:
		for _, c := range v {
			dst = appendChildren(dst, c)
		}
	case string:
		dst = append(dst, Text(v))
	}
	return dst
}

// El creates an element with an arbitrary tag.
func El(tag string, args ...any) *VNode { return createElement(tag, args) }

func Div(args ...any) *VNode    { return createElement("div", args) }
func Span(args ...any) *VNode   { return createElement("span", args) }
func P(args ...any) *VNode      { return createElement("p", args) }
func A(args ...any) *VNode      { return createElement("a", args) }
func Ul(args ...any) *VNode     { return createElement("ul", args) }
func Li(args ...any) *VNode     { return createElement("li", args) }
func Img(args ...any) *VNode    { return createElement("img", args) }
func Br(args ...any) *VNode     { return createElement("br", args) }
func Script(args ...any) *VNode { return createElement("script", args) }
