package render

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/htmlconv/pkg/attrs"
	"github.com/vango-dev/htmlconv/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Pretty output adds whitespace text and does not round-trip.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes VNode trees to HTML. It holds no per-render state and
// is safe for concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0, attrs.HTML)
}

// renderNode dispatches rendering based on node kind. ns is the namespace of
// the node's parent content.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int, ns attrs.Namespace) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth, ns)
	case vdom.KindText:
		return writeString(w, escapeHTML(node.Text))
	case vdom.KindFragment:
		return r.renderChildren(w, node.Children, depth, ns)
	case vdom.KindRaw:
		return writeString(w, node.Text)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int, ns attrs.Namespace) error {
	tag := node.Tag
	elemNS := elementNamespace(tag, ns)

	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if err := writeString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node, elemNS); err != nil {
		return err
	}
	if err := writeString(w, ">"); err != nil {
		return err
	}

	if elemNS == attrs.HTML && isVoidElement(tag) {
		return r.writeNewline(w)
	}

	if inner, ok := innerHTML(node.Props["dangerouslySetInnerHTML"]); ok {
		if err := writeString(w, inner); err != nil {
			return err
		}
	} else if value, ok := node.Props["defaultValue"]; ok && tag == "textarea" {
		if err := writeString(w, escapeHTML(attrToString(value))); err != nil {
			return err
		}
	} else {
		hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
		if r.config.Pretty && hasBlockChildren {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}

		childNS := elemNS
		if elemNS == attrs.SVG && tag == "foreignObject" {
			childNS = attrs.HTML
		}
		if err := r.renderChildren(w, node.Children, depth+1, childNS); err != nil {
			return err
		}

		if r.config.Pretty && hasBlockChildren {
			if err := r.writeIndent(w, depth); err != nil {
				return err
			}
		}
	}

	if err := writeString(w, "</"+tag+">"); err != nil {
		return err
	}
	return r.writeNewline(w)
}

func (r *Renderer) renderChildren(w io.Writer, children []*vdom.VNode, depth int, ns attrs.Namespace) error {
	for _, child := range children {
		if err := r.renderNode(w, child, depth, ns); err != nil {
			return err
		}
	}
	return nil
}

// attribute is one rendered name/value pair.
type attribute struct {
	name  string
	value string
	bare  bool
}

// renderAttributes renders all props of an element as attributes. Props in
// node.PropOrder come first in that order; the rest are sorted by attribute
// name.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode, ns attrs.Namespace) error {
	if len(node.Props) == 0 {
		return nil
	}

	custom := ns == attrs.HTML && isCustomElement(node)
	list := make([]attribute, 0, len(node.Props))

	ordered := make(map[string]bool, len(node.PropOrder))
	for _, prop := range node.PropOrder {
		value, ok := node.Props[prop]
		if !ok || ordered[prop] {
			continue
		}
		ordered[prop] = true
		if a, ok := toAttribute(node.Tag, prop, value, ns, custom); ok {
			list = append(list, a)
		}
	}

	rest := make([]attribute, 0, len(node.Props)-len(ordered))
	for prop, value := range node.Props {
		if ordered[prop] {
			continue
		}
		if a, ok := toAttribute(node.Tag, prop, value, ns, custom); ok {
			rest = append(rest, a)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].name < rest[j].name })
	list = append(list, rest...)

	for _, a := range list {
		var s string
		if a.bare {
			s = " " + a.name
		} else {
			s = fmt.Sprintf(` %s="%s"`, a.name, escapeAttr(a.value))
		}
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	return nil
}

// toAttribute converts a prop to the attribute it renders as. The second
// result is false for props that are not rendered.
func toAttribute(tag, prop string, value any, ns attrs.Namespace, custom bool) (attribute, bool) {
	if prop == "" || skippedProps[prop] || value == nil || isFunc(value) {
		return attribute{}, false
	}
	if custom {
		return attribute{name: prop, value: attrToString(value)}, true
	}
	if prop == "defaultValue" && tag == "textarea" {
		return attribute{}, false
	}

	name, ok := formAttrs[prop]
	if !ok {
		name = attrs.AttributeName(prop, ns)
	}

	if prop == "style" {
		css, ok := attrs.FormatStyle(value)
		if !ok || css == "" {
			return attribute{}, false
		}
		return attribute{name: name, value: css}, true
	}

	if b, ok := value.(bool); ok && (attrs.IsBooleanProp(prop) || formAttrs[prop] != "") {
		if !b {
			return attribute{}, false
		}
		return attribute{name: name, bare: true}, true
	}

	return attribute{name: name, value: attrToString(value)}, true
}

// isCustomElement reports whether the element's props are rendered verbatim.
func isCustomElement(node *vdom.VNode) bool {
	if strings.Contains(node.Tag, "-") {
		return true
	}
	_, ok := node.Props["is"]
	return ok
}

// elementNamespace returns the namespace of an element given its parent's.
func elementNamespace(tag string, ns attrs.Namespace) attrs.Namespace {
	if ns != attrs.HTML {
		return ns
	}
	switch tag {
	case "svg":
		return attrs.SVG
	case "math":
		return attrs.MathML
	}
	return attrs.HTML
}

// innerHTML extracts dangerouslySetInnerHTML content. Both a plain string and
// the {"__html": string} form are accepted.
func innerHTML(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case map[string]any:
		s, ok := v["__html"].(string)
		return s, ok
	case map[string]string:
		s, ok := v["__html"]
		return s, ok
	}
	return "", false
}

// isFunc reports whether the value is a function, such as an event handler.
func isFunc(value any) bool {
	return reflect.ValueOf(value).Kind() == reflect.Func
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	return writeString(w, strings.Repeat(r.config.Indent, depth))
}

// writeNewline ends an element in pretty mode.
func (r *Renderer) writeNewline(w io.Writer) error {
	if !r.config.Pretty {
		return nil
	}
	return writeString(w, "\n")
}
