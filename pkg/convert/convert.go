// Package convert turns a dom.Node tree into framework elements.
//
// Conversion walks the tree depth-first. Each node is first offered to the
// Replace hook; a valid replacement is emitted verbatim and the node's subtree
// is skipped. Otherwise the node is classified (see Classify), its attributes
// are translated into props by package attrs, and the configured Library
// materializes the element. Comments and doctypes are dropped. Siblings in a
// group of more than one node get their index as key.
//
// The converter holds no shared state; concurrent calls are safe as long as
// the Library and Replace hook are.
package convert

import (
	"strconv"
	"strings"

	"github.com/vango-dev/htmlconv/internal/errors"
	"github.com/vango-dev/htmlconv/pkg/attrs"
	"github.com/vango-dev/htmlconv/pkg/dom"
	"github.com/vango-dev/htmlconv/pkg/vdom"
)

// Sentinel errors. Match them with errors.Is.
var (
	// ErrInvalidInput reports a node tree the converter cannot walk.
	ErrInvalidInput = errors.New("H001")

	// ErrTooDeep reports a tree exceeding Options.MaxDepth.
	ErrTooDeep = errors.New("H002")
)

// Options configure a conversion. The zero value converts with vdom.Library.
type Options struct {
	// Replace is offered every node before it is converted.
	Replace ReplaceFunc

	// Library materializes elements. Defaults to vdom.Library.
	Library Library

	// Trim drops whitespace-only text nodes.
	Trim bool

	// MaxDepth limits the number of tree levels; 0 means unlimited.
	MaxDepth int
}

type converter struct {
	opts  Options
	lib   Library
	prefs attrs.Preferences
}

func newConverter(opts Options) *converter {
	lib := opts.Library
	if lib == nil {
		lib = vdom.Library{}
	}
	return &converter{opts: opts, lib: lib, prefs: preferences(lib)}
}

// Nodes converts a sibling group of top-level nodes.
func Nodes(nodes []*dom.Node, opts Options) ([]Element, error) {
	c := newConverter(opts)
	return c.convert(nodes, nil, 0, attrs.HTML)
}

// Fragment converts nodes and wraps the result with Library.CreateFragment.
func Fragment(nodes []*dom.Node, opts Options) (Element, error) {
	c := newConverter(opts)
	els, err := c.convert(nodes, nil, 0, attrs.HTML)
	if err != nil {
		return nil, err
	}
	return c.lib.CreateFragment(els...), nil
}

// convert converts one sibling group whose parent's children live in ns.
func (c *converter) convert(nodes []*dom.Node, parent *dom.Node, depth int, ns attrs.Namespace) ([]Element, error) {
	if len(nodes) == 0 {
		return []Element{}, nil
	}
	if c.opts.MaxDepth > 0 && depth >= c.opts.MaxDepth {
		return nil, errors.New("H002").WithDetailf("tree has more than %d levels", c.opts.MaxDepth)
	}

	keyed := len(nodes) > 1
	out := make([]Element, 0, len(nodes))

	for i, node := range nodes {
		if node == nil {
			return nil, errors.New("H001").WithDetailf("nil node at index %d", i)
		}

		if el, ok := c.replace(Visit{Node: node, Parent: parent, Index: i, Depth: depth}); ok {
			out = append(out, el)
			continue
		}

		switch class := Classify(node, ns); class {
		case ClassComment, ClassDoctype:
			continue

		case ClassText:
			if c.dropText(node.Data) {
				continue
			}
			out = append(out, node.Data)

		case ClassRawText:
			props, order := attrs.OrderedProps(node.Name, node.Attrs, elementNamespace(node.Name, ns), c.prefs)
			setRawContent(props, node)
			if keyed {
				props["key"] = strconv.Itoa(i)
			}
			out = append(out, createElement(c.lib, node.Name, props, order))

		case ClassForeign, ClassOrdinary:
			elemNS := elementNamespace(node.Name, ns)
			props, order := attrs.OrderedProps(node.Name, node.Attrs, elemNS, c.prefs)
			children, err := c.convert(node.Children, node, depth+1, childNamespace(node.Name, elemNS))
			if err != nil {
				return nil, err
			}
			if keyed {
				props["key"] = strconv.Itoa(i)
			}
			out = append(out, createElement(c.lib, node.Name, props, order, children...))

		default:
			return nil, errors.New("H001").WithDetailf("node %d has unknown type %s", i, node.Type)
		}
	}
	return out, nil
}

// dropText reports whether a text node is left out of the result. Only
// whitespace-only text is dropped, and only with Trim.
func (c *converter) dropText(data string) bool {
	return c.opts.Trim && strings.TrimSpace(data) == ""
}

// setRawContent stores a raw text element's content in props. Content is
// passed through unchanged and nothing is set for an empty element.
func setRawContent(props map[string]any, node *dom.Node) {
	text := node.TextContent()
	if text == "" {
		return
	}
	if strings.EqualFold(node.Name, "textarea") {
		props["defaultValue"] = text
		return
	}
	props["dangerouslySetInnerHTML"] = map[string]any{"__html": text}
}
