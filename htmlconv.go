// Package htmlconv converts HTML and SVG markup into framework elements.
//
// Parse accepts a markup string (or an already-parsed dom.Node tree) and
// returns what a React-style createElement API would build for it:
//
//	el, err := htmlconv.Parse(`<p class="lead">Hello &amp; welcome</p>`)
//	// el is a *vdom.VNode{Tag: "p", Props: {"className": "lead"}, ...}
//
// The result is a single element when the input has one top-level node and a
// []convert.Element otherwise. Text converts to plain strings, so
// Parse("foo") returns "foo". Markup that yields no nodes at all is returned
// unchanged.
//
// Options select the element library (vdom.Library by default, jsx.Library
// for React-shaped JSON), a Replace hook, whitespace trimming and parser
// behavior.
package htmlconv

import (
	"github.com/vango-dev/htmlconv/internal/errors"
	"github.com/vango-dev/htmlconv/pkg/convert"
	"github.com/vango-dev/htmlconv/pkg/dom"
	"github.com/vango-dev/htmlconv/pkg/parser"
)

// Sentinel errors. Match them with errors.Is.
var (
	// ErrInvalidInput is returned for inputs that are neither markup nor a
	// node tree.
	ErrInvalidInput = convert.ErrInvalidInput

	// ErrTooDeep is returned when the tree exceeds WithMaxDepth.
	ErrTooDeep = convert.ErrTooDeep
)

// Option configures Parse and ParseFragment.
type Option func(*options)

type options struct {
	convert convert.Options
	parser  parser.Options
}

// WithReplace sets the hook offered every node before conversion.
func WithReplace(fn convert.ReplaceFunc) Option {
	return func(o *options) {
		o.convert.Replace = fn
	}
}

// WithLibrary selects the element library. Defaults to vdom.Library.
func WithLibrary(lib convert.Library) Option {
	return func(o *options) {
		o.convert.Library = lib
	}
}

// WithTrim drops whitespace-only text nodes.
func WithTrim(trim bool) Option {
	return func(o *options) {
		o.convert.Trim = trim
	}
}

// WithMaxDepth limits the number of tree levels. 0 means unlimited.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.convert.MaxDepth = n
	}
}

// WithXMLMode parses markup as XML: self-closing tags close themselves and
// no end tags are implied.
func WithXMLMode(xml bool) Option {
	return func(o *options) {
		o.parser.XMLMode = xml
	}
}

// WithParserOptions replaces all parser options.
func WithParserOptions(opts parser.Options) Option {
	return func(o *options) {
		o.parser = opts
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Parse converts markup or a node tree into elements.
//
// input may be a string, a []byte, a *dom.Node or a []*dom.Node. Any other
// value fails with ErrInvalidInput before parsing. An empty string yields an
// empty []convert.Element.
func Parse(input any, opts ...Option) (any, error) {
	o := buildOptions(opts)

	nodes, fallback, err := toNodes(input, o.parser)
	if err != nil {
		return nil, err
	}
	if nodes == nil {
		return fallback, nil
	}

	els, err := convert.Nodes(nodes, o.convert)
	if err != nil {
		return nil, err
	}
	if len(els) == 1 {
		return els[0], nil
	}
	return els, nil
}

// ParseFragment is like Parse but always returns one element: several
// top-level elements are wrapped with the library's fragment.
func ParseFragment(input any, opts ...Option) (any, error) {
	o := buildOptions(opts)

	nodes, fallback, err := toNodes(input, o.parser)
	if err != nil {
		return nil, err
	}
	if nodes == nil {
		if s, ok := fallback.(string); ok {
			return s, nil
		}
		nodes = []*dom.Node{}
	}
	return convert.Fragment(nodes, o.convert)
}

// toNodes resolves input to a node list. When there is nothing to convert
// nodes is nil and fallback holds the result to return instead.
func toNodes(input any, popts parser.Options) (nodes []*dom.Node, fallback any, err error) {
	var markup string

	switch v := input.(type) {
	case string:
		markup = v
	case []byte:
		markup = string(v)
	case *dom.Node:
		if v == nil {
			return nil, nil, errors.New("H001").WithDetail("nil *dom.Node")
		}
		return []*dom.Node{v}, nil, nil
	case []*dom.Node:
		if v == nil {
			return []*dom.Node{}, nil, nil
		}
		return v, nil, nil
	default:
		return nil, nil, errors.New("H001").
			WithDetailf("unsupported input type %T", input).
			WithSuggestion("Pass markup as a string or a parsed []*dom.Node")
	}

	if markup == "" {
		return nil, []convert.Element{}, nil
	}

	nodes, err = parser.Parse(markup, popts)
	if err != nil {
		return nil, nil, errors.New("H003").Wrap(err)
	}
	if len(nodes) == 0 {
		return nil, markup, nil
	}
	return nodes, nil, nil
}
