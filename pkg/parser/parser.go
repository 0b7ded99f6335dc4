// Package parser turns markup text into a dom.Node tree.
//
// The parser drives the golang.org/x/net/html tokenizer and builds a tree that
// stays close to the source: it does not perform HTML5 tree reconstruction, so
// fragments such as <title>, <tr> or a full <html> document keep the shape
// they were written in. It still honors the rules a reader expects from HTML:
// void elements never take children, some start tags close the element before
// them (<li> closes an open <li>), and self-closing syntax is honored inside
// SVG and MathML.
//
// Entities are decoded in text and attribute values. The content of raw text
// elements (<script>, <style>, ...) is left as written.
package parser

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/htmlconv/pkg/dom"
)

// Options are passed through from the converter's callers.
type Options struct {
	// XMLMode treats the input as XML: every self-closing tag closes itself,
	// no end tags are implied and void elements need an explicit close.
	XMLMode bool
}

// namespace tracks which content model children of an open element use.
type namespace uint8

const (
	nsHTML namespace = iota
	nsSVG
	nsMathML
)

// frame is an open element on the builder stack.
type frame struct {
	node *dom.Node
	ns   namespace // namespace of the element's children
}

// builder assembles the node tree from tokens.
type builder struct {
	opts  Options
	roots []*dom.Node
	stack []frame
}

// Parse parses markup into its top-level nodes.
func Parse(markup string, opts Options) ([]*dom.Node, error) {
	return ParseReader(strings.NewReader(markup), opts)
}

// ParseReader parses markup read from r into its top-level nodes.
func ParseReader(r io.Reader, opts Options) ([]*dom.Node, error) {
	z := html.NewTokenizer(r)
	b := &builder{opts: opts}

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return b.roots, nil
		case html.TextToken:
			b.text(string(z.Text()))
		case html.StartTagToken:
			b.start(z.Token(), false)
		case html.SelfClosingTagToken:
			b.start(z.Token(), true)
		case html.EndTagToken:
			name, _ := z.TagName()
			b.end(string(name))
		case html.CommentToken:
			b.append(dom.Comment(string(z.Text())))
		case html.DoctypeToken:
			b.append(dom.Doctype(string(z.Text())))
		}
	}
}

// current returns the innermost open frame, or nil at the top level.
func (b *builder) current() *frame {
	if len(b.stack) == 0 {
		return nil
	}
	return &b.stack[len(b.stack)-1]
}

// append adds n as the last child of the current element.
func (b *builder) append(n *dom.Node) {
	if cur := b.current(); cur != nil {
		cur.node.Children = append(cur.node.Children, n)
		return
	}
	b.roots = append(b.roots, n)
}

// text appends character data, merging with a preceding text sibling.
func (b *builder) text(data string) {
	if data == "" {
		return
	}
	siblings := b.roots
	if cur := b.current(); cur != nil {
		siblings = cur.node.Children
	}
	if n := len(siblings); n > 0 && siblings[n-1].Type == dom.TextNode {
		siblings[n-1].Data += data
		return
	}
	b.append(dom.Text(data))
}

func (b *builder) start(tok html.Token, selfClosing bool) {
	name := tok.Data
	ns := nsHTML
	if cur := b.current(); cur != nil {
		ns = cur.ns
	}

	switch {
	case ns == nsHTML && name == "svg":
		ns = nsSVG
	case ns == nsHTML && name == "math":
		ns = nsMathML
	}
	if ns == nsSVG {
		name = adjustSVGTagName(name)
	}

	if ns == nsHTML && !b.opts.XMLMode {
		b.closeImplied(name)
	}

	node := dom.Element(name, attributes(tok.Attr))
	b.append(node)

	switch {
	case b.opts.XMLMode || ns != nsHTML:
		if selfClosing {
			return
		}
	case dom.IsVoidElement(name):
		return
	}

	childNS := ns
	if ns == nsSVG && name == "foreignObject" {
		childNS = nsHTML
	}
	if ns == nsMathML && name == "annotation-xml" {
		childNS = nsHTML
	}
	b.stack = append(b.stack, frame{node: node, ns: childNS})
}

// end closes the innermost open element with the given name. End tags with no
// matching open element are ignored.
func (b *builder) end(name string) {
	for i := len(b.stack) - 1; i >= 0; i-- {
		if strings.EqualFold(b.stack[i].node.Name, name) {
			b.stack = b.stack[:i]
			return
		}
	}
}

// closeImplied pops open elements that the start tag name implicitly closes.
func (b *builder) closeImplied(name string) {
	closes, ok := impliedClose[name]
	if !ok {
		return
	}
	for len(b.stack) > 0 && closes[b.stack[len(b.stack)-1].node.Name] {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

// attributes converts tokenizer attributes, keeping the first of duplicates.
func attributes(in []html.Attribute) []dom.Attribute {
	if len(in) == 0 {
		return nil
	}
	out := make([]dom.Attribute, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, a := range in {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, dom.Attribute{Key: key, Val: a.Val})
	}
	return out
}
