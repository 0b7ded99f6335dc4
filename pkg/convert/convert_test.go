package convert

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/htmlconv/pkg/attrs"
	"github.com/vango-dev/htmlconv/pkg/dom"
	"github.com/vango-dev/htmlconv/pkg/jsx"
	"github.com/vango-dev/htmlconv/pkg/parser"
	"github.com/vango-dev/htmlconv/pkg/vdom"
)

func parse(t *testing.T, markup string) []*dom.Node {
	t.Helper()
	nodes, err := parser.Parse(markup, parser.Options{})
	if err != nil {
		t.Fatalf("parser.Parse(%q) error = %v", markup, err)
	}
	return nodes
}

func convertOne(t *testing.T, markup string, opts Options) *vdom.VNode {
	t.Helper()
	els, err := Nodes(parse(t, markup), opts)
	if err != nil {
		t.Fatalf("Nodes() error = %v", err)
	}
	if len(els) != 1 {
		t.Fatalf("Nodes() returned %d elements, want 1", len(els))
	}
	node, ok := els[0].(*vdom.VNode)
	if !ok {
		t.Fatalf("element is %T, want *vdom.VNode", els[0])
	}
	return node
}

func TestNodesElement(t *testing.T) {
	node := convertOne(t, `<label class="a" for="x">hi &amp; bye</label>`, Options{})

	if node.Tag != "label" || node.Key != "" {
		t.Errorf("Tag/Key = %q/%q, want label/empty", node.Tag, node.Key)
	}
	want := vdom.Props{"className": "a", "htmlFor": "x"}
	if diff := cmp.Diff(want, node.Props); diff != "" {
		t.Errorf("Props mismatch (-want +got):\n%s", diff)
	}
	if len(node.Children) != 1 || node.Children[0].Text != "hi & bye" {
		t.Errorf("Children = %+v", node.Children)
	}
}

func TestNodesSiblingKeys(t *testing.T) {
	els, err := Nodes(parse(t, "<p>a</p><p>b</p>text"), Options{})
	if err != nil {
		t.Fatalf("Nodes() error = %v", err)
	}
	if len(els) != 3 {
		t.Fatalf("len = %d, want 3", len(els))
	}
	for i, want := range []string{"0", "1"} {
		if got := els[i].(*vdom.VNode).Key; got != want {
			t.Errorf("els[%d].Key = %q, want %q", i, got, want)
		}
	}
	if els[2] != "text" {
		t.Errorf("els[2] = %#v, want plain string", els[2])
	}

	single := convertOne(t, "<ul><li>only</li></ul>", Options{})
	if single.Children[0].Key != "" {
		t.Errorf("single child key = %q, want empty", single.Children[0].Key)
	}
}

func TestNodesDropsCommentsAndDoctype(t *testing.T) {
	els, err := Nodes(parse(t, "<!DOCTYPE html><!-- top --><p>a<!-- inner --></p>"), Options{})
	if err != nil {
		t.Fatalf("Nodes() error = %v", err)
	}
	if len(els) != 1 {
		t.Fatalf("len = %d, want 1", len(els))
	}
	p := els[0].(*vdom.VNode)
	if len(p.Children) != 1 || p.Children[0].Text != "a" {
		t.Errorf("Children = %+v", p.Children)
	}
	// The doctype and comment still count as siblings for key assignment.
	if p.Key != "2" {
		t.Errorf("Key = %q, want 2", p.Key)
	}
}

func TestNodesRawText(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   vdom.Props
	}{
		{
			name:   "script content is passed through",
			markup: "<script>if (a &amp;&amp; b < c) {}</script>",
			want:   vdom.Props{"dangerouslySetInnerHTML": map[string]any{"__html": "if (a &amp;&amp; b < c) {}"}},
		},
		{
			name:   "style keeps whitespace",
			markup: "<style>\n  a { color: red }\n</style>",
			want:   vdom.Props{"dangerouslySetInnerHTML": map[string]any{"__html": "\n  a { color: red }\n"}},
		},
		{
			name:   "empty script has no inner html",
			markup: "<script></script>",
			want:   vdom.Props{},
		},
		{
			name:   "textarea content is the default value",
			markup: `<textarea name="t">a &amp; b</textarea>`,
			want:   vdom.Props{"name": "t", "defaultValue": "a & b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := convertOne(t, tt.markup, Options{Trim: true})
			if diff := cmp.Diff(tt.want, node.Props); diff != "" {
				t.Errorf("Props mismatch (-want +got):\n%s", diff)
			}
			if len(node.Children) != 0 {
				t.Errorf("raw text element has %d children", len(node.Children))
			}
		})
	}
}

func TestNodesForeign(t *testing.T) {
	node := convertOne(t, `<svg viewBox="0 0 10 10" class="icon"><path stroke-width="2" xlink:href="#a"/><foreignObject><div class="x" tabindex="1"></div></foreignObject></svg>`, Options{})

	if diff := cmp.Diff(vdom.Props{"viewBox": "0 0 10 10", "className": "icon"}, node.Props); diff != "" {
		t.Errorf("svg Props mismatch (-want +got):\n%s", diff)
	}
	path := node.Children[0]
	if diff := cmp.Diff(vdom.Props{"strokeWidth": "2", "xlinkHref": "#a"}, path.Props); diff != "" {
		t.Errorf("path Props mismatch (-want +got):\n%s", diff)
	}
	fo := node.Children[1]
	if fo.Tag != "foreignObject" {
		t.Fatalf("Tag = %q, want foreignObject", fo.Tag)
	}
	if diff := cmp.Diff(vdom.Props{"className": "x", "tabIndex": "1"}, fo.Children[0].Props); diff != "" {
		t.Errorf("div Props mismatch (-want +got):\n%s", diff)
	}
}

func TestNodesTrim(t *testing.T) {
	markup := "<ul>\n  <li>a</li>\n</ul>"

	kept := convertOne(t, markup, Options{})
	if len(kept.Children) != 3 {
		t.Fatalf("without trim: %d children, want 3", len(kept.Children))
	}
	if kept.Children[0].Text != "\n  " || kept.Children[2].Text != "\n" {
		t.Errorf("whitespace not preserved: %q %q", kept.Children[0].Text, kept.Children[2].Text)
	}

	trimmed := convertOne(t, markup, Options{Trim: true})
	if len(trimmed.Children) != 1 || trimmed.Children[0].Tag != "li" {
		t.Errorf("with trim: children = %+v", trimmed.Children)
	}

	text := convertOne(t, "<p> a </p>", Options{Trim: true})
	if text.Children[0].Text != " a " {
		t.Errorf("trim changed non-blank text: %q", text.Children[0].Text)
	}
}

func TestNodesTableWhitespace(t *testing.T) {
	markup := "<table>\n<tr><td> </td></tr>\n</table>"

	table := convertOne(t, markup, Options{})
	if len(table.Children) != 3 || table.Children[1].Tag != "tr" {
		t.Fatalf("table children = %+v", table.Children)
	}
	if table.Children[0].Text != "\n" || table.Children[2].Text != "\n" {
		t.Errorf("table whitespace not preserved: %q %q", table.Children[0].Text, table.Children[2].Text)
	}
	td := table.Children[1].Children[0]
	if len(td.Children) != 1 || td.Children[0].Text != " " {
		t.Errorf("td children = %+v", td.Children)
	}

	trimmed := convertOne(t, markup, Options{Trim: true})
	if len(trimmed.Children) != 1 || trimmed.Children[0].Tag != "tr" {
		t.Errorf("with trim: table children = %+v", trimmed.Children)
	}
}

func TestNodesReplace(t *testing.T) {
	replacement := vdom.Span(vdom.ClassName("new"), "replaced")
	var visited []Visit

	opts := Options{
		Replace: func(v Visit) (Element, bool) {
			visited = append(visited, v)
			if v.Node.IsElement("li") && v.Index == 1 {
				return replacement, true
			}
			return nil, false
		},
	}
	ul := convertOne(t, "<ul><li>a</li><li>b</li></ul>", opts)

	if ul.Children[1] != replacement {
		t.Errorf("Children[1] = %+v, want the replacement verbatim", ul.Children[1])
	}
	if ul.Children[0].Key != "0" {
		t.Errorf("Children[0].Key = %q, want 0", ul.Children[0].Key)
	}

	// ul, li(a), text a, li(b). The replaced subtree is never visited.
	if len(visited) != 4 {
		t.Fatalf("visited %d nodes, want 4", len(visited))
	}
	last := visited[3]
	if last.Parent == nil || last.Parent.Name != "ul" || last.Depth != 1 || last.Index != 1 {
		t.Errorf("visit = %+v", last)
	}
	if visited[2].Node.Data != "a" || visited[2].Depth != 2 {
		t.Errorf("visit of text = %+v", visited[2])
	}
}

func TestNodesReplaceInvalidIsIgnored(t *testing.T) {
	markup := `<div><p class="x">a</p><p>b</p></div>`
	plain := convertOne(t, markup, Options{})

	invalid := []any{
		nil,
		"span",
		&vdom.VNode{Kind: vdom.KindElement},
		map[string]any{"Tag": "span"},
		jsx.Library{}.CreateElement("span", nil),
	}
	for _, value := range invalid {
		got := convertOne(t, markup, Options{
			Replace: func(v Visit) (Element, bool) {
				if v.Node.IsElement("p") {
					return value, true
				}
				return nil, false
			},
		})
		if diff := cmp.Diff(plain, got); diff != "" {
			t.Errorf("replace returning %#v changed output (-want +got):\n%s", value, diff)
		}
	}
}

func TestNodesReplaceDeclined(t *testing.T) {
	plain := convertOne(t, "<p>a</p>", Options{})
	got := convertOne(t, "<p>a</p>", Options{
		Replace: func(v Visit) (Element, bool) { return vdom.Div(), false },
	})
	if diff := cmp.Diff(plain, got); diff != "" {
		t.Errorf("declined replace changed output (-want +got):\n%s", diff)
	}
}

func TestNodesMaxDepth(t *testing.T) {
	nodes := parse(t, "<div><p>x</p></div>")

	_, err := Nodes(nodes, Options{MaxDepth: 2})
	if !stderrors.Is(err, ErrTooDeep) {
		t.Errorf("MaxDepth 2: err = %v, want ErrTooDeep", err)
	}
	if _, err := Nodes(nodes, Options{MaxDepth: 3}); err != nil {
		t.Errorf("MaxDepth 3: err = %v", err)
	}
	if _, err := Nodes(nodes, Options{}); err != nil {
		t.Errorf("unlimited: err = %v", err)
	}
}

func TestNodesInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		nodes []*dom.Node
	}{
		{"nil node", []*dom.Node{dom.Text("a"), nil}},
		{"nested nil node", []*dom.Node{dom.Element("div", nil, nil)}},
		{"unknown type", []*dom.Node{{Type: dom.NodeType(9)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Nodes(tt.nodes, Options{})
			if !stderrors.Is(err, ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestNodesEmpty(t *testing.T) {
	els, err := Nodes(nil, Options{})
	if err != nil {
		t.Fatalf("Nodes(nil) error = %v", err)
	}
	if els == nil || len(els) != 0 {
		t.Errorf("Nodes(nil) = %#v, want empty slice", els)
	}
}

func TestFragment(t *testing.T) {
	el, err := Fragment(parse(t, "<p>a</p><p>b</p>"), Options{})
	if err != nil {
		t.Fatalf("Fragment() error = %v", err)
	}
	frag := el.(*vdom.VNode)
	if frag.Kind != vdom.KindFragment || len(frag.Children) != 2 {
		t.Errorf("fragment = %+v", frag)
	}

	if _, err := Fragment([]*dom.Node{nil}, Options{}); !stderrors.Is(err, ErrInvalidInput) {
		t.Errorf("Fragment(nil node) err = %v", err)
	}
}

func TestFactoryPreferences(t *testing.T) {
	var got map[string]any
	lib := Factory{
		Create: func(typ string, props map[string]any, children ...any) any {
			got = props
			return typ
		},
		Prefs: attrs.Preferences{RawBooleans: true, CamelCase: true},
	}

	els, err := Nodes(parse(t, `<input disabled my-attr="1">`), Options{Library: lib})
	if err != nil {
		t.Fatalf("Nodes() error = %v", err)
	}
	if els[0] != "input" {
		t.Errorf("element = %#v, want factory result", els[0])
	}
	want := map[string]any{"disabled": "", "myAttr": "1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("props mismatch (-want +got):\n%s", diff)
	}

	frag := lib.CreateFragment("a", "b")
	if diff := cmp.Diff([]any{"a", "b"}, frag); diff != "" {
		t.Errorf("default fragment mismatch (-want +got):\n%s", diff)
	}
	if lib.IsValidElement(nil) || lib.IsValidElement("x") {
		t.Error("IsValidElement without Valid should reject every value")
	}
}

func TestFactoryReplaceLookAlike(t *testing.T) {
	type element struct{ typ string }

	create := func(typ string, props map[string]any, children ...any) any {
		return element{typ: typ}
	}
	lookAlike := map[string]any{"bogus": 1}
	replace := func(v Visit) (Element, bool) {
		return lookAlike, true
	}

	els, err := Nodes(parse(t, "<p>x</p>"), Options{Library: Factory{Create: create}, Replace: replace})
	if err != nil {
		t.Fatalf("Nodes() error = %v", err)
	}
	if diff := cmp.Diff([]Element{element{typ: "p"}}, els, cmp.AllowUnexported(element{})); diff != "" {
		t.Errorf("look-alike was spliced in (-want +got):\n%s", diff)
	}

	valid := Factory{
		Create: create,
		Valid: func(v any) bool {
			_, ok := v.(element)
			return ok
		},
	}
	replacement := element{typ: "span"}
	els, err = Nodes(parse(t, "<p>x</p>"), Options{
		Library: valid,
		Replace: func(v Visit) (Element, bool) { return replacement, true },
	})
	if err != nil {
		t.Fatalf("Nodes() error = %v", err)
	}
	if diff := cmp.Diff([]Element{replacement}, els, cmp.AllowUnexported(element{})); diff != "" {
		t.Errorf("replacement mismatch (-want +got):\n%s", diff)
	}

	els, err = Nodes(parse(t, "<p>x</p>"), Options{Library: valid, Replace: replace})
	if err != nil {
		t.Fatalf("Nodes() error = %v", err)
	}
	if diff := cmp.Diff([]Element{element{typ: "p"}}, els, cmp.AllowUnexported(element{})); diff != "" {
		t.Errorf("look-alike accepted by Valid (-want +got):\n%s", diff)
	}
}

// shape is a library-independent view of a converted element.
type shape struct {
	Type     string
	Key      string
	Props    map[string]any
	Children []any
}

func vdomShape(v any) any {
	switch n := v.(type) {
	case string:
		return n
	case *vdom.VNode:
		if n.Kind == vdom.KindText {
			return n.Text
		}
		s := shape{Type: n.Tag, Key: n.Key, Props: map[string]any(n.Props), Children: make([]any, 0, len(n.Children))}
		for _, c := range n.Children {
			s.Children = append(s.Children, vdomShape(c))
		}
		return s
	}
	return v
}

func jsxShape(v any) any {
	switch n := v.(type) {
	case string:
		return n
	case *jsx.Element:
		s := shape{Type: n.Type, Props: make(map[string]any, len(n.Props)), Children: make([]any, 0)}
		if n.Key != nil {
			s.Key = *n.Key
		}
		for k, val := range n.Props {
			if k != "children" {
				s.Props[k] = val
			}
		}
		for _, c := range n.Children() {
			s.Children = append(s.Children, jsxShape(c))
		}
		return s
	}
	return v
}

func TestLibrarySwapKeepsShape(t *testing.T) {
	markup := `<div class="a" style="color:red; font-size: 2px"><p>x &amp; y</p><input disabled value="1">` +
		`<svg viewBox="0 0 1 1"><path stroke-width="2"/></svg><script>a&&b</script></div><!-- c --><span>z</span>`
	nodes := parse(t, markup)

	fromVDOM, err := Nodes(nodes, Options{})
	if err != nil {
		t.Fatalf("vdom: %v", err)
	}
	fromJSX, err := Nodes(nodes, Options{Library: jsx.Library{}})
	if err != nil {
		t.Fatalf("jsx: %v", err)
	}
	if len(fromVDOM) != len(fromJSX) {
		t.Fatalf("lengths differ: %d vs %d", len(fromVDOM), len(fromJSX))
	}
	for i := range fromVDOM {
		if diff := cmp.Diff(vdomShape(fromVDOM[i]), jsxShape(fromJSX[i])); diff != "" {
			t.Errorf("element %d differs between libraries (-vdom +jsx):\n%s", i, diff)
		}
	}
}
