package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/htmlconv/pkg/dom"
)

func attr(key, val string) dom.Attribute { return dom.Attribute{Key: key, Val: val} }

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  []*dom.Node
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "text only",
			input: "foo",
			want:  []*dom.Node{dom.Text("foo")},
		},
		{
			name:  "element with attributes",
			input: `<p id="x" class="a b">hi</p>`,
			want: []*dom.Node{
				dom.Element("p", []dom.Attribute{attr("id", "x"), attr("class", "a b")}, dom.Text("hi")),
			},
		},
		{
			name:  "siblings",
			input: "<p>a</p><p>b</p>",
			want: []*dom.Node{
				dom.Element("p", nil, dom.Text("a")),
				dom.Element("p", nil, dom.Text("b")),
			},
		},
		{
			name:  "entities are decoded",
			input: "asdf &amp; &yuml; &uuml; &apos;",
			want:  []*dom.Node{dom.Text("asdf & ÿ ü '")},
		},
		{
			name:  "attribute entities are decoded",
			input: `<a title="a &amp; b"></a>`,
			want:  []*dom.Node{dom.Element("a", []dom.Attribute{attr("title", "a & b")})},
		},
		{
			name:  "void element takes no children",
			input: "<p>a<br>b</p>",
			want: []*dom.Node{
				dom.Element("p", nil, dom.Text("a"), dom.Element("br", nil), dom.Text("b")),
			},
		},
		{
			name:  "li closes li",
			input: "<ul><li>a<li>b</ul>",
			want: []*dom.Node{
				dom.Element("ul", nil,
					dom.Element("li", nil, dom.Text("a")),
					dom.Element("li", nil, dom.Text("b")),
				),
			},
		},
		{
			name:  "self-closing html is a start tag",
			input: "<ul><li/><li/></ul>",
			want: []*dom.Node{
				dom.Element("ul", nil, dom.Element("li", nil), dom.Element("li", nil)),
			},
		},
		{
			name:  "div closes p",
			input: "<p>a<div>b</div>",
			want: []*dom.Node{
				dom.Element("p", nil, dom.Text("a")),
				dom.Element("div", nil, dom.Text("b")),
			},
		},
		{
			name:  "svg self-closing and tag case",
			input: `<svg viewBox="0 0 1 1"><clipPath id="c"/><rect/></svg>`,
			want: []*dom.Node{
				dom.Element("svg", []dom.Attribute{attr("viewbox", "0 0 1 1")},
					dom.Element("clipPath", []dom.Attribute{attr("id", "c")}),
					dom.Element("rect", nil),
				),
			},
		},
		{
			name:  "foreignObject content is html",
			input: `<svg><foreignObject><p/>x</foreignObject></svg>`,
			want: []*dom.Node{
				dom.Element("svg", nil,
					dom.Element("foreignObject", nil, dom.Element("p", nil, dom.Text("x"))),
				),
			},
		},
		{
			name:  "comment and doctype",
			input: "<!DOCTYPE html><!-- note --><b>x</b>",
			want: []*dom.Node{
				dom.Doctype("html"),
				dom.Comment(" note "),
				dom.Element("b", nil, dom.Text("x")),
			},
		},
		{
			name:  "script content is raw",
			input: "<script>if (a < b && c) {}</script>",
			want: []*dom.Node{
				dom.Element("script", nil, dom.Text("if (a < b && c) {}")),
			},
		},
		{
			name:  "style content is raw",
			input: "<style>a > b { color: red }</style>",
			want: []*dom.Node{
				dom.Element("style", nil, dom.Text("a > b { color: red }")),
			},
		},
		{
			name:  "textarea content is decoded text",
			input: "<textarea>a &amp; <b></textarea>",
			want: []*dom.Node{
				dom.Element("textarea", nil, dom.Text("a & <b>")),
			},
		},
		{
			name:  "stray end tag is ignored",
			input: "<b>x</i></b>",
			want:  []*dom.Node{dom.Element("b", nil, dom.Text("x"))},
		},
		{
			name:  "unclosed elements are kept",
			input: "<div><span>x",
			want: []*dom.Node{
				dom.Element("div", nil, dom.Element("span", nil, dom.Text("x"))),
			},
		},
		{
			name:  "duplicate attributes keep the first",
			input: `<a href="1" href="2"></a>`,
			want:  []*dom.Node{dom.Element("a", []dom.Attribute{attr("href", "1")})},
		},
		{
			name:  "xml mode honors self-closing",
			input: "<p/><p>x</p>",
			opts:  Options{XMLMode: true},
			want: []*dom.Node{
				dom.Element("p", nil),
				dom.Element("p", nil, dom.Text("x")),
			},
		},
		{
			name:  "xml mode implies no end tags",
			input: "<li>a<li>b</li></li>",
			opts:  Options{XMLMode: true},
			want: []*dom.Node{
				dom.Element("li", nil, dom.Text("a"), dom.Element("li", nil, dom.Text("b"))),
			},
		},
		{
			name:  "head and body fragments keep their shape",
			input: "<head><title>t</title></head><body>b</body>",
			want: []*dom.Node{
				dom.Element("head", nil, dom.Element("title", nil, dom.Text("t"))),
				dom.Element("body", nil, dom.Text("b")),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.opts)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseTableRows(t *testing.T) {
	got, err := Parse("<table><tr><td>1<td>2<tr><td>3</table>", Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []*dom.Node{
		dom.Element("table", nil,
			dom.Element("tr", nil,
				dom.Element("td", nil, dom.Text("1")),
				dom.Element("td", nil, dom.Text("2")),
			),
			dom.Element("tr", nil,
				dom.Element("td", nil, dom.Text("3")),
			),
		),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
