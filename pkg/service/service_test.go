package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/htmlconv"
	herrors "github.com/vango-dev/htmlconv/internal/errors"
	"github.com/vango-dev/htmlconv/pkg/vdom"
)

// embeddedTracer renames the embedded field so it does not clash with the
// Tracer method.
type embeddedTracer = embedded.Tracer

type spanRecorder struct {
	embedded.TracerProvider
	embeddedTracer

	mu    sync.Mutex
	spans []*statusSpan
}

func (r *spanRecorder) Tracer(string, ...trace.TracerOption) trace.Tracer { return r }

func (r *spanRecorder) Start(ctx context.Context, name string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
	s := &statusSpan{name: name}
	r.mu.Lock()
	r.spans = append(r.spans, s)
	r.mu.Unlock()
	return trace.ContextWithSpan(ctx, s), s
}

type statusSpan struct {
	noop.Span
	name   string
	status codes.Code
	errs   int
}

func (s *statusSpan) SetStatus(code codes.Code, _ string)     { s.status = code }
func (s *statusSpan) RecordError(error, ...trace.EventOption) { s.errs++ }

func newTestConverter(t *testing.T, opts Options) (*Converter, *spanRecorder, *bytes.Buffer) {
	t.Helper()
	rec := &spanRecorder{}
	var logs bytes.Buffer
	opts.Registry = prometheus.NewRegistry()
	opts.TracerProvider = rec
	opts.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(opts), rec, &logs
}

func TestConvertHTML(t *testing.T) {
	c, rec, logs := newTestConverter(t, Options{})

	resp, err := c.Convert(context.Background(), Request{
		Markup: `<div class="a"><p>x</p><!-- c --><br></div>`,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if resp.Format != FormatHTML {
		t.Errorf("Format = %q", resp.Format)
	}
	if want := `<div class="a"><p>x</p><br></div>`; resp.HTML != want {
		t.Errorf("HTML = %q, want %q", resp.HTML, want)
	}
	if resp.Count != 3 {
		t.Errorf("Count = %d, want 3", resp.Count)
	}

	if got := testutil.ToFloat64(c.conversions.WithLabelValues(FormatHTML, "ok")); got != 1 {
		t.Errorf("conversions_total{html,ok} = %v", got)
	}
	if got := testutil.ToFloat64(c.elements); got != 3 {
		t.Errorf("elements_total = %v", got)
	}
	if len(rec.spans) != 1 || rec.spans[0].name != "htmlconv.Convert" || rec.spans[0].status != codes.Ok {
		t.Errorf("spans = %+v", rec.spans)
	}
	if !strings.Contains(logs.String(), "converted markup") {
		t.Errorf("missing debug log, got %q", logs.String())
	}
}

func TestConvertHTMLSiblingsAndText(t *testing.T) {
	c, _, _ := newTestConverter(t, Options{})

	tests := []struct {
		markup string
		want   string
	}{
		{"<p>a</p><p>b</p>", "<p>a</p><p>b</p>"},
		{"plain &amp; text", "plain &amp; text"},
		{"", ""},
		{"<ul>\n  <li>a</li>\n</ul>", "<ul>\n  <li>a</li>\n</ul>"},
	}
	for _, tt := range tests {
		resp, err := c.Convert(context.Background(), Request{Markup: tt.markup})
		if err != nil {
			t.Fatalf("Convert(%q) error = %v", tt.markup, err)
		}
		if resp.HTML != tt.want {
			t.Errorf("Convert(%q) = %q, want %q", tt.markup, resp.HTML, tt.want)
		}
	}
}

func TestConvertHTMLTrim(t *testing.T) {
	c, _, _ := newTestConverter(t, Options{})

	resp, err := c.Convert(context.Background(), Request{Markup: "<ul>\n  <li>a</li>\n</ul>", Trim: true})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if resp.HTML != "<ul><li>a</li></ul>" {
		t.Errorf("HTML = %q", resp.HTML)
	}
}

func TestConvertHTMLPretty(t *testing.T) {
	c, _, _ := newTestConverter(t, Options{})

	resp, err := c.Convert(context.Background(), Request{Markup: "<div><p>a</p></div>", Pretty: true})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !strings.Contains(resp.HTML, "<div>\n  <p>") {
		t.Errorf("HTML = %q, want indented child", resp.HTML)
	}
}

func TestConvertHTMLMinify(t *testing.T) {
	c, _, _ := newTestConverter(t, Options{})

	markup := "<div>\n\n    <p>a</p>\n\n    <p>b</p>\n\n</div>"
	plain, err := c.Convert(context.Background(), Request{Markup: markup})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	minified, err := c.Convert(context.Background(), Request{Markup: markup, Minify: true})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if len(minified.HTML) >= len(plain.HTML) {
		t.Errorf("minified %q is not shorter than %q", minified.HTML, plain.HTML)
	}
	if !strings.Contains(minified.HTML, "<p>a</p>") || !strings.Contains(minified.HTML, "</div>") {
		t.Errorf("minified HTML lost content: %q", minified.HTML)
	}
}

func TestConvertJSON(t *testing.T) {
	c, _, _ := newTestConverter(t, Options{})

	resp, err := c.Convert(context.Background(), Request{
		Markup: `<p class="x">hi <b>there</b></p>`,
		Format: FormatJSON,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}

	var el struct {
		Typeof string         `json:"$$typeof"`
		Type   string         `json:"type"`
		Props  map[string]any `json:"props"`
	}
	if err := json.Unmarshal(resp.Elements, &el); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if el.Typeof != "react.element" || el.Type != "p" || el.Props["className"] != "x" {
		t.Errorf("element = %+v", el)
	}
	children, ok := el.Props["children"].([]any)
	if !ok || len(children) != 2 || children[0] != "hi " {
		t.Errorf("children = %#v", el.Props["children"])
	}
}

func TestConvertJSONVDOM(t *testing.T) {
	c, _, _ := newTestConverter(t, Options{})

	resp, err := c.Convert(context.Background(), Request{
		Markup:  `<p>a</p><p>b</p>`,
		Format:  FormatJSON,
		Library: LibraryVDOM,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	want := `[{"kind":"element","tag":"p","children":[{"kind":"text","text":"a"}],"key":"0"},` +
		`{"kind":"element","tag":"p","children":[{"kind":"text","text":"b"}],"key":"1"}]`
	if string(resp.Elements) != want {
		t.Errorf("Elements = %s\nwant %s", resp.Elements, want)
	}
	if resp.Count != 2 {
		t.Errorf("Count = %d", resp.Count)
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		req  Request
		code string
	}{
		{"unknown format", Options{}, Request{Markup: "<p></p>", Format: "yaml"}, "H030"},
		{"unknown library", Options{}, Request{Markup: "<p></p>", Format: FormatJSON, Library: "preact"}, "H031"},
		{"too deep", Options{MaxDepth: 1}, Request{Markup: "<div><p>x</p></div>"}, "H002"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec, logs := newTestConverter(t, tt.opts)

			_, err := c.Convert(context.Background(), tt.req)
			if got := herrors.CodeOf(err); got != tt.code {
				t.Fatalf("error = %v, want %s", err, tt.code)
			}

			format := tt.req.Format
			if format == "yaml" {
				format = "unknown"
			}
			if format == "" {
				format = FormatHTML
			}
			if got := testutil.ToFloat64(c.conversions.WithLabelValues(format, "error")); got != 1 {
				t.Errorf("conversions_total{%s,error} = %v", format, got)
			}
			if len(rec.spans) != 1 || rec.spans[0].status != codes.Error || rec.spans[0].errs != 1 {
				t.Errorf("span = %+v", rec.spans)
			}
			if !strings.Contains(logs.String(), "code="+tt.code) {
				t.Errorf("log %q should carry the code", logs.String())
			}
		})
	}
}

func TestOutputErrors(t *testing.T) {
	c, _, _ := newTestConverter(t, Options{})

	_, err := c.renderHTML(context.Background(), &vdom.VNode{Kind: vdom.VKind(99)}, Request{})
	if code := herrors.CodeOf(err); code != "H032" {
		t.Errorf("render failure code = %q, want H032", code)
	}
	if errors.Is(err, htmlconv.ErrInvalidInput) {
		t.Error("render failure should not match ErrInvalidInput")
	}

	_, err = encodeResult(map[string]any{"f": func() {}})
	if code := herrors.CodeOf(err); code != "H032" {
		t.Errorf("encode failure code = %q, want H032", code)
	}
	if errors.Is(err, htmlconv.ErrInvalidInput) {
		t.Error("encode failure should not match ErrInvalidInput")
	}
}

func TestNewDefaults(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(Options{Registry: reg})
	if _, err := c.Convert(context.Background(), Request{Markup: "<p>x</p>"}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if n, err := testutil.GatherAndCount(reg, "htmlconv_conversions_total"); err != nil || n != 1 {
		t.Errorf("GatherAndCount = %d, %v", n, err)
	}
}
