package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/htmlconv"
	"github.com/vango-dev/htmlconv/internal/errors"
	"github.com/vango-dev/htmlconv/pkg/convert"
	"github.com/vango-dev/htmlconv/pkg/jsx"
	"github.com/vango-dev/htmlconv/pkg/render"
	"github.com/vango-dev/htmlconv/pkg/vdom"
)

// Output formats.
const (
	FormatHTML = "html"
	FormatJSON = "json"
)

// Element libraries for JSON output.
const (
	LibraryJSX  = "jsx"
	LibraryVDOM = "vdom"
)

// Request is one conversion.
type Request struct {
	// Markup is the HTML to convert.
	Markup string `json:"markup"`

	// Format is "html" (default) or "json".
	Format string `json:"format,omitempty"`

	// Library is "jsx" (default) or "vdom". Used by the json format.
	Library string `json:"library,omitempty"`

	// Trim drops whitespace-only text nodes.
	Trim bool `json:"trim,omitempty"`

	// XMLMode parses the markup as XML.
	XMLMode bool `json:"xmlMode,omitempty"`

	// Pretty indents html output.
	Pretty bool `json:"pretty,omitempty"`

	// Minify minifies html output.
	Minify bool `json:"minify,omitempty"`
}

// Response is the result of a conversion.
type Response struct {
	// Format is the format of the output.
	Format string `json:"format"`

	// HTML is the serialized markup for the html format.
	HTML string `json:"html,omitempty"`

	// Elements is the encoded element tree for the json format.
	Elements json.RawMessage `json:"elements,omitempty"`

	// Count is the number of elements produced.
	Count int `json:"count"`
}

// Options configure a Converter.
type Options struct {
	// MaxDepth limits tree nesting. 0 means unlimited.
	MaxDepth int

	// Registry receives the conversion metrics.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer

	// TracerProvider supplies the tracer. Defaults to the global provider.
	TracerProvider trace.TracerProvider

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Converter runs conversions. It is safe for concurrent use.
type Converter struct {
	maxDepth int
	tracer   trace.Tracer
	logger   *slog.Logger

	conversions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	elements    prometheus.Counter
	inputBytes  prometheus.Histogram
}

// New creates a Converter and registers its metrics.
func New(opts Options) *Converter {
	if opts.Registry == nil {
		opts.Registry = prometheus.DefaultRegisterer
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	factory := promauto.With(opts.Registry)

	return &Converter{
		maxDepth: opts.MaxDepth,
		tracer:   opts.TracerProvider.Tracer("htmlconv"),
		logger:   opts.Logger,

		conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "htmlconv",
			Name:      "conversions_total",
			Help:      "Total number of conversions by format and outcome",
		}, []string{"format", "outcome"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "htmlconv",
			Name:      "conversion_duration_seconds",
			Help:      "Conversion duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"format"}),

		elements: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "htmlconv",
			Name:      "elements_total",
			Help:      "Total number of elements produced",
		}),

		inputBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "htmlconv",
			Name:      "input_bytes",
			Help:      "Size of converted markup in bytes",
			Buckets:   []float64{256, 1024, 16384, 262144, 1048576, 10485760}, // 256B to 10MB
		}),
	}
}

// Convert runs one conversion.
func (c *Converter) Convert(ctx context.Context, req Request) (*Response, error) {
	if req.Format == "" {
		req.Format = FormatHTML
	}
	if req.Library == "" {
		req.Library = LibraryJSX
	}

	ctx, span := c.tracer.Start(ctx, "htmlconv.Convert",
		trace.WithAttributes(
			attribute.String("htmlconv.format", req.Format),
			attribute.Int("htmlconv.input_bytes", len(req.Markup)),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := c.convert(ctx, req)
	elapsed := time.Since(start)

	format := req.Format
	if format != FormatHTML && format != FormatJSON {
		format = "unknown"
	}
	c.duration.WithLabelValues(format).Observe(elapsed.Seconds())
	c.inputBytes.Observe(float64(len(req.Markup)))

	if err != nil {
		c.conversions.WithLabelValues(format, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.WarnContext(ctx, "conversion failed",
			"format", req.Format,
			"code", errors.CodeOf(err),
			"error", err,
		)
		return nil, err
	}

	c.conversions.WithLabelValues(format, "ok").Inc()
	c.elements.Add(float64(resp.Count))
	span.SetAttributes(attribute.Int("htmlconv.elements", resp.Count))
	span.SetStatus(codes.Ok, "")
	c.logger.DebugContext(ctx, "converted markup",
		"format", req.Format,
		"bytes", len(req.Markup),
		"elements", resp.Count,
		"elapsed", elapsed,
	)
	return resp, nil
}

func (c *Converter) convert(ctx context.Context, req Request) (*Response, error) {
	opts := []htmlconv.Option{
		htmlconv.WithTrim(req.Trim),
		htmlconv.WithXMLMode(req.XMLMode),
		htmlconv.WithMaxDepth(c.maxDepth),
	}

	switch req.Format {
	case FormatHTML:
		result, err := htmlconv.Parse(req.Markup, append(opts, htmlconv.WithLibrary(vdom.Library{}))...)
		if err != nil {
			return nil, err
		}
		return c.renderHTML(ctx, toVNode(result), req)

	case FormatJSON:
		lib, err := library(req.Library)
		if err != nil {
			return nil, err
		}
		result, err := htmlconv.Parse(req.Markup, append(opts, htmlconv.WithLibrary(lib))...)
		if err != nil {
			return nil, err
		}
		data, err := encodeResult(result)
		if err != nil {
			return nil, err
		}
		return &Response{Format: FormatJSON, Elements: data, Count: countElements(result)}, nil

	default:
		return nil, errors.New("H030").
			WithDetailf("format %q; supported formats are html and json", req.Format)
	}
}

func (c *Converter) renderHTML(ctx context.Context, node *vdom.VNode, req Request) (*Response, error) {
	var buf bytes.Buffer
	r := render.NewRenderer(render.RendererConfig{Pretty: req.Pretty && !req.Minify})
	if err := r.RenderToWriter(&buf, node); err != nil {
		return nil, errors.New("H032").WithDetail("result could not be rendered").Wrap(err)
	}

	out := buf.String()
	if req.Minify {
		minified, err := getMinifier().String("text/html", out)
		if err != nil {
			c.logger.WarnContext(ctx, "minification failed, returning unminified output", "error", err)
		} else {
			out = minified
		}
	}
	return &Response{Format: FormatHTML, HTML: out, Count: vdom.Count(node)}, nil
}

// encodeResult encodes a json format result.
func encodeResult(result any) ([]byte, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, errors.New("H032").WithDetail("result could not be encoded").Wrap(err)
	}
	return data, nil
}

func library(name string) (convert.Library, error) {
	switch name {
	case LibraryJSX:
		return jsx.Library{}, nil
	case LibraryVDOM:
		return vdom.Library{}, nil
	default:
		return nil, errors.New("H031").
			WithDetailf("library %q; supported libraries are jsx and vdom", name)
	}
}

// toVNode wraps a Parse result built with vdom.Library in a single node.
func toVNode(result any) *vdom.VNode {
	switch v := result.(type) {
	case *vdom.VNode:
		return v
	case string:
		return vdom.Text(v)
	case []convert.Element:
		return vdom.Fragment(v)
	default:
		return vdom.Fragment()
	}
}

// countElements counts the elements of a Parse result.
func countElements(result any) int {
	switch v := result.(type) {
	case *vdom.VNode:
		return vdom.Count(v)
	case *jsx.Element:
		n := 0
		if v.Type != jsx.FragmentType {
			n = 1
		}
		for _, child := range v.Children() {
			n += countElements(child)
		}
		return n
	case []convert.Element:
		n := 0
		for _, el := range v {
			n += countElements(el)
		}
		return n
	default:
		return 0
	}
}

var (
	minifier     *minify.M
	minifierOnce sync.Once
)

// getMinifier returns the shared HTML minifier.
func getMinifier() *minify.M {
	minifierOnce.Do(func() {
		minifier = minify.New()
		minifier.Add("text/html", &html.Minifier{
			KeepDocumentTags: true,
			KeepEndTags:      true,
			KeepQuotes:       true,
		})
	})
	return minifier
}
