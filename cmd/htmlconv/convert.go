package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlconv/internal/config"
	"github.com/vango-dev/htmlconv/internal/errors"
	"github.com/vango-dev/htmlconv/pkg/service"
	"github.com/vango-dev/htmlconv/pkg/source"
)

// convertFlags are the command-line overrides for one conversion.
type convertFlags struct {
	format   string
	library  string
	trim     bool
	xmlMode  bool
	pretty   bool
	minify   bool
	maxDepth int
	maxBytes int64
	output   string
}

func convertCmd(a *app) *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert [source...]",
		Short: "Convert markup from files, S3 or stdin",
		Long: `Convert markup and print the result.

Each source is a file path, an s3://bucket/key reference or "-" for
standard input (the default). Results are printed in order, one per line.

Output formats:
  html   the converted elements serialized back to HTML
  json   the converted elements as JSON (--library jsx or vdom)

Examples:
  htmlconv convert page.html
  echo '<p class="x">hi</p>' | htmlconv convert -f json
  htmlconv convert --trim --minify s3://site/index.html -o out.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConvertFlags(cmd, a.cfg, flags)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{source.Stdin}
			}
			return runConvert(cmd, a.cfg, args, flags.output)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.format, "format", "f", config.DefaultFormat, "Output format: html or json")
	f.StringVar(&flags.library, "library", config.DefaultLibrary, "Element library for json output: jsx or vdom")
	f.BoolVarP(&flags.trim, "trim", "t", false, "Drop whitespace-only text nodes")
	f.BoolVar(&flags.xmlMode, "xml", false, "Parse markup as XML")
	f.BoolVar(&flags.pretty, "pretty", false, "Indent html output")
	f.BoolVar(&flags.minify, "minify", false, "Minify html output")
	f.IntVar(&flags.maxDepth, "max-depth", config.DefaultMaxDepth, "Maximum nesting depth (0 = unlimited)")
	f.Int64Var(&flags.maxBytes, "max-bytes", config.DefaultMaxInputBytes, "Maximum input size in bytes")
	f.StringVarP(&flags.output, "output", "o", "", "Write output to file instead of stdout")

	return cmd
}

// applyConvertFlags copies explicitly set flags over the configuration.
func applyConvertFlags(cmd *cobra.Command, cfg *config.Config, flags convertFlags) {
	f := cmd.Flags()
	if f.Changed("format") {
		cfg.Format = flags.format
	}
	if f.Changed("library") {
		cfg.Library = flags.library
	}
	if f.Changed("trim") {
		cfg.Trim = flags.trim
	}
	if f.Changed("xml") {
		cfg.XMLMode = flags.xmlMode
	}
	if f.Changed("pretty") {
		cfg.Pretty = flags.pretty
	}
	if f.Changed("minify") {
		cfg.Minify = flags.minify
	}
	if f.Changed("max-depth") {
		cfg.MaxDepth = flags.maxDepth
	}
	if f.Changed("max-bytes") {
		cfg.MaxInputBytes = flags.maxBytes
	}
}

// requestDefaults builds the per-request options from the configuration.
func requestDefaults(cfg *config.Config) service.Request {
	return service.Request{
		Format:  cfg.Format,
		Library: cfg.Library,
		Trim:    cfg.Trim,
		XMLMode: cfg.XMLMode,
		Pretty:  cfg.Pretty,
		Minify:  cfg.Minify,
	}
}

func runConvert(cmd *cobra.Command, cfg *config.Config, refs []string, output string) error {
	ctx := cmd.Context()

	opener := &source.Opener{
		Stdin:    cmd.InOrStdin(),
		MaxBytes: cfg.MaxInputBytes,
	}
	for _, ref := range refs {
		if strings.HasPrefix(ref, "s3://") {
			opener.S3 = source.NewS3Client(source.S3Options{
				Region:    cfg.S3.Region,
				Endpoint:  cfg.S3.Endpoint,
				PathStyle: cfg.S3.PathStyle,
			})
			break
		}
	}

	// One-shot conversions keep their metrics private.
	converter := service.New(service.Options{
		MaxDepth: cfg.MaxDepth,
		Registry: prometheus.NewRegistry(),
	})

	var out io.Writer = cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return errors.New("H040").WithDetailf("cannot create %s", output).Wrap(err)
		}
		defer f.Close()
		out = f
	}

	for _, ref := range refs {
		markup, err := opener.ReadAll(ctx, ref)
		if err != nil {
			return err
		}

		req := requestDefaults(cfg)
		req.Markup = string(markup)
		resp, err := converter.Convert(ctx, req)
		if err != nil {
			return err
		}

		result := resp.HTML
		if resp.Format == service.FormatJSON {
			result = string(resp.Elements)
		}
		if _, err := fmt.Fprintln(out, result); err != nil {
			return errors.New("H040").WithDetail("output could not be written").Wrap(err)
		}
	}

	if output != "" {
		success(cmd.ErrOrStderr(), "Wrote %s", output)
	}
	return nil
}
