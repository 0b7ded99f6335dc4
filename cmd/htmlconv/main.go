package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlconv/internal/config"
	"github.com/vango-dev/htmlconv/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬ ┬┌┬┐┌┬┐┬  ┌─┐┌─┐┌┐┌┬  ┬
  ├─┤ │ ││││  │  │ ││││└┐┌┘
  ┴ ┴ ┴ ┴ ┴┴─┘└─┘└─┘┘└┘ └┘
`

// app carries state shared by the subcommands.
type app struct {
	configPath string
	verbose    bool
	cfg        *config.Config
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		errors.FprintError(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "htmlconv",
		Short: "Convert HTML into framework elements",
		Long: `htmlconv converts HTML and SVG markup into React-style elements.

Markup is parsed into a node tree, attributes are translated into
framework props (class → className, inline styles → style objects,
boolean attributes → true) and the result is emitted as HTML or as
element JSON a client can revive.

Options are read from htmlconv.json in the working directory or a
parent directory; flags override file values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to htmlconv.json (default: search from working directory)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		convertCmd(a),
		serveCmd(a),
		configCmd(a),
		versionCmd(),
	)

	return rootCmd
}

// setup configures logging and loads the configuration.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFile(a.configPath)
	} else {
		a.cfg, err = config.LoadOrDefault(".")
	}
	if err != nil {
		return err
	}
	if path := a.cfg.Path(); path != "" {
		slog.Debug("loaded configuration", "path", path)
	}
	return nil
}

// printBanner prints the htmlconv ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
