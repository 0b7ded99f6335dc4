package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"net"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	herrors "github.com/vango-dev/htmlconv/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htmlconv.json"

	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultFormat is the default output format.
	DefaultFormat = "html"

	// DefaultLibrary is the default element library for JSON output.
	DefaultLibrary = "jsx"

	// DefaultMaxDepth is the default nesting limit.
	DefaultMaxDepth = 256

	// DefaultMaxInputBytes is the default limit on markup size.
	DefaultMaxInputBytes = 10 << 20
)

// Formats lists the supported output formats.
var Formats = []string{"html", "json"}

// Libraries lists the supported element libraries.
var Libraries = []string{"jsx", "vdom"}

// Config represents the complete htmlconv.json configuration.
type Config struct {
	// Trim drops whitespace-only text nodes.
	Trim bool `json:"trim,omitempty"`

	// XMLMode parses markup as XML.
	XMLMode bool `json:"xmlMode,omitempty"`

	// MaxDepth limits tree nesting. 0 means unlimited.
	MaxDepth int `json:"maxDepth"`

	// Format is the output format: html or json.
	Format string `json:"format,omitempty"`

	// Library selects the element library for JSON output: jsx or vdom.
	Library string `json:"library,omitempty"`

	// Pretty indents HTML output.
	Pretty bool `json:"pretty,omitempty"`

	// Minify minifies HTML output.
	Minify bool `json:"minify,omitempty"`

	// MaxInputBytes limits the size of markup read from a source.
	MaxInputBytes int64 `json:"maxInputBytes,omitempty"`

	// Server contains HTTP server configuration.
	Server ServerConfig `json:"server"`

	// S3 contains settings for s3:// sources.
	S3 S3Config `json:"s3,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Metrics exposes Prometheus metrics at /metrics.
	Metrics bool `json:"metrics"`

	// AllowedOrigins lists origins accepted for WebSocket upgrades.
	// Empty means same-origin only.
	AllowedOrigins []string `json:"allowedOrigins,omitempty"`
}

// S3Config contains settings for reading markup from S3.
type S3Config struct {
	// Region overrides the region from the AWS environment.
	Region string `json:"region,omitempty"`

	// Endpoint points the client at an S3-compatible service.
	Endpoint string `json:"endpoint,omitempty"`

	// PathStyle enables path-style addressing.
	PathStyle bool `json:"pathStyle,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		MaxDepth:      DefaultMaxDepth,
		Format:        DefaultFormat,
		Library:       DefaultLibrary,
		MaxInputBytes: DefaultMaxInputBytes,
		Server: ServerConfig{
			Host:    DefaultHost,
			Port:    DefaultPort,
			Metrics: true,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for htmlconv.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, herrors.New("H010").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create one with 'htmlconv config init' or pass options as flags")
		}
		return nil, herrors.New("H010").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, decodeError(path, data, err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// decodeError converts a JSON decoding error into a coded error pointing at
// the offending position.
func decodeError(path string, data []byte, err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := position(data, syntaxErr.Offset)
		return herrors.New("H010").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithLocation(path, line, col).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		line, col := position(data, typeErr.Offset)
		return herrors.New("H011").
			WithDetailf("%s must be a %s, not a %s", typeErr.Field, typeErr.Type, typeErr.Value).
			WithLocation(path, line, col)
	}

	return herrors.New("H010").Wrap(err)
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line = bytes.Count(before, []byte{'\n'}) + 1
	col = int(offset) - bytes.LastIndexByte(before, '\n')
	return line, col
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return herrors.Newf(herrors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return herrors.New("H012").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return herrors.New("H012").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Library == "" {
		c.Library = DefaultLibrary
	}
	if c.MaxInputBytes == 0 {
		c.MaxInputBytes = DefaultMaxInputBytes
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return herrors.New("H011").
			WithDetailf("format %q is not one of %v", c.Format, Formats)
	}
	if !slices.Contains(Libraries, c.Library) {
		return herrors.New("H011").
			WithDetailf("library %q is not one of %v", c.Library, Libraries)
	}
	if c.MaxDepth < 0 {
		return herrors.New("H011").
			WithDetail("maxDepth must not be negative")
	}
	if c.MaxInputBytes < 0 {
		return herrors.New("H011").
			WithDetail("maxInputBytes must not be negative")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return herrors.New("H011").
			WithDetail("Port must be between 0 and 65535")
	}
	return nil
}

// Addr returns the listen address for the server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the nearest htmlconv.json.
// Returns the directory containing it, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", herrors.New("H010").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadOrDefault loads the nearest htmlconv.json at or above dir. When there
// is none it returns the defaults.
func LoadOrDefault(dir string) (*Config, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		return New(), nil
	}
	return Load(root)
}
