package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Input and conversion (H001-H009)

	"H001": {
		Category: CategoryInput,
		Message:  "Invalid input",
		DocURL:   "https://htmlconv.dev/docs/errors/H001",
	},
	"H002": {
		Category: CategoryConvert,
		Message:  "Markup nested too deeply",
		DocURL:   "https://htmlconv.dev/docs/errors/H002",
	},
	"H003": {
		Category: CategoryConvert,
		Message:  "Markup could not be tokenized",
		DocURL:   "https://htmlconv.dev/docs/errors/H003",
	},

	// Configuration (H010-H019)

	"H010": {
		Category: CategoryConfig,
		Message:  "Configuration file could not be read",
		DocURL:   "https://htmlconv.dev/docs/errors/H010",
	},
	"H011": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		DocURL:   "https://htmlconv.dev/docs/errors/H011",
	},
	"H012": {
		Category: CategoryConfig,
		Message:  "Configuration file could not be written",
		DocURL:   "https://htmlconv.dev/docs/errors/H012",
	},

	// Sources (H020-H029)

	"H020": {
		Category: CategorySource,
		Message:  "Markup source could not be read",
		DocURL:   "https://htmlconv.dev/docs/errors/H020",
	},
	"H021": {
		Category: CategorySource,
		Message:  "Markup source too large",
		DocURL:   "https://htmlconv.dev/docs/errors/H021",
	},

	// Output selection (H030-H039)

	"H030": {
		Category: CategoryInput,
		Message:  "Unknown output format",
		Detail:   "Supported formats are html and json.",
		DocURL:   "https://htmlconv.dev/docs/errors/H030",
	},
	"H031": {
		Category: CategoryInput,
		Message:  "Unknown element library",
		Detail:   "Supported libraries are vdom and jsx.",
		DocURL:   "https://htmlconv.dev/docs/errors/H031",
	},
	"H032": {
		Category: CategoryOutput,
		Message:  "Result could not be written",
		DocURL:   "https://htmlconv.dev/docs/errors/H032",
	},

	// CLI (H040-H049)

	"H040": {
		Category: CategoryCLI,
		Message:  "Invalid command usage",
		DocURL:   "https://htmlconv.dev/docs/errors/H040",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
