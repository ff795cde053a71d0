package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E001-E099)
	// ============================================

	"E001": {
		Category:   CategoryConfig,
		Message:    "Scene file not found",
		Detail:     "The scene file does not exist at the given path.",
		Suggestion: "Run 'propwatch init' to scaffold a propwatch.yml, or pass the path of an existing scene file.",
	},
	"E002": {
		Category:   CategoryConfig,
		Message:    "Invalid scene file",
		Detail:     "The scene file could not be parsed or failed validation.",
		Suggestion: "Check the YAML syntax and field values against a freshly scaffolded propwatch.yml.",
	},

	// ============================================
	// Scene Errors (E010-E099)
	// ============================================

	"E010": {
		Category:   CategoryScene,
		Message:    "Unknown shape kind",
		Detail:     "A shape declares a kind the scene graph does not support.",
		Suggestion: "Use one of: rect, ellipse, line.",
	},
	"E011": {
		Category:   CategoryScene,
		Message:    "Invalid script step",
		Detail:     "A script step declares an unknown action or is missing a required field.",
		Suggestion: "Use one of: set-color, move, resize, set-opacity, toggle, add, pop, clear, replace.",
	},
	"E012": {
		Category:   CategoryScene,
		Message:    "Shape index out of range",
		Detail:     "A script step addresses a shape index the canvas does not hold.",
		Suggestion: "Script steps run in order; count the shapes present when the step runs.",
	},

	// ============================================
	// CLI Errors (E101-E199)
	// ============================================

	"E101": {
		Category:   CategoryCLI,
		Message:    "Scene file already exists",
		Detail:     "Refusing to overwrite an existing scene file.",
		Suggestion: "Pass --force to overwrite it.",
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
