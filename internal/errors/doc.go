// Package errors provides structured, actionable error values for the
// propwatch CLI.
//
// Each error carries a code, a category, and optional detail and fix
// suggestion. The CLI layer renders these through internal/printer; the
// values themselves stay plain so errors.Is/As interop works.
//
// # Error Categories
//
//   - config: scene file errors (missing file, bad YAML, invalid values)
//   - scene: object graph errors (unknown kinds, bad script steps)
//   - cli: command usage errors
//
// # Usage
//
//	err := errors.New("E002").
//	    WithDetail("shapes[2]: opacity 1.4 out of range").
//	    WithSuggestion("Use an opacity between 0 and 1")
package errors
