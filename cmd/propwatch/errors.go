package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/iansan5653/propwatch/internal/errors"
	"github.com/iansan5653/propwatch/internal/printer"
)

func errorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "errors [code]",
		Short: "List the error codes propwatch can report",
		Long: `List every registered error code with its message, or pass a single
code to see its detail and fix hint.

Examples:
  propwatch errors
  propwatch errors E001`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := ""
			if len(args) == 1 {
				code = args[0]
			}
			return runErrors(code)
		},
	}
}

func runErrors(code string) error {
	if code != "" {
		template, ok := errors.GetTemplate(code)
		if !ok {
			return errors.Newf(errors.CategoryCLI, "unknown error code %q", code).
				WithSuggestion("Run 'propwatch errors' with no arguments to list the registered codes.")
		}
		printer.Info("%s [%s] %s\n", code, template.Category, template.Message)
		printer.Printf("  %s\n", template.Detail)
		printer.Printf("  Hint: %s\n", template.Suggestion)
		return nil
	}

	// Sort codes for consistent output.
	codes := errors.GetAllCodes()
	sort.Strings(codes)

	printer.Info("Registered error codes:\n")
	for _, c := range codes {
		template, _ := errors.GetTemplate(c)
		printer.Printf("  %s [%s] %s\n", c, template.Category, template.Message)
	}
	return nil
}
