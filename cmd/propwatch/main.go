package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iansan5653/propwatch/internal/printer"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┬─┐┌─┐┌─┐┬ ┬┌─┐┌┬┐┌─┐┬ ┬
  ╠═╝├┬┘│ │├─┘│││├─┤ │ │  ├─┤
  ╩  ┴└─└─┘┴  └┴┘┴ ┴ ┴ └─┘┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "propwatch",
		Short: "Observable properties and scene graphs for Go",
		Long: `Propwatch wraps plain values and containers in observed types that
report every write to a sink you choose.

Compose shapes onto a canvas and a single redraw sink hears about
every member write in the whole graph. Features include:

  • Scalars that notify on every write, changed or not
  • Containers that verify each write landed before notifying
  • Replaceable containers behind stable handles
  • Collections that adopt their members' notifications`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		initCmd(),
		demoCmd(),
		errorsCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		printer.StructuredError(err)
		os.Exit(1)
	}
}

// printBanner prints the propwatch ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}
