package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/iansan5653/propwatch/internal/config"
	"github.com/iansan5653/propwatch/internal/errors"
	"github.com/iansan5653/propwatch/internal/printer"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter scene file",
		Long: `Write a starter propwatch.yml scene file.

The starter scene puts a rectangle and an ellipse on an 800x600 canvas
and includes a short script for the demo command to run. Pass a path
to write somewhere other than ./propwatch.yml.

Examples:
  propwatch init
  propwatch init scenes/intro.yml
  propwatch init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "propwatch.yml"
			if len(args) == 1 {
				path = args[0]
			}
			return runInit(path, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing scene file")

	return cmd
}

func runInit(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("E101").WithDetail("%q already exists", path)
		}
	}

	if err := config.Scaffold(path); err != nil {
		return err
	}

	printer.Success("Wrote %s\n", path)
	printer.Info("Run it with: propwatch demo %s\n", path)
	return nil
}
