package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/cmd/lvlgrid/internal"
	"github.com/katalvlaran/lvlgrid/grid"
)

var (
	padChar  string
	truncate bool
	width    int
)

var rootCmd = &cobra.Command{
	Use:   "lvlgrid",
	Short: "Command Line Interface for text grids",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&padChar, "pad", "", "pad short lines with this character instead of failing")
	rootCmd.PersistentFlags().BoolVar(&truncate, "truncate", false, "cut lines longer than the grid width instead of failing")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "fixed grid width (0 measures the first line)")

	rootCmd.AddCommand(
		infoCmd,
		findCmd,
		regionsCmd,
		routeCmd,
	)
}

// parseOptions maps the persistent flags onto grid parse options.
func parseOptions() []grid.ParseOption {
	var opts []grid.ParseOption
	if padChar != "" {
		opts = append(opts, grid.WithPadding(internal.ParseRune("pad", padChar)))
	}
	if truncate {
		opts = append(opts, grid.WithTruncate())
	}
	if width > 0 {
		opts = append(opts, grid.WithWidth(width))
	}
	return opts
}

// Execute executes root CLI command.
func Execute() {
	rootCmd.Execute() //nolint:errcheck
}
