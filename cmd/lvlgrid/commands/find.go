package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/cmd/lvlgrid/internal"
)

var findCmd = &cobra.Command{
	Use:   "find <map-file> <char>",
	Short: "Lists the positions of every cell holding a character",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		m := internal.LoadMap(args[0], parseOptions()...)
		target := internal.ParseRune("char", args[1])

		for _, p := range m.FindAll(target) {
			fmt.Println(p)
		}
	},
}
