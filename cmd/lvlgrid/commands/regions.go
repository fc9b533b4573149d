package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/cmd/lvlgrid/internal"
)

var regionsCmd = &cobra.Command{
	Use:   "regions <map-file> <char>",
	Short: "Lists 4-connected regions of a character",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		m := internal.LoadMap(args[0], parseOptions()...)
		target := internal.ParseRune("char", args[1])

		regions := m.Regions(func(r rune) bool { return r == target })
		fmt.Println("regions:", len(regions))
		for i, region := range regions {
			fmt.Printf("region %d (%d cells): %v\n", i, len(region), region)
		}
	},
}
