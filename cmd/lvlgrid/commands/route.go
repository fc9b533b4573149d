package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/cmd/lvlgrid/internal"
	"github.com/katalvlaran/lvlgrid/grid"
)

var (
	wallChars string
	freeChars string
	draw      bool
)

func init() {
	routeCmd.Flags().StringVar(&wallChars, "walls", "#", "characters that cannot be crossed")
	routeCmd.Flags().StringVar(&freeChars, "free", "", "characters that cost nothing to cross")
	routeCmd.Flags().BoolVar(&draw, "draw", true, "print the map with the route drawn as direction glyphs")
}

var routeCmd = &cobra.Command{
	Use:   "route <map-file> <x1,y1> <x2,y2>",
	Short: "Finds a minimum-cost route between two cells",
	Args:  cobra.ExactArgs(3),
	Run: func(_ *cobra.Command, args []string) {
		m := internal.LoadMap(args[0], parseOptions()...)
		from := internal.ParsePos("x1,y1", args[1])
		to := internal.ParsePos("x2,y2", args[2])

		walls := runeSet(wallChars)
		free := runeSet(freeChars)
		path, cost, err := m.Route(from, to, func(r rune) int {
			switch {
			case walls[r]:
				return -1
			case free[r]:
				return 0
			default:
				return 1
			}
		})
		internal.Catch(err, "failed to route:")

		fmt.Println("cost:", cost)
		fmt.Println("path:", path)
		if !draw {
			return
		}
		canvas := m.Clone()
		for i, s := range grid.Steps(path) {
			if i > 0 {
				canvas.SetAt(path[i], []rune(s.Glyph())[0])
			}
		}
		fmt.Println(internal.RenderRunes(canvas))
	},
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}
