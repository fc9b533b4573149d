package commands

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/cmd/lvlgrid/internal"
)

var infoCmd = &cobra.Command{
	Use:   "info <map-file>",
	Short: "Prints grid dimensions and a per-character cell count",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		m := internal.LoadMap(args[0], parseOptions()...)

		counts := make(map[rune]int)
		for _, r := range m.Values() {
			counts[r]++
		}
		chars := make([]rune, 0, len(counts))
		for r := range counts {
			chars = append(chars, r)
		}
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

		fmt.Println("dimensions:", m.Dimensions())
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 5, ' ', tabwriter.TabIndent)
		_, err := fmt.Fprintln(w, "char\tcount")
		internal.Catch(err)
		for _, r := range chars {
			_, err = fmt.Fprintf(w, "%q\t%d\n", r, counts[r])
			internal.Catch(err)
		}
		internal.Catch(w.Flush())
	},
}
