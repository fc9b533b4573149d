/*
CLI for inspecting text grids
*/
package main

import (
	"github.com/katalvlaran/lvlgrid/cmd/lvlgrid/commands"
)

func main() {
	commands.Execute()
}
