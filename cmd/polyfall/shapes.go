package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/polyfall/internal/catalog"
	"github.com/vovakirdan/polyfall/internal/poly"
)

var flagDraw bool

var shapesCmd = &cobra.Command{
	Use:   "shapes <size>",
	Short: "Show the piece catalog for a polyomino size",
	Long: `Show how many distinct pieces exist for the given polyomino size
(4-9) and which of them are playable. Shapes that are rotations or
mirror images of each other count as one piece.

Examples:
  polyfall shapes 4
  polyfall shapes 6 --draw`,
	Args: cobra.ExactArgs(1),
	Run:  runShapes,
}

func init() {
	shapesCmd.Flags().BoolVar(&flagDraw, "draw", false, "Draw each shape")
}

func runShapes(cmd *cobra.Command, args []string) {
	size, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid size %q\n", args[0])
		os.Exit(1)
	}

	defs, err := catalog.Definitions(size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	total := poly.Default.Count(size)
	fmt.Printf("%s (%d cells): %d distinct shapes, %d playable\n",
		catalog.SizeName(size), size, total, len(defs))

	if !flagDraw {
		fmt.Println()
		fmt.Println("Run with --draw to see each shape.")
		return
	}

	for _, def := range defs {
		fmt.Println()
		fmt.Printf("%s (%dx%d)\n", def.Name, def.Box.W, def.Box.H)
		fmt.Print(drawShape(def.Cells, def.Box.W, def.Box.H))
	}
}

// drawShape renders a shape as a small character grid.
func drawShape(cells poly.Shape, w, h int) string {
	grid := make([][]byte, h)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", w))
	}
	for _, c := range cells {
		if c.Y >= 0 && c.Y < h && c.X >= 0 && c.X < w {
			grid[c.Y][c.X] = '#'
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString("  ")
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
