package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown      CellState = -2
	ExplodedMine CellState = 65
	/*
	 * Each item in the player grid is one of the following values:
	 *
	 * 	- 0 to 8 mean the square is open and has a surrounding mine
	 * 	  count.
	 *
	 * 	- -2 means the square is still covered.
	 *
	 * 	- 65 means the square had a mine revealed and this was the
	 * 	  one the player hit.
	 */
)

func (s CellState) Revealed() bool {
	return s != Unknown
}

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return " "
	case s == ExplodedMine:
		return "*"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is the player's view of the board, stored row by row.
type Grid []CellState

func newGrid(size int) Grid {
	g := make(Grid, size*size)
	for i := range g {
		g[i] = Unknown
	}
	return g
}

func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	copy(c, g)
	return c
}

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
