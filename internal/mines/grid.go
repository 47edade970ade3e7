package mines

import (
	"fmt"
	"math"
	"strconv"
)

type Coords struct {
	X, Y int
}

func (c Coords) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// CellState is what the player knows about a cell.
type CellState int8

const (
	Hidden  CellState = -2
	Flagged CellState = -1
	/*
	 * 0 to 8 mean the cell is revealed and hold the number of mines
	 * among its neighbours. See [Revealed].
	 */
)

// Revealed returns the state of a revealed cell with n neighbouring mines.
func Revealed(n int) CellState {
	return CellState(n)
}

// Revealed reports whether the cell is revealed and, if so, its mine count.
func (s CellState) Revealed() (n int, ok bool) {
	if 0 <= s && s <= 8 {
		return int(s), true
	}
	return 0, false
}

func (s CellState) String() string {
	switch {
	case s == Hidden:
		return "hidden"
	case s == Flagged:
		return "flagged"
	case 0 <= s && s <= 8:
		return "revealed(" + strconv.Itoa(int(s)) + ")"
	default:
		return "invalid(" + strconv.Itoa(int(s)) + ")"
	}
}

type Grid []CellState

// fits reports whether a width by height grid can be addressed with an int.
func fits(width, height int) bool {
	return width >= 0 && height >= 0 && (height == 0 || width <= math.MaxInt/height)
}

func newGrid(width, height int) Grid {
	g := make(Grid, width*height)
	for i := range g {
		g[i] = Hidden
	}
	return g
}

// covered returns the number of cells the player has not revealed yet.
func (g Grid) covered() (n int) {
	for _, s := range g {
		if s == Hidden || s == Flagged {
			n++
		}
	}
	return
}
