package mines

import (
	"log/slog"

	"github.com/zyedidia/generic/mapset"
)

var Log *slog.Logger = slog.Default()

type RevealResult int

const (
	Continue RevealResult = iota
	GameOver
	Win
)

func (r RevealResult) String() string {
	switch r {
	case Continue:
		return "continue"
	case GameOver:
		return "game over"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves make sense after r.
func (r RevealResult) Terminal() bool {
	return r == GameOver || r == Win
}

// GameState is a single minesweeper field: the real mine layout and what
// the player has uncovered so far.
//
// GameState does not stop accepting moves once the game is lost or won;
// callers decide when to stop. It is not safe for concurrent use.
type GameState struct {
	width, height int
	mines         mapset.Set[Coords] /* real mine points */
	cells         Grid               /* player knowledge */
}

// New creates a field with mineCount mines placed uniformly at random.
func New(width, height, mineCount int, r Rand) (*GameState, error) {
	if mineCount < 0 || !fits(width, height) {
		return nil, &InvalidSizeError{Width: width, Height: height, Mines: mineCount}
	}
	if mineCount > width*height {
		return nil, &TooManyMinesError{Mines: mineCount, Width: width, Height: height}
	}
	return &GameState{
		width:  width,
		height: height,
		mines:  generateMines(width, height, mineCount, r),
		cells:  newGrid(width, height),
	}, nil
}

// Empty creates a field with no mines. Negative sizes are treated as zero,
// and a size whose cell count overflows int yields a 0 by 0 field.
func Empty(width, height int) *GameState {
	width, height = max(width, 0), max(height, 0)
	if !fits(width, height) {
		width, height = 0, 0
	}
	return &GameState{
		width:  width,
		height: height,
		mines:  mapset.New[Coords](),
		cells:  newGrid(width, height),
	}
}

func (s *GameState) PlaceMine(at Coords) error {
	if _, err := s.index(at); err != nil {
		return err
	}
	if s.isMineAt(at) {
		return &MineAlreadyAtError{Coords: at}
	}
	s.mines.Put(at)
	return nil
}

func (s *GameState) ToggleFlag(at Coords) error {
	i, err := s.index(at)
	if err != nil {
		return err
	}
	switch s.cells[i] {
	case Hidden:
		s.cells[i] = Flagged
	case Flagged:
		s.cells[i] = Hidden
	default:
		return &CellRevealedError{Coords: at}
	}
	return nil
}

// Reveal opens the cell at the given coordinates. Opening a cell with no
// neighbouring mines opens its neighbours as well, stopping at flags and
// at cells that border a mine. Revealing a flagged or already revealed
// cell does nothing.
func (s *GameState) Reveal(at Coords) (RevealResult, error) {
	if _, err := s.index(at); err != nil {
		return Continue, err
	}
	if s.isMineAt(at) {
		return GameOver, nil
	}

	s.floodFill(at)

	/*
	 * The game is won when exactly as many cells are still covered as
	 * there are mines.
	 */
	if s.cells.covered() == s.mines.Size() {
		return Win, nil
	}
	return Continue, nil
}

func (s *GameState) floodFill(start Coords) {
	todo := []Coords{start}
	for len(todo) > 0 {
		at := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		i := s.width*at.Y + at.X
		if s.cells[i] != Hidden {
			continue /* flags are barriers, revealed cells are final */
		}

		n := s.countNeighbourMines(at)
		s.cells[i] = Revealed(n)
		if n == 0 {
			s.eachNeighbour(at, func(nb Coords) {
				todo = append(todo, nb)
			})
		}
	}
}

func (s *GameState) countNeighbourMines(at Coords) (n int) {
	s.eachNeighbour(at, func(nb Coords) {
		if s.isMineAt(nb) {
			n++
		}
	})
	return
}

// eachNeighbour calls fn for each of the up to 8 in-bounds cells around at.
func (s *GameState) eachNeighbour(at Coords, fn func(Coords)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nb := Coords{X: at.X + dx, Y: at.Y + dy}
			if s.inBounds(nb) {
				fn(nb)
			}
		}
	}
}

func (s *GameState) CellAt(at Coords) (CellState, error) {
	i, err := s.index(at)
	if err != nil {
		return Hidden, err
	}
	return s.cells[i], nil
}

func (s *GameState) MineCount() int {
	return s.mines.Size()
}

func (s *GameState) FieldWidth() int {
	return s.width
}

func (s *GameState) FieldHeight() int {
	return s.height
}

func (s *GameState) isMineAt(at Coords) bool {
	return s.mines.Has(at)
}

func (s *GameState) inBounds(at Coords) bool {
	return 0 <= at.X && at.X < s.width && 0 <= at.Y && at.Y < s.height
}

func (s *GameState) index(at Coords) (int, error) {
	if !s.inBounds(at) {
		return 0, &InvalidCoordsError{Coords: at, Width: s.width, Height: s.height}
	}
	return s.width*at.Y + at.X, nil
}
