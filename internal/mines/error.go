package mines

import "fmt"

type TooManyMinesError struct {
	Mines, Width, Height int
}

// [TooManyMinesError] implements [error]
func (e *TooManyMinesError) Error() string {
	return fmt.Sprintf(
		"too many mines (%d) for a game with field size of %d by %d",
		e.Mines, e.Width, e.Height,
	)
}

type InvalidSizeError struct {
	Width, Height, Mines int
}

// [InvalidSizeError] implements [error]
func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf(
		"invalid game params: width %d, height %d, mines %d must not be negative or overflow the field",
		e.Width, e.Height, e.Mines,
	)
}

type InvalidCoordsError struct {
	Coords        Coords
	Width, Height int
}

// [InvalidCoordsError] implements [error]
func (e *InvalidCoordsError) Error() string {
	return fmt.Sprintf(
		"invalid coordinates %s for a game with field size of %d by %d",
		e.Coords, e.Width, e.Height,
	)
}

type MineAlreadyAtError struct {
	Coords Coords
}

// [MineAlreadyAtError] implements [error]
func (e *MineAlreadyAtError) Error() string {
	return fmt.Sprintf("mine already at %s", e.Coords)
}

type CellRevealedError struct {
	Coords Coords
}

// [CellRevealedError] implements [error]
func (e *CellRevealedError) Error() string {
	return fmt.Sprintf("cell at %s is already revealed", e.Coords)
}
