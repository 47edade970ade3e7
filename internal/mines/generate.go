package mines

import (
	"log/slog"

	"github.com/zyedidia/generic/mapset"
)

// Rand is the source of randomness used to lay out mines.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// generateMines picks count distinct cells uniformly over the field by
// rejection sampling: draw a cell, redraw while it is already taken.
func generateMines(width, height, count int, r Rand) mapset.Set[Coords] {
	mines := mapset.New[Coords]()
	draws := 0
	for mines.Size() < count {
		at := Coords{X: r.IntN(width), Y: r.IntN(height)}
		draws++
		if mines.Has(at) {
			continue
		}
		mines.Put(at)
	}
	Log.Debug("generated mines",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("count", count),
		slog.Int("draws", draws),
	)
	return mines
}
