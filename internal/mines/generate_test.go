package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays a fixed sequence of draws.
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) IntN(n int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v % n
}

func TestGenerateMines(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name                 string
		width, height, mines int
	}{
		{"9x9(10)", 9, 9, 10},
		{"9x9(81)", 9, 9, 81},
		{"16x16(40)", 16, 16, 40},
		{"30x16(99)", 30, 16, 99},
		{"30x16(480)", 30, 16, 480},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			mines := generateMines(test.width, test.height, test.mines, r)
			require.Equal(t, test.mines, mines.Size())
			mines.Each(func(at Coords) {
				assert.True(t,
					0 <= at.X && at.X < test.width && 0 <= at.Y && at.Y < test.height,
					"mine %s out of bounds", at,
				)
			})
		})
	}
}

func TestGenerateMinesDeterministic(t *testing.T) {
	a, err := New(16, 16, 40, rand.New(rand.NewPCG(7, 11)))
	require.NoError(t, err)
	b, err := New(16, 16, 40, rand.New(rand.NewPCG(7, 11)))
	require.NoError(t, err)

	for y := range 16 {
		for x := range 16 {
			at := Coords{x, y}
			assert.Equal(t, a.isMineAt(at), b.isMineAt(at), "cell %s", at)
		}
	}
}

func TestGenerateMinesRedrawsDuplicates(t *testing.T) {
	// (1, 1) is drawn three times before (2, 0) comes up
	r := &scriptedRand{values: []int{1, 1, 1, 1, 1, 1, 2, 0}}
	mines := generateMines(3, 3, 2, r)

	assert.Equal(t, 2, mines.Size())
	assert.True(t, mines.Has(Coords{1, 1}))
	assert.True(t, mines.Has(Coords{2, 0}))
	assert.Equal(t, 8, r.calls)
}
