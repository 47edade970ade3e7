package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func TestRenderEmpty(t *testing.T) {
	g := mines.Empty(3, 2)
	out, err := String(g)
	require.NoError(t, err)
	assert.Equal(t,
		"+-+-+-+\n"+
			"|#|#|#|\n"+
			"+-+-+-+\n"+
			"|#|#|#|\n"+
			"+-+-+-+\n",
		out,
	)
}

func TestRenderScenario(t *testing.T) {
	g := mines.Empty(3, 3)
	for _, at := range []mines.Coords{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}} {
		require.NoError(t, g.PlaceMine(at))
	}
	_, err := g.Reveal(mines.Coords{X: 0, Y: 0})
	require.NoError(t, err)
	require.NoError(t, g.ToggleFlag(mines.Coords{X: 2, Y: 1}))

	var buf bytes.Buffer
	require.NoError(t, New(false).Render(&buf, g))
	assert.Equal(t,
		"+-+-+-+\n"+
			"| |2|#|\n"+
			"+-+-+-+\n"+
			"|1|3|!|\n"+
			"+-+-+-+\n"+
			"|#|#|#|\n"+
			"+-+-+-+\n",
		buf.String(),
	)
}

func TestGlyph(t *testing.T) {
	r := New(false)
	tests := []struct {
		state mines.CellState
		glyph string
	}{
		{mines.Hidden, "#"},
		{mines.Flagged, "!"},
		{mines.Revealed(0), " "},
		{mines.Revealed(1), "1"},
		{mines.Revealed(8), "8"},
		{mines.CellState(42), "?"},
	}
	for _, test := range tests {
		assert.Equal(t, test.glyph, r.Glyph(test.state), test.state.String())
	}
}

func TestGlyphColorKeepsText(t *testing.T) {
	r := New(true)
	assert.Contains(t, r.Glyph(mines.Revealed(3)), "3")
	assert.Contains(t, r.Glyph(mines.Flagged), "!")
	assert.Equal(t, " ", r.Glyph(mines.Revealed(0)))
}

type brokenBoard struct{}

func (brokenBoard) FieldWidth() int  { return 1 }
func (brokenBoard) FieldHeight() int { return 1 }
func (brokenBoard) CellAt(at mines.Coords) (mines.CellState, error) {
	return mines.Hidden, &mines.InvalidCoordsError{Coords: at}
}

func TestRenderPropagatesErrors(t *testing.T) {
	var buf bytes.Buffer
	err := New(false).Render(&buf, brokenBoard{})
	var invalid *mines.InvalidCoordsError
	require.ErrorAs(t, err, &invalid)
	assert.Empty(t, buf.String())

	out, err := String(brokenBoard{})
	require.ErrorAs(t, err, &invalid)
	assert.Empty(t, out)
}
