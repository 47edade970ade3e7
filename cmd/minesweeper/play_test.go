package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/command"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

func TestMain(m *testing.M) {
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetOutput(&bytes.Buffer{})
	m.Run()
}

func newPlayer(t *testing.T, input string) (*player, *bytes.Buffer) {
	t.Helper()
	g := mines.Empty(3, 3)
	for _, at := range []mines.Coords{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}} {
		require.NoError(t, g.PlaceMine(at))
	}
	var out bytes.Buffer
	return &player{
		exec:     command.NewExecutor(g),
		renderer: render.New(false),
		in:       strings.NewReader(input),
		out:      &out,
	}, &out
}

func TestPlayWin(t *testing.T) {
	p, out := newPlayer(t, "r 0,0\nnonsense\nr 9,9\nr 0 2\nr 2,2\nr 0,0\n")

	require.NoError(t, p.play())
	assert.Equal(t, mines.Win, p.exec.Result())
	assert.True(t, strings.HasSuffix(out.String(),
		"+-+-+-+\n"+
			"| |2|#|\n"+
			"+-+-+-+\n"+
			"|1|3|#|\n"+
			"+-+-+-+\n"+
			"|1|#|2|\n"+
			"+-+-+-+\n"+
			"You win!\n",
	), out.String())
	assert.Contains(t, out.String(), "unknown command")
	assert.Contains(t, out.String(), "invalid coordinates (9, 9)")
}

func TestPlayGameOver(t *testing.T) {
	p, out := newPlayer(t, "f 0,0\nf 0,0\nr 1,2\n")

	require.NoError(t, p.play())
	assert.Equal(t, mines.GameOver, p.exec.Result())
	assert.True(t, strings.HasSuffix(out.String(), "Game over.\n"))
}

func TestPlayQuitAndEOF(t *testing.T) {
	p, out := newPlayer(t, "help\nq\nr 0,0\n")
	require.NoError(t, p.play())
	assert.Equal(t, mines.Continue, p.exec.Result())
	assert.Equal(t, 2, strings.Count(out.String(), "commands:"))

	p, _ = newPlayer(t, "f 1,1")
	require.NoError(t, p.play())
	s, _ := p.exec.Game().CellAt(mines.Coords{X: 1, Y: 1})
	assert.Equal(t, mines.Flagged, s)
}
