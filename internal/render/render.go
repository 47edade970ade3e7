// Package render draws a minesweeper field as text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Board is the read side of a game the renderer needs.
type Board interface {
	FieldWidth() int
	FieldHeight() int
	CellAt(at mines.Coords) (mines.CellState, error)
}

const (
	HiddenGlyph  = "#"
	FlaggedGlyph = "!"
	EmptyGlyph   = " "
)

type Renderer struct {
	color   bool
	hidden  lipgloss.Style
	flagged lipgloss.Style
	digits  [9]lipgloss.Style
}

// digit colors follow the classic palette
var digitColors = [9]lipgloss.Color{
	"", "12", "2", "9", "4", "1", "6", "0", "8",
}

func New(color bool) *Renderer {
	r := &Renderer{
		color:   color,
		hidden:  lipgloss.NewStyle().Faint(true),
		flagged: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
	for n, c := range digitColors {
		r.digits[n] = lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return r
}

func (r *Renderer) Glyph(s mines.CellState) string {
	var (
		glyph string
		style lipgloss.Style
	)
	switch s {
	case mines.Hidden:
		glyph, style = HiddenGlyph, r.hidden
	case mines.Flagged:
		glyph, style = FlaggedGlyph, r.flagged
	default:
		n, ok := s.Revealed()
		if !ok {
			return "?"
		}
		if n == 0 {
			return EmptyGlyph
		}
		glyph, style = strconv.Itoa(n), r.digits[n]
	}
	if !r.color {
		return glyph
	}
	return style.Render(glyph)
}

// Render writes the board row by row:
//
//	+-+-+
//	|#|1|
//	+-+-+
func (r *Renderer) Render(w io.Writer, b Board) error {
	width, height := b.FieldWidth(), b.FieldHeight()
	separator := strings.Repeat("+-", width) + "+\n"

	var sb strings.Builder
	sb.WriteString(separator)
	for y := range height {
		for x := range width {
			s, err := b.CellAt(mines.Coords{X: x, Y: y})
			if err != nil {
				return fmt.Errorf("unable to read cell: %w", err)
			}
			sb.WriteString("|")
			sb.WriteString(r.Glyph(s))
		}
		sb.WriteString("|\n")
		sb.WriteString(separator)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// String renders b without colors.
func String(b Board) (string, error) {
	var sb strings.Builder
	if err := New(false).Render(&sb, b); err != nil {
		return "", err
	}
	return sb.String(), nil
}
