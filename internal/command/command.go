// Package command parses player commands and runs them against a game.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Verb int

const (
	Reveal Verb = iota
	ToggleFlag
)

func (v Verb) String() string {
	switch v {
	case Reveal:
		return "reveal"
	case ToggleFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Maps accepted spellings to verbs
var verbs = map[string]Verb{
	"r":      Reveal,
	"reveal": Reveal,
	"o":      Reveal,
	"open":   Reveal,
	"f":      ToggleFlag,
	"flag":   ToggleFlag,
}

var (
	ErrEmpty       = errors.New("empty command")
	ErrUnknownVerb = errors.New("unknown command")
	ErrBadCoords   = errors.New("coordinates must be two non-negative integers, e.g. 3,4 or 3 4")
	ErrGameEnded   = errors.New("the game has ended")
)

type Command struct {
	Verb Verb
	At   mines.Coords
}

func (c Command) String() string {
	return fmt.Sprintf("%s %d,%d", c.Verb, c.At.X, c.At.Y)
}

// Parse reads a command of the form "<verb> <x>,<y>" or "<verb> <x> <y>".
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}

	verb, ok := verbs[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownVerb, fields[0])
	}

	var args []string
	switch len(fields) {
	case 2:
		x, y, found := strings.Cut(fields[1], ",")
		if !found {
			return Command{}, ErrBadCoords
		}
		args = []string{x, y}
	case 3:
		args = fields[1:]
	default:
		return Command{}, ErrBadCoords
	}

	at, err := parseXY(args)
	if err != nil {
		return Command{}, err
	}
	return Command{Verb: verb, At: at}, nil
}

func parseXY(args []string) (at mines.Coords, err error) {
	if at.X, err = strconv.Atoi(strings.TrimSpace(args[0])); err != nil || at.X < 0 {
		return at, ErrBadCoords
	}
	if at.Y, err = strconv.Atoi(strings.TrimSpace(args[1])); err != nil || at.Y < 0 {
		return at, ErrBadCoords
	}
	return at, nil
}
