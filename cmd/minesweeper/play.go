package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/command"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

const help = `commands:
  r x,y   reveal a cell (also: reveal, o, open; "x y" works too)
  f x,y   flag or unflag a cell (also: flag)
  q       quit
`

type player struct {
	exec     *command.Executor
	renderer *render.Renderer
	in       io.Reader
	out      io.Writer
}

// play runs the prompt loop until the game ends, the player quits or
// input runs out.
func (p *player) play() error {
	scanner := bufio.NewScanner(p.in)
	fmt.Fprint(p.out, help)
	for {
		if err := p.renderer.Render(p.out, p.exec.Game()); err != nil {
			return err
		}
		fmt.Fprint(p.out, "> ")

		if !scanner.Scan() {
			fmt.Fprintln(p.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "q", "quit", "exit":
			log.Info("player quit")
			return nil
		case "h", "help", "?":
			fmt.Fprint(p.out, help)
			continue
		}

		res, err := p.exec.ExecuteLine(line)
		if err != nil {
			log.WithField("command", line).WithError(err).Debug("rejected command")
			fmt.Fprintln(p.out, err)
			continue
		}
		log.WithFields(logrus.Fields{
			"command": line,
			"result":  res.String(),
		}).Info("move")

		if p.exec.Done() {
			if err := p.renderer.Render(p.out, p.exec.Game()); err != nil {
				return err
			}
			fmt.Fprintln(p.out, outcome(res))
			return nil
		}
	}
}

func outcome(res mines.RevealResult) string {
	if res == mines.Win {
		return "You win!"
	}
	return "Boom! You stepped on a mine. Game over."
}
