package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/command"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

var log = logrus.New()

var (
	configPath string
	width      int
	height     int
	mineCount  int
	seed       uint64
	color      bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "config file path")
	flag.IntVar(&width, "width", 0, "field width (default from config)")
	flag.IntVar(&height, "height", 0, "field height (default from config)")
	flag.IntVar(&mineCount, "mines", 0, "number of mines (default from config)")
	flag.Uint64Var(&seed, "seed", 0, "random seed, 0 picks one")
	flag.BoolVar(&color, "color", true, "colored output")
}

func createRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// applyFlags overrides board settings with the flags given on the command line.
func applyFlags(board *config.Board) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			board.Width = width
		case "height":
			board.Height = height
		case "mines":
			board.MineCount = mineCount
		}
	})
}

func main() {
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(&cfg.Board)
	if err := cfg.Board.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := setupLogging(log, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	game, err := mines.New(cfg.Board.Width, cfg.Board.Height, cfg.Board.MineCount, createRand(seed))
	if err != nil {
		log.WithError(err).Error("unable to create a game")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.WithFields(logrus.Fields{
		"width":      game.FieldWidth(),
		"height":     game.FieldHeight(),
		"mine_count": game.MineCount(),
	}).Info("new game")

	p := &player{
		exec:     command.NewExecutor(game),
		renderer: render.New(color),
		in:       os.Stdin,
		out:      os.Stdout,
	}
	if err := p.play(); err != nil {
		log.WithError(err).Error("game aborted")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
