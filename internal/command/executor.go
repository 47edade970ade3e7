package command

import "github.com/vancomm/minesweeper/internal/mines"

// Executor drives a game with parsed commands and refuses further moves
// once a reveal has lost or won the game.
type Executor struct {
	game   *mines.GameState
	result mines.RevealResult
}

func NewExecutor(game *mines.GameState) *Executor {
	return &Executor{game: game, result: mines.Continue}
}

func (e *Executor) Game() *mines.GameState {
	return e.game
}

// Result is the outcome of the last successful reveal.
func (e *Executor) Result() mines.RevealResult {
	return e.result
}

func (e *Executor) Done() bool {
	return e.result.Terminal()
}

func (e *Executor) Execute(cmd Command) (mines.RevealResult, error) {
	if e.Done() {
		return e.result, ErrGameEnded
	}
	switch cmd.Verb {
	case Reveal:
		res, err := e.game.Reveal(cmd.At)
		if err != nil {
			return e.result, err
		}
		e.result = res
	case ToggleFlag:
		if err := e.game.ToggleFlag(cmd.At); err != nil {
			return e.result, err
		}
	default:
		return e.result, ErrUnknownVerb
	}
	return e.result, nil
}

// ExecuteLine parses line and executes it.
func (e *Executor) ExecuteLine(line string) (mines.RevealResult, error) {
	cmd, err := Parse(line)
	if err != nil {
		return e.result, err
	}
	return e.Execute(cmd)
}
