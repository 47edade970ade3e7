package handlers

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

type CreateNewGameDTO struct {
	Width     int `schema:"width"`
	Height    int `schema:"height"`
	MineCount int `schema:"mine_count"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// ParseCreateNewGameDTO decodes game params from a query, falling back to
// defaults for missing keys.
func ParseCreateNewGameDTO(src map[string][]string, defaults config.Board) (CreateNewGameDTO, error) {
	dto := CreateNewGameDTO{
		Width:     defaults.Width,
		Height:    defaults.Height,
		MineCount: defaults.MineCount,
	}
	err := decoder.Decode(&dto, src)
	return dto, err
}

func (d CreateNewGameDTO) Board() config.Board {
	return config.Board{Width: d.Width, Height: d.Height, MineCount: d.MineCount}
}

type GameSessionDTO struct {
	GameID    string     `json:"game_id"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	MineCount int        `json:"mine_count"`
	Grid      mines.Grid `json:"grid"`
	Result    string     `json:"result"`
}

func NewGameSessionDTO(id string, g *mines.GameState, res mines.RevealResult) *GameSessionDTO {
	grid := make(mines.Grid, 0, g.FieldWidth()*g.FieldHeight())
	for y := range g.FieldHeight() {
		for x := range g.FieldWidth() {
			s, _ := g.CellAt(mines.Coords{X: x, Y: y})
			grid = append(grid, s)
		}
	}
	return &GameSessionDTO{
		GameID:    id,
		Width:     g.FieldWidth(),
		Height:    g.FieldHeight(),
		MineCount: g.MineCount(),
		Grid:      grid,
		Result:    res.String(),
	}
}
