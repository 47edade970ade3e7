package app

import (
	"hash/maphash"
	"math/rand/v2"
	"net/http"

	"github.com/vancomm/minesweeper/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.logger, a.ws, a.config.Board, createRand(),
	)

	a.router.Methods(http.MethodGet).Path("/status").HandlerFunc(handlers.Status)
	a.router.Methods(http.MethodGet).Path("/play").HandlerFunc(game.Play)
}
