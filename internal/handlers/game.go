package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper/internal/command"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/middleware"
	"github.com/vancomm/minesweeper/internal/mines"
)

// MaxCells bounds the size of a board a client may ask for.
const MaxCells = 100_000

var ErrBoardTooLarge = fmt.Errorf("board must not have more than %d cells", MaxCells)

type GameHandler struct {
	logger   *slog.Logger
	ws       *config.WebSocket
	defaults config.Board

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	ws *config.WebSocket,
	defaults config.Board,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger:   logger,
		ws:       ws,
		defaults: defaults,
		rnd:      rnd,
	}
}

func (g *GameHandler) newGame(b config.Board) (*mines.GameState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return mines.New(b.Width, b.Height, b.MineCount, g.rnd)
}

// Play starts a fresh game and plays it over a websocket connection.
// The game lives as long as the connection does.
func (g *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	logger := middleware.Logger(r.Context(), g.logger)

	dto, err := ParseCreateNewGameDTO(r.URL.Query(), g.defaults)
	if err != nil {
		sendErrorOrLog(w, logger, http.StatusBadRequest, err)
		return
	}
	board := dto.Board()
	if err := board.Validate(); err != nil {
		sendErrorOrLog(w, logger, http.StatusBadRequest, err)
		return
	}
	if board.Exceeds(MaxCells) {
		sendErrorOrLog(w, logger, http.StatusBadRequest, ErrBoardTooLarge)
		return
	}

	game, err := g.newGame(board)
	if err != nil {
		sendErrorOrLog(w, logger, http.StatusBadRequest, err)
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	logger = logger.With(slog.String("gameId", id))
	logger.Debug("established WS connection",
		slog.Int("width", board.Width),
		slog.Int("height", board.Height),
		slog.Int("mineCount", board.MineCount),
	)

	session := &gameSession{
		id:     id,
		conn:   conn,
		exec:   command.NewExecutor(game),
		logger: logger,
	}
	if err := session.run(); err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			logger.Debug("client closed connection")
			return
		}
		logger.Warn("error in ws loop", slog.Any("error", err))
		return
	}
	logger.Info("game finished", slog.String("result", session.exec.Result().String()))
}

type gameSession struct {
	id     string
	conn   *websocket.Conn
	exec   *command.Executor
	logger *slog.Logger
}

func (s *gameSession) sendState() error {
	dto := NewGameSessionDTO(s.id, s.exec.Game(), s.exec.Result())
	if err := s.conn.WriteJSON(dto); err != nil {
		return fmt.Errorf("unable to write json: %w", err)
	}
	return nil
}

// run executes newline separated commands from each text message and
// answers with the board. Command errors are reported without ending the
// game. Returns nil once the game is lost or won.
func (s *gameSession) run() error {
	if err := s.sendState(); err != nil {
		return err
	}
	for {
		mt, buf, err := s.conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			continue
		}

	LINES:
		for _, line := range strings.Split(string(buf), "\n") {
			_, err := s.exec.ExecuteLine(line)
			switch {
			case errors.Is(err, command.ErrEmpty):
				continue
			case err != nil:
				s.logger.Debug("rejected command", slog.String("command", line), slog.Any("error", err))
				if err := s.conn.WriteJSON(wrapError(err)); err != nil {
					return fmt.Errorf("unable to write json: %w", err)
				}
			}
			if s.exec.Done() {
				break LINES
			}
		}

		if err := s.sendState(); err != nil {
			return err
		}

		if s.exec.Done() {
			msg := websocket.FormatCloseMessage(
				websocket.CloseNormalClosure, s.exec.Result().String(),
			)
			deadline := time.Now().Add(time.Second)
			if err := s.conn.WriteControl(websocket.CloseMessage, msg, deadline); err != nil {
				return fmt.Errorf("unable to close: %w", err)
			}
			return nil
		}
	}
}
