package tictactoe

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/events"
	"github.com/rocketscienceinc/tictactoe-cli/internal/player"
)

const MinBoardSize = 3

// Game is the turn state machine. It reacts to bus inputs and must only be driven from one goroutine.
type Game struct {
	logger *slog.Logger
	bus    *events.Bus

	board  *entity.Board
	cursor *entity.Cursor

	// players[0] is the current player
	players  [2]player.Player
	winner   player.Player
	gameOver bool
	exited   bool
	state    State

	cancelTurn func()
}

// NewGame - creates a game where human plays first and subscribes it to bus.
func NewGame(logger *slog.Logger, bus *events.Bus, size int, human, computer player.Player) (*Game, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	if err := validatePlayers(human, computer); err != nil {
		return nil, err
	}

	game := &Game{
		logger:  logger.With("component", "game"),
		bus:     bus,
		board:   entity.NewBoard(size),
		cursor:  entity.NewCursor(size),
		players: [2]player.Player{human, computer},
		state:   StateAwaitingHumanInput,
	}

	bus.OnMove(game.handleMove)
	bus.OnConfirm(game.handleConfirm)
	bus.OnTurnEnded(game.handleTurnEnded)
	bus.OnTurnBegan(game.handleTurnBegan)
	bus.OnKeypress(game.handleKeypress)
	bus.OnExitRequested(game.Exit)

	return game, nil
}

func validatePlayers(human, computer player.Player) error {
	if human == nil || computer == nil {
		return apperror.ErrInvalidPlayers
	}

	if !human.IsHuman() || computer.IsHuman() {
		return fmt.Errorf("%w: wrong player kinds", apperror.ErrInvalidPlayers)
	}

	for _, token := range []string{human.Token(), computer.Token()} {
		if utf8.RuneCountInString(token) != 1 || token == entity.OverlayMarker {
			return fmt.Errorf("%w: bad token %q", apperror.ErrInvalidPlayers, token)
		}
	}

	if human.Token() == computer.Token() {
		return fmt.Errorf("%w: both players use %q", apperror.ErrInvalidPlayers, human.Token())
	}

	return nil
}

// Run - starts the first turn and requests the initial draw.
func (that *Game) Run() {
	that.logger.Info("game started", "human", that.players[0].Name(), "computer", that.players[1].Name())

	that.bus.BeginTurn(that.CurrentPlayer().Token())
	that.bus.Redraw()
}

// Exit - abandons any pending turn and emits exit once.
func (that *Game) Exit() {
	if that.exited {
		return
	}

	that.exited = true
	if that.cancelTurn != nil {
		that.cancelTurn()
		that.cancelTurn = nil
	}

	that.logger.Info("exit")
	that.bus.Exit()
}

func (that *Game) handleMove(delta entity.Delta) {
	if that.state != StateAwaitingHumanInput || that.exited {
		return
	}

	that.cursor.ApplyMove(delta)
	that.bus.Redraw()
}

func (that *Game) handleConfirm() {
	if that.gameOver || that.exited {
		that.logger.Debug("confirm ignored", "error", apperror.ErrGameFinished, "exited", that.exited)
		return
	}

	if that.state != StateAwaitingHumanInput || !that.CurrentPlayer().IsHuman() {
		that.logger.Debug("confirm ignored", "error", apperror.ErrNotHumanTurn, "state", that.state.String())
		return
	}

	that.submitTurn()
}

func (that *Game) handleKeypress(string) {
	if that.gameOver {
		that.Exit()
	}
}

// handleTurnBegan - makes the player holding token current and starts its turn.
func (that *Game) handleTurnBegan(token string) {
	if that.gameOver || that.exited {
		return
	}

	if that.players[1].Token() == token {
		that.players[0], that.players[1] = that.players[1], that.players[0]
	}

	if that.CurrentPlayer().IsHuman() {
		that.state = StateAwaitingHumanInput
		return
	}

	that.state = StateComputerThinking
	that.submitTurn()
}

func (that *Game) handleTurnEnded() {
	if that.gameOver || that.exited {
		return
	}

	// the mover stays current until every turnEnded handler has seen it
	if !that.checkGameOver() {
		that.state = StateNextPlayerTurn
		that.bus.BeginTurn(that.players[1].Token())
	}

	that.bus.Redraw()
}

func (that *Game) submitTurn() {
	current := that.CurrentPlayer()

	// a human proposes before SubmitTurn returns and leaves nothing to cancel
	pending := true
	cancel := current.SubmitTurn(that.board, that.cursor, func(position entity.Position) {
		pending = false
		that.placeMove(current, position)
	})

	if pending {
		that.cancelTurn = cancel
	}
}

// placeMove - applies a proposed move. An occupied cell rejects a human move and keeps the turn;
// any other failure is a bug.
func (that *Game) placeMove(mover player.Player, position entity.Position) {
	log := that.logger.With("method", "placeMove", "player", mover.Name(), "x", position.X, "y", position.Y)

	if reason := that.discardReason(mover); reason != nil {
		log.Warn("discarding move", "error", reason)
		return
	}

	that.cancelTurn = nil

	err := that.board.Place(mover.Token(), position.X, position.Y)
	if errors.Is(err, apperror.ErrCellOccupied) && mover.IsHuman() {
		log.Info("move rejected", "error", err)
		return
	}

	if err != nil {
		log.Error("invalid move", "error", err)
		panic(fmt.Errorf("invalid move by %s: %w", mover.Name(), err))
	}

	log.Debug("move placed")

	that.state = StateTurnSubmitted
	that.bus.EndTurn()
}

func (that *Game) discardReason(mover player.Player) error {
	switch {
	case that.exited:
		return apperror.ErrGameExited
	case that.gameOver:
		return apperror.ErrGameFinished
	case mover != that.CurrentPlayer():
		return fmt.Errorf("%w: %s moved out of turn", apperror.ErrStaleTurn, mover.Name())
	default:
		return nil
	}
}

// checkGameOver - a winning line takes precedence over a full board.
func (that *Game) checkGameOver() bool {
	for _, p := range that.players {
		if that.board.HasWinningLine(p.Token()) {
			that.winner = p
			that.gameOver = true
			break
		}
	}

	if that.winner == nil && that.board.IsFull() {
		that.gameOver = true
	}

	if that.gameOver {
		that.state = StateGameOver
		that.logger.Info("game over", "winner", that.winnerToken())
	}

	return that.gameOver
}

func (that *Game) winnerToken() string {
	switch {
	case that.winner != nil:
		return that.winner.Token()
	case that.gameOver:
		return entity.PlayerTie
	default:
		return ""
	}
}

func (that *Game) State() State {
	return that.state
}

func (that *Game) GameOver() bool {
	return that.gameOver
}

// Winner - nil while the game is ongoing or after a draw.
func (that *Game) Winner() player.Player {
	return that.winner
}

func (that *Game) CurrentPlayer() player.Player {
	return that.players[0]
}

// Cells - deep copy of the move board.
func (that *Game) Cells() [][]string {
	return that.board.Cells()
}

func (that *Game) Cursor() entity.Position {
	return that.cursor.Position()
}

func (that *Game) Snapshot() entity.GameSnapshot {
	snapshot := entity.GameSnapshot{
		Board:  that.board.Cells(),
		Winner: that.winnerToken(),
		Status: entity.StatusOngoing,
	}

	if that.gameOver {
		snapshot.Status = entity.StatusFinished
	} else {
		snapshot.Turn = that.CurrentPlayer().Token()
	}

	return snapshot
}
