package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/localplay/tictactoe/internal/apperror"
	"github.com/localplay/tictactoe/internal/bot"
	"github.com/localplay/tictactoe/internal/engine"
)

// Coordinator owns the one mutable session and serializes every state
// change behind a mutex. It is the only mutator: human input and the bot
// timer both go through it. When it becomes the bot's turn the bot move is
// scheduled after a short wait; any state change before the timer fires
// bumps the generation counter, so a stale timer finds itself outdated and
// does nothing. At most one bot move is pending at any time.
type Coordinator struct {
	logger *slog.Logger

	mu          sync.Mutex
	current     Session
	generation  uint64
	pendingBot  *time.Timer
	botMoveWait time.Duration
	onChange    func(Session)
}

// NewCoordinator - wraps the given session. onChange, when non-nil, is
// called with a value copy after every applied change; it must not call
// back into the coordinator.
func NewCoordinator(logger *slog.Logger, initial Session, botMoveWait time.Duration, onChange func(Session)) *Coordinator {
	that := &Coordinator{
		logger:      logger.With("component", "coordinator"),
		current:     initial,
		botMoveWait: botMoveWait,
		onChange:    onChange,
	}

	that.mu.Lock()
	that.scheduleBotMove()
	that.mu.Unlock()

	return that
}

// Snapshot - returns a value copy of the current session for rendering.
func (that *Coordinator) Snapshot() Session {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.current
}

// PlayCell - applies a human move. The session transition itself is a
// silent no-op on bad moves; the returned error only exists so the shell
// can tell the player why nothing happened.
func (that *Coordinator) PlayCell(cell int) error {
	var err error

	that.apply(func(current Session) Session {
		if current.IsConcluded() {
			err = apperror.ErrGameFinished
			return current
		}

		if !current.Board.IsEmptyCell(cell) {
			err = apperror.ErrCellOccupied
			return current
		}

		return current.ApplyMove(cell)
	})

	return err
}

// SetMode - switches play mode and starts a fresh round.
func (that *Coordinator) SetMode(mode string) {
	that.apply(func(current Session) Session {
		return current.WithMode(mode)
	})
}

// SetBotMark - reassigns the bot's mark and starts a fresh round.
func (that *Coordinator) SetBotMark(botMark engine.Mark) {
	that.apply(func(current Session) Session {
		return current.WithBotMark(botMark)
	})
}

// SetBoardSize - changes the board size and starts a fresh round.
func (that *Coordinator) SetBoardSize(size int) {
	that.apply(func(current Session) Session {
		return current.WithBoardSize(size)
	})
}

// ResetRound - clears the board, keeping the score.
func (that *Coordinator) ResetRound() {
	that.apply(func(current Session) Session {
		return current.ResetRound()
	})
}

// ResetAll - clears the board and the score.
func (that *Coordinator) ResetAll() {
	that.apply(func(current Session) Session {
		return current.ResetAll()
	})
}

// Stop - cancels any pending bot move. The coordinator must not be used
// afterwards.
func (that *Coordinator) Stop() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.generation++
	that.cancelPendingBotMove()
}

// apply - runs one state transition: cancels any pending bot move, applies
// the transition, notifies the renderer and reschedules the bot if it is
// now its turn.
func (that *Coordinator) apply(transition func(Session) Session) {
	that.mu.Lock()

	that.generation++
	that.cancelPendingBotMove()

	next := transition(that.current)
	changed := next
	that.current = next

	that.scheduleBotMove()

	onChange := that.onChange
	that.mu.Unlock()

	if onChange != nil {
		onChange(changed)
	}
}

// cancelPendingBotMove - must be called with the mutex held.
func (that *Coordinator) cancelPendingBotMove() {
	if that.pendingBot != nil {
		that.pendingBot.Stop()
		that.pendingBot = nil
	}
}

// scheduleBotMove - must be called with the mutex held. The wait is UX
// pacing only, not a correctness requirement; zero is fine.
func (that *Coordinator) scheduleBotMove() {
	if !that.current.IsBotTurn() {
		return
	}

	generation := that.generation

	that.pendingBot = time.AfterFunc(that.botMoveWait, func() {
		that.applyBotMove(generation)
	})
}

// applyBotMove - fired by the timer. A generation mismatch means the state
// changed after scheduling, and the move belongs to a session shape that no
// longer exists.
func (that *Coordinator) applyBotMove(generation uint64) {
	that.mu.Lock()

	if generation != that.generation || !that.current.IsBotTurn() {
		that.mu.Unlock()
		return
	}

	cell, err := bot.SelectMove(that.current.Board, that.current.BotMark)
	if err != nil {
		that.logger.Error("bot could not move", "error", err)
		that.mu.Unlock()
		return
	}

	that.generation++
	that.pendingBot = nil
	that.current = that.current.ApplyMove(cell)
	that.logger.Debug("bot moved", "cell", cell, "mark", that.current.BotMark)

	changed := that.current
	onChange := that.onChange
	that.mu.Unlock()

	if onChange != nil {
		onChange(changed)
	}
}
