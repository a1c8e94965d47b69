package session

import (
	"github.com/google/uuid"

	"github.com/localplay/tictactoe/internal/engine"
)

const (
	ModeHumans  = "humans"
	ModeWithBot = "bot"
)

// Score counts concluded rounds per result. It survives round resets and is
// zeroed only by a full reset.
type Score struct {
	X     int
	O     int
	Draws int
}

// Session is the whole state of one play sequence as a value. Transitions
// never mutate the receiver; each returns the next state.
type Session struct {
	ID      string
	Board   engine.Board
	Turn    engine.Mark
	Outcome engine.Outcome
	Mode    string
	BotMark engine.Mark
	Score   Score
}

// New - returns a fresh session with an empty board and X to move.
func New(size int, mode string, botMark engine.Mark) Session {
	return Session{
		ID:      uuid.NewString(),
		Board:   engine.NewBoard(size),
		Turn:    engine.MarkX,
		Outcome: engine.Outcome{Status: engine.StatusOngoing},
		Mode:    mode,
		BotMark: botMark,
	}
}

// ApplyMove - places the current player's mark at the given cell and
// re-evaluates the board. Moves to an occupied cell or after the round has
// concluded are silent no-ops: the session comes back unchanged. The score
// is bumped exactly once, on the single transition out of the ongoing
// state.
func (that Session) ApplyMove(cell int) Session {
	if !that.Outcome.IsOngoing() {
		return that
	}

	if !that.Board.IsEmptyCell(cell) {
		return that
	}

	next := that
	next.Board = that.Board.WithMark(cell, that.Turn)
	next.Outcome = engine.Evaluate(next.Board)

	switch {
	case next.Outcome.IsWon():
		if next.Outcome.Winner == engine.MarkX {
			next.Score.X++
		} else {
			next.Score.O++
		}
		next.Turn = engine.MarkEmpty
	case next.Outcome.IsDraw():
		next.Score.Draws++
		next.Turn = engine.MarkEmpty
	default:
		next.Turn = engine.ToggleMark(that.Turn)
	}

	return next
}

// ResetRound - clears the board for a new round, keeping score, board size,
// mode and the bot's mark.
func (that Session) ResetRound() Session {
	next := that
	next.Board = engine.NewBoard(that.Board.Size)
	next.Turn = engine.MarkX
	next.Outcome = engine.Outcome{Status: engine.StatusOngoing}

	return next
}

// ResetAll - clears the board and zeroes the score.
func (that Session) ResetAll() Session {
	next := that.ResetRound()
	next.Score = Score{}

	return next
}

// WithMode - switches between two-humans and human-versus-bot play. Implies
// a round reset so no stale move carries over.
func (that Session) WithMode(mode string) Session {
	next := that
	next.Mode = mode

	return next.ResetRound()
}

// WithBotMark - reassigns which mark the bot plays. Implies a round reset.
func (that Session) WithBotMark(botMark engine.Mark) Session {
	next := that
	next.BotMark = botMark

	return next.ResetRound()
}

// WithBoardSize - changes the board size. Implies a round reset so no move
// lands on a stale board shape.
func (that Session) WithBoardSize(size int) Session {
	next := that
	next.Board = engine.NewBoard(size)

	return next.ResetRound()
}

// IsBotTurn - reports whether the bot should move now: bot mode, round
// ongoing and the bot's mark to play.
func (that Session) IsBotTurn() bool {
	return that.Mode == ModeWithBot && that.Outcome.IsOngoing() && that.Turn == that.BotMark
}

// IsConcluded - reports whether the current round has ended in a win or draw.
func (that Session) IsConcluded() bool {
	return !that.Outcome.IsOngoing()
}
