package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/localplay/tictactoe/internal/apperror"
	"github.com/localplay/tictactoe/internal/engine"
	"github.com/localplay/tictactoe/internal/session"
)

// Board sizes offered to the player. The engine itself handles any size
// from engine.MinBoardSize up; the shell keeps the menu short.
const (
	minMenuSize = 3
	maxMenuSize = 5
)

// UI is the terminal shell around the game core. It only renders state and
// translates typed commands into coordinator calls; no game rules live here.
type UI struct {
	in    io.Reader
	out   io.Writer
	title string
}

func New(in io.Reader, out io.Writer, title, version string) *UI {
	return &UI{
		in:    in,
		out:   out,
		title: fmt.Sprintf("%s (%s)", title, version),
	}
}

// Render - draws the whole screen for the given session snapshot.
func (that *UI) Render(current session.Session) {
	fmt.Fprintf(that.out, "\n%s\n\n", that.title)
	that.renderBoard(current.Board, current.Outcome.Line)
	fmt.Fprintf(that.out, "\nscore  X:%d  O:%d  draws:%d\n", current.Score.X, current.Score.O, current.Score.Draws)

	switch {
	case current.Outcome.IsWon():
		fmt.Fprintf(that.out, "%s wins the round! type 'reset' for another\n", current.Outcome.Winner)
	case current.Outcome.IsDraw():
		fmt.Fprintln(that.out, "round drawn. type 'reset' for another")
	case current.Mode == session.ModeWithBot && current.IsBotTurn():
		fmt.Fprintf(that.out, "bot (%s) is thinking...\n", current.BotMark)
	default:
		fmt.Fprintf(that.out, "%s to move. enter a cell number (0-%d)\n", current.Turn, len(current.Board.Cells)-1)
	}
}

func (that *UI) renderBoard(board engine.Board, winningLine engine.Line) {
	highlighted := make(map[int]bool, len(winningLine))
	for _, cell := range winningLine {
		highlighted[cell] = true
	}

	for row := 0; row < board.Size; row++ {
		cells := make([]string, 0, board.Size)
		for col := 0; col < board.Size; col++ {
			index := row*board.Size + col

			mark := board.At(index)
			if mark == engine.MarkEmpty {
				cells = append(cells, fmt.Sprintf("%2d ", index))
				continue
			}

			if highlighted[index] {
				cells = append(cells, fmt.Sprintf("[%s] ", mark))
			} else {
				cells = append(cells, fmt.Sprintf(" %s  ", mark))
			}
		}
		fmt.Fprintln(that.out, " "+strings.Join(cells, "|"))
	}
}

// Run - reads commands until the context is cancelled or input ends. Lines
// are read on a goroutine so a shutdown signal interrupts the wait.
func (that *UI) Run(ctx context.Context, coordinator *session.Coordinator) error {
	that.Render(coordinator.Snapshot())
	fmt.Fprintln(that.out, "commands: <cell> | mode humans|bot | side X|O | size 3..5 | reset | restart | quit")

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}

			if quit := that.handleCommand(coordinator, line); quit {
				return nil
			}
		}
	}
}

func (that *UI) handleCommand(coordinator *session.Coordinator, line string) bool {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "q", "exit":
		return true
	case "reset":
		coordinator.ResetRound()
	case "restart":
		coordinator.ResetAll()
	case "mode":
		that.handleMode(coordinator, fields)
	case "side":
		that.handleSide(coordinator, fields)
	case "size":
		that.handleSize(coordinator, fields)
	default:
		that.handleMove(coordinator, fields[0])
	}

	return false
}

func (that *UI) handleMode(coordinator *session.Coordinator, fields []string) {
	if len(fields) != 2 || (fields[1] != session.ModeHumans && fields[1] != session.ModeWithBot) {
		fmt.Fprintln(that.out, "usage: mode humans|bot")
		return
	}

	coordinator.SetMode(fields[1])
}

func (that *UI) handleSide(coordinator *session.Coordinator, fields []string) {
	if len(fields) != 2 {
		fmt.Fprintln(that.out, "usage: side X|O")
		return
	}

	switch strings.ToUpper(fields[1]) {
	case engine.MarkX:
		coordinator.SetBotMark(engine.MarkX)
	case engine.MarkO:
		coordinator.SetBotMark(engine.MarkO)
	default:
		fmt.Fprintln(that.out, "usage: side X|O")
	}
}

func (that *UI) handleSize(coordinator *session.Coordinator, fields []string) {
	if len(fields) != 2 {
		fmt.Fprintf(that.out, "usage: size %d..%d\n", minMenuSize, maxMenuSize)
		return
	}

	size, err := strconv.Atoi(fields[1])
	if err != nil || size < minMenuSize || size > maxMenuSize {
		fmt.Fprintf(that.out, "usage: size %d..%d\n", minMenuSize, maxMenuSize)
		return
	}

	coordinator.SetBoardSize(size)
}

func (that *UI) handleMove(coordinator *session.Coordinator, field string) {
	cell, err := strconv.Atoi(field)
	if err != nil {
		fmt.Fprintf(that.out, "unknown command %q\n", field)
		return
	}

	snapshot := coordinator.Snapshot()
	if cell < 0 || cell >= len(snapshot.Board.Cells) {
		fmt.Fprintf(that.out, "cell must be between 0 and %d\n", len(snapshot.Board.Cells)-1)
		return
	}

	if snapshot.Mode == session.ModeWithBot && snapshot.IsBotTurn() {
		fmt.Fprintln(that.out, "wait for the bot to move")
		return
	}

	err = coordinator.PlayCell(cell)
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrCellOccupied):
		fmt.Fprintln(that.out, "that cell is taken")
	case errors.Is(err, apperror.ErrGameFinished):
		fmt.Fprintln(that.out, "round is over. type 'reset' for another")
	default:
		fmt.Fprintf(that.out, "move failed: %v\n", err)
	}
}
