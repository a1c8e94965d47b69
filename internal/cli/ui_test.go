package cli

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localplay/tictactoe/internal/engine"
	"github.com/localplay/tictactoe/internal/session"
)

func testCoordinator(t *testing.T) *session.Coordinator {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	coordinator := session.NewCoordinator(logger, session.New(3, session.ModeHumans, engine.MarkO), 0, nil)
	t.Cleanup(coordinator.Stop)

	return coordinator
}

func TestUI_Render(t *testing.T) {
	t.Run("Shows title, marks and the score line", func(t *testing.T) {
		// Given: a session where X has played cell 0
		var out bytes.Buffer
		ui := New(strings.NewReader(""), &out, "Tic-Tac-Toe", "1.0.0")
		sess := session.New(3, session.ModeHumans, engine.MarkO).ApplyMove(0)

		// When: rendering
		ui.Render(sess)

		// Then: the screen carries the configured title and the state
		output := out.String()
		assert.Contains(t, output, "Tic-Tac-Toe (1.0.0)")
		assert.Contains(t, output, "X")
		assert.Contains(t, output, "score  X:0  O:0  draws:0")
		assert.Contains(t, output, "O to move")
	})
}

func TestUI_HandleCommand(t *testing.T) {
	t.Run("A cell number plays a move", func(t *testing.T) {
		// Given: a fresh two-humans game
		var out bytes.Buffer
		ui := New(strings.NewReader(""), &out, "t", "v")
		coordinator := testCoordinator(t)

		// When: typing a cell number
		quit := ui.handleCommand(coordinator, "4")

		// Then: the move lands and the loop keeps going
		assert.False(t, quit)
		assert.Equal(t, engine.MarkX, coordinator.Snapshot().Board.At(4))
	})

	t.Run("Occupied cell explains itself", func(t *testing.T) {
		// Given: cell 4 is taken
		var out bytes.Buffer
		ui := New(strings.NewReader(""), &out, "t", "v")
		coordinator := testCoordinator(t)
		require.NoError(t, coordinator.PlayCell(4))

		// When: trying it again
		ui.handleCommand(coordinator, "4")

		// Then: the player is told why nothing happened
		assert.Contains(t, out.String(), "that cell is taken")
	})

	t.Run("size switches the board shape", func(t *testing.T) {
		// Given: a 3x3 game
		var out bytes.Buffer
		ui := New(strings.NewReader(""), &out, "t", "v")
		coordinator := testCoordinator(t)

		// When: asking for a 5x5 board
		ui.handleCommand(coordinator, "size 5")

		// Then: the coordinator now holds a 5x5 board
		assert.Equal(t, 5, coordinator.Snapshot().Board.Size)
	})

	t.Run("Out-of-range sizes and cells are rejected in the shell", func(t *testing.T) {
		// Given: a 3x3 game
		var out bytes.Buffer
		ui := New(strings.NewReader(""), &out, "t", "v")
		coordinator := testCoordinator(t)

		// When: typing values the menu does not offer
		ui.handleCommand(coordinator, "size 9")
		ui.handleCommand(coordinator, "99")

		// Then: nothing reaches the core
		assert.Equal(t, 3, coordinator.Snapshot().Board.Size)
		assert.Contains(t, out.String(), "usage: size")
		assert.Contains(t, out.String(), "cell must be between")
	})

	t.Run("quit ends the loop", func(t *testing.T) {
		// Given: any game
		var out bytes.Buffer
		ui := New(strings.NewReader(""), &out, "t", "v")
		coordinator := testCoordinator(t)

		// When/Then: quit returns true
		assert.True(t, ui.handleCommand(coordinator, "quit"))
	})
}
