package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gameWithBoard(t *testing.T, rows ...string) *Game {
	t.Helper()

	board, err := tictactoe.ParseBoard(rows)
	require.NoError(t, err)

	game := NewGame()
	game.Board = board
	game.UpdateGameState()

	return game
}

func TestNewGame(t *testing.T) {
	// Given: two new games
	first, second := NewGame(), NewGame()

	// Then: both start empty with X to move and distinct IDs
	assert.Equal(t, tictactoe.InitialState(), first.Board)
	assert.Equal(t, tictactoe.X, first.Turn)
	assert.Equal(t, StatusOngoing, first.Status)
	assert.True(t, first.IsOngoing())
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("Updates game state when Player X wins", func(t *testing.T) {
		// Given: a game where Player X has a winning combination
		game := gameWithBoard(t, "XXX", "OO.", "...")

		// Then: the game should be finished with Player X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, "X", game.Winner)
		assert.Equal(t, tictactoe.Empty, game.Turn)
	})

	t.Run("Updates game state when the game is a tie", func(t *testing.T) {
		// Given: a game that ended in a tie
		game := gameWithBoard(t, "XOX", "XOO", "OXX")

		// Then: the game should be finished with a tie
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
		assert.Equal(t, tictactoe.Empty, game.Turn)
	})

	t.Run("Game remains ongoing when there is no winner or tie", func(t *testing.T) {
		// Given: a game that is still ongoing
		game := gameWithBoard(t, "XO.", ".X.", "..O")

		// Then: the game should remain ongoing with X to move
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Empty(t, game.Winner)
		assert.Equal(t, tictactoe.X, game.Turn)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game := NewGame()

		// When: Player X makes a valid turn
		err := game.MakeTurn(tictactoe.X, tictactoe.Move{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: The board reflects the turn and player turn switches
		assert.Equal(t, tictactoe.X, game.Board[0][0])
		assert.Equal(t, tictactoe.O, game.Turn)
		assert.Equal(t, []Turn{{Mark: tictactoe.X, Move: tictactoe.Move{Row: 0, Col: 0}}}, game.Moves)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell (0,0) is occupied by Player X
		game := NewGame()
		require.NoError(t, game.MakeTurn(tictactoe.X, tictactoe.Move{Row: 0, Col: 0}))
		before := game.Board

		// When: Player O tries to make a move to the same cell
		err := game.MakeTurn(tictactoe.O, tictactoe.Move{Row: 0, Col: 0})

		// Then: An ErrIllegalMove error should be returned and the board stays unchanged
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, before, game.Board)
		assert.Equal(t, tictactoe.O, game.Turn)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game := NewGame()

		// When: Player O tries to make a move
		err := game.MakeTurn(tictactoe.O, tictactoe.Move{Row: 0, Col: 1})

		// Then: An ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, tictactoe.InitialState(), game.Board)
	})

	t.Run("Error on Invalid Cell", func(t *testing.T) {
		game := NewGame()

		err := game.MakeTurn(tictactoe.X, tictactoe.Move{Row: 3, Col: 0})

		assert.ErrorIs(t, err, apperror.ErrIllegalMove)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where player X has already won
		game := gameWithBoard(t, "XXX", "OO.", "...")

		// When: player O tries to make a move after the game is over
		err := game.MakeTurn(tictactoe.O, tictactoe.Move{Row: 1, Col: 2})

		// Then: ErrGameFinished should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winning Turn Finishes the Game", func(t *testing.T) {
		// Given: X one move from winning row 0
		game := gameWithBoard(t, "XX.", "OO.", "...")

		// When: X completes the row
		require.NoError(t, game.MakeTurn(tictactoe.X, tictactoe.Move{Row: 0, Col: 2}))

		// Then: the game is finished and X is the winner
		assert.True(t, game.IsFinished())
		assert.Equal(t, "X", game.Winner)
	})
}
