package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) Board {
	t.Helper()

	board, err := ParseBoard(rows)
	require.NoError(t, err)

	return board
}

func TestInitialState(t *testing.T) {
	// Given: the initial state
	board := InitialState()

	// Then: all nine cells are empty and X moves first
	assert.Equal(t, Board{}, board)
	assert.Len(t, LegalMoves(board), Size*Size)
	assert.Equal(t, X, TurnOwner(board))
}

func TestBoard_CopyIsIndependent(t *testing.T) {
	// Given: a board and a copy of it
	original := mustParse(t, "X..", "...", "...")
	clone := original

	// When: the copy is modified
	clone[1][1] = O

	// Then: the original is untouched and the boards differ
	assert.Equal(t, Empty, original[1][1])
	assert.NotEqual(t, original, clone)
}

func TestParseBoard(t *testing.T) {
	t.Run("Parses rows", func(t *testing.T) {
		// When: parsing a mixed board
		board, err := ParseBoard([]string{"Xo.", " x_", "..-"})

		// Then: the marks land in the right cells
		require.NoError(t, err)
		expected := Board{
			{X, O, Empty},
			{Empty, X, Empty},
			{Empty, Empty, Empty},
		}
		assert.Equal(t, expected, board)
		assert.Equal(t, []string{"XO.", ".X.", "..."}, board.Rows())
		assert.Equal(t, "XO.\n.X.\n...", board.String())
	})

	t.Run("Rejects malformed input", func(t *testing.T) {
		tests := map[string][]string{
			"too few rows":      {"...", "..."},
			"short row":         {"...", "..", "..."},
			"unknown symbol":    {"..Z", "...", "..."},
			"O ahead of X":      {"O..", "...", "..."},
			"X two moves ahead": {"XX.", "...", "..."},
		}

		for name, rows := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseBoard(rows)
				assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
			})
		}
	})
}

func TestParseMove(t *testing.T) {
	t.Run("Accepts spaces and commas", func(t *testing.T) {
		for _, input := range []string{"1 2", " 1,2 ", "1, 2"} {
			move, err := ParseMove(input)
			require.NoError(t, err)
			assert.Equal(t, Move{Row: 1, Col: 2}, move)
		}
	})

	t.Run("Rejects bad input", func(t *testing.T) {
		for _, input := range []string{"", "1", "a b", "1 2 3", "3 0", "0 -1"} {
			_, err := ParseMove(input)
			assert.ErrorIs(t, err, apperror.ErrIllegalMove, input)
		}
	})
}
