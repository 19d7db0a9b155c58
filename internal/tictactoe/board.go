package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const Size = 3

type Mark string

const (
	X     Mark = "X"
	O     Mark = "O"
	Empty Mark = ""
)

// Board is a value type: assignment copies every cell, and == compares them.
type Board [Size][Size]Mark

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) Valid() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// InitialState - returns the empty board.
func InitialState() Board {
	return Board{}
}

// String renders the board as three lines, '.' for empty cells.
func (that Board) String() string {
	return strings.Join(that.Rows(), "\n")
}

// Rows - returns the board as three strings of "X", "O" and ".".
func (that Board) Rows() []string {
	rows := make([]string, 0, Size)

	for _, row := range that {
		var sb strings.Builder
		for _, cell := range row {
			if cell == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(string(cell))
		}
		rows = append(rows, sb.String())
	}

	return rows
}

// ParseBoard - builds a board from three rows of "X", "O" and "." (or space).
// Mark counts must be reachable by alternating play from the empty board.
func ParseBoard(rows []string) (Board, error) {
	var board Board

	if len(rows) != Size {
		return board, fmt.Errorf("%w: expected %d rows, got %d", apperror.ErrInvalidBoard, Size, len(rows))
	}

	for i, row := range rows {
		if len(row) != Size {
			return board, fmt.Errorf("%w: row %d has %d cells", apperror.ErrInvalidBoard, i, len(row))
		}

		for j := range Size {
			switch c := row[j]; c {
			case 'X', 'x':
				board[i][j] = X
			case 'O', 'o':
				board[i][j] = O
			case '.', ' ', '-', '_':
				board[i][j] = Empty
			default:
				return board, fmt.Errorf("%w: unexpected cell %q at (%d,%d)", apperror.ErrInvalidBoard, c, i, j)
			}
		}
	}

	if diff := board.count(X) - board.count(O); diff != 0 && diff != 1 {
		return board, fmt.Errorf("%w: X count minus O count is %d", apperror.ErrInvalidBoard, diff)
	}

	return board, nil
}

// ParseMove - parses "row col" or "row,col".
func ParseMove(s string) (Move, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("%w: expected \"row col\", got %q", apperror.ErrIllegalMove, s)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Move{}, fmt.Errorf("%w: bad row: %w", apperror.ErrIllegalMove, err)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Move{}, fmt.Errorf("%w: bad column: %w", apperror.ErrIllegalMove, err)
	}

	move := Move{Row: row, Col: col}
	if !move.Valid() {
		return Move{}, fmt.Errorf("%w: %s is off the board", apperror.ErrIllegalMove, move)
	}

	return move, nil
}

func (that Board) count(mark Mark) int {
	n := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				n++
			}
		}
	}

	return n
}
