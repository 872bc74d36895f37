package entity

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

// Cell is the content of one square of the board.
type Cell byte

const (
	PlayerX   Cell = 'X'
	PlayerO   Cell = 'O'
	EmptyCell Cell = 'E'
)

const (
	Size  = 3
	Cells = Size * Size
)

var (
	// WinCombos - every row, column and diagonal, as sorted index triples.
	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}

	// symmetries - the dihedral group of the square as index permutations:
	// the image board takes cell symmetries[k][i] of the source at index i.
	symmetries = [8][Cells]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8}, // identity
		{6, 7, 8, 3, 4, 5, 0, 1, 2}, // up-down
		{2, 1, 0, 5, 4, 3, 8, 7, 6}, // left-right
		{0, 3, 6, 1, 4, 7, 2, 5, 8}, // main diagonal
		{8, 5, 2, 7, 4, 1, 6, 3, 0}, // anti-diagonal
		{6, 3, 0, 7, 4, 1, 8, 5, 2}, // 90 degrees
		{8, 7, 6, 5, 4, 3, 2, 1, 0}, // 180 degrees
		{2, 5, 8, 1, 4, 7, 0, 3, 6}, // 270 degrees
	}
)

func (that Cell) String() string {
	return string([]byte{byte(that)})
}

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Board is a 3x3 grid stored in row-major order. It is a value type: every
// transformation returns a new board.
type Board [Cells]Cell

// EmptyBoard returns a board with every cell empty.
func EmptyBoard() Board {
	var board Board
	for i := range board {
		board[i] = EmptyCell
	}

	return board
}

// ParseBoard - reads a board from its 9-token form, e.g. "XEOEXEEEO".
func ParseBoard(raw string) (Board, error) {
	var board Board

	if len(raw) != Cells {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, Cells, len(raw))
	}

	for i := 0; i < Cells; i++ {
		switch cell := Cell(raw[i]); cell {
		case PlayerX, PlayerO, EmptyCell:
			board[i] = cell
		default:
			return board, fmt.Errorf("%w: unexpected token %q at %d", apperror.ErrInvalidBoard, raw[i], i)
		}
	}

	return board, nil
}

// Unflatten builds a board from its rows.
func Unflatten(rows [Size][Size]Cell) Board {
	var board Board
	for r, row := range rows {
		copy(board[r*Size:(r+1)*Size], row[:])
	}

	return board
}

// Flatten returns the nine cells in row-major order.
func (that Board) Flatten() []Cell {
	return append([]Cell(nil), that[:]...)
}

// Rows splits the board into its three rows.
func (that Board) Rows() [Size][Size]Cell {
	var rows [Size][Size]Cell
	for r := range rows {
		copy(rows[r][:], that[r*Size:(r+1)*Size])
	}

	return rows
}

func (that Board) At(idx int) (Cell, error) {
	if idx < 0 || idx >= Cells {
		return EmptyCell, fmt.Errorf("%w: cell %d", apperror.ErrIndexOutOfRange, idx)
	}

	return that[idx], nil
}

// ReplaceAt returns a copy of the board with one cell replaced.
func (that Board) ReplaceAt(idx int, cell Cell) (Board, error) {
	if idx < 0 || idx >= Cells {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrIndexOutOfRange, idx)
	}

	that[idx] = cell

	return that, nil
}

// Symmetries returns the 8 images of the board under rotations and reflections,
// starting with the board itself.
func (that Board) Symmetries() [8]Board {
	var images [8]Board
	for k, perm := range symmetries {
		for i, src := range perm {
			images[k][i] = that[src]
		}
	}

	return images
}

// Canonicalize picks the smallest symmetry image under lexicographic order of
// the cell tokens. Every board stored in a graph goes through this function.
func (that Board) Canonicalize() Board {
	images := that.Symmetries()

	best := images[0]
	for _, image := range images[1:] {
		if image.Less(best) {
			best = image
		}
	}

	return best
}

// Less orders boards lexicographically by cell token.
func (that Board) Less(other Board) bool {
	for i := range that {
		if that[i] != other[i] {
			return that[i] < other[i]
		}
	}

	return false
}

// Counts returns how many X and O tokens are on the board.
func (that Board) Counts() (int, int) {
	var xs, os int
	for _, cell := range that {
		switch cell {
		case PlayerX:
			xs++
		case PlayerO:
			os++
		}
	}

	return xs, os
}

// EmptyCount returns the number of empty squares.
func (that Board) EmptyCount() int {
	xs, os := that.Counts()
	return Cells - xs - os
}

// InferredTurn reports whose move it would be if X always moves first and the
// players strictly alternate. Game states carry an explicit turn flag which
// takes precedence over this.
func (that Board) InferredTurn() Cell {
	xs, os := that.Counts()
	if xs == os {
		return PlayerX
	}

	return PlayerO
}

// Winner returns the mark whose cells form exactly one of the WinCombos, or
// EmptyCell. A side with more than three marks never wins, even when a full
// line is among them.
func (that Board) Winner() Cell {
	for _, player := range [2]Cell{PlayerX, PlayerO} {
		cells := that.occupied(player)
		if len(cells) != len(WinCombos[0]) {
			continue
		}

		if slices.Contains(WinCombos[:], [3]int(cells)) {
			return player
		}
	}

	return EmptyCell
}

// occupied lists the indices holding player's mark in ascending order.
func (that Board) occupied(player Cell) []int {
	var cells []int
	for i, cell := range that {
		if cell == player {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(Cells)

	for _, cell := range that {
		sb.WriteByte(byte(cell))
	}

	return sb.String()
}
