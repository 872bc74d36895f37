package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

func mustBoard(t *testing.T, raw string) Board {
	t.Helper()

	board, err := ParseBoard(raw)
	require.NoError(t, err)

	return board
}

// sampleBoards - a handful of boards with no symmetry of their own.
var sampleBoards = []string{
	"EEEEEEEEE",
	"XEEEEEEEE",
	"EXEEEEEEE",
	"EEEEXEEEE",
	"XOEEEEEEE",
	"XEEEOEEXE",
	"XOXEOEEEX",
	"OXEXOEEEX",
	"XXXOOEEEE",
	"OXOXXOXOX",
}

func TestParseBoard(t *testing.T) {
	t.Run("Parses a valid board", func(t *testing.T) {
		// When: parsing a board string
		board, err := ParseBoard("XOEEEEEEE")

		// Then: the cells should be in row-major order
		require.NoError(t, err)
		assert.Equal(t, PlayerX, board[0])
		assert.Equal(t, PlayerO, board[1])
		assert.Equal(t, EmptyCell, board[8])
		assert.Equal(t, "XOEEEEEEE", board.String())
	})

	t.Run("Rejects wrong length", func(t *testing.T) {
		// When: parsing a short string
		_, err := ParseBoard("XO")

		// Then: ErrInvalidBoard should be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Rejects unknown tokens", func(t *testing.T) {
		// When: parsing a string with a foreign token
		_, err := ParseBoard("XOEEEEEEZ")

		// Then: ErrInvalidBoard should be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})
}

func TestBoard_FlattenUnflatten(t *testing.T) {
	// Given: a board
	board := mustBoard(t, "XOEEXEOEX")

	// When: splitting it into rows and joining them again
	rows := board.Rows()
	restored := Unflatten(rows)

	// Then: the rows should follow row-major order and round-trip
	assert.Equal(t, [Size]Cell{PlayerX, PlayerO, EmptyCell}, rows[0])
	assert.Equal(t, [Size]Cell{EmptyCell, PlayerX, EmptyCell}, rows[1])
	assert.Equal(t, [Size]Cell{PlayerO, EmptyCell, PlayerX}, rows[2])
	assert.Equal(t, board, restored)
	assert.Equal(t, board[:], board.Flatten())
}

func TestBoard_ReplaceAt(t *testing.T) {
	t.Run("Returns a new board", func(t *testing.T) {
		// Given: an empty board
		board := EmptyBoard()

		// When: placing X in the centre
		next, err := board.ReplaceAt(4, PlayerX)

		// Then: only the copy should change
		require.NoError(t, err)
		assert.Equal(t, PlayerX, next[4])
		assert.Equal(t, EmptyCell, board[4])
	})

	t.Run("Error on index greater than range", func(t *testing.T) {
		// When: replacing a cell outside the board
		_, err := EmptyBoard().ReplaceAt(9, PlayerX)

		// Then: ErrIndexOutOfRange should be returned
		assert.ErrorIs(t, err, apperror.ErrIndexOutOfRange)
	})

	t.Run("Error on negative index", func(t *testing.T) {
		// When: reading a negative cell index
		_, err := EmptyBoard().At(-1)

		// Then: ErrIndexOutOfRange should be returned
		assert.ErrorIs(t, err, apperror.ErrIndexOutOfRange)
	})
}

func TestBoard_Canonicalize(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		for _, raw := range sampleBoards {
			board := mustBoard(t, raw)
			once := board.Canonicalize()

			assert.Equal(t, once, once.Canonicalize(), raw)
		}
	})

	t.Run("Invariant under every symmetry", func(t *testing.T) {
		for _, raw := range sampleBoards {
			board := mustBoard(t, raw)
			want := board.Canonicalize()

			for _, image := range board.Symmetries() {
				assert.Equal(t, want, image.Canonicalize(), raw)
			}
		}
	})

	t.Run("All corners are equivalent", func(t *testing.T) {
		// Given: X alone in each corner
		topLeft := mustBoard(t, "XEEEEEEEE")
		topRight := mustBoard(t, "EEXEEEEEE")
		bottomLeft := mustBoard(t, "EEEEEEXEE")
		bottomRight := mustBoard(t, "EEEEEEEEX")

		// Then: they share a canonical representative
		want := topLeft.Canonicalize()
		assert.Equal(t, want, topRight.Canonicalize())
		assert.Equal(t, want, bottomLeft.Canonicalize())
		assert.Equal(t, want, bottomRight.Canonicalize())

		// And: the representative is the smallest token sequence
		assert.Equal(t, "EEEEEEEEX", want.String())
	})

	t.Run("Corner and edge are not equivalent", func(t *testing.T) {
		corner := mustBoard(t, "XEEEEEEEE")
		edge := mustBoard(t, "EXEEEEEEE")

		assert.NotEqual(t, corner.Canonicalize(), edge.Canonicalize())
	})
}

func TestBoard_Symmetries(t *testing.T) {
	// Given: a board with no symmetry of its own
	board := mustBoard(t, "XOEEEEEEE")

	// When: computing its images
	images := board.Symmetries()

	// Then: the first is the identity and all 8 are distinct
	assert.Equal(t, board, images[0])

	seen := make(map[Board]struct{})
	for _, image := range images {
		seen[image] = struct{}{}
	}
	assert.Len(t, seen, 8)
}

func TestBoard_Winner(t *testing.T) {
	t.Run("X wins on top row", func(t *testing.T) {
		board := mustBoard(t, "XXXEEEEEE")
		assert.Equal(t, PlayerX, board.Winner())
	})

	t.Run("O wins on anti-diagonal", func(t *testing.T) {
		board := mustBoard(t, "XXOXOEOEE")
		assert.Equal(t, PlayerO, board.Winner())
	})

	t.Run("Line among more than three tokens is not a win", func(t *testing.T) {
		// Given: four X marks that include the top row
		board := mustBoard(t, "XXXXOOEOE")

		// Then: X has not won, since its cells are not exactly a line
		assert.Equal(t, EmptyCell, board.Winner())
	})

	t.Run("Five marks with two lines are not a win", func(t *testing.T) {
		board := mustBoard(t, "XOXOXOOXX")
		assert.Equal(t, EmptyCell, board.Winner())
	})

	t.Run("Three marks off a line are not a win", func(t *testing.T) {
		board := mustBoard(t, "XXEXEEEEE")
		assert.Equal(t, EmptyCell, board.Winner())
	})

	t.Run("No winner on a full drawn board", func(t *testing.T) {
		board := mustBoard(t, "XOXXOOOXX")
		assert.Equal(t, EmptyCell, board.Winner())
	})

	t.Run("Unchanged by canonicalization", func(t *testing.T) {
		for _, raw := range sampleBoards {
			board := mustBoard(t, raw)
			assert.Equal(t, board.Winner(), board.Canonicalize().Winner(), raw)
		}
	})
}

func TestBoard_InferredTurn(t *testing.T) {
	t.Run("X to move on equal counts", func(t *testing.T) {
		assert.Equal(t, PlayerX, mustBoard(t, "XOEEEEEEE").InferredTurn())
	})

	t.Run("O to move after X", func(t *testing.T) {
		assert.Equal(t, PlayerO, mustBoard(t, "XEEEEEEEE").InferredTurn())
	})
}

func TestBoard_Counts(t *testing.T) {
	xs, os := mustBoard(t, "XOXEOEEEX").Counts()

	assert.Equal(t, 3, xs)
	assert.Equal(t, 2, os)
	assert.Equal(t, 4, mustBoard(t, "XOXEOEEEX").EmptyCount())
}
