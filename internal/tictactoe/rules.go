package tictactoe

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	VariantClassic = "classic"
	VariantRoman   = "roman"
)

// Rules produces the successors of a game state.
type Rules interface {
	Name() string

	// Transitions returns the distinct canonical successors of state, sorted
	// by id. A won state has none.
	Transitions(state entity.State) []entity.State
}

// NewRules - returns the rules registered under variant.
func NewRules(variant string) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(variant)) {
	case VariantClassic:
		return Classic{}, nil
	case VariantRoman:
		return Roman{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidVariant, variant)
	}
}

// Variants lists every name NewRules accepts.
func Variants() []string {
	return []string{VariantClassic, VariantRoman}
}

type placement struct {
	cell  int
	board entity.Board
}

// additions - every board reachable by putting the mover's mark on an empty cell.
func additions(state entity.State) []placement {
	mark := state.Mover()

	result := make([]placement, 0, entity.Cells)
	for i, cell := range state.Board {
		if cell != entity.EmptyCell {
			continue
		}

		result = append(result, placement{cell: i, board: place(state.Board, i, mark)})
	}

	return result
}

// place returns board with cell idx set to mark. Callers take idx from ranging
// over a board, so an out of range index is a programming error.
func place(board entity.Board, idx int, mark entity.Cell) entity.Board {
	next, err := board.ReplaceAt(idx, mark)
	if err != nil {
		panic(err)
	}

	return next
}

// successors canonicalizes boards, hands the turn over and drops duplicates.
func successors(state entity.State, boards []entity.Board) []entity.State {
	seen := make(map[entity.State]struct{}, len(boards))
	result := make([]entity.State, 0, len(boards))

	for _, board := range boards {
		next := entity.NewState(board, !state.XTurn)
		if _, ok := seen[next]; ok {
			continue
		}

		seen[next] = struct{}{}
		result = append(result, next)
	}

	slices.SortFunc(result, func(a, b entity.State) int {
		return strings.Compare(a.ID(), b.ID())
	})

	return result
}
