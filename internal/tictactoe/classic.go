package tictactoe

import "github.com/rocketscienceinc/tictactoe-solver/internal/entity"

// Classic is ordinary tic-tac-toe: place a mark on any empty cell.
type Classic struct{}

func (Classic) Name() string {
	return VariantClassic
}

func (Classic) Transitions(state entity.State) []entity.State {
	if state.Winner() != entity.EmptyCell {
		return nil
	}

	placed := additions(state)

	boards := make([]entity.Board, 0, len(placed))
	for _, p := range placed {
		boards = append(boards, p.board)
	}

	return successors(state, boards)
}
