package tictactoe

import "github.com/rocketscienceinc/tictactoe-solver/internal/entity"

// MaxTokens is how many marks each side may keep on the board in the roman variant.
const MaxTokens = 3

// Roman caps each side at MaxTokens marks: a player who already has that many
// places a new mark and then takes one of their older marks off the board.
type Roman struct{}

func (Roman) Name() string {
	return VariantRoman
}

func (Roman) Transitions(state entity.State) []entity.State {
	if state.Winner() != entity.EmptyCell {
		return nil
	}

	placed := additions(state)
	mark := state.Mover()

	if tokens(state.Board, mark) != MaxTokens {
		boards := make([]entity.Board, 0, len(placed))
		for _, p := range placed {
			boards = append(boards, p.board)
		}

		return successors(state, boards)
	}

	boards := make([]entity.Board, 0, len(placed)*MaxTokens)
	for _, p := range placed {
		for i, cell := range p.board {
			if cell != mark || i == p.cell {
				continue
			}

			boards = append(boards, place(p.board, i, entity.EmptyCell))
		}
	}

	return successors(state, boards)
}

func tokens(board entity.Board, mark entity.Cell) int {
	xs, os := board.Counts()
	if mark == entity.PlayerX {
		return xs
	}

	return os
}
