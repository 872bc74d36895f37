package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

// State is a board together with whose turn it is. States are comparable and
// are used directly as map keys, so graph code only ever stores canonical ones.
type State struct {
	Board Board
	XTurn bool
}

// StartState - empty board, X to move.
func StartState() State {
	return State{Board: EmptyBoard(), XTurn: true}
}

// NewState returns the canonical form of the given board and turn.
func NewState(board Board, xTurn bool) State {
	return State{Board: board.Canonicalize(), XTurn: xTurn}
}

// ParseStateID is the inverse of State.ID.
func ParseStateID(id string) (State, error) {
	if len(id) != Cells+1 {
		return State{}, fmt.Errorf("%w: state id %q", apperror.ErrInvalidBoard, id)
	}

	board, err := ParseBoard(id[:Cells])
	if err != nil {
		return State{}, fmt.Errorf("failed to parse state id: %w", err)
	}

	switch Cell(id[Cells]) {
	case PlayerX:
		return State{Board: board, XTurn: true}, nil
	case PlayerO:
		return State{Board: board, XTurn: false}, nil
	default:
		return State{}, fmt.Errorf("%w: unknown turn marker in %q", apperror.ErrInvalidBoard, id)
	}
}

// Mover returns the mark of the player to move.
func (that State) Mover() Cell {
	if that.XTurn {
		return PlayerX
	}

	return PlayerO
}

func (that State) Winner() Cell {
	return that.Board.Winner()
}

// Canonical reports whether the board is already the canonical representative.
func (that State) Canonical() bool {
	return that.Board == that.Board.Canonicalize()
}

// ID is the nine cell tokens followed by the mover's mark, e.g. "EEEEEEEEEX".
func (that State) ID() string {
	return that.Board.String() + that.Mover().String()
}

func (that State) String() string {
	return that.ID()
}
