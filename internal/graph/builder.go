package graph

import "github.com/rocketscienceinc/tictactoe-solver/internal/entity"

// Transitioner produces the successors of a state.
type Transitioner interface {
	Transitions(state entity.State) []entity.State
}

// Build expands every state reachable from root. The root is canonicalized
// first; the rules are expected to return canonical successors. Expansion uses
// an explicit stack and a visited set, so it terminates on cyclic games.
func Build(rules Transitioner, root entity.State) *Graph {
	root = entity.NewState(root.Board, root.XTurn)

	edges := make(map[entity.State][]entity.State)
	stack := []entity.State{root}

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, visited := edges[state]; visited {
			continue
		}

		children := rules.Transitions(state)
		edges[state] = children

		for _, child := range children {
			if _, visited := edges[child]; !visited {
				stack = append(stack, child)
			}
		}
	}

	order := make([]entity.State, 0, len(edges))
	for state := range edges {
		order = append(order, state)
	}
	sortByID(order)

	return &Graph{
		root:  root,
		edges: edges,
		order: order,
	}
}
