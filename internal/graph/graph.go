package graph

import (
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// Graph maps every state reachable from the root to its successors. It is
// read-only once Build returns.
type Graph struct {
	root  entity.State
	edges map[entity.State][]entity.State
	order []entity.State
}

func (that *Graph) Root() entity.State {
	return that.root
}

// States returns every state of the graph ordered by id.
func (that *Graph) States() []entity.State {
	return slices.Clone(that.order)
}

// Successors returns the successors of state, or nil for unknown and terminal states.
func (that *Graph) Successors(state entity.State) []entity.State {
	return that.edges[state]
}

func (that *Graph) Contains(state entity.State) bool {
	_, ok := that.edges[state]
	return ok
}

func (that *Graph) Len() int {
	return len(that.edges)
}

func (that *Graph) EdgeCount() int {
	count := 0
	for _, children := range that.edges {
		count += len(children)
	}

	return count
}

// Terminals returns the states without successors, ordered by id.
func (that *Graph) Terminals() []entity.State {
	var result []entity.State
	for _, state := range that.order {
		if len(that.edges[state]) == 0 {
			result = append(result, state)
		}
	}

	return result
}

func sortByID(states []entity.State) {
	slices.SortFunc(states, func(a, b entity.State) int {
		return strings.Compare(a.ID(), b.ID())
	})
}
