package graph

import "github.com/rocketscienceinc/tictactoe-solver/internal/entity"

const (
	white = iota
	grey
	black
)

type frame struct {
	state entity.State
	next  int
}

// HasCycle reports whether some state can reach itself. It runs a depth-first
// search from the root with white/grey/black marking: an edge into a grey
// state closes a cycle.
func (that *Graph) HasCycle() bool {
	color := make(map[entity.State]int, len(that.edges))

	stack := []frame{{state: that.root}}
	color[that.root] = grey

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := that.edges[top.state]

		if top.next == len(children) {
			color[top.state] = black
			stack = stack[:len(stack)-1]
			continue
		}

		child := children[top.next]
		top.next++

		switch color[child] {
		case grey:
			return true
		case white:
			color[child] = grey
			stack = append(stack, frame{state: child})
		}
	}

	return false
}

// InfinitePlay returns the states from which a never-ending line of play
// exists, i.e. the states that can reach a cycle. States are peeled off from
// the terminals backwards: a state is finite once all its successors are.
// Whatever is left over can reach a cycle.
func (that *Graph) InfinitePlay() map[entity.State]struct{} {
	pending := make(map[entity.State]int, len(that.edges))
	parents := make(map[entity.State][]entity.State, len(that.edges))

	var queue []entity.State
	for state, children := range that.edges {
		pending[state] = len(children)
		if len(children) == 0 {
			queue = append(queue, state)
		}

		for _, child := range children {
			parents[child] = append(parents[child], state)
		}
	}

	finite := make(map[entity.State]struct{}, len(that.edges))
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		finite[state] = struct{}{}

		for _, parent := range parents[state] {
			pending[parent]--
			if pending[parent] == 0 {
				queue = append(queue, parent)
			}
		}
	}

	result := make(map[entity.State]struct{}, len(that.edges)-len(finite))
	for state := range that.edges {
		if _, ok := finite[state]; !ok {
			result[state] = struct{}{}
		}
	}

	return result
}
