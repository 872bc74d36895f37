package solver

import (
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/graph"
)

// Coloring holds the forced-win sets of a solved graph: red states are forced
// wins for X, blue states forced wins for O.
type Coloring struct {
	graph    *graph.Graph
	red      map[entity.State]struct{}
	blue     map[entity.State]struct{}
	infinite map[entity.State]struct{}
	passes   int
}

// Solve runs the retrograde analysis to its least fixed point. Every pass
// walks all states reachable from the root and may only add to the red and
// blue sets; solving stops after the first pass that adds nothing.
func Solve(g *graph.Graph) *Coloring {
	coloring := &Coloring{
		graph: g,
		red:   make(map[entity.State]struct{}),
		blue:  make(map[entity.State]struct{}),
	}

	for {
		coloring.passes++
		if !coloring.paint() {
			break
		}
	}

	coloring.infinite = g.InfinitePlay()

	return coloring
}

// paint runs one pass and reports whether any state was newly coloured.
func (that *Coloring) paint() bool {
	changed := false

	visited := make(map[entity.State]struct{}, that.graph.Len())
	stack := []entity.State{that.graph.Root()}

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := visited[state]; ok {
			continue
		}
		visited[state] = struct{}{}

		if that.colorState(state) {
			changed = true
		}

		for _, child := range that.graph.Successors(state) {
			if _, ok := visited[child]; !ok {
				stack = append(stack, child)
			}
		}
	}

	return changed
}

func (that *Coloring) colorState(state entity.State) bool {
	if _, ok := that.red[state]; ok {
		return false
	}
	if _, ok := that.blue[state]; ok {
		return false
	}

	children := that.graph.Successors(state)
	winner := state.Winner()

	switch {
	case winner == entity.PlayerX || forced(children, that.red, state.XTurn):
		that.red[state] = struct{}{}
		return true
	case winner == entity.PlayerO || forced(children, that.blue, !state.XTurn):
		that.blue[state] = struct{}{}
		return true
	}

	return false
}

// forced reports whether the side owning set wins from a state with the given
// successors: on its own move one winning successor is enough, on the
// opponent's move every successor must already be won.
func forced(children []entity.State, set map[entity.State]struct{}, ownMove bool) bool {
	if len(children) == 0 {
		return false
	}

	all := true
	for _, child := range children {
		_, ok := set[child]
		if ok && ownMove {
			return true
		}
		all = all && ok
	}

	return all
}

func (that *Coloring) IsForcedXWin(state entity.State) bool {
	_, ok := that.red[state]
	return ok
}

func (that *Coloring) IsForcedOWin(state entity.State) bool {
	_, ok := that.blue[state]
	return ok
}

// Verdict classifies a state. Uncoloured states are split into draws and
// perpetual states by whether a never-ending line of play starts there.
func (that *Coloring) Verdict(state entity.State) entity.Verdict {
	switch {
	case that.IsForcedXWin(state):
		return entity.VerdictXWin
	case that.IsForcedOWin(state):
		return entity.VerdictOWin
	}

	if _, ok := that.infinite[state]; ok {
		return entity.VerdictPerpetual
	}

	return entity.VerdictDraw
}

func (that *Coloring) Red() int {
	return len(that.red)
}

func (that *Coloring) Blue() int {
	return len(that.blue)
}

// Passes is the number of sweeps it took to reach the fixed point, including
// the final one that changed nothing.
func (that *Coloring) Passes() int {
	return that.passes
}

func (that *Coloring) Graph() *graph.Graph {
	return that.graph
}
