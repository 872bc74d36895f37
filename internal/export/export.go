package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
)

const (
	prefix = "var graph = "
	suffix = ";"
)

type Node struct {
	ID             string  `json:"id"`
	BoardState     string  `json:"board_state"`
	XTurn          bool    `json:"x_turn"`
	XWinGuaranteed bool    `json:"x_win_guaranteed"`
	OWinGuaranteed bool    `json:"o_win_guaranteed"`
	XWin           bool    `json:"x_win"`
	OWin           bool    `json:"o_win"`
	EmptySquares   int     `json:"empty_squares"`
	XDefaultTree   float64 `json:"x_default_tree"`
	YDefaultTree   float64 `json:"y_default_tree"`
}

type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Build turns a solved graph into the visualisation document. Nodes and edges
// follow the graph's id order.
func Build(coloring *solver.Coloring) *Document {
	g := coloring.Graph()
	states := g.States()
	positions := Layout(states)

	doc := &Document{
		Nodes: make([]Node, 0, len(states)),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}

	for i, state := range states {
		id := state.ID()
		winner := state.Winner()
		empty := state.Board.EmptyCount()

		doc.Nodes = append(doc.Nodes, Node{
			ID:             id,
			BoardState:     state.Board.String(),
			XTurn:          state.XTurn,
			XWinGuaranteed: coloring.IsForcedXWin(state),
			OWinGuaranteed: coloring.IsForcedOWin(state),
			XWin:           winner == entity.PlayerX,
			OWin:           winner == entity.PlayerO,
			EmptySquares:   empty,
			XDefaultTree:   positions[i],
			YDefaultTree:   1 - float64(empty)/10.0,
		})

		for _, child := range g.Successors(state) {
			target := child.ID()
			doc.Edges = append(doc.Edges, Edge{
				ID:     id + target,
				Source: id,
				Target: target,
			})
		}
	}

	return doc
}

// Layout spreads the states of each level (same number of empty squares)
// across [0, 1) and centres the level around 0.5. The result is indexed like
// states.
func Layout(states []entity.State) []float64 {
	sizes := make(map[int]int)
	for _, state := range states {
		sizes[state.Board.EmptyCount()]++
	}

	seen := make(map[int]int)
	result := make([]float64, len(states))

	for i, state := range states {
		level := state.Board.EmptyCount()
		n := sizes[level]
		k := seen[level]
		seen[level]++

		step := 1 / float64(n)
		p := float64(k) * step

		if n%2 == 0 {
			result[i] = p + step/2
		} else {
			result[i] = p + (0.5 - float64(n/2)*step)
		}
	}

	return result
}

// Encode writes the document as a JavaScript assignment, "var graph = {...};".
func Encode(w io.Writer, doc *Document) error {
	body, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode graph: %w", err)
	}

	for _, chunk := range [][]byte{[]byte(prefix), body, []byte(suffix)} {
		if _, err = w.Write(chunk); err != nil {
			return fmt.Errorf("failed to write graph: %w", err)
		}
	}

	return nil
}

// WriteFile - encodes the solved graph into path, replacing the file.
func WriteFile(path string, coloring *solver.Coloring) (doc *Document, err error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("can't create %s: %w", path, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			doc, err = nil, fmt.Errorf("can't close %s: %w", path, closeErr)
		}
	}()

	doc = Build(coloring)

	writer := bufio.NewWriter(file)
	if err = Encode(writer, doc); err != nil {
		return nil, err
	}

	if err = writer.Flush(); err != nil {
		return nil, fmt.Errorf("can't flush %s: %w", path, err)
	}

	return doc, nil
}
