package render

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

const (
	colorRed  = "#d7263d"
	colorBlue = "#1b6ca8"
	colorGrey = "#8a8a8a"

	rowSeparator = "\n---------\n"
)

// Renderer draws states for the console, coloured by verdict.
type Renderer struct {
	profile termenv.Profile
}

// New - renderer for the given colour profile. termenv.Ascii disables colour.
func New(profile termenv.Profile) *Renderer {
	return &Renderer{profile: profile}
}

// NewForTerminal detects the colour support of stdout.
func NewForTerminal() *Renderer {
	return New(termenv.ColorProfile())
}

// State draws the board as three " | "-separated rows followed by the mover
// and the verdict. Empty cells are drawn as blanks.
func (that *Renderer) State(state entity.State, verdict entity.Verdict) string {
	rows := state.Board.Rows()

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, that.cell(cell))
		}
		lines = append(lines, strings.Join(cells, " | "))
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(lines, rowSeparator))
	sb.WriteString("\nTurn: ")
	sb.WriteString(state.Mover().String())
	sb.WriteString("\nVerdict: ")
	sb.WriteString(that.verdict(verdict))
	sb.WriteString("\n")

	return sb.String()
}

func (that *Renderer) cell(cell entity.Cell) string {
	switch cell {
	case entity.PlayerX:
		return that.profile.String(cell.String()).Foreground(that.profile.Color(colorRed)).Bold().String()
	case entity.PlayerO:
		return that.profile.String(cell.String()).Foreground(that.profile.Color(colorBlue)).Bold().String()
	default:
		return " "
	}
}

func (that *Renderer) verdict(verdict entity.Verdict) string {
	style := that.profile.String(string(verdict))

	switch verdict {
	case entity.VerdictXWin:
		style = style.Foreground(that.profile.Color(colorRed))
	case entity.VerdictOWin:
		style = style.Foreground(that.profile.Color(colorBlue))
	default:
		style = style.Foreground(that.profile.Color(colorGrey))
	}

	return style.String()
}
