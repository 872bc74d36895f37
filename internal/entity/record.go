package entity

// Verdict is the game-theoretic value of a state under perfect play.
type Verdict string

const (
	VerdictXWin Verdict = "x_win"
	VerdictOWin Verdict = "o_win"
	// VerdictDraw - nobody can force a win and every line of play terminates.
	VerdictDraw Verdict = "draw"
	// VerdictPerpetual - nobody can force a win and play may go on forever.
	VerdictPerpetual Verdict = "perpetual"
)

// StateRecord is the solved form of one state, as stored and served.
type StateRecord struct {
	ID             string   `json:"id"`
	Board          string   `json:"board"`
	XTurn          bool     `json:"x_turn"`
	Winner         string   `json:"winner,omitempty"`
	Verdict        Verdict  `json:"verdict"`
	XWinGuaranteed bool     `json:"x_win_guaranteed"`
	OWinGuaranteed bool     `json:"o_win_guaranteed"`
	Successors     []string `json:"successors,omitempty"`
}

// Summary holds the aggregate numbers of one solved variant.
type Summary struct {
	Variant     string  `json:"variant"`
	States      int     `json:"states"`
	Edges       int     `json:"edges"`
	Terminals   int     `json:"terminals"`
	XWins       int     `json:"x_wins"`
	OWins       int     `json:"o_wins"`
	Red         int     `json:"red"`
	Blue        int     `json:"blue"`
	Passes      int     `json:"passes"`
	HasCycle    bool    `json:"has_cycle"`
	RootVerdict Verdict `json:"root_verdict"`
}
