package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/graph"
	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

type stateRepo interface {
	SaveAnalysis(ctx context.Context, summary *entity.Summary, records []*entity.StateRecord) error
	GetByID(ctx context.Context, variant, id string) (*entity.StateRecord, error)
	GetSummary(ctx context.Context, variant string) (*entity.Summary, error)
}

// Analysis is one solved variant.
type Analysis struct {
	Variant  string
	Coloring *solver.Coloring
	Summary  *entity.Summary
}

// Analyzer solves variants and answers lookups for the solved states. The
// repository is optional; without it analyses live in memory only.
type Analyzer struct {
	logger    *slog.Logger
	stateRepo stateRepo

	mu       sync.RWMutex
	analyses map[string]*Analysis
}

func NewAnalyzer(logger *slog.Logger, stateRepo stateRepo) *Analyzer {
	return &Analyzer{
		logger:    logger,
		stateRepo: stateRepo,
		analyses:  make(map[string]*Analysis),
	}
}

// Analyze - builds the graph for rules from the empty board, colours it and
// persists the result.
func (that *Analyzer) Analyze(ctx context.Context, rules tictactoe.Rules) (*Analysis, error) {
	log := that.logger.With("method", "Analyze", "variant", rules.Name())

	started := time.Now()
	g := graph.Build(rules, entity.StartState())
	log.Info("graph built", "states", g.Len(), "edges", g.EdgeCount(), "elapsed", time.Since(started))

	started = time.Now()
	coloring := solver.Solve(g)
	log.Info("graph colored", "passes", coloring.Passes(), "red", coloring.Red(), "blue", coloring.Blue(), "elapsed", time.Since(started))

	analysis := &Analysis{
		Variant:  rules.Name(),
		Coloring: coloring,
		Summary:  summarize(rules.Name(), coloring),
	}

	log.Info("analysis finished",
		"root_verdict", analysis.Summary.RootVerdict,
		"terminals", analysis.Summary.Terminals,
		"has_cycle", analysis.Summary.HasCycle,
	)

	if that.stateRepo != nil {
		if err := that.stateRepo.SaveAnalysis(ctx, analysis.Summary, analysis.Records()); err != nil {
			return nil, fmt.Errorf("failed to save analysis: %w", err)
		}

		log.Debug("analysis saved", "records", analysis.Summary.States)
	}

	that.mu.Lock()
	that.analyses[analysis.Variant] = analysis
	that.mu.Unlock()

	return analysis, nil
}

// Lookup - returns the solved record of a state id for a variant. The id may
// name any member of a symmetry class.
func (that *Analyzer) Lookup(ctx context.Context, variant, id string) (*entity.StateRecord, error) {
	rules, err := tictactoe.NewRules(variant)
	if err != nil {
		return nil, fmt.Errorf("failed to select rules: %w", err)
	}

	state, err := entity.ParseStateID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to parse state: %w", err)
	}
	state = entity.NewState(state.Board, state.XTurn)

	that.mu.RLock()
	analysis, ok := that.analyses[rules.Name()]
	that.mu.RUnlock()

	if ok {
		record := analysis.Record(state)
		if record == nil {
			return nil, fmt.Errorf("%w: %s", apperror.ErrStateNotFound, state.ID())
		}

		return record, nil
	}

	if that.stateRepo == nil {
		return nil, fmt.Errorf("%w: variant %s is not analyzed", apperror.ErrStateNotFound, rules.Name())
	}

	record, err := that.stateRepo.GetByID(ctx, rules.Name(), state.ID())
	if err != nil {
		if errors.Is(err, apperror.ErrStateNotFound) {
			return nil, fmt.Errorf("%w: %s", apperror.ErrStateNotFound, state.ID())
		}

		return nil, fmt.Errorf("failed to get state: %w", err)
	}

	return record, nil
}

// Summary - returns the statistics of a solved variant, from memory or from storage.
func (that *Analyzer) Summary(ctx context.Context, variant string) (*entity.Summary, error) {
	rules, err := tictactoe.NewRules(variant)
	if err != nil {
		return nil, fmt.Errorf("failed to select rules: %w", err)
	}

	that.mu.RLock()
	analysis, ok := that.analyses[rules.Name()]
	that.mu.RUnlock()

	if ok {
		return analysis.Summary, nil
	}

	if that.stateRepo == nil {
		return nil, fmt.Errorf("%w: variant %s is not analyzed", apperror.ErrSummaryNotFound, rules.Name())
	}

	summary, err := that.stateRepo.GetSummary(ctx, rules.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	return summary, nil
}

// Record returns the solved form of a canonical state, or nil if the state is
// not part of the graph.
func (that *Analysis) Record(state entity.State) *entity.StateRecord {
	g := that.Coloring.Graph()
	if !g.Contains(state) {
		return nil
	}

	children := g.Successors(state)
	successors := make([]string, 0, len(children))
	for _, child := range children {
		successors = append(successors, child.ID())
	}

	record := &entity.StateRecord{
		ID:             state.ID(),
		Board:          state.Board.String(),
		XTurn:          state.XTurn,
		Verdict:        that.Coloring.Verdict(state),
		XWinGuaranteed: that.Coloring.IsForcedXWin(state),
		OWinGuaranteed: that.Coloring.IsForcedOWin(state),
		Successors:     successors,
	}

	if winner := state.Winner(); winner != entity.EmptyCell {
		record.Winner = winner.String()
	}

	return record
}

// Records returns the solved form of every state, ordered by id.
func (that *Analysis) Records() []*entity.StateRecord {
	states := that.Coloring.Graph().States()

	records := make([]*entity.StateRecord, 0, len(states))
	for _, state := range states {
		records = append(records, that.Record(state))
	}

	return records
}

func summarize(variant string, coloring *solver.Coloring) *entity.Summary {
	g := coloring.Graph()

	summary := &entity.Summary{
		Variant:     variant,
		States:      g.Len(),
		Edges:       g.EdgeCount(),
		Red:         coloring.Red(),
		Blue:        coloring.Blue(),
		Passes:      coloring.Passes(),
		HasCycle:    g.HasCycle(),
		RootVerdict: coloring.Verdict(g.Root()),
	}

	for _, state := range g.Terminals() {
		summary.Terminals++

		switch state.Winner() {
		case entity.PlayerX:
			summary.XWins++
		case entity.PlayerO:
			summary.OWins++
		}
	}

	return summary
}
