package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/testing/suite"
)

func sampleAnalysis() (*entity.Summary, []*entity.StateRecord) {
	summary := &entity.Summary{
		Variant:     "classic",
		States:      2,
		Edges:       1,
		Terminals:   1,
		RootVerdict: entity.VerdictDraw,
	}

	records := []*entity.StateRecord{
		{
			ID:         "EEEEEEEEEX",
			Board:      "EEEEEEEEE",
			XTurn:      true,
			Verdict:    entity.VerdictDraw,
			Successors: []string{"EEEEEEEEXO"},
		},
		{
			ID:      "EEEEEEEEXO",
			Board:   "EEEEEEEEX",
			Verdict: entity.VerdictDraw,
		},
	}

	return summary, records
}

func TestStateRepository_SaveAnalysis(t *testing.T) {
	ctx, st := suite.New(t)

	stateRepo := NewStateRepository(st.Storage)

	// Given: a solved variant
	summary, records := sampleAnalysis()

	// When: SaveAnalysis is called
	err := stateRepo.SaveAnalysis(ctx, summary, records)

	// Then: no error should be returned, and the summary is stored
	require.NoError(t, err)

	stored, err := stateRepo.GetSummary(ctx, "classic")
	require.NoError(t, err)
	assert.Equal(t, summary, stored)
}

func TestStateRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		stateRepo := NewStateRepository(st.Storage)

		// Given: a stored analysis
		summary, records := sampleAnalysis()
		require.NoError(t, stateRepo.SaveAnalysis(ctx, summary, records))

		// When: GetByID is called with an existing id
		record, err := stateRepo.GetByID(ctx, "classic", "EEEEEEEEEX")

		// Then: the retrieved record should match the saved one
		require.NoError(t, err)
		assert.Equal(t, records[0], record)
	})

	t.Run("GetByID_OtherVariant", func(t *testing.T) {
		ctx, st := suite.New(t)

		stateRepo := NewStateRepository(st.Storage)

		// Given: a stored classic analysis
		summary, records := sampleAnalysis()
		require.NoError(t, stateRepo.SaveAnalysis(ctx, summary, records))

		// When: the same id is looked up for another variant
		record, err := stateRepo.GetByID(ctx, "roman", "EEEEEEEEEX")

		// Then: ErrStateNotFound should be returned
		require.ErrorIs(t, err, apperror.ErrStateNotFound)
		assert.Nil(t, record)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		stateRepo := NewStateRepository(st.Storage)

		// When: GetByID is called with a non-existent id
		record, err := stateRepo.GetByID(ctx, "classic", "XXXXXXXXXX")

		// Then: ErrStateNotFound should be returned
		require.ErrorIs(t, err, apperror.ErrStateNotFound)
		assert.Nil(t, record)
	})
}

func TestStateRepository_GetSummary_NotFound(t *testing.T) {
	ctx, st := suite.New(t)

	stateRepo := NewStateRepository(st.Storage)

	// When: no analysis was stored
	summary, err := stateRepo.GetSummary(ctx, "roman")

	// Then: ErrSummaryNotFound should be returned
	require.ErrorIs(t, err, apperror.ErrSummaryNotFound)
	assert.Nil(t, summary)
}
