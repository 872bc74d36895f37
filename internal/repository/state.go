package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

type StateRepository interface {
	SaveAnalysis(ctx context.Context, summary *entity.Summary, records []*entity.StateRecord) error
	GetByID(ctx context.Context, variant, id string) (*entity.StateRecord, error)
	GetSummary(ctx context.Context, variant string) (*entity.Summary, error)
}

type dbState struct {
	client *redis.Client
}

func NewStateRepository(client *redis.Client) StateRepository {
	return &dbState{
		client: client,
	}
}

func stateKey(variant, id string) string {
	return "state:" + variant + ":" + id
}

func summaryKey(variant string) string {
	return "summary:" + variant
}

// SaveAnalysis - stores every record of a solved variant plus its summary in one pipeline.
func (that *dbState) SaveAnalysis(ctx context.Context, summary *entity.Summary, records []*entity.StateRecord) error {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("could not marshal summary: %w", err)
	}

	_, err = that.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, record := range records {
			recordJSON, err := json.Marshal(record)
			if err != nil {
				return fmt.Errorf("could not marshal state %s: %w", record.ID, err)
			}

			pipe.Set(ctx, stateKey(summary.Variant, record.ID), recordJSON, 0)
		}

		pipe.Set(ctx, summaryKey(summary.Variant), summaryJSON, 0)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	return nil
}

func (that *dbState) GetByID(ctx context.Context, variant, id string) (*entity.StateRecord, error) {
	response, err := that.client.Get(ctx, stateKey(variant, id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrStateNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get state by id: %w", err)
	}

	var record entity.StateRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}

	return &record, nil
}

func (that *dbState) GetSummary(ctx context.Context, variant string) (*entity.Summary, error) {
	response, err := that.client.Get(ctx, summaryKey(variant)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSummaryNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	var summary entity.Summary
	if err = json.Unmarshal([]byte(response), &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}

	return &summary, nil
}
