package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fintomate/receipt-matcher/internal/domain/entity"
	errs "github.com/fintomate/receipt-matcher/internal/domain/error"
	coreport "github.com/fintomate/receipt-matcher/internal/domain/port/core"
	"github.com/fintomate/receipt-matcher/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SearchAttemptRepository implements the SearchAttemptRepository port using
// GORM. The table is append-only; attempts are never updated or deleted.
type SearchAttemptRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewSearchAttemptRepository creates a new SearchAttemptRepository instance
func NewSearchAttemptRepository(db *gorm.DB, logger coreport.Logger) *SearchAttemptRepository {
	return &SearchAttemptRepository{
		db:     db,
		logger: logger,
	}
}

// entityToModel converts a search attempt entity to a database model
func (r *SearchAttemptRepository) entityToModel(attempt *entity.SearchAttempt) (model.SearchAttempt, error) {
	parameters, err := json.Marshal(attempt.Parameters)
	if err != nil {
		return model.SearchAttempt{}, fmt.Errorf("failed to encode attempt parameters: %w", err)
	}
	return model.SearchAttempt{
		ID:                    attempt.ID,
		QueueItemID:           attempt.QueueItemID,
		TransactionID:         attempt.TransactionID,
		OwnerID:               attempt.OwnerID,
		Strategy:              attempt.Strategy,
		StartedAt:             attempt.StartedAt,
		FinishedAt:            attempt.FinishedAt,
		Parameters:            datatypes.JSON(parameters),
		CandidatesFound:       attempt.CandidatesFound,
		CandidatesEvaluated:   attempt.CandidatesEvaluated,
		MatchesFound:          attempt.MatchesFound,
		ConnectedDocumentIDs:  attempt.ConnectedDocumentIDs,
		Error:                 attempt.Error,
		UsagePromptTokens:     attempt.Usage.PromptTokens,
		UsageCompletionTokens: attempt.Usage.CompletionTokens,
		UsageCalls:            attempt.Usage.Calls,
	}, nil
}

// modelToEntity converts a search attempt model to an entity
func (r *SearchAttemptRepository) modelToEntity(m *model.SearchAttempt) *entity.SearchAttempt {
	attempt := &entity.SearchAttempt{
		ID:                   m.ID,
		QueueItemID:          m.QueueItemID,
		TransactionID:        m.TransactionID,
		OwnerID:              m.OwnerID,
		Strategy:             m.Strategy,
		StartedAt:            m.StartedAt,
		FinishedAt:           m.FinishedAt,
		CandidatesFound:      m.CandidatesFound,
		CandidatesEvaluated:  m.CandidatesEvaluated,
		MatchesFound:         m.MatchesFound,
		ConnectedDocumentIDs: m.ConnectedDocumentIDs,
		Error:                m.Error,
		Usage: entity.IntelUsage{
			PromptTokens:     m.UsagePromptTokens,
			CompletionTokens: m.UsageCompletionTokens,
			Calls:            m.UsageCalls,
		},
	}
	if len(m.Parameters) > 0 {
		if err := json.Unmarshal(m.Parameters, &attempt.Parameters); err != nil {
			r.logger.Warn("Failed to decode attempt parameters", map[string]any{
				"attempt_id": m.ID,
				"error":      err.Error(),
			})
		}
	}
	return attempt
}

// Create appends an attempt record
func (r *SearchAttemptRepository) Create(ctx context.Context, attempt *entity.SearchAttempt) error {
	attemptModel, err := r.entityToModel(attempt)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Create(&attemptModel)
	if result.Error != nil {
		r.logger.Error("Failed to create search attempt", map[string]any{
			"attempt_id": attempt.ID,
			"strategy":   attempt.Strategy,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// ListByQueueItem returns all attempts recorded under a queue item,
// oldest first
func (r *SearchAttemptRepository) ListByQueueItem(ctx context.Context, queueItemID string) ([]*entity.SearchAttempt, error) {
	var models []model.SearchAttempt
	result := r.db.WithContext(ctx).
		Where("queue_item_id = ?", queueItemID).
		Order("started_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	attempts := make([]*entity.SearchAttempt, 0, len(models))
	for i := range models {
		attempts = append(attempts, r.modelToEntity(&models[i]))
	}
	return attempts, nil
}
