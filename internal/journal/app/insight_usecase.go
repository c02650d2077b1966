package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"devjournal/internal/journal/domain/entities"
	"devjournal/internal/journal/ports/api"
	"devjournal/internal/journal/ports/repositories"
	"devjournal/pkg/logger"
)

const (
	msgInsightCreated = "insight created"
	msgInsightUpdated = "insight updated"
	msgInsightDeleted = "insight deleted"

	errCtxValidatingInsight = "validating insight"
	errCtxGettingInsight    = "getting insight"
	errCtxCreatingInsight   = "creating insight"
	errCtxUpdatingInsight   = "updating insight"
)

// InsightUseCaseImpl реализует InsightUseCase.
type InsightUseCaseImpl struct {
	repo repositories.InsightRepository
}

// NewInsightUseCase создает сервис заметок.
func NewInsightUseCase(repo repositories.InsightRepository) api.InsightUseCase {
	return &InsightUseCaseImpl{repo: repo}
}

func (u *InsightUseCaseImpl) List(ctx context.Context) []*entities.Insight {
	return u.repo.GetAll(ctx)
}

func (u *InsightUseCaseImpl) Get(ctx context.Context, id string) (*entities.Insight, error) {
	insight, ok := u.repo.GetByID(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", errCtxGettingInsight, id, entities.ErrNotFound)
	}
	return insight, nil
}

func (u *InsightUseCaseImpl) Create(ctx context.Context, actorID string, in entities.InsightInput) (*entities.Insight, error) {
	if err := validateInsightInput(in); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingInsight, err)
	}

	insight, err := u.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingInsight, err)
	}

	logger.Log(ctx).Info(ctx, msgInsightCreated, zap.String("actor_id", actorID), zap.String("insight_id", insight.ID))
	return insight, nil
}

func (u *InsightUseCaseImpl) Update(
	ctx context.Context, actorID, id string, patch entities.InsightPatch,
) (*entities.Insight, error) {
	if err := validateInsightPatch(patch); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingInsight, err)
	}

	insight, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingInsight, err)
	}

	logger.Log(ctx).Info(ctx, msgInsightUpdated, zap.String("actor_id", actorID), zap.String("insight_id", id))
	return insight, nil
}

func (u *InsightUseCaseImpl) Delete(ctx context.Context, actorID, id string) {
	u.repo.Delete(ctx, id)
	logger.Log(ctx).Info(ctx, msgInsightDeleted, zap.String("actor_id", actorID), zap.String("insight_id", id))
}
