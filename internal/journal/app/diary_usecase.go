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
	errCtxValidatingDiary = "validating diary entry"
	errCtxGettingDiary    = "getting diary entry"
	errCtxCreatingDiary   = "creating diary entry"
	errCtxUpdatingDiary   = "updating diary entry"
)

// DiaryUseCaseImpl реализует DiaryUseCase.
type DiaryUseCaseImpl struct {
	repo repositories.DiaryEntryRepository
}

// NewDiaryUseCase создает сервис дневника.
func NewDiaryUseCase(repo repositories.DiaryEntryRepository) api.DiaryUseCase {
	return &DiaryUseCaseImpl{repo: repo}
}

func (u *DiaryUseCaseImpl) List(ctx context.Context) []*entities.DiaryEntry {
	return u.repo.GetAll(ctx)
}

func (u *DiaryUseCaseImpl) Get(ctx context.Context, id string) (*entities.DiaryEntry, error) {
	entry, ok := u.repo.GetByID(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", errCtxGettingDiary, id, entities.ErrNotFound)
	}
	return entry, nil
}

func (u *DiaryUseCaseImpl) Create(ctx context.Context, actorID string, in entities.DiaryEntryInput) (*entities.DiaryEntry, error) {
	if err := validateDiaryInput(in); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingDiary, err)
	}

	entry, err := u.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingDiary, err)
	}

	logger.Log(ctx).Info(ctx, "diary entry created", zap.String("actor_id", actorID), zap.String("entry_id", entry.ID))
	return entry, nil
}

func (u *DiaryUseCaseImpl) Update(
	ctx context.Context, actorID, id string, patch entities.DiaryEntryPatch,
) (*entities.DiaryEntry, error) {
	if err := validateDiaryPatch(patch); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingDiary, err)
	}

	entry, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingDiary, err)
	}

	logger.Log(ctx).Info(ctx, "diary entry updated", zap.String("actor_id", actorID), zap.String("entry_id", id))
	return entry, nil
}

func (u *DiaryUseCaseImpl) Delete(ctx context.Context, actorID, id string) {
	u.repo.Delete(ctx, id)
	logger.Log(ctx).Info(ctx, "diary entry deleted", zap.String("actor_id", actorID), zap.String("entry_id", id))
}
