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
	errCtxValidatingTutorial = "validating tutorial"
	errCtxGettingTutorial    = "getting tutorial"
	errCtxCreatingTutorial   = "creating tutorial"
	errCtxUpdatingTutorial   = "updating tutorial"
)

// TutorialUseCaseImpl реализует TutorialUseCase.
type TutorialUseCaseImpl struct {
	repo repositories.TutorialRepository
}

// NewTutorialUseCase создает сервис уроков.
func NewTutorialUseCase(repo repositories.TutorialRepository) api.TutorialUseCase {
	return &TutorialUseCaseImpl{repo: repo}
}

func (u *TutorialUseCaseImpl) List(ctx context.Context) []*entities.Tutorial {
	return u.repo.GetAll(ctx)
}

func (u *TutorialUseCaseImpl) Get(ctx context.Context, id string) (*entities.Tutorial, error) {
	tutorial, ok := u.repo.GetByID(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", errCtxGettingTutorial, id, entities.ErrNotFound)
	}
	return tutorial, nil
}

// Create проверяет поля и уровень сложности перед сохранением.
func (u *TutorialUseCaseImpl) Create(ctx context.Context, actorID string, in entities.TutorialInput) (*entities.Tutorial, error) {
	if err := validateTutorialInput(in); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingTutorial, err)
	}

	tutorial, err := u.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingTutorial, err)
	}

	logger.Log(ctx).Info(ctx, "tutorial created", zap.String("actor_id", actorID), zap.String("tutorial_id", tutorial.ID))
	return tutorial, nil
}

func (u *TutorialUseCaseImpl) Update(
	ctx context.Context, actorID, id string, patch entities.TutorialPatch,
) (*entities.Tutorial, error) {
	if err := validateTutorialPatch(patch); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingTutorial, err)
	}

	tutorial, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingTutorial, err)
	}

	logger.Log(ctx).Info(ctx, "tutorial updated", zap.String("actor_id", actorID), zap.String("tutorial_id", id))
	return tutorial, nil
}

func (u *TutorialUseCaseImpl) Delete(ctx context.Context, actorID, id string) {
	u.repo.Delete(ctx, id)
	logger.Log(ctx).Info(ctx, "tutorial deleted", zap.String("actor_id", actorID), zap.String("tutorial_id", id))
}
