package api

import (
	"context"

	"devjournal/internal/journal/domain/entities"
)

// InsightUseCase определяет сценарии работы с заметками.
type InsightUseCase interface {
	List(ctx context.Context) []*entities.Insight
	Get(ctx context.Context, id string) (*entities.Insight, error)
	Create(ctx context.Context, actorID string, in entities.InsightInput) (*entities.Insight, error)
	Update(ctx context.Context, actorID, id string, patch entities.InsightPatch) (*entities.Insight, error)
	Delete(ctx context.Context, actorID, id string)
}

// DiaryUseCase определяет сценарии работы с дневником.
type DiaryUseCase interface {
	List(ctx context.Context) []*entities.DiaryEntry
	Get(ctx context.Context, id string) (*entities.DiaryEntry, error)
	Create(ctx context.Context, actorID string, in entities.DiaryEntryInput) (*entities.DiaryEntry, error)
	Update(ctx context.Context, actorID, id string, patch entities.DiaryEntryPatch) (*entities.DiaryEntry, error)
	Delete(ctx context.Context, actorID, id string)
}

// TutorialUseCase определяет сценарии работы с уроками.
type TutorialUseCase interface {
	List(ctx context.Context) []*entities.Tutorial
	Get(ctx context.Context, id string) (*entities.Tutorial, error)
	Create(ctx context.Context, actorID string, in entities.TutorialInput) (*entities.Tutorial, error)
	Update(ctx context.Context, actorID, id string, patch entities.TutorialPatch) (*entities.Tutorial, error)
	Delete(ctx context.Context, actorID, id string)
}
