package repositories

import (
	"context"

	"devjournal/internal/journal/domain/entities"
)

// InsightRepository определяет операции с заметками.
type InsightRepository interface {
	GetAll(ctx context.Context) []*entities.Insight
	GetByID(ctx context.Context, id string) (*entities.Insight, bool)
	Create(ctx context.Context, in entities.InsightInput) (*entities.Insight, error)
	Update(ctx context.Context, id string, patch entities.InsightPatch) (*entities.Insight, error)
	Delete(ctx context.Context, id string)
}

// DiaryEntryRepository определяет операции с записями дневника.
type DiaryEntryRepository interface {
	GetAll(ctx context.Context) []*entities.DiaryEntry
	GetByID(ctx context.Context, id string) (*entities.DiaryEntry, bool)
	Create(ctx context.Context, in entities.DiaryEntryInput) (*entities.DiaryEntry, error)
	Update(ctx context.Context, id string, patch entities.DiaryEntryPatch) (*entities.DiaryEntry, error)
	Delete(ctx context.Context, id string)
}

// TutorialRepository определяет операции с уроками.
type TutorialRepository interface {
	GetAll(ctx context.Context) []*entities.Tutorial
	GetByID(ctx context.Context, id string) (*entities.Tutorial, bool)
	Create(ctx context.Context, in entities.TutorialInput) (*entities.Tutorial, error)
	Update(ctx context.Context, id string, patch entities.TutorialPatch) (*entities.Tutorial, error)
	Delete(ctx context.Context, id string)
}
