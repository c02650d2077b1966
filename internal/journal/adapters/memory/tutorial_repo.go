package memory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"devjournal/internal/journal/domain/entities"
	"devjournal/internal/journal/ports/repositories"
	"devjournal/pkg/logger"
)

const (
	methodCreateTutorial = "TutorialRepository.Create"
	methodUpdateTutorial = "TutorialRepository.Update"
	methodDeleteTutorial = "TutorialRepository.Delete"

	errCtxUpdateTutorial = "updating tutorial"
)

// TutorialRepository реализует хранение уроков в памяти.
type TutorialRepository struct {
	s *Store
}

// NewTutorialRepository создает репозиторий уроков.
func NewTutorialRepository(store *Store) repositories.TutorialRepository {
	return &TutorialRepository{s: store}
}

func (r *TutorialRepository) GetAll(_ context.Context) []*entities.Tutorial {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.tutorials.sorted()
}

func (r *TutorialRepository) GetByID(_ context.Context, id string) (*entities.Tutorial, bool) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tutorials.get(id)
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

func (r *TutorialRepository) Create(ctx context.Context, in entities.TutorialInput) (*entities.Tutorial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	t := &entities.Tutorial{
		ID:          r.s.generateIDLocked(),
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Language:    in.Language,
		Difficulty:  in.Difficulty,
		Duration:    in.Duration,
		PublishedAt: now,
		UpdatedAt:   now,
	}
	r.s.tutorials.put(t.ID, t)
	r.s.persistLocked(ctx, methodCreateTutorial)

	logger.Log(ctx).Debug(ctx, "tutorial created", zap.String("tutorial_id", t.ID))
	return t.Clone(), nil
}

func (r *TutorialRepository) Update(ctx context.Context, id string, patch entities.TutorialPatch) (*entities.Tutorial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.tutorials.get(id)
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", errCtxUpdateTutorial, id, entities.ErrNotFound)
	}

	t := existing.Clone()
	patch.ApplyTo(t)
	t.UpdatedAt = r.s.now()
	r.s.tutorials.put(id, t)
	r.s.persistLocked(ctx, methodUpdateTutorial)

	return t.Clone(), nil
}

func (r *TutorialRepository) Delete(ctx context.Context, id string) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.tutorials.remove(id)
	r.s.persistLocked(ctx, methodDeleteTutorial)
}
