package memory

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"devjournal/internal/journal/domain/entities"
	"devjournal/internal/journal/ports/repositories"
	"devjournal/pkg/logger"
)

const (
	methodCreateInsight = "InsightRepository.Create"
	methodUpdateInsight = "InsightRepository.Update"
	methodDeleteInsight = "InsightRepository.Delete"

	errCtxUpdateInsight = "updating insight"
)

// InsightRepository реализует хранение заметок в памяти.
type InsightRepository struct {
	s *Store
}

// NewInsightRepository создает репозиторий заметок.
func NewInsightRepository(store *Store) repositories.InsightRepository {
	return &InsightRepository{s: store}
}

// GetAll возвращает заметки, новые первыми.
func (r *InsightRepository) GetAll(_ context.Context) []*entities.Insight {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.insights.sorted()
}

func (r *InsightRepository) GetByID(_ context.Context, id string) (*entities.Insight, bool) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i, ok := r.s.insights.get(id)
	if !ok {
		return nil, false
	}
	return i.Clone(), true
}

// Create сохраняет заметку. PublishedAt и UpdatedAt равны текущему времени.
func (r *InsightRepository) Create(ctx context.Context, in entities.InsightInput) (*entities.Insight, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	i := &entities.Insight{
		ID:          r.s.generateIDLocked(),
		Title:       in.Title,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		Tags:        normalizeTags(in.Tags),
		PublishedAt: now,
		UpdatedAt:   now,
	}
	r.s.insights.put(i.ID, i)
	r.s.persistLocked(ctx, methodCreateInsight)

	logger.Log(ctx).Debug(ctx, "insight created", zap.String("insight_id", i.ID))
	return i.Clone(), nil
}

// Update объединяет переданные поля. PublishedAt не меняется.
func (r *InsightRepository) Update(ctx context.Context, id string, patch entities.InsightPatch) (*entities.Insight, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.insights.get(id)
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", errCtxUpdateInsight, id, entities.ErrNotFound)
	}

	i := existing.Clone()
	patch.ApplyTo(i)
	i.UpdatedAt = r.s.now()
	r.s.insights.put(id, i)
	r.s.persistLocked(ctx, methodUpdateInsight)

	return i.Clone(), nil
}

// Delete удаляет заметку и всегда сохраняет снимок.
func (r *InsightRepository) Delete(ctx context.Context, id string) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.insights.remove(id)
	r.s.persistLocked(ctx, methodDeleteInsight)
}

func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}
