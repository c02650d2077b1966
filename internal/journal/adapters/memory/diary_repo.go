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
	methodCreateDiaryEntry = "DiaryEntryRepository.Create"
	methodUpdateDiaryEntry = "DiaryEntryRepository.Update"
	methodDeleteDiaryEntry = "DiaryEntryRepository.Delete"

	errCtxUpdateDiaryEntry = "updating diary entry"
)

// DiaryEntryRepository реализует хранение записей дневника в памяти.
type DiaryEntryRepository struct {
	s *Store
}

// NewDiaryEntryRepository создает репозиторий дневника.
func NewDiaryEntryRepository(store *Store) repositories.DiaryEntryRepository {
	return &DiaryEntryRepository{s: store}
}

func (r *DiaryEntryRepository) GetAll(_ context.Context) []*entities.DiaryEntry {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.diary.sorted()
}

func (r *DiaryEntryRepository) GetByID(_ context.Context, id string) (*entities.DiaryEntry, bool) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.diary.get(id)
	if !ok {
		return nil, false
	}
	return e.Clone(), true
}

// Create сохраняет запись с датой, равной моменту создания.
func (r *DiaryEntryRepository) Create(ctx context.Context, in entities.DiaryEntryInput) (*entities.DiaryEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	e := &entities.DiaryEntry{
		ID:        r.s.generateIDLocked(),
		Title:     in.Title,
		Content:   in.Content,
		Tags:      normalizeTags(in.Tags),
		Date:      now,
		UpdatedAt: now,
	}
	r.s.diary.put(e.ID, e)
	r.s.persistLocked(ctx, methodCreateDiaryEntry)

	logger.Log(ctx).Debug(ctx, "diary entry created", zap.String("entry_id", e.ID))
	return e.Clone(), nil
}

func (r *DiaryEntryRepository) Update(ctx context.Context, id string, patch entities.DiaryEntryPatch) (*entities.DiaryEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.diary.get(id)
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", errCtxUpdateDiaryEntry, id, entities.ErrNotFound)
	}

	e := existing.Clone()
	patch.ApplyTo(e)
	e.UpdatedAt = r.s.now()
	r.s.diary.put(id, e)
	r.s.persistLocked(ctx, methodUpdateDiaryEntry)

	return e.Clone(), nil
}

func (r *DiaryEntryRepository) Delete(ctx context.Context, id string) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.diary.remove(id)
	r.s.persistLocked(ctx, methodDeleteDiaryEntry)
}
