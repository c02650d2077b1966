// Package session хранит сессии в памяти процесса.
package session

import (
	"context"
	"sync"
	"time"

	"devjournal/internal/journal/domain/entities"
	"devjournal/internal/journal/ports/repositories"
)

// MemoryRepository - потокобезопасная таблица сессий с ленивым удалением истекших.
type MemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]entities.Session
	now      func() time.Time
}

// NewMemoryRepository создает пустое хранилище сессий.
func NewMemoryRepository(now func() time.Time) repositories.SessionRepository {
	if now == nil {
		now = time.Now
	}
	return &MemoryRepository{
		sessions: make(map[string]entities.Session),
		now:      now,
	}
}

func (r *MemoryRepository) Store(_ context.Context, s *entities.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return nil
}

// Find возвращает активную сессию. Истекшая удаляется при обращении.
func (r *MemoryRepository) Find(_ context.Context, id string) (*entities.Session, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false, nil
	}
	if s.Expired(r.now()) {
		delete(r.sessions, id)
		return nil, false, nil
	}
	return &s, true, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// CleanupExpired удаляет все истекшие сессии и возвращает их число.
func (r *MemoryRepository) CleanupExpired(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (r *MemoryRepository) Close() error { return nil }
