// Package memory хранит коллекции в памяти и зеркалирует их в снимок
// после каждого изменения.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devjournal/internal/journal/domain/entities"
	"devjournal/internal/journal/ports/repositories"
	"devjournal/pkg/logger"
)

const (
	msgStoreOpened      = "in-memory store opened"
	msgStoreFlushed     = "in-memory store flushed"
	msgErrPersistChange = "failed to persist snapshot, in-memory state kept"

	errCtxFlush = "flushing store"
)

// Store владеет всеми коллекциями. Чтение идет под разделяемой блокировкой,
// изменение и запись снимка под исключительной.
type Store struct {
	mu        sync.RWMutex
	snapshots repositories.SnapshotStore
	now       func() time.Time
	newID     func() string

	users     *collection[entities.User]
	insights  *collection[entities.Insight]
	diary     *collection[entities.DiaryEntry]
	tutorials *collection[entities.Tutorial]
}

// Option настраивает Store.
type Option func(*Store)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator подменяет генератор идентификаторов.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// Open загружает снимок и возвращает готовое хранилище.
func Open(ctx context.Context, snapshots repositories.SnapshotStore, opts ...Option) *Store {
	s := &Store{
		snapshots: snapshots,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	data := snapshots.Load(ctx)
	if data == nil {
		data = entities.NewDataset()
	}

	s.users = newCollection(data.Users, (*entities.User).Clone, (*entities.User).PrimaryTime)
	s.insights = newCollection(data.Insights, (*entities.Insight).Clone, (*entities.Insight).PrimaryTime)
	s.diary = newCollection(data.DiaryEntries, (*entities.DiaryEntry).Clone, (*entities.DiaryEntry).PrimaryTime)
	s.tutorials = newCollection(data.Tutorials, (*entities.Tutorial).Clone, (*entities.Tutorial).PrimaryTime)

	logger.Log(ctx).Info(ctx, msgStoreOpened,
		zap.Int("users", len(s.users.items)),
		zap.Int("insights", len(s.insights.items)),
		zap.Int("diary_entries", len(s.diary.items)),
		zap.Int("tutorials", len(s.tutorials.items)))

	return s
}

// Flush принудительно записывает снимок. Используется при остановке.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.snapshots.Save(ctx, s.datasetLocked()); err != nil {
		return fmt.Errorf("%s: %w", errCtxFlush, err)
	}
	logger.Log(ctx).Info(ctx, msgStoreFlushed)
	return nil
}

func (s *Store) datasetLocked() *entities.Dataset {
	return &entities.Dataset{
		Users:        s.users.items,
		Insights:     s.insights.items,
		DiaryEntries: s.diary.items,
		Tutorials:    s.tutorials.items,
	}
}

// persistLocked вызывается под исключительной блокировкой после изменения.
// Ошибка записи только логируется: состояние в памяти остается основным.
func (s *Store) persistLocked(ctx context.Context, method string) {
	if err := s.snapshots.Save(ctx, s.datasetLocked()); err != nil {
		logger.Log(ctx).Error(ctx, msgErrPersistChange,
			zap.String("method", method),
			zap.Error(err))
	}
}

// generateIDLocked возвращает идентификатор, не занятый ни в одной коллекции.
func (s *Store) generateIDLocked() string {
	for {
		id := s.newID()
		if !s.users.has(id) && !s.insights.has(id) && !s.diary.has(id) && !s.tutorials.has(id) {
			return id
		}
	}
}
