package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"devjournal/internal/journal/adapters/memory"
	"devjournal/internal/journal/domain/entities"
)

var errDiskFull = errors.New("disk full")

var baseTime = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

// tickClock возвращает время, растущее на секунду при каждом вызове.
type tickClock struct {
	mu  sync.Mutex
	cur time.Time
}

func newTickClock() *tickClock {
	return &tickClock{cur: baseTime}
}

func (c *tickClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(time.Second)
	return c.cur
}

// recordingSnapshots запоминает число сохранений.
type recordingSnapshots struct {
	mu      sync.Mutex
	initial *entities.Dataset
	saves   int
	last    *entities.Dataset
}

func (r *recordingSnapshots) Load(context.Context) *entities.Dataset {
	if r.initial != nil {
		return r.initial
	}
	return entities.NewDataset()
}

func (r *recordingSnapshots) Save(_ context.Context, data *entities.Dataset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	r.last = &entities.Dataset{
		Users:        copyMap(data.Users),
		Insights:     copyMap(data.Insights),
		DiaryEntries: copyMap(data.DiaryEntries),
		Tutorials:    copyMap(data.Tutorials),
	}
	return nil
}

func (r *recordingSnapshots) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func copyMap[T any](m map[string]*T) map[string]*T {
	out := make(map[string]*T, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type mockSnapshotStore struct {
	mock.Mock
}

func (m *mockSnapshotStore) Load(ctx context.Context) *entities.Dataset {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*entities.Dataset)
}

func (m *mockSnapshotStore) Save(ctx context.Context, data *entities.Dataset) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func openStore(t *testing.T) (*memory.Store, *recordingSnapshots, *tickClock) {
	t.Helper()
	snaps := &recordingSnapshots{}
	clock := newTickClock()
	store := memory.Open(context.Background(), snaps, memory.WithClock(clock.Now))
	return store, snaps, clock
}
