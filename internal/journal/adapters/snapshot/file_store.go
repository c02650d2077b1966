// Package snapshot сохраняет набор данных в один JSON-файл.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"devjournal/internal/journal/domain/entities"
	"devjournal/internal/journal/ports/repositories"
	"devjournal/pkg/logger"
)

const (
	methodLoad = "Load"
	methodSave = "Save"

	msgSnapshotMissing = "snapshot file not found, starting with empty dataset"
	msgSnapshotLoaded  = "snapshot loaded"
	msgSnapshotSaved   = "snapshot saved"

	msgErrReadSnapshot  = "failed to read snapshot, starting with empty dataset"
	msgErrParseSnapshot = "failed to parse snapshot, starting with empty dataset"

	errCtxEncoding  = "encoding snapshot"
	errCtxCreateDir = "creating snapshot directory"
	errCtxWriteTemp = "writing temporary snapshot"
	errCtxReplace   = "replacing snapshot file"

	filePerm = 0o600
	dirPerm  = 0o750
)

// FileStore реализует SnapshotStore поверх файла.
type FileStore struct {
	path string
	now  func() time.Time
}

// Option настраивает FileStore.
type Option func(*FileStore)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *FileStore) { s.now = now }
}

// NewFileStore создает хранилище снимка по пути path.
func NewFileStore(path string, opts ...Option) repositories.SnapshotStore {
	s := &FileStore{path: path, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load читает снимок. Отсутствующий или поврежденный файл дает пустой набор.
func (s *FileStore) Load(ctx context.Context) *entities.Dataset {
	log := logger.Log(ctx).With(zap.String("method", methodLoad), zap.String("path", s.path))

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info(ctx, msgSnapshotMissing)
		} else {
			log.Error(ctx, msgErrReadSnapshot, zap.Error(fmt.Errorf("%w: %w", entities.ErrPersistence, err)))
		}
		return entities.NewDataset()
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Error(ctx, msgErrParseSnapshot, zap.Error(fmt.Errorf("%w: %w", entities.ErrPersistence, err)))
		return entities.NewDataset()
	}

	data := decoder{now: s.now()}.dataset(&doc)
	log.Info(ctx, msgSnapshotLoaded,
		zap.Int("users", len(data.Users)),
		zap.Int("insights", len(data.Insights)),
		zap.Int("diary_entries", len(data.DiaryEntries)),
		zap.Int("tutorials", len(data.Tutorials)))

	return data
}

// Save перезаписывает файл целиком. Запись идет во временный файл
// рядом с целевым, затем он переименовывается поверх старого снимка.
func (s *FileStore) Save(ctx context.Context, data *entities.Dataset) error {
	log := logger.Log(ctx).With(zap.String("method", methodSave), zap.String("path", s.path))

	raw, err := json.MarshalIndent(encode(data), "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w: %w", errCtxEncoding, entities.ErrPersistence, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%s: %w: %w", errCtxCreateDir, entities.ErrPersistence, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %w: %w", errCtxWriteTemp, entities.ErrPersistence, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// После успешного переименования файла уже нет.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w: %w", errCtxWriteTemp, entities.ErrPersistence, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w: %w", errCtxWriteTemp, entities.ErrPersistence, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w: %w", errCtxWriteTemp, entities.ErrPersistence, err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("%s: %w: %w", errCtxWriteTemp, entities.ErrPersistence, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%s: %w: %w", errCtxReplace, entities.ErrPersistence, err)
	}

	log.Debug(ctx, msgSnapshotSaved, zap.Int("bytes", len(raw)))
	return nil
}
