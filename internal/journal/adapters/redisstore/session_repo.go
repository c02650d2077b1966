// Package redisstore хранит сессии в Redis, чтобы они переживали перезапуск процесса.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"devjournal/internal/journal/config"
	"devjournal/internal/journal/domain/entities"
	"devjournal/internal/journal/ports/repositories"
	"devjournal/pkg/logger"
)

const (
	LogMethodStore  = "store"
	LogMethodFind   = "find"
	LogMethodDelete = "delete"

	ErrorFailedToConnect = "failed to connect to redis"
	ErrorFailedToStore   = "failed to store session in redis"
	ErrorFailedToFind    = "failed to read session from redis"
	ErrorFailedToDelete  = "failed to delete session from redis"
	ErrorFailedToClose   = "failed to close redis connection"
	ErrorCorruptSession  = "corrupt session record"

	fieldUserID    = "user_id"
	fieldCreatedAt = "created_at"
	fieldExpiresAt = "expires_at"
)

// SessionRepository реализует SessionRepository на хэшах Redis с TTL.
type SessionRepository struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewSessionRepository подключается к Redis и проверяет соединение.
func NewSessionRepository(ctx context.Context, cfg *config.RedisConfig, now func() time.Time) (repositories.SessionRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetAddress(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.ConnectTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", ErrorFailedToConnect, err)
	}

	if now == nil {
		now = time.Now
	}
	return &SessionRepository{client: client, prefix: cfg.KeyPrefix, now: now}, nil
}

func (r *SessionRepository) key(id string) string {
	return r.prefix + id
}

// Store сохраняет сессию с истечением в момент ExpiresAt.
func (r *SessionRepository) Store(ctx context.Context, s *entities.Session) error {
	log := logger.Log(ctx).With(zap.String("method", LogMethodStore))
	key := r.key(s.ID)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			fieldUserID, s.UserID,
			fieldCreatedAt, s.CreatedAt.Unix(),
			fieldExpiresAt, s.ExpiresAt.Unix(),
		)
		pipe.ExpireAt(ctx, key, s.ExpiresAt)
		return nil
	})
	if err != nil {
		log.Error(ctx, ErrorFailedToStore, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToStore, err)
	}
	return nil
}

// Find читает сессию. Отсутствующий ключ и истекший срок дают false.
func (r *SessionRepository) Find(ctx context.Context, id string) (*entities.Session, bool, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodFind))

	values, err := r.client.HGetAll(ctx, r.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		log.Error(ctx, ErrorFailedToFind, zap.Error(err))
		return nil, false, fmt.Errorf("%s: %w", ErrorFailedToFind, err)
	}
	if len(values) == 0 {
		return nil, false, nil
	}

	s, err := decodeSession(id, values)
	if err != nil {
		log.Warn(ctx, ErrorCorruptSession, zap.Error(err))
		_ = r.client.Del(ctx, r.key(id)).Err()
		return nil, false, nil
	}
	if s.Expired(r.now()) {
		_ = r.client.Del(ctx, r.key(id)).Err()
		return nil, false, nil
	}
	return s, true, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToDelete, zap.String("method", LogMethodDelete), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToDelete, err)
	}
	return nil
}

// CleanupExpired ничего не делает: Redis сам удаляет ключи по TTL.
func (r *SessionRepository) CleanupExpired(context.Context) (int, error) {
	return 0, nil
}

func (r *SessionRepository) Close() error {
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}

func decodeSession(id string, values map[string]string) (*entities.Session, error) {
	userID := values[fieldUserID]
	if userID == "" {
		return nil, fmt.Errorf("%s: missing %s", ErrorCorruptSession, fieldUserID)
	}
	created, err := strconv.ParseInt(values[fieldCreatedAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", ErrorCorruptSession, fieldCreatedAt, err)
	}
	expires, err := strconv.ParseInt(values[fieldExpiresAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", ErrorCorruptSession, fieldExpiresAt, err)
	}
	return &entities.Session{
		ID:        id,
		UserID:    userID,
		CreatedAt: time.Unix(created, 0).UTC(),
		ExpiresAt: time.Unix(expires, 0).UTC(),
	}, nil
}
