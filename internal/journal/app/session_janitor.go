package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"devjournal/internal/journal/ports/repositories"
	"devjournal/pkg/logger"
)

// SessionJanitor периодически удаляет истекшие сессии.
type SessionJanitor struct {
	sessions repositories.SessionRepository
	interval time.Duration
}

// NewSessionJanitor создает уборщика сессий.
func NewSessionJanitor(sessions repositories.SessionRepository, interval time.Duration) *SessionJanitor {
	return &SessionJanitor{sessions: sessions, interval: interval}
}

// Run блокируется до отмены ctx. Неположительный интервал отключает уборку.
func (j *SessionJanitor) Run(ctx context.Context) {
	if j.interval <= 0 {
		return
	}
	log := logger.Log(ctx).With(zap.String("component", "session_janitor"))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := j.sessions.CleanupExpired(ctx)
			if err != nil {
				log.Error(ctx, "failed to clean up expired sessions", zap.Error(err))
				continue
			}
			if removed > 0 {
				log.Info(ctx, "expired sessions removed", zap.Int("count", removed))
			}
		}
	}
}
