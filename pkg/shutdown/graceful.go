// Package shutdown реализует корректное завершение процесса по SIGINT/SIGTERM.
package shutdown

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"devjournal/pkg/logger"
)

// Hook освобождает ресурс при остановке.
type Hook func(ctx context.Context) error

// ErrTimeout возвращается, если хуки не уложились в отведенное время.
var ErrTimeout = errors.New("shutdown timed out")

// Wait блокируется до сигнала SIGINT/SIGTERM или отмены ctx,
// затем параллельно выполняет хуки в пределах timeout.
// Возвращает объединенные ошибки хуков.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	<-sigCtx.Done()
	stop()

	log := logger.Log(ctx)
	log.Info(ctx, "shutdown started", zap.Int("hooks", len(hooks)), zap.Duration("timeout", timeout))

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, hook := range hooks {
		wg.Add(1)
		go func(fn Hook) {
			defer wg.Done()
			if err := fn(hookCtx); err != nil {
				log.Error(hookCtx, "shutdown hook failed", zap.Error(err))
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-hookCtx.Done():
		log.Warn(ctx, "shutdown hooks did not finish in time")
		mu.Lock()
		errs = append(errs, ErrTimeout)
		mu.Unlock()
	}

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(errs...)
}
