package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	journalhttp "devjournal/internal/journal/adapters/http"
	"devjournal/internal/journal/adapters/http/auth"
	"devjournal/internal/journal/adapters/memory"
	"devjournal/internal/journal/adapters/redisstore"
	"devjournal/internal/journal/adapters/services"
	"devjournal/internal/journal/adapters/session"
	"devjournal/internal/journal/adapters/snapshot"
	"devjournal/internal/journal/app"
	"devjournal/internal/journal/config"
	"devjournal/internal/journal/ports/repositories"
	"devjournal/pkg/logger"
	"devjournal/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "JOURNAL_LOGGER_MODE"
	EnvLoggerLevel = "JOURNAL_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrCreateSessionStore   = "failed to create session store"
	ErrStartHTTPServer      = "failed to start HTTP server"
	ErrShutdown             = "shutdown finished with errors"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "journal service started"
	LogServiceShutdownDone = "journal service shutdown complete"
	LogOpenStore           = "opening content store"
	LogInitSessions        = "initializing session store"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogFlushStore          = "flushing content store"
	LogClosingSessions     = "closing session store"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogOpenStore, zap.String("data_file", cfg.Storage.DataFile))
		store := memory.Open(ctx, snapshot.NewFileStore(cfg.Storage.DataFile))
		repos := memory.NewRepositoryFactory(store)

		log.Info(ctx, LogInitSessions, zap.String("backend", cfg.Session.Backend))
		sessionRepo, err := newSessionRepository(ctx, cfg)
		if err != nil {
			log.Error(ctx, ErrCreateSessionStore, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitServices)
		serviceFactory := services.NewServiceFactory(cfg.Session.GetSecret(), cfg.Password.BcryptCost, time.Now)
		sessions := app.NewSessionAuthenticator(sessionRepo, serviceFactory.TokenService(), cfg.Session.TTL, time.Now)

		janitorCtx, stopJanitor := context.WithCancel(ctx)
		go app.NewSessionJanitor(sessionRepo, cfg.Session.CleanupInterval).Run(janitorCtx)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := journalhttp.NewApp(fiber.Config{
			AppName:      "devjournal",
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			BodyLimit:    cfg.HTTP.BodyLimit,
		})

		journalhttp.SetupRouter(fiberApp, journalhttp.Dependencies{
			Auth:      app.NewAuthUseCase(repos.UserRepository(), serviceFactory.PasswordService(), sessions),
			Sessions:  sessions,
			Insights:  app.NewInsightUseCase(repos.InsightRepository()),
			Diary:     app.NewDiaryUseCase(repos.DiaryEntryRepository()),
			Tutorials: app.NewTutorialUseCase(repos.TutorialRepository()),
			Cookie: auth.CookieSettings{
				Name:   cfg.Session.CookieName,
				Secure: cfg.Session.CookieSecure,
			},
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		err = shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			// Сначала останавливается HTTP, затем снимок сохраняется в последний раз.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				if err := fiberApp.ShutdownWithContext(ctx); err != nil {
					return fmt.Errorf("stopping http server: %w", err)
				}
				log.Info(ctx, LogFlushStore)
				return store.Flush(ctx)
			},
			func(ctx context.Context) error {
				stopJanitor()
				log.Info(ctx, LogClosingSessions)
				return sessionRepo.Close()
			},
		)
		if err != nil {
			log.Error(ctx, ErrShutdown, zap.Error(err))
			exitCode = 1
		}

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func newSessionRepository(ctx context.Context, cfg *config.Config) (repositories.SessionRepository, error) {
	if cfg.Session.Backend == config.SessionBackendRedis {
		repo, err := redisstore.NewSessionRepository(ctx, &cfg.Redis, time.Now)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return repo, nil
	}
	return session.NewMemoryRepository(time.Now), nil
}
