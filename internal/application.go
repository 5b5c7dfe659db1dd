package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/stones/internal/config"
	"github.com/rocketscienceinc/stones/internal/game"
	"github.com/rocketscienceinc/stones/internal/repository"
	"github.com/rocketscienceinc/stones/internal/repository/storage"
	"github.com/rocketscienceinc/stones/internal/usecase"
	"github.com/rocketscienceinc/stones/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the console on stdin and stdout until exit, EOF or a termination signal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the configured save backend, the game manager and the console.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	saveRepo, closeRepo, err := newSaveRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close save storage", "error", err)
		}
	}()

	options := game.Options{
		UndoLimit:    conf.Rules.Undos(),
		GomokuStones: conf.Rules.GomokuStones,
		GoStones:     conf.Rules.GoStones,
		KeepHistory:  !conf.Storage.DropHistory,
	}

	gameManager := usecase.NewGameManager(logger, saveRepo, options)
	cli := console.New(logger, gameManager)

	log.Info("Starting console", "storage", conf.Storage.Backend)

	// the console blocks on input, so cancellation is watched separately
	consoleErrCh := make(chan error, 1)
	go func() {
		consoleErrCh <- cli.Run(ctx, in, out)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}

		log.Info("Console closed")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newSaveRepository(ctx context.Context, conf *config.Config) (repository.SaveRepository, func() error, error) {
	switch conf.Storage.Backend {
	case config.BackendRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisSaveRepository(redisStorage.Connection), redisStorage.Close, nil
	case config.BackendSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(conf.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteSaveRepository(sqliteStorage.Connection), sqliteStorage.Close, nil
	default:
		return repository.NewFileSaveRepository(conf.Storage.SaveDir), func() error { return nil }, nil
	}
}
