package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/jaekwang-park/todo-rest-api/docs"
	"github.com/jaekwang-park/todo-rest-api/internal/config"
	todohttp "github.com/jaekwang-park/todo-rest-api/internal/http"
	"github.com/jaekwang-park/todo-rest-api/internal/http/handler"
	"github.com/jaekwang-park/todo-rest-api/internal/logging"
	"github.com/jaekwang-park/todo-rest-api/internal/repository"
	"github.com/jaekwang-park/todo-rest-api/internal/service"
)

func main() {
	// -h lists every environment variable with its default
	flag.Usage = cleanenv.FUsage(flag.CommandLine.Output(), &config.Config{}, nil, flag.Usage)
	flag.Parse()

	// Initial logger at info level; reconfigured after config load
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(os.Stdout, cfg.LogFormat, cfg.ParseLogLevel())
	slog.SetDefault(logger)

	logger.Info("config loaded",
		"env", cfg.AppEnv,
		"port", cfg.ServerPort,
		"log_level", cfg.LogLevel,
		"db_driver", cfg.DB.Driver,
	)

	db, err := repository.NewDB(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("database connected", "driver", cfg.DB.Driver)

	if cfg.DB.AutoMigrate {
		if err := repository.Migrate(ctx, db.DB, cfg.DB.Driver, logger); err != nil {
			return err
		}
	}

	docs.SwaggerInfo.Version = cfg.AppVersion

	todoSvc := service.NewTodoService(repository.NewSQLTodo(db))

	srv, err := todohttp.NewServer(cfg.ServerPort, cfg.HTTP, logger, todohttp.Deps{
		Todos:         todoSvc,
		DB:            db,
		DBPingTimeout: cfg.DB.PingTimeout,
		Info: handler.ServiceInfo{
			Name:    cfg.AppName,
			Version: cfg.AppVersion,
			Env:     cfg.AppEnv,
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}
