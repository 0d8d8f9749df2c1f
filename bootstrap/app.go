package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Gatis224/uzskaite/calendar"
	"github.com/Gatis224/uzskaite/config"
	"github.com/Gatis224/uzskaite/processor"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Options wires the upload server.
func Options(cfg *config.Config, log *slog.Logger) fx.Option {
	return fx.Options(
		fx.Supply(cfg, log),
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			l := &fxevent.SlogLogger{Logger: log}
			l.UseLogLevel(slog.LevelDebug)
			return l
		}),

		coreOptions(),
		serverOptions(),
	)
}

func coreOptions() fx.Option {
	return fx.Provide(
		newResolver,
		processor.New,
	)
}

func serverOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			newFiberApp,
			newHandler,
			NewServer,
		),
		fx.Invoke(func(*Server) {}),
	)
}

func newResolver(cfg *config.Config) (*calendar.Resolver, error) {
	return calendar.New(cfg.Roster.Country)
}

// Run starts the server and blocks until a termination signal arrives.
func Run(cfg *config.Config, log *slog.Logger) error {
	app := fx.New(Options(cfg, log))
	if err := app.Err(); err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	sig := <-app.Wait()
	log.Info("shutting down", slog.String("signal", sig.String()))

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	if sig.ExitCode != 0 {
		return fmt.Errorf("server exited with code %d", sig.ExitCode)
	}
	return nil
}
