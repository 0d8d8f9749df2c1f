package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/Gatis224/uzskaite/config"
	"github.com/Gatis224/uzskaite/processor"
	"github.com/Gatis224/uzskaite/server"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
)

func newFiberApp(cfg *config.Config, log *slog.Logger) *fiber.App {
	return server.New(cfg.Server, log)
}

func newHandler(cfg *config.Config, proc *processor.Processor, log *slog.Logger) *server.Handler {
	return server.NewHandler(proc, cfg.Server.MaxInFlight, log)
}

// Server runs the fiber app for the lifetime of the fx application.
type Server struct {
	app  *fiber.App
	cfg  config.ServerConfig
	log  *slog.Logger
	addr net.Addr
}

// NewServer registers the routes and hooks listening into lc.
func NewServer(lc fx.Lifecycle, sd fx.Shutdowner, cfg *config.Config, app *fiber.App, h *server.Handler, log *slog.Logger) (*Server, error) {
	timeout, err := cfg.Server.Shutdown()
	if err != nil {
		return nil, err
	}

	h.Register(app)
	s := &Server{app: app, cfg: cfg.Server, log: log}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", s.cfg.Listen)
			if err != nil {
				return fmt.Errorf("listen %s: %w", s.cfg.Listen, err)
			}
			s.addr = ln.Addr()
			log.Info("listening", slog.String("addr", s.addr.String()))

			go func() {
				if err := app.Listener(ln, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
					log.Error("server stopped", slog.String("error", err.Error()))
					_ = sd.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return app.ShutdownWithContext(ctx)
		},
	})

	return s, nil
}

// Addr returns the bound address once the application has started.
func (s *Server) Addr() net.Addr {
	return s.addr
}
