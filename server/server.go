package server

import (
	"errors"
	"log/slog"
	"time"

	"github.com/Gatis224/uzskaite/config"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// HeaderRequestID carries the per-request ID on every response.
const HeaderRequestID = "X-Request-ID"

type requestIDKey struct{}

// New creates the fiber app with the error handler, the body limit and the
// request logging middleware installed. Routes are added by Handler.Register.
func New(cfg config.ServerConfig, log *slog.Logger) *fiber.App {
	errorHandler := newErrorHandler(log)

	app := fiber.New(fiber.Config{
		AppName:      "uzskaite",
		BodyLimit:    cfg.BodyLimit(),
		ErrorHandler: errorHandler,
	})
	app.Use(requestLogger(log, errorHandler))

	return app
}

// RequestID returns the ID assigned to the request by the logging middleware.
func RequestID(c fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey{}).(string)
	return id
}

func newErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				slog.String("request_id", RequestID(c)),
				slog.String("error", err.Error()),
			)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(err.Error())
	}
}

// requestLogger tags the request with a uuid and logs one line after it
// completes. Handler errors are rendered here so that the logged status is
// the one sent to the client.
func requestLogger(log *slog.Logger, errorHandler fiber.ErrorHandler) fiber.Handler {
	return func(c fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals(requestIDKey{}, id)
		c.Set(HeaderRequestID, id)

		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := errorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		log.Info("request",
			slog.String("request_id", id),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Response().StatusCode()),
			slog.Duration("took", time.Since(start)),
		)
		return nil
	}
}
