package server

import (
	_ "embed"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Gatis224/uzskaite/domain"
	"github.com/Gatis224/uzskaite/processor"
	"github.com/gofiber/fiber/v3"
	"golang.org/x/sync/semaphore"
)

// FormField is the multipart field holding the uploaded template.
const FormField = "file"

// Messages returned to the browser.
const (
	MsgNoFile     = "Nav augšupielādēta faila"
	MsgNotXLSX    = "Atļauti tikai .xlsx faili"
	MsgFailPrefix = "Kļūda apstrādājot failu: "
)

//go:embed index.html
var indexHTML []byte

// Handler serves the upload form and turns uploaded templates into next
// month's roster.
type Handler struct {
	proc *processor.Processor
	sem  *semaphore.Weighted
	log  *slog.Logger
}

// NewHandler creates a Handler that transforms at most maxInFlight documents
// at a time. Further uploads wait for a free slot.
func NewHandler(proc *processor.Processor, maxInFlight int64, log *slog.Logger) *Handler {
	return &Handler{
		proc: proc,
		sem:  semaphore.NewWeighted(maxInFlight),
		log:  log,
	}
}

// Register adds the routes to app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.index)
	app.Post("/", h.generate)
}

func (h *Handler) index(c fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(indexHTML)
}

func (h *Handler) generate(c fiber.Ctx) error {
	fh, err := c.FormFile(FormField)
	if err != nil || fh.Filename == "" {
		return fiber.NewError(fiber.StatusBadRequest, MsgNoFile)
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".xlsx") {
		return fiber.NewError(fiber.StatusBadRequest, MsgNotXLSX)
	}

	src, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, MsgFailPrefix+err.Error())
	}
	defer src.Close()

	if err := h.sem.Acquire(c.Context(), 1); err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, MsgFailPrefix+err.Error())
	}
	res, err := h.proc.ProcessReader(src)
	h.sem.Release(1)
	if err != nil {
		return failure(err)
	}

	h.log.Debug("roster sent",
		slog.String("request_id", RequestID(c)),
		slog.String("upload", fh.Filename),
		slog.String("file", res.FileName),
		slog.Int("bytes", len(res.Data)),
	)

	c.Attachment(res.FileName)
	c.Set(fiber.HeaderContentType, processor.ContentType)
	return c.Send(res.Data)
}

// failure maps a processing error to its HTTP status. A malformed template
// is the client's fault; anything else is ours.
func failure(err error) *fiber.Error {
	msg := MsgFailPrefix + err.Error()
	if domain.IsTemplateError(err) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, msg)
	}
	return fiber.NewError(fiber.StatusInternalServerError, msg)
}
