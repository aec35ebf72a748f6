// Package httpapi serves folder listing and note export over a small JSON
// HTTP API.
package httpapi

import (
	"context"
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gorewood/notesexport/internal/bridge"
	"github.com/gorewood/notesexport/internal/export"
	"github.com/gorewood/notesexport/internal/logging"
	"github.com/gorewood/notesexport/internal/notes"
	"github.com/gorewood/notesexport/internal/output"
)

// Host is the view of the notes application the API needs.
// *notes.Client implements it.
type Host interface {
	ListFolders(ctx context.Context) ([]string, error)
	ListSubfolders(ctx context.Context, parent string) ([]string, error)
	export.Source
}

// Server routes API requests to a Host.
type Server struct {
	app       *fiber.App
	host      Host
	exportDir string
	opts      export.Options
	logger    zerolog.Logger
}

// ErrorBody is the JSON body of every failed request.
type ErrorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// ExportRequest is the body of POST /api/export. An empty Dir uses the
// server's default export directory.
type ExportRequest struct {
	Folder     string `json:"folder"`
	Subfolder  string `json:"subfolder,omitempty"`
	Dir        string `json:"dir,omitempty"`
	Collisions string `json:"collisions,omitempty"`
	Format     string `json:"format,omitempty"`
}

// New creates a Server. exportDir and opts apply when a request leaves
// them unset.
func New(host Host, exportDir string, opts export.Options, logger zerolog.Logger) *Server {
	s := &Server{host: host, exportDir: exportDir, opts: opts, logger: logger}
	s.app = fiber.New(fiber.Config{
		AppName:               "notesexport",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Use(s.withLogger)

	api := s.app.Group("/api")
	api.Get("/folders", s.listFolders)
	api.Get("/folders/:folder/subfolders", s.listSubfolders)
	api.Post("/export", s.exportNotes)
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Serve listens on addr until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	go func() {
		<-ctx.Done()
		if err := s.app.Shutdown(); err != nil {
			s.logger.Error().Err(err).Msg("http api shutdown failed")
		}
	}()
	s.logger.Info().Str("addr", addr).Msg("http api listening")
	return s.app.Listen(addr)
}

// withLogger attaches the server logger to each request's context so the
// bridge and exporter log under it.
func (s *Server) withLogger(c *fiber.Ctx) error {
	logger := s.logger.With().Str("method", c.Method()).Str("path", c.Path()).Logger()
	c.SetUserContext(logging.WithContext(c.UserContext(), logger))
	return c.Next()
}

func (s *Server) listFolders(c *fiber.Ctx) error {
	folders, err := s.host.ListFolders(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"folders": folders})
}

func (s *Server) listSubfolders(c *fiber.Ctx) error {
	folder, err := url.PathUnescape(c.Params("folder"))
	if err != nil || folder == "" {
		return output.NewUserError("a valid folder name is required")
	}
	subfolders, err := s.host.ListSubfolders(c.UserContext(), folder)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"folder": folder, "subfolders": subfolders})
}

func (s *Server) exportNotes(c *fiber.Ctx) error {
	var req ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return output.NewUserErrorWithCause("request body must be a JSON object", err)
	}

	opts, err := s.exportOptions(req)
	if err != nil {
		return err
	}
	dir := req.Dir
	if dir == "" {
		dir = s.exportDir
	}

	report, err := export.New(s.host, opts).Export(c.UserContext(), export.Target{
		Folder:    req.Folder,
		Subfolder: req.Subfolder,
		Dir:       dir,
	})
	if err != nil {
		return err
	}
	return c.JSON(report)
}

func (s *Server) exportOptions(req ExportRequest) (export.Options, error) {
	opts := s.opts
	if req.Collisions != "" {
		policy, err := export.ParseCollisionPolicy(req.Collisions)
		if err != nil {
			return opts, err
		}
		opts.Collisions = policy
	}
	if req.Format != "" {
		format, err := notes.ParseBodyFormat(req.Format)
		if err != nil {
			return opts, err
		}
		opts.BodyFormat = format
	}
	return opts, nil
}

// handleError renders every handler error as an ErrorBody.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		s.logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	var exitErr *output.ExitError
	var fiberErr *fiber.Error
	if !errors.As(err, &exitErr) && errors.As(err, &fiberErr) {
		return c.Status(status).JSON(ErrorBody{Error: fiberErr.Message, Code: output.ExitUserError})
	}
	exitErr = output.FromError(err)
	return c.Status(status).JSON(ErrorBody{Error: exitErr.Error(), Code: exitErr.Code})
}

// statusFor maps an error onto an HTTP status. An *output.ExitError from a
// handler wins over a *fiber.Error it wraps.
func statusFor(err error) int {
	var exitErr *output.ExitError
	var fiberErr *fiber.Error
	if !errors.As(err, &exitErr) && errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	var resolution *notes.ResolutionError
	if errors.As(err, &resolution) {
		return fiber.StatusNotFound
	}
	if bridge.IsUnavailable(err) {
		return fiber.StatusServiceUnavailable
	}

	switch output.FromError(err).Code {
	case output.ExitUserError:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
