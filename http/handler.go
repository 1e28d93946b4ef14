package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	filedepot "github.com/filedepot/filedepot"
)

type Service interface {
	Upload(ctx context.Context, up filedepot.FileUpload) (filedepot.FileInfo, error)
	Get(ctx context.Context, id int64) (filedepot.FileRecord, error)
	List(ctx context.Context) ([]filedepot.FileInfo, error)
	Update(ctx context.Context, id int64, up filedepot.FileUpload) (filedepot.FileInfo, error)
	Delete(ctx context.Context, id int64) error
}

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type HandlerConfig struct {
	// MaxUploadBytes caps the request body for multipart uploads.
	// Zero means filedepot.MaxUploadBytes.
	MaxUploadBytes int64
	CORS           CORSConfig
}

// multipartSlack covers multipart framing overhead so a payload exactly at
// the ceiling still fits in the request body.
const multipartSlack = 1 << 20

// Handler provides HTTP handlers for the file upload API.
type Handler struct {
	config  HandlerConfig
	service Service
}

// NewHandler creates a new Handler with the given configuration and service.
func NewHandler(config *HandlerConfig, service Service) *Handler {
	cfg := *config
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = filedepot.MaxUploadBytes
	}
	return &Handler{
		config:  cfg,
		service: service,
	}
}

// Router returns an http.Handler with the /api/FileUpload routes configured.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger)

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.Route("/api/FileUpload", func(r chi.Router) {
		r.Post("/Upload", h.handleUpload)
		r.Get("/All", h.handleList)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})

	return r
}

// formUpload extracts the "file" multipart field from the request.
func (h *Handler) formUpload(w http.ResponseWriter, r *http.Request) (filedepot.FileUpload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.MaxUploadBytes+multipartSlack)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return filedepot.FileUpload{}, fmt.Errorf("%w: file exceeds maximum size of %d bytes", filedepot.ErrInvalidInput, filedepot.MaxUploadBytes)
		}
		return filedepot.FileUpload{}, fmt.Errorf("%w: no file provided", filedepot.ErrInvalidInput)
	}

	return filedepot.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}, nil
}

// parseID parses the {id} route parameter.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid file id: %w", err)
	}
	return id, nil
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	up, err := h.formUpload(w, r)
	if err != nil {
		HandleError(w, err)
		return
	}
	defer func() {
		if closer, ok := up.Content.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
	}()

	info, err := h.service.Upload(r.Context(), up)
	if err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, info)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_id", "Invalid file id")
		return
	}

	rec, err := h.service.Get(r.Context(), id)
	if err != nil {
		HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", rec.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(rec.SizeBytes, 10))
	_, _ = w.Write(rec.Payload)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		HandleError(w, err)
		return
	}

	if len(items) == 0 {
		WriteError(w, http.StatusNotFound, "not_found", "No files stored")
		return
	}

	_ = WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_id", "Invalid file id")
		return
	}

	up, err := h.formUpload(w, r)
	if err != nil {
		HandleError(w, err)
		return
	}
	defer func() {
		if closer, ok := up.Content.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
	}()

	info, err := h.service.Update(r.Context(), id, up)
	if err != nil {
		HandleError(w, err)
		return
	}

	_ = WriteJSON(w, http.StatusOK, info)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_id", "Invalid file id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
