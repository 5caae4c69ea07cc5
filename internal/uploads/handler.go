package uploads

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vendordesk/vendordesk/internal/platform/httpx"
)

// Handler serves the multipart upload endpoint.
type Handler struct {
	logger   *slog.Logger
	store    *Store
	maxBytes int64
}

// NewHandler builds a Handler with the given request size cap.
func NewHandler(logger *slog.Logger, store *Store, maxBytes int64) *Handler {
	return &Handler{logger: logger, store: store, maxBytes: maxBytes}
}

// MountRoutes registers the upload route.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.upload)
}

type uploadResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
	Name    string `json:"name"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	stored, err := h.store.Save(header.Filename, file)
	if errors.Is(err, ErrTypeNotAllowed) {
		httpx.Fail(w, http.StatusBadRequest, "File type not allowed")
		return
	}
	if err != nil {
		h.logger.Error("save upload", slog.String("name", header.Filename), slog.Any("error", err))
		httpx.Fail(w, http.StatusInternalServerError, "Error saving file")
		return
	}

	httpx.JSON(w, http.StatusOK, uploadResponse{
		Message: "File uploaded successfully",
		URL:     stored.URL,
		Name:    stored.Name,
	})
}
