package app

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vendordesk/vendordesk/internal/auth"
	"github.com/vendordesk/vendordesk/internal/observability"
	"github.com/vendordesk/vendordesk/internal/suppliers"
	"github.com/vendordesk/vendordesk/internal/uploads"
	"github.com/vendordesk/vendordesk/web"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	TokenIssuer      *auth.TokenIssuer
	AuthHandler      *auth.Handler
	SuppliersHandler *suppliers.Handler
	UploadsHandler   *uploads.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router: the JSON API behind bearer auth,
// the upload file server, and the embedded client UI.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)

	requireToken := auth.Middleware(params.Logger, params.TokenIssuer)
	r.Route("/suppliers", func(r chi.Router) {
		r.Use(requireToken)
		params.SuppliersHandler.MountRoutes(r)
	})
	r.Route("/upload", func(r chi.Router) {
		r.Use(requireToken)
		params.UploadsHandler.MountRoutes(r)
	})

	// Uploaded attachments are served to anyone holding the URL.
	uploadDir := http.Dir(params.Config.UploadDir)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(uploadDir)))

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		params.Logger.Error("create static sub filesystem", slog.Any("error", err))
	} else {
		fileServer := http.FileServer(http.FS(staticFS))
		r.Handle("/static/*", http.StripPrefix("/static/", staticCacheHandler(fileServer)))
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFileFS(w, r, staticFS, "index.html")
		})
	}

	return r
}

// staticCacheHandler wraps a file server with Cache-Control headers.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
