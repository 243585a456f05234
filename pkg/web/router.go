package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mailwright/mailwright/pkg/logger"
	"github.com/mailwright/mailwright/pkg/workflow"
)

// conversationHeader scopes iteration memory per caller.
const conversationHeader = "X-Conversation-ID"

// Settings is the read-only runtime configuration echoed by GET /settings.
// Key names match the environment variables so operators can diff the two.
type Settings struct {
	DefaultAction string `json:"MAIL_DEFAULT_ACTION"`
	LabelPrefix   string `json:"MAIL_LABEL_PREFIX"`
	BrandID       string `json:"MAIL_BRAND_ID"`
}

// Option configures the router.
type Option func(*handler)

// WithLogger sets the request logger; defaults to a noop logger.
func WithLogger(log *slog.Logger) Option {
	return func(h *handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithVersion sets the value reported by GET /version.
func WithVersion(v string) Option {
	return func(h *handler) {
		if v != "" {
			h.version = v
		}
	}
}

// WithSettings sets the configuration echoed by GET /settings.
func WithSettings(s Settings) Option {
	return func(h *handler) { h.settings = s }
}

// WithCORSOrigins overrides the allowed browser origins.
func WithCORSOrigins(origins []string) Option {
	return func(h *handler) {
		if len(origins) > 0 {
			h.corsOrigins = origins
		}
	}
}

type handler struct {
	svc         *workflow.Service
	log         *slog.Logger
	version     string
	settings    Settings
	corsOrigins []string
}

// NewRouter assembles the HTTP API around the workflow service.
func NewRouter(svc *workflow.Service, opts ...Option) http.Handler {
	h := &handler{
		svc:         svc,
		log:         logger.Noop(),
		version:     "0.0.0+local",
		corsOrigins: []string{"http://localhost:5173", "http://127.0.0.1:5173"},
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", conversationHeader},
		ExposedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", h.health)
	r.Get("/version", h.getVersion)
	r.Get("/settings", h.getSettings)

	r.Post("/draft", h.draft)
	r.Post("/mail/preview", h.mailPreview)
	r.Post("/mail/deliver", h.mailDeliver)

	r.Post("/draft/iterate/preview", h.iteratePreview)
	r.Post("/draft/iterate/nl", h.iteratePreviewNL)
	r.Post("/mail/iterate/deliver", h.iterateDeliver)
	r.Post("/mail/iterate/nl-deliver", h.iterateDeliverNL)

	return r
}

// conversationID resolves the caller's iteration slot from the request.
// Requests without the header share a single default slot.
func conversationID(r *http.Request) string {
	if id := r.Header.Get(conversationHeader); id != "" {
		return id
	}
	return "default"
}
