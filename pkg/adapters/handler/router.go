package handler

import (
	"net/http"

	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/config"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/logging"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/ports"
)

// NewRouter creates and configures the main application router
func NewRouter(cfg *config.Config, service ports.LinkService, logger *logging.Logger) (http.Handler, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	templates, err := ParseTemplates()
	if err != nil {
		return nil, err
	}

	// Initialize Handlers
	csrf := NewCSRF(cfg.CSRFSecret)
	h := NewHTTPHandler(service, templates, csrf, logger)

	// Initialize Middleware
	mw := NewMiddleware(logger)

	// Setup Router
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", h.Ping)
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.Handle("GET /static/", staticHandler())
	mux.HandleFunc("GET /style.css", rootAsset("style.css"))

	mux.HandleFunc("GET /{$}", h.Index)
	mux.Handle("POST /add", csrf.Protect(http.HandlerFunc(h.Add)))
	mux.HandleFunc("GET /edit/{id}", h.EditForm)
	mux.Handle("POST /edit/{id}", csrf.Protect(http.HandlerFunc(h.Update)))
	// Deleting over GET is what the list page links to.
	mux.Handle("GET /delete/{id}", csrf.Protect(http.HandlerFunc(h.Delete)))

	return mw.RequestLogger(mw.Recoverer(mux)), nil
}
