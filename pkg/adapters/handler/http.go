package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/core/domain"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/logging"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/ports"
)

type HTTPHandler struct {
	service   ports.LinkService
	templates *Templates
	csrf      *CSRF
	logger    *logging.Logger
}

func NewHTTPHandler(service ports.LinkService, templates *Templates, csrf *CSRF, logger *logging.Logger) *HTTPHandler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &HTTPHandler{service: service, templates: templates, csrf: csrf, logger: logger}
}

// Index lists every link, newest first
func (h *HTTPHandler) Index(w http.ResponseWriter, r *http.Request) {
	links, err := h.service.ListLinks(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	token, err := h.csrf.Token(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, "index.html", indexPage{
		PageTitle: "Biblioteca de Enlaces",
		Links:     newLinkRows(links, token),
		CSRFToken: token,
	})
}

// Add creates a link from the titulo and url form fields
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.CreateLink(r.Context(), r.PostFormValue("titulo"), r.PostFormValue("url")); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// EditForm shows the edit form prefilled with the stored values
func (h *HTTPHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	link, err := h.service.GetLink(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	token, err := h.csrf.Token(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.render(w, r, "edit.html", editPage{
		PageTitle: "Editar Enlace",
		Link:      *link,
		CSRFToken: token,
	})
}

// Update replaces titulo and url of a link
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.UpdateLink(r.Context(), id, r.PostFormValue("titulo"), r.PostFormValue("url")); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Delete removes a link. Unknown ids still redirect.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteLink(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Ping answers without touching the datastore
func (h *HTTPHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

// Healthz reports whether the datastore is reachable
func (h *HTTPHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	status, code := "ok", http.StatusOK
	if err := h.service.Ready(r.Context()); err != nil {
		h.logger.Warn(r.Context(), "datastore not ready", "error", err)
		status, code = "unavailable", http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	if err := h.templates.Render(w, page, data); err != nil {
		h.fail(w, r, err)
	}
}

// fail maps err to a response. Only NotFound is shown to the client; anything
// else is logged and answered with a generic 500.
func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, "Link not found", http.StatusNotFound)
		return
	}

	h.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
