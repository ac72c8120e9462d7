package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/minihosts/internal/service/hosts"
	"github.com/heartmarshall/minihosts/internal/transport/middleware"
)

type hostsService interface {
	ReadSystem(ctx context.Context) (string, error)
	UpdateSystem(ctx context.Context, content string) error
	Apply(ctx context.Context) (hosts.ApplyResult, error)
}

// HostsHandler serves the system hosts file commands.
type HostsHandler struct {
	svc hostsService
	log *slog.Logger
}

// NewHostsHandler creates a HostsHandler.
func NewHostsHandler(svc hostsService, logger *slog.Logger) *HostsHandler {
	return &HostsHandler{svc: svc, log: logger.With("handler", "hosts")}
}

// Register mounts the hosts routes on mux. writeLimit wraps the routes that
// rewrite the hosts file.
func (h *HostsHandler) Register(mux *http.ServeMux, writeLimit middleware.Middleware) {
	mux.HandleFunc("GET /hosts", h.Read)
	mux.Handle("PUT /hosts", writeLimit(http.HandlerFunc(h.Update)))
	mux.Handle("POST /hosts/apply", writeLimit(http.HandlerFunc(h.Apply)))
}

// Read handles GET /hosts.
func (h *HostsHandler) Read(w http.ResponseWriter, r *http.Request) {
	content, err := h.svc.ReadSystem(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, contentRequest{Content: content})
}

// Update handles PUT /hosts.
func (h *HostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.UpdateSystem(r.Context(), req.Content); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Apply handles POST /hosts/apply.
func (h *HostsHandler) Apply(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Apply(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
