package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/minihosts/internal/domain"
	"github.com/heartmarshall/minihosts/internal/service/group"
)

type groupService interface {
	List(ctx context.Context, includeSystem bool) (domain.GroupList, error)
	ReplaceAll(ctx context.Context, list domain.GroupList) error
	Add(ctx context.Context, input group.AddGroupInput) (int, error)
	Rename(ctx context.Context, input group.RenameGroupInput) error
	SetStatus(ctx context.Context, input group.SetStatusInput) error
	SoftDelete(ctx context.Context, id int) error
	Detail(ctx context.Context, id int) (domain.GroupDetail, error)
	UpdateDetail(ctx context.Context, input group.UpdateDetailInput) (domain.GroupDetail, error)
}

// GroupHandler serves the group registry commands.
type GroupHandler struct {
	svc groupService
	log *slog.Logger
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(svc groupService, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{svc: svc, log: logger.With("handler", "group")}
}

// Register mounts the group routes on mux.
func (h *GroupHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /groups", h.List)
	mux.HandleFunc("PUT /groups", h.ReplaceAll)
	mux.HandleFunc("POST /groups", h.Add)
	mux.HandleFunc("PATCH /groups/{id}", h.Rename)
	mux.HandleFunc("PUT /groups/{id}/status", h.SetStatus)
	mux.HandleFunc("DELETE /groups/{id}", h.SoftDelete)
	mux.HandleFunc("GET /groups/{id}/detail", h.Detail)
	mux.HandleFunc("PUT /groups/{id}/detail", h.UpdateDetail)
}

type nameRequest struct {
	Name string `json:"name"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type contentRequest struct {
	Content string `json:"content"`
}

// List handles GET /groups?system=true.
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	includeSystem := r.URL.Query().Get("system") == "true"

	list, err := h.svc.List(r.Context(), includeSystem)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toGroupDTOs(list))
}

// ReplaceAll handles PUT /groups.
func (h *GroupHandler) ReplaceAll(w http.ResponseWriter, r *http.Request) {
	var req []groupDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	list, err := fromGroupDTOs(req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.ReplaceAll(r.Context(), list); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Add handles POST /groups.
func (h *GroupHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := h.svc.Add(r.Context(), group.AddGroupInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

// Rename handles PATCH /groups/{id}.
func (h *GroupHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req nameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.Rename(r.Context(), group.RenameGroupInput{ID: id, Name: req.Name}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetStatus handles PUT /groups/{id}/status.
func (h *GroupHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := group.SetStatusInput{ID: id, Status: domain.Status(req.Status)}
	if err := h.svc.SetStatus(r.Context(), input); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SoftDelete handles DELETE /groups/{id}.
func (h *GroupHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.SoftDelete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Detail handles GET /groups/{id}/detail.
func (h *GroupHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	d, err := h.svc.Detail(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDetailDTO(d))
}

// UpdateDetail handles PUT /groups/{id}/detail.
func (h *GroupHandler) UpdateDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req contentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.UpdateDetail(r.Context(), group.UpdateDetailInput{ID: id, Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDetailDTO(d))
}
