package handler

import (
	"net/http"

	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
)

func (h *Handler) GetAllGroups(w http.ResponseWriter, r *http.Request) {
	activeOnly, err := optionalBool(r.URL.Query().Get("active"))
	if err != nil {
		h.errorResponse(w, r, "Ungültiger Wert für active")
		return
	}

	groups, err := h.repository.GetAllGroups(activeOnly != nil && *activeOnly)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Gruppen geladen", groups)
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required,max=100"`
		Description string `json:"description" validate:"max=500"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	group := &domain.Group{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := h.repository.CreateGroup(group, actor(r)); err != nil {
		h.storageError(w, r, err, "Gruppe konnte nicht angelegt werden")
		return
	}

	h.successResponse(w, r, "Gruppe angelegt", group)
}

func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(GroupCtx).(*domain.Group)
	h.successResponse(w, r, "Gruppe geladen", group)
}

func (h *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
		Description *string `json:"description" validate:"omitempty,max=500"`
		IsActive    *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	group := r.Context().Value(GroupCtx).(*domain.Group)

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Description != nil {
		group.Description = *req.Description
	}
	if req.IsActive != nil {
		group.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateGroup(group, actor(r)); err != nil {
		h.storageError(w, r, err, "Gruppe konnte nicht geändert werden, bitte erneut versuchen")
		return
	}

	// group names appear in the weekly totals
	h.invalidateAllTotals(r.Context())

	h.successResponse(w, r, "Gruppe geändert", group)
}

func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(GroupCtx).(*domain.Group)

	if err := h.repository.DeleteGroup(group.ID); err != nil {
		h.storageError(w, r, err, "Gruppe existiert nicht")
		return
	}

	h.invalidateAllTotals(r.Context())

	h.successResponse(w, r, "Gruppe gelöscht", nil)
}
