package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	var input models.GroupCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: invalid JSON was passed", service.ErrValidation))
		return
	}

	group, err := h.services.GroupService.CreateGroup(ctx, userID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, group, http.StatusCreated)
}

func (h *Handler) listGroups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	groups, err := h.services.GroupService.ListGroups(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, groups, http.StatusOK)
}

func (h *Handler) updateGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	groupID, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var patch models.GroupPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: invalid JSON was passed", service.ErrValidation))
		return
	}

	group, err := h.services.GroupService.UpdateGroup(ctx, userID, groupID, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, group, http.StatusOK)
}

func (h *Handler) deleteGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	groupID, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.GroupService.DeleteGroup(ctx, userID, groupID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
