package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	var input models.TodoCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: invalid JSON was passed", service.ErrValidation))
		return
	}

	todo, err := h.services.TodoService.CreateTodo(ctx, userID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusCreated)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	todoID, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.GetTodo(ctx, userID, todoID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	todos, err := h.services.TodoService.ListTodos(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	todoID, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var patch models.TodoPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: invalid JSON was passed", service.ErrValidation))
		return
	}

	todo, err := h.services.TodoService.UpdateTodo(ctx, userID, todoID, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) markTodoDone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	todoID, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.MarkDone(ctx, userID, todoID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	todoID, err := idFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.TodoService.DeleteTodo(ctx, userID, todoID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// idFromURL parses the {id} chi route parameter as a positive integer.
func idFromURL(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidURLParameter, raw)
	}

	return id, nil
}
