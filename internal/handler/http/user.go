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

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: invalid JSON was passed", service.ErrValidation))
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	session, err := h.services.AuthService.CreateSession(ctx, registeredUser.ID)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		writeError(w, r, err)
		return
	}

	setSessionCookie(w, session)
	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: invalid JSON was passed", service.ErrValidation))
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	session, err := h.services.AuthService.CreateSession(ctx, foundUser.ID)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		writeError(w, r, err)
		return
	}

	setSessionCookie(w, session)
	utils.WriteJSON(w, foundUser, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, _ := utils.GetSessionTokenFromContext(ctx)
	if err := h.services.AuthService.Revoke(ctx, token); err != nil {
		log.Err(err).Msg("session revocation failed")
		writeError(w, r, err)
		return
	}

	clearSessionCookie(w)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	var patch models.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: invalid JSON was passed", service.ErrValidation))
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, userID, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, userID); err != nil {
		writeError(w, r, err)
		return
	}

	clearSessionCookie(w)
	w.WriteHeader(http.StatusOK)
}
