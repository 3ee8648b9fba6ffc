// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/MKhiriev/campus-coffee/internal/utils"
	"github.com/MKhiriev/campus-coffee/models"
	"github.com/go-chi/chi/v5"
)

// LoginNameQueryParam is the query parameter read by GET /api/users/filter.
const LoginNameQueryParam = "login_name"

// userRequest is the body of POST and PUT requests. ID is optional and only
// checked for consistency with the path; timestamps are never accepted.
type userRequest struct {
	ID *int64 `json:"id,omitempty"`
	models.UserProfile
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.GetAll(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listUsers", err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	h.writeJSON(w, r, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	user, err := h.services.UserService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getUser", err)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) findUserByLoginName(w http.ResponseWriter, r *http.Request) {
	loginName := r.URL.Query().Get(LoginNameQueryParam)

	user, err := h.services.UserService.GetByLoginName(r.Context(), loginName)
	if err != nil {
		writeError(w, r, "*Handler.findUserByLoginName", err)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	body, err := decodeUserRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.createUser", err)
		return
	}
	if body.ID != nil {
		writeError(w, r, "*Handler.createUser", ErrUnexpectedUserID)
		return
	}

	user, err := h.services.UserService.Upsert(r.Context(), models.NewUser(body.UserProfile))
	if err != nil {
		writeError(w, r, "*Handler.createUser", err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", user.ID))
	h.writeJSON(w, r, user, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		writeError(w, r, "*Handler.updateUser", err)
		return
	}

	body, err := decodeUserRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.updateUser", err)
		return
	}
	if body.ID != nil && *body.ID != id {
		writeError(w, r, "*Handler.updateUser", ErrUserIDMismatch)
		return
	}

	user, err := h.services.UserService.Upsert(r.Context(), models.ExistingUser(id, body.UserProfile))
	if err != nil {
		writeError(w, r, "*Handler.updateUser", err)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDFromPath(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	if err = h.services.UserService.Delete(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteUser", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}

func userIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}
	return id, nil
}

func decodeUserRequest(r *http.Request) (userRequest, error) {
	var body userRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return userRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return body, nil
}
