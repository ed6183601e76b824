package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-users-api/internal/app"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fields, err := decodeUserFields(r)
	if err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON)
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, fields)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userIDFromPath(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

// updateUser applies a merge-patch: only the keys present in the body are
// changed. An "id" key in the body is ignored.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := h.userIDFromPath(w, r)
	if !ok {
		return
	}

	fields, err := decodeUserFields(r)
	if err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), models.UserUpdate{ID: id, Fields: fields})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.MessageResponse{Message: app.MsgUserDeleted}, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, users, http.StatusOK)
}

// decodeUserFields reads exactly one JSON object from the body. Anything but
// whitespace after it makes the whole body invalid.
func decodeUserFields(r *http.Request) (models.UserFields, error) {
	var fields models.UserFields

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&fields); err != nil {
		return models.UserFields{}, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return models.UserFields{}, errTrailingData
	}

	return fields, nil
}

// userIDFromPath parses the {id} URL parameter. Non-positive and out of
// range integers are valid ids here and simply never match a row.
func (h *Handler) userIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		// an integer no row can have
		h.writeError(w, r, store.ErrUserNotFound)
		return 0, false
	}
	if err != nil {
		logger.FromRequest(r).Err(err).Str("id", raw).Msg("invalid user id in path")
		h.writeError(w, r, errInvalidUserID)
		return 0, false
	}

	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	h.writeJSON(w, r, models.ErrorResponse{Detail: detailFromError(err, status)}, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
