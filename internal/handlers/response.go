package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social/internal/apperr"
	"github.com/sbilibin2017/gw-social/internal/logger"
	"github.com/sbilibin2017/gw-social/internal/middlewares"
	"github.com/sbilibin2017/gw-social/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeError maps err onto a status code and a short message.
// Causes of internal errors are logged, never sent.
func writeError(w http.ResponseWriter, err error) {
	var verr *apperr.ValidationError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:  "Validation failed",
			Fields: verr.Fields,
		})
	case errors.Is(err, apperr.ErrValidation):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed"})
	case errors.Is(err, apperr.ErrConflict):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Email already exists"})
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperr.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperr.ErrForbidden):
		writeJSON(w, http.StatusForbidden, models.ErrorResponse{Error: "Forbidden"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msg})
}

// pathID parses a uuid path parameter. An unparsable id cannot name anything, so it is 404.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Not found"})
		return uuid.Nil, false
	}
	return id, true
}

// requesterID returns the id AuthMiddleware attached to the request.
func requesterID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return uuid.Nil, false
	}
	return id, true
}

func writePhoto(w http.ResponseWriter, photo *models.Photo) {
	w.Header().Set("Content-Type", photo.ContentType)
	w.Header().Set("Cache-Control", "private, max-age=60")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(photo.Data); err != nil {
		logger.Log.Warnw("failed to write photo", "error", err)
	}
}
