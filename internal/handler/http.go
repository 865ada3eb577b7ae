package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/store-service/internal/auth"
	"github.com/SergeyBogomolovv/store-service/internal/entities"
	"github.com/SergeyBogomolovv/store-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// writeServiceError maps domain errors to HTTP responses. Anything unknown is
// logged and reported as 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, msg string) {
	var ve *entities.ValidationError

	switch {
	case errors.As(err, &ve):
		utils.WriteValidationError(w, ve)
	case errors.Is(err, entities.ErrUnauthorized):
		w.Header().Set("WWW-Authenticate", "Bearer")
		utils.WriteError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, entities.ErrNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	default:
		logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// authenticated rejects anonymous callers before their request body is looked at.
func authenticated(w http.ResponseWriter, r *http.Request) bool {
	if auth.FromContext(r.Context()).IsAuthenticated() {
		return true
	}
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteError(w, entities.ErrUnauthorized.Error(), http.StatusUnauthorized)
	return false
}

func pathID(r *http.Request) (int64, error) {
	return utils.ParseID(chi.URLParam(r, "id"))
}
