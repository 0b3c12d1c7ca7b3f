package handler

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/giftcraft/authentiq/internal/database/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// decodeJSON reads a JSON request body into out.
func decodeJSON(req bunrouter.Request, out any) error {
	return sonic.ConfigDefault.NewDecoder(req.Body).Decode(out)
}

// writeError maps domain errors onto HTTP status codes. Unrecognized errors
// are logged and hidden behind a generic 500.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) error {
	switch {
	case errors.Is(err, types.ErrInvalidFlag):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, types.ErrNotAuthorized):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, types.ErrEntryNotFound),
		errors.Is(err, types.ErrImageNotFound),
		errors.Is(err, types.ErrSubmissionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, types.ErrAlreadyReviewed):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		logger.Error("Request failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}

	return nil
}
