package handler

import (
	"net/http"

	"github.com/giftcraft/authentiq/internal/database"
	"github.com/giftcraft/authentiq/internal/database/service"
	restTypes "github.com/giftcraft/authentiq/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// FlagHandler receives classifier flags.
type FlagHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewFlagHandler creates a new flag handler.
func NewFlagHandler(db database.Client, logger *zap.Logger) *FlagHandler {
	return &FlagHandler{
		db:     db,
		logger: logger,
	}
}

// SubmitFlag ingests one classifier flag. Safe to retry: resending the same
// flag merges into the open entry instead of queueing a duplicate.
func (h *FlagHandler) SubmitFlag(w http.ResponseWriter, req bunrouter.Request) error {
	var flag service.FlagRequest
	if err := decodeJSON(req, &flag); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return nil
	}

	result, err := h.db.Service().Ingest().Ingest(req.Context(), &flag)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	response := restTypes.FlagResponse{Status: "skipped"}

	switch {
	case result.Created:
		response.Status = "queued"
		response.EntryID = result.Entry.ID
	case result.Entry != nil:
		response.Status = "merged"
		response.EntryID = result.Entry.ID
	}

	return bunrouter.JSON(w, response)
}
