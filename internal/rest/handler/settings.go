package handler

import (
	"net/http"

	"github.com/giftcraft/authentiq/internal/database"
	"github.com/giftcraft/authentiq/internal/database/service"
	"github.com/giftcraft/authentiq/internal/rest/middleware"
	restTypes "github.com/giftcraft/authentiq/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// SettingsHandler serves the operator-tunable review thresholds.
// Edits apply to the very next ingestion; nothing is cached server-side.
type SettingsHandler struct {
	db         database.Client
	authorizer service.AuthorizationProvider
	logger     *zap.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(db database.Client, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		db:         db,
		authorizer: service.NewSettingsAuthorizer(db.Model().Setting(), logger),
		logger:     logger,
	}
}

// GetThresholds returns the current review thresholds.
func (h *SettingsHandler) GetThresholds(w http.ResponseWriter, req bunrouter.Request) error {
	adminID := middleware.AdminIDFromContext(req.Context())

	if err := h.authorizer.EnsureReviewer(req.Context(), adminID); err != nil {
		return writeError(w, h.logger, err)
	}

	thresholds, err := h.db.Model().Setting().GetReviewThresholds(req.Context())
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, restTypes.FromThresholds(thresholds))
}

// UpdateThresholds persists edited review thresholds.
func (h *SettingsHandler) UpdateThresholds(w http.ResponseWriter, req bunrouter.Request) error {
	adminID := middleware.AdminIDFromContext(req.Context())

	if err := h.authorizer.EnsureReviewer(req.Context(), adminID); err != nil {
		return writeError(w, h.logger, err)
	}

	var payload restTypes.ThresholdsPayload
	if err := decodeJSON(req, &payload); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return nil
	}

	thresholds, err := payload.ToThresholds()
	if err != nil {
		http.Error(w, "unknown risk level in thresholds", http.StatusBadRequest)
		return nil
	}

	if err := h.db.Model().Setting().SaveReviewThresholds(req.Context(), thresholds); err != nil {
		return writeError(w, h.logger, err)
	}

	h.logger.Info("Updated review thresholds",
		zap.Int64("adminID", adminID),
		zap.Float64("scoreThreshold", thresholds.ScoreThreshold),
		zap.Int("matchCountThreshold", thresholds.MatchCountThreshold))

	return bunrouter.JSON(w, restTypes.FromThresholds(thresholds))
}
