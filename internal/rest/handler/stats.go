package handler

import (
	"net/http"
	"strconv"

	"github.com/giftcraft/authentiq/internal/database"
	"github.com/giftcraft/authentiq/internal/rest/convert"
	restTypes "github.com/giftcraft/authentiq/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// StatsHandler serves read-only statistics rollups.
type StatsHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(db database.Client, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		db:     db,
		logger: logger,
	}
}

// GetOverview returns the dashboard rollup.
func (h *StatsHandler) GetOverview(w http.ResponseWriter, req bunrouter.Request) error {
	days, _ := strconv.Atoi(req.URL.Query().Get("days"))

	stats, err := h.db.Service().Stats().Overview(req.Context(), days)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, stats)
}

// GetCategoryStats returns the per-category daily buckets with their false
// positive rates.
func (h *StatsHandler) GetCategoryStats(w http.ResponseWriter, req bunrouter.Request) error {
	days, _ := strconv.Atoi(req.URL.Query().Get("days"))

	stats, err := h.db.Service().Stats().CategoryStats(req.Context(), days)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	entries := make([]restTypes.CategoryStatEntry, len(stats))
	for i, stat := range stats {
		entries[i] = convert.CategoryStat(stat)
	}

	return bunrouter.JSON(w, bunrouter.H{"categories": entries})
}
