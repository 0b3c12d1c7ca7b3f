package handler

import (
	"net/http"
	"strconv"

	"github.com/giftcraft/authentiq/internal/database"
	"github.com/giftcraft/authentiq/internal/database/types"
	"github.com/giftcraft/authentiq/internal/database/types/enum"
	"github.com/giftcraft/authentiq/internal/rest/convert"
	"github.com/giftcraft/authentiq/internal/rest/middleware"
	restTypes "github.com/giftcraft/authentiq/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// QueueHandler serves the prioritized review queue.
type QueueHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewQueueHandler creates a new queue handler.
func NewQueueHandler(db database.Client, logger *zap.Logger) *QueueHandler {
	return &QueueHandler{
		db:     db,
		logger: logger,
	}
}

// ListQueue returns one page of the review queue. Filters on category, risk
// level and decision combine; sorting defaults to priority.
func (h *QueueHandler) ListQueue(w http.ResponseWriter, req bunrouter.Request) error {
	adminID := middleware.AdminIDFromContext(req.Context())
	query := req.URL.Query()

	var filter types.ReviewQueueFilter

	filter.Category = query.Get("category")

	if raw := query.Get("riskLevel"); raw != "" {
		level, err := enum.RiskLevelString(raw)
		if err != nil {
			http.Error(w, "unknown risk level: "+raw, http.StatusBadRequest)
			return nil
		}

		filter.RiskLevel = &level
	}

	if raw := query.Get("decision"); raw != "" {
		decision, err := enum.AdminDecisionString(raw)
		if err != nil {
			http.Error(w, "unknown decision: "+raw, http.StatusBadRequest)
			return nil
		}

		filter.Decision = &decision
	} else {
		// Default to the open queue
		pending := enum.AdminDecisionPending
		filter.Decision = &pending
	}

	sortBy := enum.QueueSortByPriority

	if raw := query.Get("sort"); raw != "" {
		parsed, err := enum.QueueSortByString(raw)
		if err != nil {
			http.Error(w, "unknown sort order: "+raw, http.StatusBadRequest)
			return nil
		}

		sortBy = parsed
	}

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	result, err := h.db.Service().Queue().List(req.Context(), adminID, filter, sortBy, page, limit)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	entries := make([]restTypes.QueueEntry, len(result.Entries))
	for i, entry := range result.Entries {
		entries[i] = convert.QueueEntry(entry)
	}

	return bunrouter.JSON(w, restTypes.QueueResponse{
		Entries: entries,
		Total:   result.Total,
		Page:    result.Page,
		Limit:   result.Limit,
	})
}

// GetEntry returns one review entry with its current priority score.
func (h *QueueHandler) GetEntry(w http.ResponseWriter, req bunrouter.Request) error {
	adminID := middleware.AdminIDFromContext(req.Context())

	entryID, err := strconv.ParseInt(req.Param("id"), 10, 64)
	if err != nil {
		http.Error(w, "malformed entry ID", http.StatusBadRequest)
		return nil
	}

	entry, err := h.db.Service().Queue().Get(req.Context(), adminID, entryID)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, convert.QueueEntry(entry))
}
