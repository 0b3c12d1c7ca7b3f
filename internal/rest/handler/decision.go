package handler

import (
	"net/http"
	"strconv"

	"github.com/giftcraft/authentiq/internal/database"
	"github.com/giftcraft/authentiq/internal/database/service"
	"github.com/giftcraft/authentiq/internal/database/types/enum"
	"github.com/giftcraft/authentiq/internal/rest/convert"
	"github.com/giftcraft/authentiq/internal/rest/middleware"
	restTypes "github.com/giftcraft/authentiq/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// maxBatchSize bounds one batch decision request.
const maxBatchSize = 50

// decisionPayload is one verdict as submitted over the API. The decision
// arrives by name; the admin comes from the auth middleware, never the body.
type decisionPayload struct {
	EntryID               int64  `json:"entryId"`
	Decision              string `json:"decision"`
	Notes                 string `json:"notes,omitempty"`
	Reasoning             string `json:"reasoning,omitempty"`
	ReviewDurationSeconds int64  `json:"reviewDurationSeconds,omitempty"`
	WasCorrectlyFlagged   *bool  `json:"wasCorrectlyFlagged,omitempty"`
}

func (p *decisionPayload) toRequest(adminID int64) (*service.DecisionRequest, error) {
	decision, err := enum.AdminDecisionString(p.Decision)
	if err != nil {
		return nil, err
	}

	return &service.DecisionRequest{
		EntryID:               p.EntryID,
		Decision:              decision,
		AdminID:               adminID,
		Notes:                 p.Notes,
		Reasoning:             p.Reasoning,
		ReviewDurationSeconds: p.ReviewDurationSeconds,
		WasCorrectlyFlagged:   p.WasCorrectlyFlagged,
	}, nil
}

// DecisionHandler processes admin verdicts and serves the audit trail.
type DecisionHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewDecisionHandler creates a new decision handler.
func NewDecisionHandler(db database.Client, logger *zap.Logger) *DecisionHandler {
	return &DecisionHandler{
		db:     db,
		logger: logger,
	}
}

// SubmitDecision applies one verdict to a pending entry.
func (h *DecisionHandler) SubmitDecision(w http.ResponseWriter, req bunrouter.Request) error {
	adminID := middleware.AdminIDFromContext(req.Context())

	var payload decisionPayload
	if err := decodeJSON(req, &payload); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return nil
	}

	request, err := payload.toRequest(adminID)
	if err != nil {
		http.Error(w, "unknown decision: "+payload.Decision, http.StatusBadRequest)
		return nil
	}

	record, err := h.db.Service().Decision().SubmitDecision(req.Context(), request)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return bunrouter.JSON(w, restTypes.DecisionResponse{
		EntryID:  record.EntryID,
		Decision: record.NewDecision.String(),
		RecordID: record.ID,
		Time:     record.Timestamp,
	})
}

// SubmitBatch applies independent verdicts to many entries and reports each
// outcome separately.
func (h *DecisionHandler) SubmitBatch(w http.ResponseWriter, req bunrouter.Request) error {
	adminID := middleware.AdminIDFromContext(req.Context())

	var payload struct {
		Items []decisionPayload `json:"items"`
	}

	if err := decodeJSON(req, &payload); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return nil
	}

	if len(payload.Items) == 0 || len(payload.Items) > maxBatchSize {
		http.Error(w, "batch must contain between 1 and "+strconv.Itoa(maxBatchSize)+" items",
			http.StatusBadRequest)

		return nil
	}

	items := make([]*service.DecisionRequest, len(payload.Items))

	for i := range payload.Items {
		request, err := payload.Items[i].toRequest(adminID)
		if err != nil {
			http.Error(w, "unknown decision: "+payload.Items[i].Decision, http.StatusBadRequest)
			return nil
		}

		items[i] = request
	}

	results := h.db.Service().Decision().SubmitBatch(req.Context(), items)

	return bunrouter.JSON(w, bunrouter.H{"results": results})
}

// GetHistory returns the full audit trail for one image in chronological order.
func (h *DecisionHandler) GetHistory(w http.ResponseWriter, req bunrouter.Request) error {
	adminID := middleware.AdminIDFromContext(req.Context())

	imageID, err := strconv.ParseInt(req.Param("id"), 10, 64)
	if err != nil {
		http.Error(w, "malformed image ID", http.StatusBadRequest)
		return nil
	}

	imageType, err := enum.ImageTypeString(req.Param("type"))
	if err != nil {
		http.Error(w, "unknown image type: "+req.Param("type"), http.StatusBadRequest)
		return nil
	}

	records, err := h.db.Service().Decision().History(req.Context(), adminID, imageID, imageType)
	if err != nil {
		return writeError(w, h.logger, err)
	}

	history := make([]restTypes.HistoryRecord, len(records))
	for i, record := range records {
		history[i] = convert.HistoryRecord(record)
	}

	return bunrouter.JSON(w, restTypes.HistoryResponse{
		ImageID: imageID,
		Records: history,
	})
}
