package service

import (
	"context"
	"time"

	"github.com/giftcraft/authentiq/internal/database/models"
	"github.com/giftcraft/authentiq/internal/database/types"
	"github.com/giftcraft/authentiq/internal/database/types/enum"
	"go.uber.org/zap"
)

const (
	defaultQueuePageSize = 20
	maxQueuePageSize     = 100
)

// QueuePage is one page of the prioritized review queue.
type QueuePage struct {
	Entries []*types.AnnotatedEntry `json:"entries"`
	Total   int                     `json:"total"`
	Page    int                     `json:"page"`
	Limit   int                     `json:"limit"`
}

// QueueService serves the prioritized review queue to admins.
type QueueService struct {
	review     *models.ReviewModel
	authorizer AuthorizationProvider
	logger     *zap.Logger
}

// NewQueue creates a new queue service.
func NewQueue(review *models.ReviewModel, authorizer AuthorizationProvider, logger *zap.Logger) *QueueService {
	return &QueueService{
		review:     review,
		authorizer: authorizer,
		logger:     logger.Named("queue_service"),
	}
}

// List returns one page of entries for the admin, ordered and paginated in
// the database and annotated with each entry's current priority score.
func (s *QueueService) List(
	ctx context.Context,
	adminID int64,
	filter types.ReviewQueueFilter,
	sortBy enum.QueueSortBy,
	page, limit int,
) (*QueuePage, error) {
	if err := s.authorizer.EnsureReviewer(ctx, adminID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = defaultQueuePageSize
	}

	if limit > maxQueuePageSize {
		limit = maxQueuePageSize
	}

	entries, total, err := s.review.List(ctx, filter, sortBy, page, limit)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	annotated := make([]*types.AnnotatedEntry, len(entries))
	for i, entry := range entries {
		annotated[i] = &types.AnnotatedEntry{
			ReviewEntry:   entry,
			PriorityScore: entry.PriorityAt(now),
		}
	}

	s.logger.Debug("Listed review queue",
		zap.Int64("adminID", adminID),
		zap.Int("page", page),
		zap.Int("limit", limit),
		zap.Int("total", total))

	return &QueuePage{
		Entries: annotated,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

// Get returns one entry with its current priority score.
func (s *QueueService) Get(ctx context.Context, adminID, entryID int64) (*types.AnnotatedEntry, error) {
	if err := s.authorizer.EnsureReviewer(ctx, adminID); err != nil {
		return nil, err
	}

	entry, err := s.review.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	return &types.AnnotatedEntry{
		ReviewEntry:   entry,
		PriorityScore: entry.PriorityAt(time.Now()),
	}, nil
}
