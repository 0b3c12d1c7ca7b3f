package database

import (
	"github.com/giftcraft/authentiq/internal/database/service"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	ingest   *service.IngestService
	decision *service.DecisionService
	queue    *service.QueueService
	stats    *service.StatsService
}

// NewService creates a new service instance with all services.
func NewService(db *bun.DB, repository *Repository, opts Options, logger *zap.Logger) *Service {
	imageModel := repository.Image()
	reviewModel := repository.Review()
	decisionModel := repository.Decision()
	statsModel := repository.Stats()
	submissionModel := repository.Submission()
	settingModel := repository.Setting()

	authorizer := service.NewSettingsAuthorizer(settingModel, logger)
	policy := service.NewThresholdPolicy(settingModel)

	return &Service{
		ingest: service.NewIngest(db, imageModel, reviewModel, statsModel, policy,
			service.NewKeywordCategoryResolver(nil), logger),
		decision: service.NewDecision(db, reviewModel, decisionModel, imageModel,
			submissionModel, statsModel, authorizer, opts.Notifier, logger),
		queue: service.NewQueue(reviewModel, authorizer, logger),
		stats: service.NewStats(reviewModel, decisionModel, statsModel, logger),
	}
}

// Ingest returns the flag ingestion service.
func (s *Service) Ingest() *service.IngestService {
	return s.ingest
}

// Decision returns the decision processing service.
func (s *Service) Decision() *service.DecisionService {
	return s.decision
}

// Queue returns the review queue service.
func (s *Service) Queue() *service.QueueService {
	return s.queue
}

// Stats returns the statistics aggregation service.
func (s *Service) Stats() *service.StatsService {
	return s.stats
}
