package database

import (
	"github.com/giftcraft/authentiq/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	image      *models.ImageModel
	review     *models.ReviewModel
	decision   *models.DecisionModel
	stats      *models.CategoryStatsModel
	submission *models.SubmissionModel
	setting    *models.SettingModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		image:      models.NewImage(db, logger),
		review:     models.NewReview(db, logger),
		decision:   models.NewDecision(db, logger),
		stats:      models.NewCategoryStats(db, logger),
		submission: models.NewSubmission(db, logger),
		setting:    models.NewSetting(db, logger),
	}
}

// Image returns the candidate image model repository.
func (r *Repository) Image() *models.ImageModel {
	return r.image
}

// Review returns the review entry model repository.
func (r *Repository) Review() *models.ReviewModel {
	return r.review
}

// Decision returns the decision record model repository.
func (r *Repository) Decision() *models.DecisionModel {
	return r.decision
}

// Stats returns the category statistics model repository.
func (r *Repository) Stats() *models.CategoryStatsModel {
	return r.stats
}

// Submission returns the practice submission model repository.
func (r *Repository) Submission() *models.SubmissionModel {
	return r.submission
}

// Setting returns the settings model repository.
func (r *Repository) Setting() *models.SettingModel {
	return r.setting
}
