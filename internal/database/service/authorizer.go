package service

import (
	"context"

	"github.com/giftcraft/authentiq/internal/database/models"
	"github.com/giftcraft/authentiq/internal/database/types"
	"go.uber.org/zap"
)

// AuthorizationProvider is the single capability the review surfaces consult
// before any operation. No handler or service does its own inline admin check.
type AuthorizationProvider interface {
	// EnsureReviewer returns types.ErrNotAuthorized when the admin may not
	// operate the review queue.
	EnsureReviewer(ctx context.Context, adminID int64) error
}

// SettingsAuthorizer authorizes admins against the access list in the
// settings table, read fresh per check so revocations apply immediately.
type SettingsAuthorizer struct {
	settings *models.SettingModel
	logger   *zap.Logger
}

// NewSettingsAuthorizer creates a SettingsAuthorizer.
func NewSettingsAuthorizer(settings *models.SettingModel, logger *zap.Logger) *SettingsAuthorizer {
	return &SettingsAuthorizer{
		settings: settings,
		logger:   logger.Named("authorizer"),
	}
}

// EnsureReviewer checks the admin against the stored access list.
func (a *SettingsAuthorizer) EnsureReviewer(ctx context.Context, adminID int64) error {
	access, err := a.settings.GetReviewAccess(ctx)
	if err != nil {
		return err
	}

	if !access.IsAdmin(adminID) {
		a.logger.Warn("Rejected unauthorized review access", zap.Int64("adminID", adminID))
		return types.ErrNotAuthorized
	}

	return nil
}
