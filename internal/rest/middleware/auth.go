package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// AdminIDHeader carries the acting admin's identifier on review endpoints.
// Authorization against the stored access list happens in the service layer;
// this middleware only establishes who is asking.
const AdminIDHeader = "X-Admin-ID"

type adminIDKey struct{}

// Auth extracts the admin ID header into the request context.
type Auth struct {
	logger *zap.Logger
}

// NewAuth creates the auth middleware.
func NewAuth(logger *zap.Logger) *Auth {
	return &Auth{logger: logger.Named("rest_auth")}
}

// AsMiddleware rejects requests without a parsable admin ID header.
func (m *Auth) AsMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		raw := req.Header.Get(AdminIDHeader)
		if raw == "" {
			http.Error(w, "missing "+AdminIDHeader+" header", http.StatusUnauthorized)
			return nil
		}

		adminID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || adminID <= 0 {
			m.logger.Debug("Rejected malformed admin ID header", zap.String("value", raw))
			http.Error(w, "malformed "+AdminIDHeader+" header", http.StatusUnauthorized)

			return nil
		}

		ctx := context.WithValue(req.Context(), adminIDKey{}, adminID)

		return next(w, req.WithContext(ctx))
	}
}

// AdminIDFromContext returns the admin ID established by the middleware.
func AdminIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(adminIDKey{}).(int64)
	return id
}
