package notify

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/giftcraft/authentiq/internal/database/service"
	"go.uber.org/zap"
)

const defaultTimeout = 5 * time.Second

// WebhookNotifier delivers decision notices to a configured HTTP endpoint.
// Delivery is best effort; the caller decides what to do with failures.
type WebhookNotifier struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewWebhook creates a WebhookNotifier. A zero timeout uses the default.
func NewWebhook(url string, timeout time.Duration, logger *zap.Logger) *WebhookNotifier {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger.Named("notify_webhook"),
	}
}

// NotifyDecision posts the notice as JSON to the webhook endpoint.
func (n *WebhookNotifier) NotifyDecision(ctx context.Context, notice service.DecisionNotice) error {
	payload, err := sonic.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to encode decision notice: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver decision notice: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	n.logger.Debug("Delivered decision notice",
		zap.Int64("entryID", notice.EntryID),
		zap.Int64("ownerUserID", notice.OwnerUserID))

	return nil
}

// NoopNotifier discards all notices. Used when notifications are disabled.
type NoopNotifier struct{}

// NewNoop creates a NoopNotifier.
func NewNoop() *NoopNotifier {
	return &NoopNotifier{}
}

// NotifyDecision does nothing.
func (*NoopNotifier) NotifyDecision(context.Context, service.DecisionNotice) error {
	return nil
}
