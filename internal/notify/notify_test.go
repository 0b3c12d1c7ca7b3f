package notify_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/giftcraft/authentiq/internal/database/service"
	"github.com/giftcraft/authentiq/internal/database/types/enum"
	"github.com/giftcraft/authentiq/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWebhookNotifierDelivers(t *testing.T) {
	t.Parallel()

	var received service.DecisionNotice

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, sonic.Unmarshal(body, &received))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := notify.NewWebhook(server.URL, time.Second, zap.NewNop())

	notice := service.DecisionNotice{
		OwnerUserID: 42,
		EntryID:     7,
		ImageID:     1001,
		Decision:    enum.AdminDecisionApproved,
	}

	require.NoError(t, notifier.NotifyDecision(context.Background(), notice))
	assert.Equal(t, notice, received)
}

func TestWebhookNotifierRejectsErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := notify.NewWebhook(server.URL, time.Second, zap.NewNop())

	err := notifier.NotifyDecision(context.Background(), service.DecisionNotice{EntryID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNoopNotifier(t *testing.T) {
	t.Parallel()

	require.NoError(t, notify.NewNoop().NotifyDecision(context.Background(), service.DecisionNotice{}))
}
