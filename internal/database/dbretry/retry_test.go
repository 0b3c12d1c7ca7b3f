package dbretry

import (
	"context"
	"errors"
	"testing"
)

func TestIsRetryableError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("syntax error at or near"), false},
		{"context deadline", context.DeadlineExceeded, true},
		{"context canceled", context.Canceled, true},
		{"connection reset", errors.New("read tcp: connection reset by peer"), true},
		{"broken pipe", errors.New("write: broken pipe"), true},
		{"refused", errors.New("dial tcp: connection refused"), true},
		{"io timeout", errors.New("read tcp: i/o timeout"), true},
		{"eof", errors.New("unexpected EOF"), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsRetryableError(c.err); got != c.want {
				t.Errorf("IsRetryableError(%v) = %v, want %v", c.err, got, c.want)
			}
		})
	}
}

func TestOperation_PermanentErrorStopsRetrying(t *testing.T) {
	calls := 0
	wantErr := errors.New("duplicate key value violates unique constraint")

	_, err := Operation(context.Background(), func(context.Context) (int, error) {
		calls++
		return 0, wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Fatalf("Expected wrapped permanent error, got %v", err)
	}

	if calls != 1 {
		t.Errorf("Expected exactly 1 attempt for a permanent error, got %d", calls)
	}
}

func TestOperation_RetriesTransientError(t *testing.T) {
	calls := 0

	result, err := Operation(context.Background(), func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("dial tcp: connection refused")
		}

		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Expected success after transient errors, got %v", err)
	}

	if result != "ok" || calls != 3 {
		t.Errorf("Expected 3 attempts ending in %q, got %d attempts and %q", "ok", calls, result)
	}
}
