package log

import (
	"context"
	"testing"
)

func TestRequestIDContext(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		ctx := ContextWithRequestID(context.Background(), "abc-123")
		if got := RequestIDFromContext(ctx); got != "abc-123" {
			t.Errorf("expected abc-123, got %q", got)
		}
	})

	t.Run("absent", func(t *testing.T) {
		if got := RequestIDFromContext(context.Background()); got != "" {
			t.Errorf("expected empty id, got %q", got)
		}
	})
}

func TestInit(t *testing.T) {
	cases := []ZapConfig{
		{},
		{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true},
		{Level: "not-a-level", Encoding: "json"},
	}

	for _, cfg := range cases {
		l := Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		// Must not panic, with or without a request id.
		l.Info(context.Background(), "hello")
		l.Infof(ContextWithRequestID(context.Background(), "id-1"), "hello %s", "again")
	}
}
