package telemetry

import (
	"context"
	"testing"
)

func TestSetupDisabledIsNoop(t *testing.T) {
	for _, tc := range []struct {
		enabled  bool
		endpoint string
	}{{false, "http://localhost:4318"}, {true, ""}} {
		shutdown, err := Setup(context.Background(), tc.enabled, tc.endpoint)
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown: %v", err)
		}
	}
}
