package otel

import (
	"context"
	"testing"
)

func TestSettingsActive(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     bool
	}{
		{name: "empty", settings: Settings{}, want: false},
		{name: "endpoint only", settings: Settings{Endpoint: "http://localhost:4318"}, want: true},
		{name: "disabled", settings: Settings{Enabled: "FALSE", Endpoint: "http://localhost:4318"}, want: false},
		{name: "enabled without endpoint", settings: Settings{Enabled: "true"}, want: false},
		{name: "blank endpoint", settings: Settings{Endpoint: "  "}, want: false},
	}
	for _, tc := range tests {
		if got := tc.settings.active(); got != tc.want {
			t.Fatalf("%s: active() = %t, want %t", tc.name, got, tc.want)
		}
	}
}

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("AVATARGEN_OTEL_ENDPOINT", "")
	t.Setenv("AVATARGEN_OTEL_ENABLED", "")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("AVATARGEN_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("AVATARGEN_OTEL_ENABLED", "false")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no export ever completes.
	t.Setenv("AVATARGEN_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("AVATARGEN_OTEL_ENABLED", "")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
