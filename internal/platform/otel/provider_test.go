package otel

import (
	"context"
	"strings"
	"testing"
)

func TestSetupIsNoopWhenOff(t *testing.T) {
	cases := map[string]Settings{
		"no endpoint": {ServiceName: "test", Enabled: true},
		"disabled":    {ServiceName: "test", Endpoint: "http://localhost:4318", Enabled: false},
		"blank":       {ServiceName: "test", Endpoint: "   ", Enabled: true},
	}
	for name, settings := range cases {
		t.Run(name, func(t *testing.T) {
			shutdown, err := Setup(context.Background(), settings)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := shutdown(context.Background()); err != nil {
				t.Fatalf("shutdown error: %v", err)
			}
		})
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address; nothing is exported before shutdown.
	shutdown, err := Setup(context.Background(), Settings{
		ServiceName: "test",
		Endpoint:    "http://192.0.2.1:4318",
		Enabled:     true,
		SampleRatio: 0.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSampler(t *testing.T) {
	for _, ratio := range []float64{0, 1, -2, 3} {
		if got := sampler(ratio).Description(); strings.Contains(got, "TraceIDRatioBased") {
			t.Fatalf("sampler(%v) should keep every span, got %q", ratio, got)
		}
	}
	if got := sampler(0.25).Description(); !strings.Contains(got, "TraceIDRatioBased{0.25}") {
		t.Fatalf("sampler(0.25) = %q", got)
	}
}
