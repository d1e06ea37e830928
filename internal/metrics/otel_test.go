package metrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsPlainRecorder(t *testing.T) {
	rec, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil || rec.otel != nil {
		t.Fatalf("expected in-memory recorder")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}

func TestSetupEnabledWritesTextfileOnShutdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hoops.prom")
	rec, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:      true,
		ServiceName:  "hoops-analytics-test",
		TextfilePath: path,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil || rec.otel == nil {
		t.Fatalf("expected otel-backed recorder")
	}

	rec.RecordProviderAttempt("exposure", time.Millisecond, nil)
	rec.RecordRateLimit("exposure", time.Second)
	rec.RecordParse("6th Girls", 3, 1, 0)
	rec.RecordSnapshotWrite("6th Girls", true)
	rec.RecordComparison("6th Girls", map[string]int{"ADDED": 2})
	rec.RecordRatingRun("6th Girls", time.Millisecond, 12, false)
	rec.RecordStage("analyze", "6th Girls", time.Millisecond, nil)

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected textfile, got %v", err)
	}
	for _, name := range []string{"provider_attempts", "game_changes", "rating_runs"} {
		if !strings.Contains(string(data), name) {
			t.Fatalf("expected %s in textfile:\n%s", name, data)
		}
	}
}

func TestSetupPropagatesReaderError(t *testing.T) {
	orig := promReaderFactory
	t.Cleanup(func() { promReaderFactory = orig })
	promReaderFactory = func() (sdkmetric.Reader, *prometheus.Registry, error) {
		return nil, nil, errors.New("boom")
	}

	if _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected reader error")
	}
}

func TestShutdownReportsTextfileError(t *testing.T) {
	orig := writeTextfile
	t.Cleanup(func() { writeTextfile = orig })
	writeTextfile = func(string, prometheus.Gatherer) error { return errors.New("disk full") }

	_, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, TextfilePath: "ignored.prom"})
	if err != nil {
		t.Fatalf("unexpected setup error %v", err)
	}
	if err := shutdown(context.Background()); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected textfile error, got %v", err)
	}
}
