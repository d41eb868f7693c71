package observe

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vitistack/hotel-reservations/internal/metrics"
	"github.com/vitistack/hotel-reservations/internal/model"
	"github.com/vitistack/hotel-reservations/pkg/persistence"
)

func newTestObserver(buf *bytes.Buffer, registry *prometheus.Registry) *Observer {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New("hotel",
		WithLogger(logger),
		WithMetrics(metrics.NewStoreMetricsWithRegisterer(registry)),
	)
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var line map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &line); err != nil {
		t.Fatalf("unable to decode log line: %s", err.Error())
	}
	return line
}

func TestSpanLogsOperation(t *testing.T) {
	buf := &bytes.Buffer{}
	registry := prometheus.NewRegistry()
	o := newTestObserver(buf, registry)

	span := o.Start("create")
	span.Saved(3)
	span.End(nil)

	line := lastLine(t, buf)
	if line["entity"] != "hotel" || line["op"] != "create" {
		t.Errorf("expected entity and op attributes, but got: %v", line)
	}
	if id, _ := line["op_id"].(string); len(id) != 36 {
		t.Errorf("expected uuid op_id, but got: %v", line["op_id"])
	}

	expected := `
# HELP hotel_store_records Number of records in a collection after the last successful save
# TYPE hotel_store_records gauge
hotel_store_records{entity="hotel"} 3
`
	if err := testutil.GatherAndCompare(registry, strings.NewReader(expected), "hotel_store_records"); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
}

func TestSpanLogLevels(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{name: "not-found", err: model.ErrHotelNotFound, level: "WARN"},
		{name: "corrupted", err: persistence.NewCorruptedError("hotels.json", errors.New("eof")), level: "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			o := newTestObserver(buf, prometheus.NewRegistry())

			o.Start("read").End(tt.err)

			line := lastLine(t, buf)
			if line["level"] != tt.level {
				t.Errorf("expected level %v, but got: %v", tt.level, line["level"])
			}
		})
	}
}

func TestNewWithoutOptions(t *testing.T) {
	o := New("customer")
	o.Start("delete").End(nil)
}
