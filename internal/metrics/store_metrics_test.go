package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vitistack/hotel-reservations/internal/model"
	"github.com/vitistack/hotel-reservations/pkg/persistence"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "success", err: nil, want: OutcomeOK},
		{name: "hotel-not-found", err: fmt.Errorf("%w: id: 2", model.ErrHotelNotFound), want: OutcomeNotFound},
		{name: "reservation-not-found", err: model.ErrReservationNotFound, want: OutcomeNotFound},
		{name: "invalid-customer", err: fmt.Errorf("%w: id: 9", model.ErrInvalidCustomerReference), want: OutcomeInvalidReference},
		{name: "corrupted", err: persistence.NewCorruptedError("hotels.json", errors.New("eof")), want: OutcomeCorrupted},
		{name: "other", err: errors.New("disk full"), want: OutcomeError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Outcome(tt.err); got != tt.want {
				t.Errorf("expected %v, but got: %v", tt.want, got)
			}
		})
	}
}

func TestRecordOperation(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewStoreMetricsWithRegisterer(registry)

	m.RecordOperation("hotel", "create", time.Now(), nil)
	m.RecordOperation("hotel", "create", time.Now(), nil)
	m.RecordOperation("hotel", "read", time.Now(), model.ErrHotelNotFound)
	m.RecordCollectionSize("hotel", 2)

	if got := testutil.ToFloat64(m.operations.WithLabelValues("hotel", "create", OutcomeOK)); got != 2 {
		t.Errorf("expected 2 successful creates, but got: %v", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("hotel", "read", OutcomeNotFound)); got != 1 {
		t.Errorf("expected 1 failed read, but got: %v", got)
	}
	if got := testutil.ToFloat64(m.records.WithLabelValues("hotel")); got != 2 {
		t.Errorf("expected 2 records, but got: %v", got)
	}
}

func TestRegisterTwiceReusesCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := NewStoreMetricsWithRegisterer(registry)
	second := NewStoreMetricsWithRegisterer(registry)

	first.RecordOperation("customer", "delete", time.Now(), nil)

	if got := testutil.ToFloat64(second.operations.WithLabelValues("customer", "delete", OutcomeOK)); got != 1 {
		t.Errorf("expected collectors to be shared, but got: %v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *StoreMetrics
	m.RecordOperation("hotel", "create", time.Now(), nil)
	m.RecordCollectionSize("hotel", 1)
}
