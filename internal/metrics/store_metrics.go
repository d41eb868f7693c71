package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vitistack/hotel-reservations/internal/model"
	"github.com/vitistack/hotel-reservations/pkg/persistence"
)

const (
	OutcomeOK               = "ok"
	OutcomeNotFound         = "not_found"
	OutcomeInvalidReference = "invalid_reference"
	OutcomeCorrupted        = "corrupted"
	OutcomeError            = "error"
)

// StoreMetrics tracks repository operations per entity kind.
// A nil *StoreMetrics is valid and records nothing.
type StoreMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	records    *prometheus.GaugeVec
}

func NewStoreMetrics() *StoreMetrics {
	return NewStoreMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func NewStoreMetricsWithRegisterer(registerer prometheus.Registerer) *StoreMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &StoreMetrics{
		operations: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "hotel_store_operations_total",
			Help: "Total number of store operations by entity, operation and outcome",
		}, []string{"entity", "op", "outcome"}),
		duration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "hotel_store_operation_duration_seconds",
			Help:    "Duration of a full load, mutate and save cycle in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"entity", "op"}),
		records: registerGaugeVec(registerer, prometheus.GaugeOpts{
			Name: "hotel_store_records",
			Help: "Number of records in a collection after the last successful save",
		}, []string{"entity"}),
	}
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGaugeVec(registerer prometheus.Registerer, opts prometheus.GaugeOpts, labels []string) *prometheus.GaugeVec {
	collector := prometheus.NewGaugeVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.GaugeVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOperation counts one finished operation and its duration.
func (m *StoreMetrics) RecordOperation(entity, op string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(entity, op, Outcome(err)).Inc()
	m.duration.WithLabelValues(entity, op).Observe(time.Since(started).Seconds())
}

// RecordCollectionSize sets the record gauge after a save.
func (m *StoreMetrics) RecordCollectionSize(entity string, size int) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(entity).Set(float64(size))
}

// Outcome maps an operation error onto a low cardinality label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, persistence.ErrCorruptedStore):
		return OutcomeCorrupted
	case errors.Is(err, model.ErrInvalidHotelReference), errors.Is(err, model.ErrInvalidCustomerReference):
		return OutcomeInvalidReference
	case errors.Is(err, model.ErrHotelNotFound),
		errors.Is(err, model.ErrCustomerNotFound),
		errors.Is(err, model.ErrReservationNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
