package observe

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vitistack/hotel-reservations/internal/metrics"
	"github.com/vitistack/hotel-reservations/pkg/persistence"
)

type observerConfig struct {
	Logger  *slog.Logger
	Metrics *metrics.StoreMetrics
}

type Option func(cfg *observerConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *observerConfig) {
		cfg.Logger = logger
	}
}

func WithMetrics(m *metrics.StoreMetrics) Option {
	return func(cfg *observerConfig) {
		cfg.Metrics = m
	}
}

// Observer logs and measures repository operations for one entity kind.
type Observer struct {
	entity  string
	logger  *slog.Logger
	metrics *metrics.StoreMetrics
}

func New(entity string, opts ...Option) *Observer {
	cfg := observerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Observer{
		entity:  entity,
		logger:  logger.With(slog.String("entity", entity)),
		metrics: cfg.Metrics,
	}
}

// Span covers a single load, mutate and save cycle.
type Span struct {
	observer *Observer
	op       string
	logger   *slog.Logger
	started  time.Time
}

func (o *Observer) Start(op string) *Span {
	opID := "N/A"
	if id, err := uuid.NewV7(); err == nil {
		opID = id.String()
	}

	return &Span{
		observer: o,
		op:       op,
		logger:   o.logger.With(slog.String("op", op), slog.String("op_id", opID)),
		started:  time.Now(),
	}
}

func (s *Span) Logger() *slog.Logger {
	return s.logger
}

// Saved records the size of the collection that was just written.
func (s *Span) Saved(size int) {
	s.observer.metrics.RecordCollectionSize(s.observer.entity, size)
	s.logger.Debug("collection saved", slog.Int("records", size))
}

func (s *Span) End(err error) {
	s.observer.metrics.RecordOperation(s.observer.entity, s.op, s.started, err)

	elapsed := slog.Duration("elapsed", time.Since(s.started))
	switch {
	case err == nil:
		s.logger.Debug("operation completed", elapsed)
	case errors.Is(err, persistence.ErrCorruptedStore):
		s.logger.Error("store is corrupted, manual repair required", slog.String("reason", err.Error()), elapsed)
	default:
		s.logger.Warn("operation failed", slog.String("reason", err.Error()), elapsed)
	}
}
