// Package storage opens the hotel, customer and reservation collections on the
// configured backend.
//
// Supported backends:
//
//	"json"   - one JSON file per collection in the data directory (default)
//	"sqlite" - one row per collection in a SQLite database
//	"memory" - in-memory, gone when the process exits
package storage

import (
	"fmt"

	"github.com/vitistack/hotel-reservations/internal/config"
	"github.com/vitistack/hotel-reservations/internal/model"
	"github.com/vitistack/hotel-reservations/pkg/persistence"
	"github.com/vitistack/hotel-reservations/pkg/persistence/store/file"
	"github.com/vitistack/hotel-reservations/pkg/persistence/store/memory"
	"github.com/vitistack/hotel-reservations/pkg/persistence/store/sqlite"
)

const (
	hotelsCollection       = "hotels"
	customersCollection    = "customers"
	reservationsCollection = "reservations"
)

type Stores struct {
	Hotels       persistence.Store[model.Hotel]
	Customers    persistence.Store[model.Customer]
	Reservations persistence.Store[model.Reservation]
	closeFn      func() error
}

func (s *Stores) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

func New(cfg *config.Storage) (*Stores, error) {
	switch cfg.Backend {
	case config.BackendJSON, "":
		return newFileStores(cfg)
	case config.BackendSQLite:
		return newSQLiteStores(cfg)
	case config.BackendMemory:
		return &Stores{
			Hotels:       memory.NewStore[model.Hotel](hotelsCollection),
			Customers:    memory.NewStore[model.Customer](customersCollection),
			Reservations: memory.NewStore[model.Reservation](reservationsCollection),
		}, nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q (supported: json, sqlite, memory)", cfg.Backend)
	}
}

func newFileStores(cfg *config.Storage) (*Stores, error) {
	hotels, err := file.NewStore[model.Hotel](cfg.Path(cfg.HotelsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open hotels: %w", err)
	}

	customers, err := file.NewStore[model.Customer](cfg.Path(cfg.CustomersFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open customers: %w", err)
	}

	reservations, err := file.NewStore[model.Reservation](cfg.Path(cfg.ReservationsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open reservations: %w", err)
	}

	return &Stores{
		Hotels:       hotels,
		Customers:    customers,
		Reservations: reservations,
	}, nil
}

func newSQLiteStores(cfg *config.Storage) (*Stores, error) {
	db, err := sqlite.Open(cfg.Path(cfg.SQLiteFile))
	if err != nil {
		return nil, err
	}

	return &Stores{
		Hotels:       sqlite.NewStore[model.Hotel](db, hotelsCollection),
		Customers:    sqlite.NewStore[model.Customer](db, customersCollection),
		Reservations: sqlite.NewStore[model.Reservation](db, reservationsCollection),
		closeFn:      db.Close,
	}, nil
}
