package reservation

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/vitistack/hotel-reservations/internal/model"
	"github.com/vitistack/hotel-reservations/internal/repositories/observe"
	"github.com/vitistack/hotel-reservations/pkg/persistence"
)

// read-only view of the hotels a reservation may point at
type HotelReader interface {
	Read(id int) (model.Hotel, error)
}

// read-only view of the customers a reservation may point at
type CustomerReader interface {
	Read(id int) (model.Customer, error)
}

// ReservationRepo stores reservations and checks their hotel and customer at creation time.
// References are not checked again later, deleting a hotel leaves its reservations in place.
type ReservationRepo struct {
	lock      sync.Mutex
	store     persistence.Store[model.Reservation]
	hotels    HotelReader
	customers CustomerReader
	observer  *observe.Observer
}

func NewReservationRepo(
	store persistence.Store[model.Reservation],
	hotels HotelReader,
	customers CustomerReader,
	opts ...observe.Option,
) (*ReservationRepo, error) {
	if store == nil {
		return nil, fmt.Errorf("failed to create reservation repository: storage is required")
	}
	if isNil(hotels) {
		return nil, fmt.Errorf("%w: a hotel repository is required", model.ErrInvalidCollaborator)
	}
	if isNil(customers) {
		return nil, fmt.Errorf("%w: a customer repository is required", model.ErrInvalidCollaborator)
	}

	return &ReservationRepo{
		store:     store,
		hotels:    hotels,
		customers: customers,
		observer:  observe.New("reservation", opts...),
	}, nil
}

// catches typed nil pointers hidden in a non-nil interface
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Create appends a reservation after checking that the hotel and the customer exist.
// The same tuple may be reserved more than once.
func (rr *ReservationRepo) Create(hotelID, customerID int, from, to string) (model.Reservation, error) {
	rr.lock.Lock()
	defer rr.lock.Unlock()

	span := rr.observer.Start("create")
	created, err := rr.create(span, model.NewReservation(hotelID, customerID, from, to))
	span.End(err)
	return created, err
}

func (rr *ReservationRepo) create(span *observe.Span, new model.Reservation) (model.Reservation, error) {
	reservations, err := rr.store.LoadAll()
	if errors.Is(err, persistence.ErrStoreNotExist) {
		span.Logger().Info("storage does not exist, creating it", "source", rr.store.Source())
		if err := rr.store.SaveAll(nil); err != nil {
			return model.Reservation{}, fmt.Errorf("failed to create reservation storage: %w", err)
		}
		reservations = nil
	} else if err != nil {
		return model.Reservation{}, fmt.Errorf("failed to read reservation storage: %w", err)
	}

	slices.SortStableFunc(reservations, func(a, b model.Reservation) int {
		return cmp.Compare(a.HotelID, b.HotelID)
	})

	if err := rr.checkHotel(new.HotelID); err != nil {
		return model.Reservation{}, err
	}
	if err := rr.checkCustomer(new.CustomerID); err != nil {
		return model.Reservation{}, err
	}

	reservations = append(reservations, new)
	if err := rr.save(span, reservations); err != nil {
		return model.Reservation{}, err
	}

	return new, nil
}

func (rr *ReservationRepo) checkHotel(id int) error {
	_, err := rr.hotels.Read(id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrHotelNotFound):
		return fmt.Errorf("%w: hotel id: %d", model.ErrInvalidHotelReference, id)
	default:
		return fmt.Errorf("failed to look up hotel %d: %w", id, err)
	}
}

func (rr *ReservationRepo) checkCustomer(id int) error {
	_, err := rr.customers.Read(id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrCustomerNotFound):
		return fmt.Errorf("%w: customer id: %d", model.ErrInvalidCustomerReference, id)
	default:
		return fmt.Errorf("failed to look up customer %d: %w", id, err)
	}
}

// Cancel removes one reservation matching the exact tuple.
func (rr *ReservationRepo) Cancel(hotelID, customerID int, from, to string) error {
	rr.lock.Lock()
	defer rr.lock.Unlock()

	span := rr.observer.Start("cancel")
	err := rr.cancel(span, model.NewReservation(hotelID, customerID, from, to).Key())
	span.End(err)
	return err
}

func (rr *ReservationRepo) cancel(span *observe.Span, key model.ReservationKey) error {
	reservations, err := rr.store.LoadAll()
	if err != nil {
		if errors.Is(err, persistence.ErrStoreNotExist) {
			return fmt.Errorf("%w: %s: %w", model.ErrReservationNotFound, key, err)
		}
		return fmt.Errorf("failed to read reservation storage: %w", err)
	}

	idx := slices.IndexFunc(reservations, func(r model.Reservation) bool {
		return r.Key() == key
	})
	if idx < 0 {
		return fmt.Errorf("%w: %s", model.ErrReservationNotFound, key)
	}

	reservations = slices.Delete(reservations, idx, idx+1)
	return rr.save(span, reservations)
}

func (rr *ReservationRepo) save(span *observe.Span, reservations []model.Reservation) error {
	if err := rr.store.SaveAll(reservations); err != nil {
		return fmt.Errorf("failed to store reservations: %w", err)
	}
	span.Saved(len(reservations))
	return nil
}
