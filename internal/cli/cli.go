package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vitistack/hotel-reservations/internal/model"
	"github.com/vitistack/hotel-reservations/internal/repositories/customer"
	"github.com/vitistack/hotel-reservations/internal/repositories/hotel"
	"github.com/vitistack/hotel-reservations/internal/repositories/observe"
	"github.com/vitistack/hotel-reservations/internal/repositories/reservation"
	"github.com/vitistack/hotel-reservations/internal/storage"
)

var ErrUsage = errors.New("invalid usage")

const Usage = `usage: hotel-reservations [flags] <entity> <command> [args]

  hotel create <name>
  hotel read <id>
  hotel update <id> <name>
  hotel delete <id>
  customer create|read|update|delete ...
  reservation create <hotel-id> <customer-id> <from-date> <to-date>
  reservation cancel <hotel-id> <customer-id> <from-date> <to-date>
`

// App turns command line arguments into repository calls and prints the
// resulting records as JSON.
type App struct {
	hotels       *hotel.HotelRepo
	customers    *customer.CustomerRepo
	reservations *reservation.ReservationRepo
	out          io.Writer
}

func NewApp(stores *storage.Stores, out io.Writer, opts ...observe.Option) (*App, error) {
	hotels := hotel.NewHotelRepo(stores.Hotels, opts...)
	customers := customer.NewCustomerRepo(stores.Customers, opts...)

	reservations, err := reservation.NewReservationRepo(stores.Reservations, hotels, customers, opts...)
	if err != nil {
		return nil, err
	}

	return &App{
		hotels:       hotels,
		customers:    customers,
		reservations: reservations,
		out:          out,
	}, nil
}

func (a *App) Run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: expected an entity and a command", ErrUsage)
	}

	entity, command, rest := args[0], args[1], args[2:]
	switch entity {
	case "hotel":
		return runNamed(a, a.hotels, command, rest)
	case "customer":
		return runNamed(a, a.customers, command, rest)
	case "reservation":
		return a.runReservation(command, rest)
	default:
		return fmt.Errorf("%w: unknown entity: %q", ErrUsage, entity)
	}
}

type namedRepo[E any] interface {
	Create(name string) (E, error)
	Delete(id int) error
	Read(id int) (E, error)
	Update(id int, name string) (E, error)
}

func runNamed[E any](a *App, repo namedRepo[E], command string, args []string) error {
	switch command {
	case "create":
		if err := expectArgs(command, args, 1); err != nil {
			return err
		}
		created, err := repo.Create(args[0])
		if err != nil {
			return err
		}
		return a.print(created)

	case "read":
		if err := expectArgs(command, args, 1); err != nil {
			return err
		}
		id, err := model.ParseID(args[0])
		if err != nil {
			return err
		}
		found, err := repo.Read(id)
		if err != nil {
			return err
		}
		return a.print(found)

	case "update":
		if err := expectArgs(command, args, 2); err != nil {
			return err
		}
		id, err := model.ParseID(args[0])
		if err != nil {
			return err
		}
		updated, err := repo.Update(id, args[1])
		if err != nil {
			return err
		}
		return a.print(updated)

	case "delete":
		if err := expectArgs(command, args, 1); err != nil {
			return err
		}
		id, err := model.ParseID(args[0])
		if err != nil {
			return err
		}
		return repo.Delete(id)

	default:
		return fmt.Errorf("%w: unknown command: %q", ErrUsage, command)
	}
}

func (a *App) runReservation(command string, args []string) error {
	if command != "create" && command != "cancel" {
		return fmt.Errorf("%w: unknown command: %q", ErrUsage, command)
	}
	if err := expectArgs(command, args, 4); err != nil {
		return err
	}

	hotelID, err := model.ParseID(args[0])
	if err != nil {
		return err
	}
	customerID, err := model.ParseID(args[1])
	if err != nil {
		return err
	}

	if command == "cancel" {
		return a.reservations.Cancel(hotelID, customerID, args[2], args[3])
	}

	created, err := a.reservations.Create(hotelID, customerID, args[2], args[3])
	if err != nil {
		return err
	}
	return a.print(created)
}

func expectArgs(command string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrUsage, command, n, len(args))
	}
	return nil
}

func (a *App) print(v any) error {
	if err := json.NewEncoder(a.out).Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
