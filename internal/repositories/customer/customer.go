package customer

import (
	"github.com/vitistack/hotel-reservations/internal/model"
	"github.com/vitistack/hotel-reservations/internal/repositories/observe"
	"github.com/vitistack/hotel-reservations/internal/repositories/registry"
	"github.com/vitistack/hotel-reservations/pkg/persistence"
)

// repository for customers, backed by the customers collection
type CustomerRepo struct {
	repo *registry.Repo[model.Customer]
}

func NewCustomerRepo(store persistence.Store[model.Customer], opts ...observe.Option) *CustomerRepo {
	return &CustomerRepo{
		repo: registry.NewRepo(store, registry.Kind[model.Customer]{
			Name:        "customer",
			ErrNotFound: model.ErrCustomerNotFound,
			New:         model.NewCustomer,
		}, opts...),
	}
}

func (cr *CustomerRepo) Create(name string) (model.Customer, error) {
	return cr.repo.Create(name)
}

func (cr *CustomerRepo) Delete(id int) error {
	return cr.repo.Delete(id)
}

func (cr *CustomerRepo) Read(id int) (model.Customer, error) {
	return cr.repo.Read(id)
}

func (cr *CustomerRepo) Update(id int, name string) (model.Customer, error) {
	return cr.repo.Update(id, name)
}
