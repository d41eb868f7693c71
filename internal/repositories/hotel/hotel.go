package hotel

import (
	"github.com/vitistack/hotel-reservations/internal/model"
	"github.com/vitistack/hotel-reservations/internal/repositories/observe"
	"github.com/vitistack/hotel-reservations/internal/repositories/registry"
	"github.com/vitistack/hotel-reservations/pkg/persistence"
)

// repository for hotels, backed by the hotels collection
type HotelRepo struct {
	repo *registry.Repo[model.Hotel]
}

func NewHotelRepo(store persistence.Store[model.Hotel], opts ...observe.Option) *HotelRepo {
	return &HotelRepo{
		repo: registry.NewRepo(store, registry.Kind[model.Hotel]{
			Name:        "hotel",
			ErrNotFound: model.ErrHotelNotFound,
			New:         model.NewHotel,
		}, opts...),
	}
}

func (hr *HotelRepo) Create(name string) (model.Hotel, error) {
	return hr.repo.Create(name)
}

func (hr *HotelRepo) Delete(id int) error {
	return hr.repo.Delete(id)
}

func (hr *HotelRepo) Read(id int) (model.Hotel, error) {
	return hr.repo.Read(id)
}

func (hr *HotelRepo) Update(id int, name string) (model.Hotel, error) {
	return hr.repo.Update(id, name)
}
