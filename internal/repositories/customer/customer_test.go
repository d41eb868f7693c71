package customer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vitistack/hotel-reservations/internal/model"
	"github.com/vitistack/hotel-reservations/internal/repositories/customer"
	"github.com/vitistack/hotel-reservations/pkg/persistence"
	"github.com/vitistack/hotel-reservations/pkg/persistence/store/memory"
)

func TestCustomerRepo_Lifecycle(t *testing.T) {
	store := memory.NewStore[model.Customer]("customers")
	repo := customer.NewCustomerRepo(store)

	elvis, err := repo.Create("Elvis")
	require.NoError(t, err)
	require.Equal(t, model.Customer{ID: 1, Name: "Elvis"}, elvis)

	frank, err := repo.Create("Frank")
	require.NoError(t, err)
	require.Equal(t, 2, frank.ID)

	updated, err := repo.Update(1, "Elvis Presley")
	require.NoError(t, err)
	require.Equal(t, model.Customer{ID: 1, Name: "Elvis Presley"}, updated)

	got, err := repo.Read(1)
	require.NoError(t, err)
	require.Equal(t, "Elvis Presley", got.Name)

	require.NoError(t, repo.Delete(1))
	_, err = repo.Read(1)
	require.ErrorIs(t, err, model.ErrCustomerNotFound)

	got, err = repo.Read(2)
	require.NoError(t, err)
	require.Equal(t, "Frank", got.Name)
}

func TestCustomerRepo_NotFound(t *testing.T) {
	repo := customer.NewCustomerRepo(memory.NewStore[model.Customer]("customers"))

	_, err := repo.Create("Elvis")
	require.NoError(t, err)

	_, err = repo.Read(2)
	require.ErrorIs(t, err, model.ErrCustomerNotFound)
	require.NotErrorIs(t, err, model.ErrHotelNotFound)

	_, err = repo.Update(2, "Elvis Presley")
	require.ErrorIs(t, err, model.ErrCustomerNotFound)

	require.ErrorIs(t, repo.Delete(2), model.ErrCustomerNotFound)
}

func TestCustomerRepo_CorruptedStore(t *testing.T) {
	store := memory.NewStoreFromBytes[model.Customer]("customers", []byte("{not json"))
	repo := customer.NewCustomerRepo(store)

	_, err := repo.Create("Elvis")
	require.ErrorIs(t, err, persistence.ErrCorruptedStore)

	var corrupted *persistence.CorruptedError
	require.ErrorAs(t, err, &corrupted)
	require.Equal(t, store.Source(), corrupted.Source)
}
