package hotel_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vitistack/hotel-reservations/internal/model"
	"github.com/vitistack/hotel-reservations/internal/repositories/hotel"
	"github.com/vitistack/hotel-reservations/pkg/persistence"
	"github.com/vitistack/hotel-reservations/pkg/persistence/store/file"
)

func newHotelRepo(t *testing.T) (*hotel.HotelRepo, string) {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "hotels.json")
	store, err := file.NewStore[model.Hotel](fileName)
	require.NoError(t, err)
	return hotel.NewHotelRepo(store), fileName
}

func TestHotelRepo_CreateSequentialIDs(t *testing.T) {
	repo, _ := newHotelRepo(t)

	for want := 1; want <= 5; want++ {
		created, err := repo.Create("hotel")
		require.NoError(t, err)
		require.Equal(t, want, created.ID)
	}
}

func TestHotelRepo_IDsAreNeverReused(t *testing.T) {
	repo, fileName := newHotelRepo(t)

	transilvania, err := repo.Create("Transilvania")
	require.NoError(t, err)
	require.Equal(t, 1, transilvania.ID)

	mansion, err := repo.Create("Luigi's Mansion")
	require.NoError(t, err)
	require.Equal(t, 2, mansion.ID)

	require.NoError(t, repo.Delete(1))

	castle, err := repo.Create("Dracula's Castle")
	require.NoError(t, err)
	require.Equal(t, 3, castle.ID)

	raw, err := os.ReadFile(fileName)
	require.NoError(t, err)
	require.JSONEq(t, `[
		{"hotel_id": 2, "hotel_name": "Luigi's Mansion"},
		{"hotel_id": 3, "hotel_name": "Dracula's Castle"}
	]`, string(raw))
}

func TestHotelRepo_Read(t *testing.T) {
	repo, _ := newHotelRepo(t)
	_, err := repo.Create("Transilvania")
	require.NoError(t, err)

	got, err := repo.Read(1)
	require.NoError(t, err)
	require.Equal(t, model.Hotel{ID: 1, Name: "Transilvania"}, got)

	_, err = repo.Read(2)
	require.ErrorIs(t, err, model.ErrHotelNotFound)
}

func TestHotelRepo_Update(t *testing.T) {
	repo, _ := newHotelRepo(t)
	_, err := repo.Create("Transilvania")
	require.NoError(t, err)

	updated, err := repo.Update(1, "Caesar's Palace")
	require.NoError(t, err)
	require.Equal(t, model.Hotel{ID: 1, Name: "Caesar's Palace"}, updated)

	got, err := repo.Read(1)
	require.NoError(t, err)
	require.Equal(t, "Caesar's Palace", got.Name)

	_, err = repo.Update(2, "Caesar's Palace")
	require.ErrorIs(t, err, model.ErrHotelNotFound)
}

func TestHotelRepo_Delete(t *testing.T) {
	repo, _ := newHotelRepo(t)
	_, err := repo.Create("Transilvania")
	require.NoError(t, err)

	require.ErrorIs(t, repo.Delete(2), model.ErrHotelNotFound)
	require.NoError(t, repo.Delete(1))
	require.ErrorIs(t, repo.Delete(1), model.ErrHotelNotFound)
}

func TestHotelRepo_MissingFileIsNotFound(t *testing.T) {
	repo, _ := newHotelRepo(t)

	_, err := repo.Read(1)
	require.ErrorIs(t, err, model.ErrHotelNotFound)
	require.ErrorIs(t, err, persistence.ErrStoreNotExist)

	require.ErrorIs(t, repo.Delete(1), model.ErrHotelNotFound)
}

func TestHotelRepo_SharedFileIsReloaded(t *testing.T) {
	first, fileName := newHotelRepo(t)
	store, err := file.NewStore[model.Hotel](fileName)
	require.NoError(t, err)
	second := hotel.NewHotelRepo(store)

	_, err = first.Create("Transilvania")
	require.NoError(t, err)

	got, err := second.Read(1)
	require.NoError(t, err)
	require.Equal(t, "Transilvania", got.Name)

	created, err := second.Create("Luigi's Mansion")
	require.NoError(t, err)
	require.Equal(t, 2, created.ID)
}

func TestHotelRepo_CustomerFileIsLeftIntact(t *testing.T) {
	repo, fileName := newHotelRepo(t)
	customers := []byte(`[{"customer_id":5,"customer_name":"Elvis"}]` + "\n")
	require.NoError(t, os.WriteFile(fileName, customers, 0o644))

	_, err := repo.Create("Transilvania")
	require.ErrorIs(t, err, persistence.ErrCorruptedStore)

	raw, err := os.ReadFile(fileName)
	require.NoError(t, err)
	require.Equal(t, string(customers), string(raw))
}
