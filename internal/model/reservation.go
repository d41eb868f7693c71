package model

import "fmt"

// storage representation of a reservation.
// A reservation has no id of its own, the four fields together identify it.
type Reservation struct {
	HotelID    int    `json:"hotel_id"`
	CustomerID int    `json:"customer_id"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
}

type ReservationKey struct {
	HotelID    int
	CustomerID int
	FromDate   string
	ToDate     string
}

func NewReservation(hotelID, customerID int, from, to string) Reservation {
	return Reservation{
		HotelID:    hotelID,
		CustomerID: customerID,
		FromDate:   from,
		ToDate:     to,
	}
}

func (r Reservation) Key() ReservationKey {
	return ReservationKey(r)
}

// String renders the key as hotel_customer_from_to
func (k ReservationKey) String() string {
	return fmt.Sprintf("%d_%d_%s_%s", k.HotelID, k.CustomerID, k.FromDate, k.ToDate)
}
