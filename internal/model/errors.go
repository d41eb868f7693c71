package model

import "errors"

var (
	ErrInvalidID                = errors.New("id should be a valid integer")
	ErrHotelNotFound            = errors.New("hotel not found")
	ErrCustomerNotFound         = errors.New("customer not found")
	ErrReservationNotFound      = errors.New("reservation not found")
	ErrInvalidHotelReference    = errors.New("invalid hotel for reservation")
	ErrInvalidCustomerReference = errors.New("invalid customer for reservation")
	ErrInvalidCollaborator      = errors.New("invalid collaborator")
)
