package model

// storage representation of a hotel
type Hotel struct {
	ID   int    `json:"hotel_id"`
	Name string `json:"hotel_name"`
}

func NewHotel(id int, name string) Hotel {
	return Hotel{
		ID:   id,
		Name: name,
	}
}

func (h Hotel) Identity() int {
	return h.ID
}
