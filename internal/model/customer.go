package model

// storage representation of a customer
type Customer struct {
	ID   int    `json:"customer_id"`
	Name string `json:"customer_name"`
}

func NewCustomer(id int, name string) Customer {
	return Customer{
		ID:   id,
		Name: name,
	}
}

func (c Customer) Identity() int {
	return c.ID
}
