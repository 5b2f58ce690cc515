package entities

import "time"

type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	UpdatedAt time.Time
}
