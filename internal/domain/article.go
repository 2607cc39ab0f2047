package domain

import "time"

// Article is a bookable listing, a tour package or a vehicle.
type Article struct {
	ID          string
	Name        string
	Description string
	PriceCents  int64
	Capacity    int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
