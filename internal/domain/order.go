package domain

import (
	"strings"
	"time"
)

// OrderStatus enumerates lifecycle states for bookings.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// ParseOrderStatus normalizes raw input to uppercase and reports whether it
// names a valid order status. Any valid value may replace any other; there is
// no transition graph.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCanceled, OrderStatusCompleted:
		return status, true
	}
	return "", false
}

// Order is the aggregate for a tour/vehicle booking.
type Order struct {
	ID         string
	UserID     string
	ArticleID  string
	Quantity   int
	TotalCents int64
	StartDate  time.Time
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
