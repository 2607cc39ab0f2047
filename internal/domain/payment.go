package domain

import (
	"strings"
	"time"
)

// PaymentStatus enumerates verification states for payment records.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

// ParsePaymentStatus normalizes raw input to uppercase and reports whether it
// names a valid payment status.
func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	status := PaymentStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch status {
	case PaymentStatusPending, PaymentStatusApproved, PaymentStatusRejected:
		return status, true
	}
	return "", false
}

// Payment records the settlement attached to an order.
type Payment struct {
	ID          string
	OrderID     string
	Method      string
	AmountCents int64
	ProofURL    *string
	Status      PaymentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
