package dto

import (
	"time"

	"github.com/spec-kit/booking-service/internal/domain"
)

// CreateOrderRequest payload.
type CreateOrderRequest struct {
	ArticleID     string    `json:"article_id"`
	Quantity      int       `json:"quantity"`
	StartDate     time.Time `json:"start_date"`
	PaymentMethod string    `json:"payment_method"`
}

// UpdateStatusRequest carries a requested status value; case-insensitive.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// OrderSummary response.
type OrderSummary struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	ArticleID  string             `json:"article_id"`
	Quantity   int                `json:"quantity"`
	TotalCents int64              `json:"total_cents"`
	StartDate  time.Time          `json:"start_date"`
	Status     domain.OrderStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// PaymentSummary response.
type PaymentSummary struct {
	ID          string               `json:"id"`
	OrderID     string               `json:"order_id"`
	Method      string               `json:"method"`
	AmountCents int64                `json:"amount_cents"`
	ProofURL    *string              `json:"proof_url,omitempty"`
	Status      domain.PaymentStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// OrderDetailResponse bundles an order with its payment record.
type OrderDetailResponse struct {
	Order   OrderSummary    `json:"order"`
	Payment *PaymentSummary `json:"payment,omitempty"`
}

// FromOrder maps the domain order.
func FromOrder(order *domain.Order) OrderSummary {
	return OrderSummary{
		ID:         order.ID,
		UserID:     order.UserID,
		ArticleID:  order.ArticleID,
		Quantity:   order.Quantity,
		TotalCents: order.TotalCents,
		StartDate:  order.StartDate,
		Status:     order.Status,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

// FromPayment maps the domain payment.
func FromPayment(payment *domain.Payment) PaymentSummary {
	return PaymentSummary{
		ID:          payment.ID,
		OrderID:     payment.OrderID,
		Method:      payment.Method,
		AmountCents: payment.AmountCents,
		ProofURL:    payment.ProofURL,
		Status:      payment.Status,
		CreatedAt:   payment.CreatedAt,
		UpdatedAt:   payment.UpdatedAt,
	}
}
