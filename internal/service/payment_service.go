package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/events"
	"github.com/spec-kit/booking-service/internal/repository"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// PaymentService coordinates payment verification.
type PaymentService struct {
	payments   repository.PaymentRepository
	dispatcher events.Dispatcher
}

// NewPaymentService constructs the service.
func NewPaymentService(payments repository.PaymentRepository, dispatcher events.Dispatcher) *PaymentService {
	return &PaymentService{payments: payments, dispatcher: dispatcher}
}

// Get fetches a payment record.
func (s *PaymentService) Get(ctx context.Context, id string) (*domain.Payment, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("payment", nil)
		}
		return nil, err
	}
	return payment, nil
}

// SetStatus validates the requested status value and applies it, same shape as
// the order path over the payment status set.
func (s *PaymentService) SetStatus(ctx context.Context, actorID, paymentID, requested string) (*domain.Payment, error) {
	status, ok := domain.ParsePaymentStatus(requested)
	if !ok {
		return nil, apperrors.NewInvalidStatus(requested)
	}

	current, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("payment", nil)
		}
		return nil, err
	}

	updated, err := s.payments.UpdateStatus(ctx, paymentID, status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("payment", nil)
		}
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPaymentStatusChanged,
			SubjectID: updated.ID,
			ActorID:   actorID,
			Timestamp: time.Now(),
			Payload: events.PaymentStatusChangedPayload{
				OrderID:   updated.OrderID,
				OldStatus: current.Status,
				NewStatus: updated.Status,
			},
		})
	}
	return updated, nil
}
