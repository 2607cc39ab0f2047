package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/events"
)

func seedPayment(t *testing.T, payments *fakePaymentRepo) *domain.Payment {
	t.Helper()
	payment := &domain.Payment{
		OrderID:     "o1",
		Method:      "bank_transfer",
		AmountCents: 2500,
		Status:      domain.PaymentStatusPending,
	}
	require.NoError(t, payments.Create(context.Background(), payment))
	return payment
}

func TestSetPaymentStatus_Normalizes(t *testing.T) {
	payments := newFakePaymentRepo()
	svc := NewPaymentService(payments, events.NewInMemoryDispatcher())
	payment := seedPayment(t, payments)

	updated, err := svc.SetStatus(context.Background(), "admin1", payment.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusApproved, updated.Status)

	updated, err = svc.SetStatus(context.Background(), "admin1", payment.ID, "Rejected")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRejected, updated.Status)
}

func TestSetPaymentStatus_RejectsValuesFromOrderSet(t *testing.T) {
	payments := newFakePaymentRepo()
	svc := NewPaymentService(payments, events.NewInMemoryDispatcher())
	payment := seedPayment(t, payments)

	// CONFIRMED is a valid order status but not a payment status
	_, err := svc.SetStatus(context.Background(), "admin1", payment.ID, "confirmed")
	assert.Equal(t, "INVALID_STATUS", errCode(t, err))

	stored, err := svc.Get(context.Background(), payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, stored.Status)
}

func TestSetPaymentStatus_UnknownPayment(t *testing.T) {
	svc := NewPaymentService(newFakePaymentRepo(), events.NewInMemoryDispatcher())
	_, err := svc.SetStatus(context.Background(), "admin1", "missing", "approved")
	assert.Equal(t, "NOT_FOUND", errCode(t, err))
}

func TestSetPaymentStatus_EmitsChangeEvent(t *testing.T) {
	payments := newFakePaymentRepo()
	dispatcher := events.NewInMemoryDispatcher()
	var got events.PaymentStatusChangedPayload
	dispatcher.Subscribe(events.EventPaymentStatusChanged, func(_ context.Context, e events.Event) error {
		got = e.Payload.(events.PaymentStatusChangedPayload)
		return nil
	})
	svc := NewPaymentService(payments, dispatcher)
	payment := seedPayment(t, payments)

	_, err := svc.SetStatus(context.Background(), "admin1", payment.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, got.OldStatus)
	assert.Equal(t, domain.PaymentStatusApproved, got.NewStatus)
	assert.Equal(t, "o1", got.OrderID)
}
