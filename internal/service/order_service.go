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

// OrderService coordinates booking workflows.
type OrderService struct {
	orders     repository.OrderRepository
	payments   repository.PaymentRepository
	articles   repository.ArticleRepository
	dispatcher events.Dispatcher
}

// OrderDependencies bundles collaborators for the order service.
type OrderDependencies struct {
	OrderRepo   repository.OrderRepository
	PaymentRepo repository.PaymentRepository
	ArticleRepo repository.ArticleRepository
	Dispatcher  events.Dispatcher
}

// OrderCreateInput describes a booking request.
type OrderCreateInput struct {
	ArticleID     string
	Quantity      int
	StartDate     time.Time
	PaymentMethod string
}

// NewOrderService constructs the service.
func NewOrderService(deps OrderDependencies) *OrderService {
	return &OrderService{
		orders:     deps.OrderRepo,
		payments:   deps.PaymentRepo,
		articles:   deps.ArticleRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create places an order with the default PENDING status and attaches a
// PENDING payment record for the article's price.
func (s *OrderService) Create(ctx context.Context, userID string, input OrderCreateInput) (*domain.Order, *domain.Payment, error) {
	article, err := s.articles.GetByID(ctx, input.ArticleID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, apperrors.NewNotFound("article", nil)
		}
		return nil, nil, err
	}
	if !article.Active {
		return nil, nil, apperrors.NewValidationError("article not available", nil)
	}
	if input.Quantity <= 0 {
		return nil, nil, apperrors.NewValidationError("quantity must be positive", nil)
	}
	if article.Capacity > 0 && input.Quantity > article.Capacity {
		return nil, nil, apperrors.NewValidationError("quantity exceeds capacity", nil)
	}

	order := &domain.Order{
		UserID:     userID,
		ArticleID:  article.ID,
		Quantity:   input.Quantity,
		TotalCents: article.PriceCents * int64(input.Quantity),
		StartDate:  input.StartDate,
		Status:     domain.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, nil, err
	}

	payment := &domain.Payment{
		OrderID:     order.ID,
		Method:      input.PaymentMethod,
		AmountCents: order.TotalCents,
		Status:      domain.PaymentStatusPending,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventOrderCreated,
		SubjectID: order.ID,
		ActorID:   userID,
		Payload: events.OrderCreatedPayload{
			ArticleID:  order.ArticleID,
			Quantity:   order.Quantity,
			TotalCents: order.TotalCents,
		},
	})
	return order, payment, nil
}

// GetForUser fetches an order ensuring ownership.
func (s *OrderService) GetForUser(ctx context.Context, userID, orderID string) (*domain.Order, *domain.Payment, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, apperrors.NewNotFound("order", nil)
		}
		return nil, nil, err
	}
	if order.UserID != userID {
		return nil, nil, apperrors.NewForbidden("not your order")
	}
	payment, err := s.payments.GetByOrderID(ctx, order.ID)
	if err != nil && err != pgx.ErrNoRows {
		return nil, nil, err
	}
	return order, payment, nil
}

// ListForUser returns the caller's bookings.
func (s *OrderService) ListForUser(ctx context.Context, userID string, limit, offset int) ([]domain.Order, error) {
	return s.orders.ListWithFilter(ctx, repository.OrderFilter{
		UserID: &userID,
		Limit:  limit,
		Offset: offset,
	})
}

// List returns orders for the admin surface, optionally filtered by status.
func (s *OrderService) List(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	return s.orders.ListWithFilter(ctx, filter)
}

// SetStatus validates the requested status value and applies it. The value is
// uppercase-normalized and must belong to the closed order-status set; any
// valid value may replace any other. Callers reach this only through the
// admin-gated route.
func (s *OrderService) SetStatus(ctx context.Context, actorID, orderID, requested string) (*domain.Order, error) {
	status, ok := domain.ParseOrderStatus(requested)
	if !ok {
		return nil, apperrors.NewInvalidStatus(requested)
	}

	current, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("order", nil)
		}
		return nil, err
	}

	updated, err := s.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("order", nil)
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventOrderStatusChanged,
		SubjectID: updated.ID,
		ActorID:   actorID,
		Payload: events.OrderStatusChangedPayload{
			OldStatus: current.Status,
			NewStatus: updated.Status,
		},
	})
	return updated, nil
}

func (s *OrderService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
