package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/service"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// OrdersHandler manages customer booking endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// Create handles POST /orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	principal, err := auth.MustPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ArticleID == "" || req.Quantity == 0 {
		return apperrors.NewValidationError("article_id and quantity required", nil)
	}

	order, payment, err := h.orders.Create(c.Context(), principal.ID, service.OrderCreateInput{
		ArticleID:     req.ArticleID,
		Quantity:      req.Quantity,
		StartDate:     req.StartDate,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "order created",
		"data": dto.OrderDetailResponse{
			Order:   dto.FromOrder(order),
			Payment: paymentSummaryPtr(payment),
		},
	})
}

// List handles GET /orders (the caller's own bookings).
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	principal, err := auth.MustPrincipal(c)
	if err != nil {
		return err
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	orders, err := h.orders.ListForUser(c.Context(), principal.ID, limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.OrderSummary, 0, len(orders))
	for i := range orders {
		items = append(items, dto.FromOrder(&orders[i]))
	}
	return c.JSON(fiber.Map{
		"message": "orders",
		"data":    items,
	})
}

// Get handles GET /orders/:id.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	principal, err := auth.MustPrincipal(c)
	if err != nil {
		return err
	}
	order, payment, err := h.orders.GetForUser(c.Context(), principal.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "order",
		"data": dto.OrderDetailResponse{
			Order:   dto.FromOrder(order),
			Payment: paymentSummaryPtr(payment),
		},
	})
}

func paymentSummaryPtr(payment *domain.Payment) *dto.PaymentSummary {
	if payment == nil {
		return nil
	}
	summary := dto.FromPayment(payment)
	return &summary
}
