package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/observability"
	"github.com/spec-kit/booking-service/internal/repository"
	"github.com/spec-kit/booking-service/internal/service"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// AdminHandler serves the role-gated management surface: status mutations,
// listings, catalog maintenance, and the dashboard. Every route it serves sits
// behind RequireRole(SUPER_ADMIN, ADMIN).
type AdminHandler struct {
	orders    *service.OrderService
	payments  *service.PaymentService
	articles  *service.ArticleService
	users     repository.UserRepository
	analytics *service.AnalyticsService
	metrics   *observability.Metrics
}

// AdminDependencies bundles collaborators for the admin surface.
type AdminDependencies struct {
	Orders    *service.OrderService
	Payments  *service.PaymentService
	Articles  *service.ArticleService
	Users     repository.UserRepository
	Analytics *service.AnalyticsService
	Metrics   *observability.Metrics
}

// NewAdminHandler constructs handler.
func NewAdminHandler(deps AdminDependencies) *AdminHandler {
	return &AdminHandler{
		orders:    deps.Orders,
		payments:  deps.Payments,
		articles:  deps.Articles,
		users:     deps.Users,
		analytics: deps.Analytics,
		metrics:   deps.Metrics,
	}
}

// SetOrderStatus handles PATCH /admin/orders/:id/status.
func (h *AdminHandler) SetOrderStatus(c *fiber.Ctx) error {
	principal, err := auth.MustPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	order, err := h.orders.SetStatus(c.Context(), principal.ID, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "order status updated",
		"data":    dto.FromOrder(order),
	})
}

// SetPaymentStatus handles PATCH /admin/payments/:id/status.
func (h *AdminHandler) SetPaymentStatus(c *fiber.Ctx) error {
	principal, err := auth.MustPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	payment, err := h.payments.SetStatus(c.Context(), principal.ID, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "payment status updated",
		"data":    dto.FromPayment(payment),
	})
}

// ListOrders handles GET /admin/orders.
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	filter := repository.OrderFilter{}
	if raw := c.Query("status"); raw != "" {
		status, ok := domain.ParseOrderStatus(raw)
		if !ok {
			return apperrors.NewInvalidStatus(raw)
		}
		filter.Status = &status
	}
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))
	filter.Offset, _ = strconv.Atoi(c.Query("offset"))

	orders, err := h.orders.List(c.Context(), filter)
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

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	users, err := h.users.List(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.UserSummary, 0, len(users))
	for i := range users {
		items = append(items, userSummary(&users[i]))
	}
	return c.JSON(fiber.Map{
		"message": "users",
		"data":    items,
	})
}

// CreateArticle handles POST /admin/articles.
func (h *AdminHandler) CreateArticle(c *fiber.Ctx) error {
	var req dto.ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	article, err := h.articles.Create(c.Context(), service.ArticleInput{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Capacity:    req.Capacity,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "article created",
		"data":    dto.FromArticle(article),
	})
}

// UpdateArticle handles PUT /admin/articles/:id.
func (h *AdminHandler) UpdateArticle(c *fiber.Ctx) error {
	var req dto.ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	article, err := h.articles.Update(c.Context(), c.Params("id"), service.ArticleInput{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Capacity:    req.Capacity,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "article updated",
		"data":    dto.FromArticle(article),
	})
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.analytics.Summary(c.Context())
	if err != nil {
		return err
	}
	requests, errCounts := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"message": "dashboard",
		"data": fiber.Map{
			"summary":  summary,
			"requests": requests,
			"errors":   errCounts,
		},
	})
}
