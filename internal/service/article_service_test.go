package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/domain"
)

func TestArticleCreate_DuplicateNameConflict(t *testing.T) {
	articles := newFakeArticleRepo()
	svc := NewArticleService(articles)

	_, err := svc.Create(context.Background(), ArticleInput{Name: "City Tour", PriceCents: 1000, Active: true})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), ArticleInput{Name: "City Tour", PriceCents: 2000, Active: true})
	assert.Equal(t, "CONFLICT", errCode(t, err))
}

func TestArticleCreate_Validation(t *testing.T) {
	svc := NewArticleService(newFakeArticleRepo())

	_, err := svc.Create(context.Background(), ArticleInput{Name: "  "})
	assert.Equal(t, "VALIDATION_FAILED", errCode(t, err))

	_, err = svc.Create(context.Background(), ArticleInput{Name: "Tour", PriceCents: -1})
	assert.Equal(t, "VALIDATION_FAILED", errCode(t, err))
}

func TestArticleList_ActiveOnlyFilters(t *testing.T) {
	articles := newFakeArticleRepo()
	svc := NewArticleService(articles)

	_, err := svc.Create(context.Background(), ArticleInput{Name: "Active Tour", Active: true})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), ArticleInput{Name: "Retired Tour", Active: false})
	require.NoError(t, err)

	visible, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, visible, 1)
	assert.Equal(t, "Active Tour", visible[0].Name)

	all, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAnalyticsSummary_CountsWithoutCache(t *testing.T) {
	orders := newFakeOrderRepo()
	payments := newFakePaymentRepo()
	require.NoError(t, orders.Create(context.Background(), &domain.Order{UserID: "u1", ArticleID: "a1", Status: domain.OrderStatusPending}))
	require.NoError(t, orders.Create(context.Background(), &domain.Order{UserID: "u2", ArticleID: "a1", Status: domain.OrderStatusCompleted}))
	require.NoError(t, payments.Create(context.Background(), &domain.Payment{OrderID: "o1", Status: domain.PaymentStatusApproved}))

	svc := NewAnalyticsService(orders, payments, nil, 60, zap.NewNop())
	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Orders[domain.OrderStatusPending])
	assert.Equal(t, int64(1), summary.Orders[domain.OrderStatusCompleted])
	assert.Equal(t, int64(1), summary.Payments[domain.PaymentStatusApproved])
}
