package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/repository"
)

const summaryCacheKey = "dashboard:summary"

// DashboardSummary aggregates counts for the admin dashboard.
type DashboardSummary struct {
	Orders      map[domain.OrderStatus]int64   `json:"orders"`
	Payments    map[domain.PaymentStatus]int64 `json:"payments"`
	GeneratedAt time.Time                      `json:"generated_at"`
}

// AnalyticsService serves dashboard counts, cached in Redis. A missing or
// unreachable cache degrades to direct database reads.
type AnalyticsService struct {
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(orders repository.OrderRepository, payments repository.PaymentRepository, cache *redis.Client, cacheTTLSeconds int, logger *zap.Logger) *AnalyticsService {
	ttl := time.Duration(cacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &AnalyticsService{
		orders:   orders,
		payments: payments,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger,
	}
}

// Summary returns order/payment counts by status.
func (s *AnalyticsService) Summary(ctx context.Context) (*DashboardSummary, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	orderCounts, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	paymentCounts, err := s.payments.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		Orders:      orderCounts,
		Payments:    paymentCounts,
		GeneratedAt: time.Now(),
	}
	s.toCache(ctx, summary)
	return summary, nil
}

func (s *AnalyticsService) fromCache(ctx context.Context) *DashboardSummary {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, summaryCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug("summary cache read failed", zap.Error(err))
		}
		return nil
	}
	var summary DashboardSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil
	}
	return &summary
}

func (s *AnalyticsService) toCache(ctx context.Context, summary *DashboardSummary) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, summaryCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("summary cache write failed", zap.Error(err))
	}
}
