package service

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/repository"
)

// In-memory repository fakes. They mirror the persistence contracts exactly:
// absent rows are pgx.ErrNoRows, reset-token reads and consumes apply the
// expiry predicate the SQL applies.

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.nextID++
	user.ID = "u" + strconv.Itoa(f.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByLiveResetToken(_ context.Context, token string) (*domain.User, error) {
	for _, user := range f.users {
		if user.ResetToken != nil && *user.ResetToken == token &&
			user.ResetExpiresAt != nil && user.ResetExpiresAt.After(time.Now()) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) SetResetToken(_ context.Context, userID, token string, expiresAt time.Time) error {
	user, ok := f.users[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	user.ResetToken = &token
	user.ResetExpiresAt = &expiresAt
	return nil
}

func (f *fakeUserRepo) ConsumeResetToken(_ context.Context, userID, token, passwordHash string) error {
	user, ok := f.users[userID]
	if !ok || user.ResetToken == nil || *user.ResetToken != token ||
		user.ResetExpiresAt == nil || !user.ResetExpiresAt.After(time.Now()) {
		return pgx.ErrNoRows
	}
	user.PasswordHash = passwordHash
	user.ResetToken = nil
	user.ResetExpiresAt = nil
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders map[string]*domain.Order
	nextID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	f.nextID++
	order.ID = "o" + strconv.Itoa(f.nextID)
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	clone := *order
	f.orders[order.ID] = &clone
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *order
	return &clone, nil
}

func (f *fakeOrderRepo) ListWithFilter(_ context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	out := make([]domain.Order, 0)
	for _, order := range f.orders {
		if filter.UserID != nil && order.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && order.Status != *filter.Status {
			continue
		}
		out = append(out, *order)
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	clone := *order
	return &clone, nil
}

func (f *fakeOrderRepo) CountByStatus(_ context.Context) (map[domain.OrderStatus]int64, error) {
	counts := make(map[domain.OrderStatus]int64)
	for _, order := range f.orders {
		counts[order.Status]++
	}
	return counts, nil
}

type fakePaymentRepo struct {
	payments map[string]*domain.Payment
	nextID   int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*domain.Payment)}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) error {
	f.nextID++
	payment.ID = "p" + strconv.Itoa(f.nextID)
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt
	clone := *payment
	f.payments[payment.ID] = &clone
	return nil
}

func (f *fakePaymentRepo) GetByID(_ context.Context, id string) (*domain.Payment, error) {
	payment, ok := f.payments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *payment
	return &clone, nil
}

func (f *fakePaymentRepo) GetByOrderID(_ context.Context, orderID string) (*domain.Payment, error) {
	for _, payment := range f.payments {
		if payment.OrderID == orderID {
			clone := *payment
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error) {
	payment, ok := f.payments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	payment.Status = status
	payment.UpdatedAt = time.Now()
	clone := *payment
	return &clone, nil
}

func (f *fakePaymentRepo) CountByStatus(_ context.Context) (map[domain.PaymentStatus]int64, error) {
	counts := make(map[domain.PaymentStatus]int64)
	for _, payment := range f.payments {
		counts[payment.Status]++
	}
	return counts, nil
}

type fakeArticleRepo struct {
	articles map[string]*domain.Article
	nextID   int
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[string]*domain.Article)}
}

func (f *fakeArticleRepo) Create(_ context.Context, article *domain.Article) error {
	f.nextID++
	article.ID = "a" + strconv.Itoa(f.nextID)
	article.CreatedAt = time.Now()
	article.UpdatedAt = article.CreatedAt
	clone := *article
	f.articles[article.ID] = &clone
	return nil
}

func (f *fakeArticleRepo) Update(_ context.Context, article *domain.Article) error {
	if _, ok := f.articles[article.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *article
	f.articles[article.ID] = &clone
	return nil
}

func (f *fakeArticleRepo) GetByID(_ context.Context, id string) (*domain.Article, error) {
	article, ok := f.articles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *article
	return &clone, nil
}

func (f *fakeArticleRepo) GetByName(_ context.Context, name string) (*domain.Article, error) {
	for _, article := range f.articles {
		if article.Name == name {
			clone := *article
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeArticleRepo) List(_ context.Context, activeOnly bool) ([]domain.Article, error) {
	out := make([]domain.Article, 0)
	for _, article := range f.articles {
		if activeOnly && !article.Active {
			continue
		}
		out = append(out, *article)
	}
	return out, nil
}
