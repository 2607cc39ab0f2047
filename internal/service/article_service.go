package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/repository"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// ArticleService manages the bookable catalog.
type ArticleService struct {
	articles repository.ArticleRepository
}

// NewArticleService constructs the service.
func NewArticleService(articles repository.ArticleRepository) *ArticleService {
	return &ArticleService{articles: articles}
}

// ArticleInput describes create/update payloads.
type ArticleInput struct {
	Name        string
	Description string
	PriceCents  int64
	Capacity    int
	Active      bool
}

// Create adds a listing. A duplicate name is a conflict.
func (s *ArticleService) Create(ctx context.Context, input ArticleInput) (*domain.Article, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	if input.PriceCents < 0 {
		return nil, apperrors.NewValidationError("price must not be negative", nil)
	}

	if _, err := s.articles.GetByName(ctx, name); err == nil {
		return nil, apperrors.NewConflict("article name already in use", nil)
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	article := &domain.Article{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		PriceCents:  input.PriceCents,
		Capacity:    input.Capacity,
		Active:      input.Active,
	}
	if err := s.articles.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Update replaces a listing's mutable fields.
func (s *ArticleService) Update(ctx context.Context, id string, input ArticleInput) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("article", nil)
		}
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name != "" && name != article.Name {
		if _, err := s.articles.GetByName(ctx, name); err == nil {
			return nil, apperrors.NewConflict("article name already in use", nil)
		} else if err != pgx.ErrNoRows {
			return nil, err
		}
		article.Name = name
	}
	article.Description = strings.TrimSpace(input.Description)
	article.PriceCents = input.PriceCents
	article.Capacity = input.Capacity
	article.Active = input.Active

	if err := s.articles.Update(ctx, article); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("article", nil)
		}
		return nil, err
	}
	return article, nil
}

// Get fetches a listing.
func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("article", nil)
		}
		return nil, err
	}
	return article, nil
}

// List returns listings; customers only see active ones.
func (s *ArticleService) List(ctx context.Context, activeOnly bool) ([]domain.Article, error) {
	return s.articles.List(ctx, activeOnly)
}
