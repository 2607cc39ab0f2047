package dto

import (
	"time"

	"github.com/spec-kit/booking-service/internal/domain"
)

// ArticleRequest payload for create/update.
type ArticleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Capacity    int    `json:"capacity"`
	Active      bool   `json:"active"`
}

// ArticleResponse response shape for listings.
type ArticleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Capacity    int       `json:"capacity"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromArticle maps the domain article.
func FromArticle(article *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:          article.ID,
		Name:        article.Name,
		Description: article.Description,
		PriceCents:  article.PriceCents,
		Capacity:    article.Capacity,
		Active:      article.Active,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}
}
