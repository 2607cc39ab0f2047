package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/service"
)

// ArticlesHandler exposes the public catalog.
type ArticlesHandler struct {
	articles *service.ArticleService
}

// NewArticlesHandler constructs handler.
func NewArticlesHandler(articleService *service.ArticleService) *ArticlesHandler {
	return &ArticlesHandler{articles: articleService}
}

// List handles GET /articles. Only active listings are public.
func (h *ArticlesHandler) List(c *fiber.Ctx) error {
	articles, err := h.articles.List(c.Context(), true)
	if err != nil {
		return err
	}
	items := make([]dto.ArticleResponse, 0, len(articles))
	for i := range articles {
		items = append(items, dto.FromArticle(&articles[i]))
	}
	return c.JSON(fiber.Map{
		"message": "articles",
		"data":    items,
	})
}

// Get handles GET /articles/:id.
func (h *ArticlesHandler) Get(c *fiber.Ctx) error {
	article, err := h.articles.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "article",
		"data":    dto.FromArticle(article),
	})
}
