package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/booking-service/internal/domain"
)

// ArticleRepository defines persistence access for bookable listings.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	Update(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	GetByName(ctx context.Context, name string) (*domain.Article, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Article, error)
}

type articleRepository struct {
	pool *pgxpool.Pool
}

// NewArticleRepository returns a Postgres-backed implementation.
func NewArticleRepository(pool *pgxpool.Pool) ArticleRepository {
	return &articleRepository{pool: pool}
}

const articleColumns = `id, name, description, price_cents, capacity, active, created_at, updated_at`

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var article domain.Article
	if err := row.Scan(
		&article.ID,
		&article.Name,
		&article.Description,
		&article.PriceCents,
		&article.Capacity,
		&article.Active,
		&article.CreatedAt,
		&article.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Create(ctx context.Context, article *domain.Article) error {
	const query = `
        INSERT INTO articles (name, description, price_cents, capacity, active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		article.Name,
		article.Description,
		article.PriceCents,
		article.Capacity,
		article.Active,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
}

func (r *articleRepository) Update(ctx context.Context, article *domain.Article) error {
	const query = `
        UPDATE articles SET name=$1, description=$2, price_cents=$3, capacity=$4, active=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		article.Name,
		article.Description,
		article.PriceCents,
		article.Capacity,
		article.Active,
		article.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *articleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	const query = `SELECT ` + articleColumns + ` FROM articles WHERE id=$1`
	return scanArticle(r.pool.QueryRow(ctx, query, id))
}

func (r *articleRepository) GetByName(ctx context.Context, name string) (*domain.Article, error) {
	const query = `SELECT ` + articleColumns + ` FROM articles WHERE name=$1`
	return scanArticle(r.pool.QueryRow(ctx, query, name))
}

func (r *articleRepository) List(ctx context.Context, activeOnly bool) ([]domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *article)
	}
	return articles, rows.Err()
}
