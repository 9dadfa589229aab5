package sqlite

import (
	"context"

	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/pkg/idx"
)

type categoriesRepo struct {
	db dbtx
}

func (r *categoriesRepo) GetBySlug(ctx context.Context, slug string) (domain.Category, error) {
	var (
		c  domain.Category
		id string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, slug, created_at FROM categories WHERE slug = ?`, slug).
		Scan(&id, &c.Name, &c.Slug, &c.CreatedAt)
	if err != nil {
		return domain.Category{}, mapNotFound(err)
	}
	c.ID = idx.ID(id)
	return c, nil
}

func (r *categoriesRepo) List(ctx context.Context, search string, page store.Page) ([]domain.Category, error) {
	limit, offset := pageBounds(page)

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, slug, created_at FROM categories
		 WHERE (? = '' OR name LIKE '%' || ? || '%')
		 ORDER BY name
		 LIMIT ? OFFSET ?`,
		search, search, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var (
			c  domain.Category
			id string
		)
		if err := rows.Scan(&id, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.ID = idx.ID(id)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoriesRepo) Create(ctx context.Context, c domain.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, slug, created_at) VALUES (?, ?, ?, ?)`,
		c.ID.String(), c.Name, c.Slug, c.CreatedAt.UTC())
	return mapConstraint(err)
}

func (r *categoriesRepo) DeleteBySlug(ctx context.Context, slug string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE slug = ?`, slug)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
