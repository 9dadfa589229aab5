package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/pkg/idx"
)

type titlesRepo struct {
	db dbtx
}

// titleSelect pulls the title row, its category (when present) and the
// aggregate review rating in one pass. The rating is computed on read and
// never stored.
const titleSelect = `
	SELECT t.id, t.name, t.year, t.description, t.created_at, t.updated_at,
	       c.id, c.name, c.slug, c.created_at,
	       (SELECT AVG(score) FROM reviews WHERE reviews.title_id = t.id)
	FROM titles t
	LEFT JOIN categories c ON c.id = t.category_id`

func (r *titlesRepo) GetByID(ctx context.Context, id idx.ID) (domain.Title, error) {
	row := r.db.QueryRowContext(ctx, titleSelect+` WHERE t.id = ?`, id.String())

	t, err := scanTitle(row)
	if err != nil {
		return domain.Title{}, err
	}

	genres, err := r.genresFor(ctx, []idx.ID{t.ID})
	if err != nil {
		return domain.Title{}, err
	}
	t.Genres = genres[t.ID]
	return t, nil
}

func (r *titlesRepo) List(ctx context.Context, filter store.TitleFilter, page store.Page) ([]domain.Title, error) {
	limit, offset := pageBounds(page)

	query := titleSelect + `
	 WHERE (? = '' OR c.slug = ?)
	   AND (? = '' OR EXISTS (
	        SELECT 1 FROM title_genres tg
	        JOIN genres g ON g.id = tg.genre_id
	        WHERE tg.title_id = t.id AND g.slug = ?))
	   AND (? = 0 OR t.year = ?)
	   AND (? = '' OR t.name LIKE '%' || ? || '%')
	 ORDER BY t.name
	 LIMIT ? OFFSET ?`

	year := 0
	if filter.Year != nil {
		year = *filter.Year
	}

	rows, err := r.db.QueryContext(ctx, query,
		filter.CategorySlug, filter.CategorySlug,
		filter.GenreSlug, filter.GenreSlug,
		year, year,
		filter.Name, filter.Name,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		titles []domain.Title
		ids    []idx.ID
	)
	for rows.Next() {
		t, err := scanTitle(rows)
		if err != nil {
			return nil, err
		}
		titles = append(titles, t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	genres, err := r.genresFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range titles {
		titles[i].Genres = genres[titles[i].ID]
	}
	return titles, nil
}

func (r *titlesRepo) Create(ctx context.Context, t domain.Title) error {
	var categoryID sql.NullString
	if t.Category != nil {
		categoryID = mapStringNull(t.Category.ID.String())
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO titles (id, name, year, description, category_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID.String(), t.Name, t.Year, t.Description, categoryID,
		t.CreatedAt.UTC(), t.UpdatedAt.UTC())
	if err != nil {
		return mapConstraint(err)
	}

	return r.replaceGenres(ctx, t.ID, t.Genres)
}

func (r *titlesRepo) Update(ctx context.Context, t domain.Title) error {
	var categoryID sql.NullString
	if t.Category != nil {
		categoryID = mapStringNull(t.Category.ID.String())
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE titles
		 SET name = ?, year = ?, description = ?, category_id = ?, updated_at = ?
		 WHERE id = ?`,
		t.Name, t.Year, t.Description, categoryID, t.UpdatedAt.UTC(), t.ID.String())
	if err != nil {
		return mapConstraint(err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}

	return r.replaceGenres(ctx, t.ID, t.Genres)
}

func (r *titlesRepo) Delete(ctx context.Context, id idx.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM titles WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *titlesRepo) replaceGenres(ctx context.Context, titleID idx.ID, genres []domain.Genre) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM title_genres WHERE title_id = ?`, titleID.String()); err != nil {
		return err
	}

	for _, g := range genres {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO title_genres (title_id, genre_id) VALUES (?, ?)`,
			titleID.String(), g.ID.String()); err != nil {
			return mapConstraint(err)
		}
	}
	return nil
}

// genresFor loads genre links for a batch of titles in one query.
func (r *titlesRepo) genresFor(ctx context.Context, titleIDs []idx.ID) (map[idx.ID][]domain.Genre, error) {
	result := make(map[idx.ID][]domain.Genre, len(titleIDs))
	if len(titleIDs) == 0 {
		return result, nil
	}

	placeholders := strings.Repeat("?,", len(titleIDs))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, len(titleIDs))
	for i, id := range titleIDs {
		args[i] = id.String()
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT tg.title_id, g.id, g.name, g.slug, g.created_at
		 FROM title_genres tg
		 JOIN genres g ON g.id = tg.genre_id
		 WHERE tg.title_id IN (`+placeholders+`)
		 ORDER BY g.name`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			titleID, genreID string
			g                domain.Genre
		)
		if err := rows.Scan(&titleID, &genreID, &g.Name, &g.Slug, &g.CreatedAt); err != nil {
			return nil, err
		}
		g.ID = idx.ID(genreID)
		result[idx.ID(titleID)] = append(result[idx.ID(titleID)], g)
	}
	return result, rows.Err()
}

func scanTitle(row rowScanner) (domain.Title, error) {
	var (
		t                                 domain.Title
		id                                string
		categoryID, categoryName, catSlug sql.NullString
		categoryCreated                   sql.NullTime
		rating                            sql.NullFloat64
	)
	err := row.Scan(&id, &t.Name, &t.Year, &t.Description, &t.CreatedAt, &t.UpdatedAt,
		&categoryID, &categoryName, &catSlug, &categoryCreated, &rating)
	if err != nil {
		return domain.Title{}, mapNotFound(err)
	}

	t.ID = idx.ID(id)
	if categoryID.Valid {
		t.Category = &domain.Category{
			ID:        idx.ID(categoryID.String),
			Name:      mapNullString(categoryName),
			Slug:      mapNullString(catSlug),
			CreatedAt: categoryCreated.Time,
		}
	}
	if rating.Valid {
		v := rating.Float64
		t.Rating = &v
	}
	return t, nil
}
