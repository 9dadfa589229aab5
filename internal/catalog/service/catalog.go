package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/critiqhq/critiq/internal/catalog/authz"
	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/pkg/idx"
)

// CatalogService manages categories, genres and titles. Reads are open to
// anyone; mutations are admin-gated.
type CatalogService struct {
	store store.Store

	now func() time.Time
}

func NewCatalogService(st store.Store) *CatalogService {
	return &CatalogService{store: st, now: time.Now}
}

type ClassifierParams struct {
	Name string `json:"name" validate:"required,max=256"`
	Slug string `json:"slug" validate:"required,max=50,slug"`
}

func (s *CatalogService) ListCategories(ctx context.Context, search string, page store.Page) ([]domain.Category, error) {
	return s.store.Categories().List(ctx, search, page)
}

func (s *CatalogService) CreateCategory(ctx context.Context, actor authz.Actor, params ClassifierParams) (domain.Category, error) {
	if !authz.AdminOrReadOnly(actor, authz.ActionCreate) {
		return domain.Category{}, ErrPermissionDenied
	}
	if err := validateStruct(params); err != nil {
		return domain.Category{}, err
	}

	c := domain.Category{
		ID:        idx.New(),
		Name:      params.Name,
		Slug:      params.Slug,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Categories().Create(ctx, c); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Category{}, NewValidationError("slug", "a category with that slug already exists")
		}
		return domain.Category{}, err
	}
	return c, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, actor authz.Actor, slug string) error {
	if !authz.AdminOrReadOnly(actor, authz.ActionDelete) {
		return ErrPermissionDenied
	}
	return s.store.Categories().DeleteBySlug(ctx, slug)
}

func (s *CatalogService) ListGenres(ctx context.Context, search string, page store.Page) ([]domain.Genre, error) {
	return s.store.Genres().List(ctx, search, page)
}

func (s *CatalogService) CreateGenre(ctx context.Context, actor authz.Actor, params ClassifierParams) (domain.Genre, error) {
	if !authz.AdminOrReadOnly(actor, authz.ActionCreate) {
		return domain.Genre{}, ErrPermissionDenied
	}
	if err := validateStruct(params); err != nil {
		return domain.Genre{}, err
	}

	g := domain.Genre{
		ID:        idx.New(),
		Name:      params.Name,
		Slug:      params.Slug,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Genres().Create(ctx, g); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Genre{}, NewValidationError("slug", "a genre with that slug already exists")
		}
		return domain.Genre{}, err
	}
	return g, nil
}

func (s *CatalogService) DeleteGenre(ctx context.Context, actor authz.Actor, slug string) error {
	if !authz.AdminOrReadOnly(actor, authz.ActionDelete) {
		return ErrPermissionDenied
	}
	return s.store.Genres().DeleteBySlug(ctx, slug)
}

type TitleParams struct {
	Name        string   `json:"name" validate:"required,max=256"`
	Year        int      `json:"year" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required,slug"`
	Genres      []string `json:"genre" validate:"required,min=1,dive,slug"`
}

func (s *CatalogService) ListTitles(ctx context.Context, filter store.TitleFilter, page store.Page) ([]domain.Title, error) {
	return s.store.Titles().List(ctx, filter, page)
}

func (s *CatalogService) GetTitle(ctx context.Context, id idx.ID) (domain.Title, error) {
	return s.store.Titles().GetByID(ctx, id)
}

func (s *CatalogService) CreateTitle(ctx context.Context, actor authz.Actor, params TitleParams) (domain.Title, error) {
	if !authz.AdminOrReadOnly(actor, authz.ActionCreate) {
		return domain.Title{}, ErrPermissionDenied
	}
	if err := s.validateTitle(params); err != nil {
		return domain.Title{}, err
	}

	var title domain.Title
	err := s.store.WithTx(ctx, func(tx store.Tx) error {
		category, genres, err := s.resolveClassifiers(ctx, tx, params)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		title = domain.Title{
			ID:          idx.New(),
			Name:        params.Name,
			Year:        params.Year,
			Description: params.Description,
			Category:    &category,
			Genres:      genres,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		return tx.Titles().Create(ctx, title)
	})
	if err != nil {
		return domain.Title{}, err
	}
	return title, nil
}

// UpdateTitleParams carries a partial update; nil fields stay untouched.
type UpdateTitleParams struct {
	Name        *string  `json:"name" validate:"omitempty,max=256"`
	Year        *int     `json:"year"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" validate:"omitempty,slug"`
	Genres      []string `json:"genre" validate:"omitempty,min=1,dive,slug"`
}

func (s *CatalogService) UpdateTitle(ctx context.Context, actor authz.Actor, id idx.ID, params UpdateTitleParams) (domain.Title, error) {
	if !authz.AdminOrReadOnly(actor, authz.ActionUpdate) {
		return domain.Title{}, ErrPermissionDenied
	}
	if err := validateStruct(params); err != nil {
		return domain.Title{}, err
	}
	if params.Year != nil && *params.Year > s.now().Year() {
		return domain.Title{}, NewValidationError("year", "must not be in the future")
	}

	var title domain.Title
	err := s.store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		title, err = tx.Titles().GetByID(ctx, id)
		if err != nil {
			return err
		}

		if params.Name != nil {
			title.Name = *params.Name
		}
		if params.Year != nil {
			title.Year = *params.Year
		}
		if params.Description != nil {
			title.Description = *params.Description
		}
		if params.Category != nil {
			category, err := tx.Categories().GetBySlug(ctx, *params.Category)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return NewValidationError("category", "unknown category slug")
				}
				return fmt.Errorf("resolve category: %w", err)
			}
			title.Category = &category
		}
		if params.Genres != nil {
			genres, err := s.resolveGenres(ctx, tx, params.Genres)
			if err != nil {
				return err
			}
			title.Genres = genres
		}

		title.UpdatedAt = s.now().UTC()
		return tx.Titles().Update(ctx, title)
	})
	if err != nil {
		return domain.Title{}, err
	}
	return title, nil
}

func (s *CatalogService) DeleteTitle(ctx context.Context, actor authz.Actor, id idx.ID) error {
	if !authz.AdminOrReadOnly(actor, authz.ActionDelete) {
		return ErrPermissionDenied
	}
	return s.store.Titles().Delete(ctx, id)
}

func (s *CatalogService) validateTitle(params TitleParams) error {
	if err := validateStruct(params); err != nil {
		return err
	}
	if params.Year > s.now().Year() {
		return NewValidationError("year", "must not be in the future")
	}
	return nil
}

// resolveClassifiers turns the submitted slugs into full records. Unknown
// slugs are reported per field rather than as a blanket 404: the title
// route exists, the payload is what is wrong.
func (s *CatalogService) resolveClassifiers(ctx context.Context, tx store.Tx, params TitleParams) (domain.Category, []domain.Genre, error) {
	category, err := tx.Categories().GetBySlug(ctx, params.Category)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Category{}, nil, NewValidationError("category", "unknown category slug")
		}
		return domain.Category{}, nil, fmt.Errorf("resolve category: %w", err)
	}

	genres, err := s.resolveGenres(ctx, tx, params.Genres)
	if err != nil {
		return domain.Category{}, nil, err
	}
	return category, genres, nil
}

func (s *CatalogService) resolveGenres(ctx context.Context, tx store.Tx, slugs []string) ([]domain.Genre, error) {
	genres := make([]domain.Genre, 0, len(slugs))
	seen := make(map[string]struct{}, len(slugs))
	for _, slug := range slugs {
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}

		genre, err := tx.Genres().GetBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, NewValidationError("genre", "unknown genre slug")
			}
			return nil, fmt.Errorf("resolve genre: %w", err)
		}
		genres = append(genres, genre)
	}
	return genres, nil
}
