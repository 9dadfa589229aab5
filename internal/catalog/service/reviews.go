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

// ReviewService manages reviews and their comments. Authorship is always
// taken from the authenticated caller, never from the payload; updates and
// deletes are allowed for the author, moderators and admins.
type ReviewService struct {
	store store.Store

	now func() time.Time
}

func NewReviewService(st store.Store) *ReviewService {
	return &ReviewService{store: st, now: time.Now}
}

type ReviewParams struct {
	Text  string `json:"text" validate:"required"`
	Score int    `json:"score" validate:"required,gte=1,lte=10"`
}

func (s *ReviewService) ListReviews(ctx context.Context, titleID idx.ID, page store.Page) ([]domain.Review, error) {
	if _, err := s.store.Titles().GetByID(ctx, titleID); err != nil {
		return nil, err
	}
	return s.store.Reviews().ListByTitle(ctx, titleID, page)
}

func (s *ReviewService) GetReview(ctx context.Context, titleID, reviewID idx.ID) (domain.Review, error) {
	return s.store.Reviews().GetByID(ctx, titleID, reviewID)
}

func (s *ReviewService) CreateReview(ctx context.Context, actor authz.Actor, titleID idx.ID, params ReviewParams) (domain.Review, error) {
	if !actor.Authenticated {
		return domain.Review{}, ErrPermissionDenied
	}
	if err := validateStruct(params); err != nil {
		return domain.Review{}, err
	}

	if _, err := s.store.Titles().GetByID(ctx, titleID); err != nil {
		return domain.Review{}, err
	}

	review := domain.Review{
		ID:       idx.New(),
		TitleID:  titleID,
		AuthorID: actor.ID,
		Score:    params.Score,
		Text:     params.Text,
		PubDate:  s.now().UTC(),
	}
	if err := s.store.Reviews().Create(ctx, review); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Review{}, NewValidationError("title", "you have already reviewed this title")
		}
		return domain.Review{}, fmt.Errorf("create review: %w", err)
	}

	// Re-read through the store to pick up the joined author username.
	return s.store.Reviews().GetByID(ctx, titleID, review.ID)
}

// UpdateReviewParams carries a partial update; nil fields stay untouched.
type UpdateReviewParams struct {
	Text  *string `json:"text"`
	Score *int    `json:"score" validate:"omitempty,gte=1,lte=10"`
}

func (s *ReviewService) UpdateReview(ctx context.Context, actor authz.Actor, titleID, reviewID idx.ID, params UpdateReviewParams) (domain.Review, error) {
	if err := validateStruct(params); err != nil {
		return domain.Review{}, err
	}

	review, err := s.store.Reviews().GetByID(ctx, titleID, reviewID)
	if err != nil {
		return domain.Review{}, err
	}
	if !authz.AuthorOrReadOnly(actor, authz.ActionUpdate, review.AuthorID) {
		return domain.Review{}, ErrPermissionDenied
	}

	if params.Score != nil {
		review.Score = *params.Score
	}
	if params.Text != nil {
		review.Text = *params.Text
	}
	if err := s.store.Reviews().Update(ctx, review); err != nil {
		return domain.Review{}, fmt.Errorf("update review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, actor authz.Actor, titleID, reviewID idx.ID) error {
	review, err := s.store.Reviews().GetByID(ctx, titleID, reviewID)
	if err != nil {
		return err
	}
	if !authz.AuthorOrReadOnly(actor, authz.ActionDelete, review.AuthorID) {
		return ErrPermissionDenied
	}
	return s.store.Reviews().Delete(ctx, review.ID)
}

type CommentParams struct {
	Text string `json:"text" validate:"required"`
}

// reviewUnderTitle checks the nested route parents: the review must exist
// and belong to the given title.
func (s *ReviewService) reviewUnderTitle(ctx context.Context, titleID, reviewID idx.ID) (domain.Review, error) {
	return s.store.Reviews().GetByID(ctx, titleID, reviewID)
}

func (s *ReviewService) ListComments(ctx context.Context, titleID, reviewID idx.ID, page store.Page) ([]domain.Comment, error) {
	if _, err := s.reviewUnderTitle(ctx, titleID, reviewID); err != nil {
		return nil, err
	}
	return s.store.Comments().ListByReview(ctx, reviewID, page)
}

func (s *ReviewService) GetComment(ctx context.Context, titleID, reviewID, commentID idx.ID) (domain.Comment, error) {
	if _, err := s.reviewUnderTitle(ctx, titleID, reviewID); err != nil {
		return domain.Comment{}, err
	}
	return s.store.Comments().GetByID(ctx, reviewID, commentID)
}

func (s *ReviewService) CreateComment(ctx context.Context, actor authz.Actor, titleID, reviewID idx.ID, params CommentParams) (domain.Comment, error) {
	if !actor.Authenticated {
		return domain.Comment{}, ErrPermissionDenied
	}
	if err := validateStruct(params); err != nil {
		return domain.Comment{}, err
	}

	if _, err := s.reviewUnderTitle(ctx, titleID, reviewID); err != nil {
		return domain.Comment{}, err
	}

	comment := domain.Comment{
		ID:       idx.New(),
		ReviewID: reviewID,
		AuthorID: actor.ID,
		Text:     params.Text,
		PubDate:  s.now().UTC(),
	}
	if err := s.store.Comments().Create(ctx, comment); err != nil {
		return domain.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return s.store.Comments().GetByID(ctx, reviewID, comment.ID)
}

func (s *ReviewService) UpdateComment(ctx context.Context, actor authz.Actor, titleID, reviewID, commentID idx.ID, params CommentParams) (domain.Comment, error) {
	if err := validateStruct(params); err != nil {
		return domain.Comment{}, err
	}

	if _, err := s.reviewUnderTitle(ctx, titleID, reviewID); err != nil {
		return domain.Comment{}, err
	}
	comment, err := s.store.Comments().GetByID(ctx, reviewID, commentID)
	if err != nil {
		return domain.Comment{}, err
	}
	if !authz.AuthorOrReadOnly(actor, authz.ActionUpdate, comment.AuthorID) {
		return domain.Comment{}, ErrPermissionDenied
	}

	comment.Text = params.Text
	if err := s.store.Comments().Update(ctx, comment); err != nil {
		return domain.Comment{}, fmt.Errorf("update comment: %w", err)
	}
	return comment, nil
}

func (s *ReviewService) DeleteComment(ctx context.Context, actor authz.Actor, titleID, reviewID, commentID idx.ID) error {
	if _, err := s.reviewUnderTitle(ctx, titleID, reviewID); err != nil {
		return err
	}
	comment, err := s.store.Comments().GetByID(ctx, reviewID, commentID)
	if err != nil {
		return err
	}
	if !authz.AuthorOrReadOnly(actor, authz.ActionDelete, comment.AuthorID) {
		return ErrPermissionDenied
	}
	return s.store.Comments().Delete(ctx, comment.ID)
}
