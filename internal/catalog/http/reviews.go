package http

import (
	"net/http"

	"github.com/critiqhq/critiq/internal/catalog/service"
	"github.com/critiqhq/critiq/pkg/catalogsdk"
	"github.com/critiqhq/critiq/pkg/httpx"
	"github.com/critiqhq/critiq/pkg/idx"
)

type ReviewsHandler struct {
	ReviewService *service.ReviewService
}

// List handles the list reviews endpoint
//
//	@Summary	List reviews for a title
//	@Tags		Reviews
//	@Produce	json
//	@Param		titleID	path		string	true	"Title ID"
//	@Param		limit	query		int		false	"Page size"
//	@Param		offset	query		int		false	"Page offset"
//	@Success	200		{array}		catalogsdk.ReviewResponse
//	@Failure	404		{object}	catalogsdk.ErrorResponse	"Unknown title"
//	@Router		/v1/titles/{titleID}/reviews [get].
func (h *ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	titleID, err := pathID(r, "titleID")
	if err != nil {
		renderError(w, r, err)
		return
	}

	reviews, err := h.ReviewService.ListReviews(r.Context(), titleID, parsePage(r))
	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := make([]catalogsdk.ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		resp = append(resp, toReviewResponse(rv))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// Get handles the retrieve review endpoint
//
//	@Summary	Retrieve a review
//	@Tags		Reviews
//	@Produce	json
//	@Param		titleID		path		string	true	"Title ID"
//	@Param		reviewID	path		string	true	"Review ID"
//	@Success	200			{object}	catalogsdk.ReviewResponse
//	@Failure	404			{object}	catalogsdk.ErrorResponse
//	@Router		/v1/titles/{titleID}/reviews/{reviewID} [get].
func (h *ReviewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, err := reviewPath(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	review, err := h.ReviewService.GetReview(r.Context(), titleID, reviewID)
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toReviewResponse(review))
}

// Create handles the create review endpoint
//
//	@Summary		Create a review
//	@Description	One review per author per title; the author is the caller.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			titleID	path		string					true	"Title ID"
//	@Param			body	body		service.ReviewParams	true	"Review payload"
//	@Success		201		{object}	catalogsdk.ReviewResponse
//	@Failure		400		{object}	catalogsdk.ValidationErrorResponse
//	@Failure		401		{object}	catalogsdk.ErrorResponse
//	@Failure		404		{object}	catalogsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/titles/{titleID}/reviews [post].
func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	titleID, err := pathID(r, "titleID")
	if err != nil {
		renderError(w, r, err)
		return
	}

	var params service.ReviewParams
	if err := decodeJSON(r, &params); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	review, err := h.ReviewService.CreateReview(r.Context(), actorFrom(r.Context()), titleID, params)
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toReviewResponse(review))
}

// Patch handles the update review endpoint
//
//	@Summary		Update a review
//	@Description	Author, moderator or admin only.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			titleID		path		string						true	"Title ID"
//	@Param			reviewID	path		string						true	"Review ID"
//	@Param			body		body		service.UpdateReviewParams	true	"Fields to change"
//	@Success		200			{object}	catalogsdk.ReviewResponse
//	@Failure		403			{object}	catalogsdk.ErrorResponse
//	@Failure		404			{object}	catalogsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/titles/{titleID}/reviews/{reviewID} [patch].
func (h *ReviewsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, err := reviewPath(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	var params service.UpdateReviewParams
	if err := decodeJSON(r, &params); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	review, err := h.ReviewService.UpdateReview(r.Context(), actorFrom(r.Context()), titleID, reviewID, params)
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toReviewResponse(review))
}

// Delete handles the delete review endpoint
//
//	@Summary	Delete a review
//	@Tags		Reviews
//	@Param		titleID		path	string	true	"Title ID"
//	@Param		reviewID	path	string	true	"Review ID"
//	@Success	204
//	@Failure	403	{object}	catalogsdk.ErrorResponse
//	@Failure	404	{object}	catalogsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/titles/{titleID}/reviews/{reviewID} [delete].
func (h *ReviewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, err := reviewPath(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := h.ReviewService.DeleteReview(r.Context(), actorFrom(r.Context()), titleID, reviewID); err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func reviewPath(r *http.Request) (titleID, reviewID idx.ID, err error) {
	titleID, err = pathID(r, "titleID")
	if err != nil {
		return
	}
	reviewID, err = pathID(r, "reviewID")
	return
}
