package http

import (
	"net/http"

	"github.com/critiqhq/critiq/internal/catalog/service"
	"github.com/critiqhq/critiq/pkg/catalogsdk"
	"github.com/critiqhq/critiq/pkg/httpx"
	"github.com/critiqhq/critiq/pkg/idx"
)

type CommentsHandler struct {
	ReviewService *service.ReviewService
}

// List handles the list comments endpoint
//
//	@Summary	List comments on a review
//	@Tags		Comments
//	@Produce	json
//	@Param		titleID		path		string	true	"Title ID"
//	@Param		reviewID	path		string	true	"Review ID"
//	@Param		limit		query		int		false	"Page size"
//	@Param		offset		query		int		false	"Page offset"
//	@Success	200			{array}		catalogsdk.CommentResponse
//	@Failure	404			{object}	catalogsdk.ErrorResponse	"Unknown title or review"
//	@Router		/v1/titles/{titleID}/reviews/{reviewID}/comments [get].
func (h *CommentsHandler) List(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, err := reviewPath(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	comments, err := h.ReviewService.ListComments(r.Context(), titleID, reviewID, parsePage(r))
	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := make([]catalogsdk.CommentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, toCommentResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// Get handles the retrieve comment endpoint
//
//	@Summary	Retrieve a comment
//	@Tags		Comments
//	@Produce	json
//	@Param		titleID		path		string	true	"Title ID"
//	@Param		reviewID	path		string	true	"Review ID"
//	@Param		commentID	path		string	true	"Comment ID"
//	@Success	200			{object}	catalogsdk.CommentResponse
//	@Failure	404			{object}	catalogsdk.ErrorResponse
//	@Router		/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID} [get].
func (h *CommentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, commentID, err := commentPath(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	comment, err := h.ReviewService.GetComment(r.Context(), titleID, reviewID, commentID)
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCommentResponse(comment))
}

// Create handles the create comment endpoint
//
//	@Summary	Comment on a review
//	@Tags		Comments
//	@Accept		json
//	@Produce	json
//	@Param		titleID		path		string					true	"Title ID"
//	@Param		reviewID	path		string					true	"Review ID"
//	@Param		body		body		service.CommentParams	true	"Comment payload"
//	@Success	201			{object}	catalogsdk.CommentResponse
//	@Failure	400			{object}	catalogsdk.ValidationErrorResponse
//	@Failure	401			{object}	catalogsdk.ErrorResponse
//	@Failure	404			{object}	catalogsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/titles/{titleID}/reviews/{reviewID}/comments [post].
func (h *CommentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, err := reviewPath(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	var params service.CommentParams
	if err := decodeJSON(r, &params); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	comment, err := h.ReviewService.CreateComment(r.Context(), actorFrom(r.Context()), titleID, reviewID, params)
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toCommentResponse(comment))
}

// Patch handles the update comment endpoint
//
//	@Summary		Update a comment
//	@Description	Author, moderator or admin only.
//	@Tags			Comments
//	@Accept			json
//	@Produce		json
//	@Param			titleID		path		string					true	"Title ID"
//	@Param			reviewID	path		string					true	"Review ID"
//	@Param			commentID	path		string					true	"Comment ID"
//	@Param			body		body		service.CommentParams	true	"Comment payload"
//	@Success		200			{object}	catalogsdk.CommentResponse
//	@Failure		403			{object}	catalogsdk.ErrorResponse
//	@Failure		404			{object}	catalogsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID} [patch].
func (h *CommentsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, commentID, err := commentPath(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	var params service.CommentParams
	if err := decodeJSON(r, &params); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	comment, err := h.ReviewService.UpdateComment(r.Context(), actorFrom(r.Context()), titleID, reviewID, commentID, params)
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCommentResponse(comment))
}

// Delete handles the delete comment endpoint
//
//	@Summary	Delete a comment
//	@Tags		Comments
//	@Param		titleID		path	string	true	"Title ID"
//	@Param		reviewID	path	string	true	"Review ID"
//	@Param		commentID	path	string	true	"Comment ID"
//	@Success	204
//	@Failure	403	{object}	catalogsdk.ErrorResponse
//	@Failure	404	{object}	catalogsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID} [delete].
func (h *CommentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, commentID, err := commentPath(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := h.ReviewService.DeleteComment(r.Context(), actorFrom(r.Context()), titleID, reviewID, commentID); err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func commentPath(r *http.Request) (titleID, reviewID, commentID idx.ID, err error) {
	titleID, reviewID, err = reviewPath(r)
	if err != nil {
		return
	}
	commentID, err = pathID(r, "commentID")
	return
}
