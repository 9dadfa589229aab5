package http

import (
	"net/http"

	"github.com/critiqhq/critiq/internal/catalog/service"
	"github.com/critiqhq/critiq/pkg/catalogsdk"
	"github.com/critiqhq/critiq/pkg/httpx"
)

type GenresHandler struct {
	CatalogService *service.CatalogService
}

// List handles the list genres endpoint
//
//	@Summary	List genres
//	@Tags		Genres
//	@Produce	json
//	@Param		search	query		string	false	"Name substring"
//	@Param		limit	query		int		false	"Page size"
//	@Param		offset	query		int		false	"Page offset"
//	@Success	200		{array}		catalogsdk.ClassifierResponse
//	@Router		/v1/genres [get].
func (h *GenresHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.CatalogService.ListGenres(r.Context(),
		r.URL.Query().Get("search"), parsePage(r))
	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := make([]catalogsdk.ClassifierResponse, 0, len(genres))
	for _, g := range genres {
		resp = append(resp, toClassifierResponse(g.Name, g.Slug))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// Create handles the create genre endpoint
//
//	@Summary	Create a genre
//	@Tags		Genres
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.ClassifierParams	true	"Genre payload"
//	@Success	201		{object}	catalogsdk.ClassifierResponse
//	@Failure	400		{object}	catalogsdk.ValidationErrorResponse
//	@Failure	403		{object}	catalogsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/genres [post].
func (h *GenresHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params service.ClassifierParams
	if err := decodeJSON(r, &params); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	genre, err := h.CatalogService.CreateGenre(r.Context(), actorFrom(r.Context()), params)
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toClassifierResponse(genre.Name, genre.Slug))
}

// Delete handles the delete genre endpoint
//
//	@Summary	Delete a genre by slug
//	@Tags		Genres
//	@Param		slug	path	string	true	"Genre slug"
//	@Success	204
//	@Failure	403	{object}	catalogsdk.ErrorResponse
//	@Failure	404	{object}	catalogsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/genres/{slug} [delete].
func (h *GenresHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.CatalogService.DeleteGenre(r.Context(), actorFrom(r.Context()), r.PathValue("slug")); err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
