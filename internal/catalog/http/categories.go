package http

import (
	"net/http"

	"github.com/critiqhq/critiq/internal/catalog/service"
	"github.com/critiqhq/critiq/pkg/catalogsdk"
	"github.com/critiqhq/critiq/pkg/httpx"
)

type CategoriesHandler struct {
	CatalogService *service.CatalogService
}

// List handles the list categories endpoint
//
//	@Summary	List categories
//	@Tags		Categories
//	@Produce	json
//	@Param		search	query		string	false	"Name substring"
//	@Param		limit	query		int		false	"Page size"
//	@Param		offset	query		int		false	"Page offset"
//	@Success	200		{array}		catalogsdk.ClassifierResponse
//	@Router		/v1/categories [get].
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CatalogService.ListCategories(r.Context(),
		r.URL.Query().Get("search"), parsePage(r))
	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := make([]catalogsdk.ClassifierResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, toClassifierResponse(c.Name, c.Slug))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// Create handles the create category endpoint
//
//	@Summary	Create a category
//	@Tags		Categories
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.ClassifierParams	true	"Category payload"
//	@Success	201		{object}	catalogsdk.ClassifierResponse
//	@Failure	400		{object}	catalogsdk.ValidationErrorResponse
//	@Failure	403		{object}	catalogsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/categories [post].
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params service.ClassifierParams
	if err := decodeJSON(r, &params); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	category, err := h.CatalogService.CreateCategory(r.Context(), actorFrom(r.Context()), params)
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toClassifierResponse(category.Name, category.Slug))
}

// Delete handles the delete category endpoint
//
//	@Summary		Delete a category by slug
//	@Description	Titles in the category remain and lose their category.
//	@Tags			Categories
//	@Param			slug	path	string	true	"Category slug"
//	@Success		204
//	@Failure		403	{object}	catalogsdk.ErrorResponse
//	@Failure		404	{object}	catalogsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/categories/{slug} [delete].
func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.CatalogService.DeleteCategory(r.Context(), actorFrom(r.Context()), r.PathValue("slug")); err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
