package http

import (
	"net/http"
	"strconv"

	"github.com/critiqhq/critiq/internal/catalog/service"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/pkg/catalogsdk"
	"github.com/critiqhq/critiq/pkg/httpx"
)

type TitlesHandler struct {
	CatalogService *service.CatalogService
}

// List handles the list titles endpoint
//
//	@Summary		List titles
//	@Description	Each entry carries the aggregate rating (average review
//	@Description	score, null when unreviewed).
//	@Tags			Titles
//	@Produce		json
//	@Param			category	query		string	false	"Category slug"
//	@Param			genre		query		string	false	"Genre slug"
//	@Param			year		query		int		false	"Exact release year"
//	@Param			name		query		string	false	"Name substring"
//	@Param			limit		query		int		false	"Page size"
//	@Param			offset		query		int		false	"Page offset"
//	@Success		200			{array}		catalogsdk.TitleResponse
//	@Router			/v1/titles [get].
func (h *TitlesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.TitleFilter{
		CategorySlug: q.Get("category"),
		GenreSlug:    q.Get("genre"),
		Name:         q.Get("name"),
	}
	if y, err := strconv.Atoi(q.Get("year")); err == nil {
		filter.Year = &y
	}

	titles, err := h.CatalogService.ListTitles(r.Context(), filter, parsePage(r))
	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := make([]catalogsdk.TitleResponse, 0, len(titles))
	for _, t := range titles {
		resp = append(resp, toTitleResponse(t))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// Get handles the retrieve title endpoint
//
//	@Summary	Retrieve a title
//	@Tags		Titles
//	@Produce	json
//	@Param		titleID	path		string	true	"Title ID"
//	@Success	200		{object}	catalogsdk.TitleResponse
//	@Failure	404		{object}	catalogsdk.ErrorResponse
//	@Router		/v1/titles/{titleID} [get].
func (h *TitlesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "titleID")
	if err != nil {
		renderError(w, r, err)
		return
	}

	title, err := h.CatalogService.GetTitle(r.Context(), id)
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTitleResponse(title))
}

// Create handles the create title endpoint
//
//	@Summary		Create a title
//	@Description	Category and genres are referenced by slug and must exist.
//	@Description	The year must not be in the future.
//	@Tags			Titles
//	@Accept			json
//	@Produce		json
//	@Param			body	body		service.TitleParams	true	"Title payload"
//	@Success		201		{object}	catalogsdk.TitleResponse
//	@Failure		400		{object}	catalogsdk.ValidationErrorResponse
//	@Failure		403		{object}	catalogsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/titles [post].
func (h *TitlesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params service.TitleParams
	if err := decodeJSON(r, &params); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	title, err := h.CatalogService.CreateTitle(r.Context(), actorFrom(r.Context()), params)
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toTitleResponse(title))
}

// Patch handles the update title endpoint
//
//	@Summary	Update a title
//	@Tags		Titles
//	@Accept		json
//	@Produce	json
//	@Param		titleID	path		string						true	"Title ID"
//	@Param		body	body		service.UpdateTitleParams	true	"Fields to change"
//	@Success	200		{object}	catalogsdk.TitleResponse
//	@Failure	400		{object}	catalogsdk.ValidationErrorResponse
//	@Failure	404		{object}	catalogsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/titles/{titleID} [patch].
func (h *TitlesHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "titleID")
	if err != nil {
		renderError(w, r, err)
		return
	}

	var params service.UpdateTitleParams
	if err := decodeJSON(r, &params); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	title, err := h.CatalogService.UpdateTitle(r.Context(), actorFrom(r.Context()), id, params)
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toTitleResponse(title))
}

// Delete handles the delete title endpoint
//
//	@Summary	Delete a title
//	@Tags		Titles
//	@Param		titleID	path	string	true	"Title ID"
//	@Success	204
//	@Failure	403	{object}	catalogsdk.ErrorResponse
//	@Failure	404	{object}	catalogsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/titles/{titleID} [delete].
func (h *TitlesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "titleID")
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := h.CatalogService.DeleteTitle(r.Context(), actorFrom(r.Context()), id); err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
