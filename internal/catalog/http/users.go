package http

import (
	"net/http"

	"github.com/critiqhq/critiq/internal/catalog/service"
	"github.com/critiqhq/critiq/pkg/catalogsdk"
	"github.com/critiqhq/critiq/pkg/httpx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// List handles the list users endpoint
//
//	@Summary		List users
//	@Description	Returns users ordered by username. Admin only. Supports
//	@Description	search on username plus limit/offset.
//	@Tags			Users
//	@Produce		json
//	@Param			search	query		string	false	"Username substring"
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{array}		catalogsdk.UserResponse
//	@Failure		401		{object}	catalogsdk.ErrorResponse
//	@Failure		403		{object}	catalogsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/users [get].
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context(), actorFrom(r.Context()),
		r.URL.Query().Get("search"), parsePage(r))
	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := make([]catalogsdk.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// Create handles the create user endpoint
//
//	@Summary		Create a user
//	@Description	Registers a user with an explicit role. Admin only; no
//	@Description	confirmation code is sent.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		service.CreateUserParams	true	"User payload"
//	@Success		201		{object}	catalogsdk.UserResponse
//	@Failure		400		{object}	catalogsdk.ValidationErrorResponse
//	@Failure		401		{object}	catalogsdk.ErrorResponse
//	@Failure		403		{object}	catalogsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/users [post].
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var params service.CreateUserParams
	if err := decodeJSON(r, &params); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	user, err := h.UserService.Create(r.Context(), actorFrom(r.Context()), params)
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// Get handles the retrieve user endpoint
//
//	@Summary	Retrieve a user by username
//	@Tags		Users
//	@Produce	json
//	@Param		username	path		string	true	"Username"
//	@Success	200			{object}	catalogsdk.UserResponse
//	@Failure	404			{object}	catalogsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/users/{username} [get].
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.Get(r.Context(), actorFrom(r.Context()), r.PathValue("username"))
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// Patch handles the update user endpoint
//
//	@Summary		Update a user
//	@Description	Partial update. Changing username or email invalidates the
//	@Description	user's outstanding confirmation codes.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			username	path		string						true	"Username"
//	@Param			body		body		service.UpdateUserParams	true	"Fields to change"
//	@Success		200			{object}	catalogsdk.UserResponse
//	@Failure		400			{object}	catalogsdk.ValidationErrorResponse
//	@Failure		404			{object}	catalogsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/users/{username} [patch].
func (h *UsersHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var params service.UpdateUserParams
	if err := decodeJSON(r, &params); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	user, err := h.UserService.Update(r.Context(), actorFrom(r.Context()), r.PathValue("username"), params)
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// Delete handles the delete user endpoint
//
//	@Summary	Delete a user
//	@Tags		Users
//	@Param		username	path	string	true	"Username"
//	@Success	204
//	@Failure	404	{object}	catalogsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/users/{username} [delete].
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.Delete(r.Context(), actorFrom(r.Context()), r.PathValue("username")); err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me handles the self-profile endpoint
//
//	@Summary	Retrieve the caller's own profile
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	catalogsdk.UserResponse
//	@Failure	401	{object}	catalogsdk.ErrorResponse
//	@Security	BearerAuth
//	@Router		/v1/users/me [get].
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.Me(r.Context(), actorFrom(r.Context()))
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// PatchMe handles the self-profile update endpoint
//
//	@Summary		Update the caller's own profile
//	@Description	Partial update of the caller's record. Non-admins cannot
//	@Description	change their role; the field is ignored if supplied.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		service.UpdateUserParams	true	"Fields to change"
//	@Success		200		{object}	catalogsdk.UserResponse
//	@Failure		400		{object}	catalogsdk.ValidationErrorResponse
//	@Failure		401		{object}	catalogsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/users/me [patch].
func (h *UsersHandler) PatchMe(w http.ResponseWriter, r *http.Request) {
	var params service.UpdateUserParams
	if err := decodeJSON(r, &params); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	user, err := h.UserService.UpdateMe(r.Context(), actorFrom(r.Context()), params)
	if err != nil {
		renderError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
