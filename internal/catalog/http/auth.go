package http

import (
	"net/http"

	"github.com/critiqhq/critiq/internal/catalog/service"
	"github.com/critiqhq/critiq/pkg/catalogsdk"
	"github.com/critiqhq/critiq/pkg/httpx"
)

type SignupHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles the signup endpoint
//
//	@Summary		Sign up or request a new confirmation code
//	@Description	Registers a user and emails a confirmation code. Repeating the
//	@Description	request with the same username and email re-sends the code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		catalogsdk.SignupRequest	true	"Signup payload"
//	@Success		200		{object}	catalogsdk.SignupResponse	"Registered"
//	@Failure		400		{object}	catalogsdk.ValidationErrorResponse	"Validation failure"
//	@Router			/v1/auth/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req catalogsdk.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	user, err := h.AuthService.Signup(r.Context(), service.SignupParams{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		renderError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, catalogsdk.SignupResponse{
		Username: user.Username,
		Email:    user.Email,
	})
}

type TokenHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles the token endpoint
//
//	@Summary		Exchange a confirmation code for an access token
//	@Description	Validates the emailed confirmation code and returns a JWT access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		catalogsdk.TokenRequest	true	"Token payload"
//	@Success		200		{object}	catalogsdk.TokenResponse	"Access token"
//	@Failure		400		{object}	catalogsdk.ValidationErrorResponse	"Invalid or expired code"
//	@Failure		404		{object}	catalogsdk.ErrorResponse	"Unknown username"
//	@Router			/v1/auth/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req catalogsdk.TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	access, err := h.AuthService.Login(r.Context(), service.LoginParams{
		Username:         req.Username,
		ConfirmationCode: req.ConfirmationCode,
	})
	if err != nil {
		renderError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, catalogsdk.TokenResponse{Access: access})
}
