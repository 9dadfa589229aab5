package catalog_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/pkg/catalogsdk"
)

// TestSignupLoginFlow walks the whole passwordless path: signup, code
// delivery, token exchange, authenticated self-profile read.
func TestSignupLoginFlow(t *testing.T) {
	e := setup(t)

	code := e.signup("walker", "walker@example.com")
	require.NotEmpty(t, code)

	token := e.login("walker")

	status, body := e.do(http.MethodGet, "/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	me := decode[catalogsdk.UserResponse](t, body)
	require.Equal(t, "walker", me.Username)
	require.Equal(t, "walker@example.com", me.Email)
	require.Equal(t, string(domain.RoleUser), me.Role)
}

func TestSignupIsRepeatable(t *testing.T) {
	e := setup(t)

	first := e.signup("repeat", "repeat@example.com")
	second := e.signup("repeat", "repeat@example.com")
	require.Equal(t, first, second, "same identity and window give the same code")

	// Either field colliding with a different pair is rejected.
	status, body := e.do(http.MethodPost, "/v1/auth/signup", "", catalogsdk.SignupRequest{
		Username: "repeat",
		Email:    "different@example.com",
	})
	require.Equal(t, http.StatusBadRequest, status)
	fields := decode[catalogsdk.ValidationErrorResponse](t, body)
	require.Contains(t, fields, "username")
}

func TestLoginUnknownUsernameIs404(t *testing.T) {
	e := setup(t)

	status, body := e.do(http.MethodPost, "/v1/auth/token", "", catalogsdk.TokenRequest{
		Username:         "nobody",
		ConfirmationCode: "whatever",
	})
	require.Equal(t, http.StatusNotFound, status)
	require.NotEmpty(t, decode[catalogsdk.ErrorResponse](t, body).Detail)
}

func TestLoginBadCodeIs400(t *testing.T) {
	e := setup(t)

	e.signup("codefail", "codefail@example.com")

	status, body := e.do(http.MethodPost, "/v1/auth/token", "", catalogsdk.TokenRequest{
		Username:         "codefail",
		ConfirmationCode: "zzz-00000000000000000000",
	})
	require.Equal(t, http.StatusBadRequest, status)
	fields := decode[catalogsdk.ValidationErrorResponse](t, body)
	require.Contains(t, fields, "confirmation_code")
}

func TestReservedUsernameRejected(t *testing.T) {
	e := setup(t)

	status, body := e.do(http.MethodPost, "/v1/auth/signup", "", catalogsdk.SignupRequest{
		Username: "me",
		Email:    "me@example.com",
	})
	require.Equal(t, http.StatusBadRequest, status)
	fields := decode[catalogsdk.ValidationErrorResponse](t, body)
	require.Contains(t, fields, "username")
}

func TestMissingAndInvalidTokens(t *testing.T) {
	e := setup(t)

	status, _ := e.do(http.MethodGet, "/v1/users/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	status, _ = e.do(http.MethodGet, "/v1/users/me", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	// A garbage token is rejected even on anonymous-readable routes.
	status, _ = e.do(http.MethodGet, "/v1/categories", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestDeletedUserTokenStopsWorking(t *testing.T) {
	e := setup(t)

	user, token := e.seedUser(domain.RoleUser, false)
	_, adminToken := e.seedUser(domain.RoleAdmin, false)

	status, _ := e.do(http.MethodGet, "/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = e.do(http.MethodDelete, "/v1/users/"+user.Username, adminToken, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, _ = e.do(http.MethodGet, "/v1/users/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, status)
}

// TestAuthRateLimit verifies the strict per-IP profile on auth endpoints.
func TestAuthRateLimit(t *testing.T) {
	e := setup(t)

	var last int
	for i := 0; i < 6; i++ {
		last, _ = e.do(http.MethodPost, "/v1/auth/token", "", catalogsdk.TokenRequest{
			Username:         "nobody",
			ConfirmationCode: "x",
		})
	}
	require.Equal(t, http.StatusTooManyRequests, last)
}
