package catalog_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/pkg/catalogsdk"
)

func TestOneReviewPerAuthor(t *testing.T) {
	e := setup(t)
	_, adminToken := e.seedUser(domain.RoleAdmin, false)
	_, _, titleID := e.seedCatalog(adminToken)
	_, aliceToken := e.seedUser(domain.RoleUser, false)

	status, _ := e.do(http.MethodPost, "/v1/titles/"+titleID+"/reviews", aliceToken,
		map[string]any{"text": "first", "score": 9})
	require.Equal(t, http.StatusCreated, status)

	status, body := e.do(http.MethodPost, "/v1/titles/"+titleID+"/reviews", aliceToken,
		map[string]any{"text": "second", "score": 2})
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, decode[catalogsdk.ValidationErrorResponse](t, body), "title")
}

func TestReviewOwnershipPolicy(t *testing.T) {
	e := setup(t)
	_, adminToken := e.seedUser(domain.RoleAdmin, false)
	_, _, titleID := e.seedCatalog(adminToken)

	author, authorToken := e.seedUser(domain.RoleUser, false)
	_, strangerToken := e.seedUser(domain.RoleUser, false)
	_, modToken := e.seedUser(domain.RoleModerator, false)

	status, body := e.do(http.MethodPost, "/v1/titles/"+titleID+"/reviews", authorToken,
		map[string]any{"text": "mine", "score": 7})
	require.Equal(t, http.StatusCreated, status)
	review := decode[catalogsdk.ReviewResponse](t, body)
	require.Equal(t, author.Username, review.Author)

	reviewPath := "/v1/titles/" + titleID + "/reviews/" + review.ID

	// Anonymous mutation is 401, stranger is 403.
	status, _ = e.do(http.MethodPatch, reviewPath, "", map[string]any{"text": "anon"})
	require.Equal(t, http.StatusUnauthorized, status)
	status, _ = e.do(http.MethodPatch, reviewPath, strangerToken, map[string]any{"text": "hijack"})
	require.Equal(t, http.StatusForbidden, status)

	// Author edits, moderator deletes.
	status, body = e.do(http.MethodPatch, reviewPath, authorToken, map[string]any{"score": 3})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 3, decode[catalogsdk.ReviewResponse](t, body).Score)

	status, _ = e.do(http.MethodDelete, reviewPath, modToken, nil)
	require.Equal(t, http.StatusNoContent, status)
	status, _ = e.do(http.MethodGet, reviewPath, "", nil)
	require.Equal(t, http.StatusNotFound, status)
}

func TestCommentFlow(t *testing.T) {
	e := setup(t)
	_, adminToken := e.seedUser(domain.RoleAdmin, false)
	_, _, titleID := e.seedCatalog(adminToken)
	_, _, otherTitleID := e.seedCatalog(adminToken)

	_, authorToken := e.seedUser(domain.RoleUser, false)
	commenter, commenterToken := e.seedUser(domain.RoleUser, false)

	status, body := e.do(http.MethodPost, "/v1/titles/"+titleID+"/reviews", authorToken,
		map[string]any{"text": "reviewed", "score": 6})
	require.Equal(t, http.StatusCreated, status)
	review := decode[catalogsdk.ReviewResponse](t, body)

	commentsPath := "/v1/titles/" + titleID + "/reviews/" + review.ID + "/comments"

	status, _ = e.do(http.MethodPost, commentsPath, "", map[string]any{"text": "anon"})
	require.Equal(t, http.StatusUnauthorized, status)

	status, body = e.do(http.MethodPost, commentsPath, commenterToken, map[string]any{"text": "agreed"})
	require.Equal(t, http.StatusCreated, status)
	comment := decode[catalogsdk.CommentResponse](t, body)
	require.Equal(t, commenter.Username, comment.Author)

	status, body = e.do(http.MethodGet, commentsPath, "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, decode[[]catalogsdk.CommentResponse](t, body), 1)

	// The same review is unreachable under a different title.
	wrongPath := "/v1/titles/" + otherTitleID + "/reviews/" + review.ID + "/comments"
	status, _ = e.do(http.MethodGet, wrongPath, "", nil)
	require.Equal(t, http.StatusNotFound, status)

	// Review author cannot edit someone else's comment.
	status, _ = e.do(http.MethodPatch, commentsPath+"/"+comment.ID, authorToken,
		map[string]any{"text": "not yours"})
	require.Equal(t, http.StatusForbidden, status)

	status, _ = e.do(http.MethodDelete, commentsPath+"/"+comment.ID, commenterToken, nil)
	require.Equal(t, http.StatusNoContent, status)
}

func TestUserAdminFlow(t *testing.T) {
	e := setup(t)
	_, adminToken := e.seedUser(domain.RoleAdmin, false)
	_, userToken := e.seedUser(domain.RoleUser, false)

	// Non-admin and anonymous are shut out of the users resource.
	status, _ := e.do(http.MethodGet, "/v1/users", userToken, nil)
	require.Equal(t, http.StatusForbidden, status)
	status, _ = e.do(http.MethodGet, "/v1/users", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	status, body := e.do(http.MethodPost, "/v1/users", adminToken, map[string]any{
		"username": "created_by_admin",
		"email":    "created@example.com",
		"role":     "moderator",
	})
	require.Equal(t, http.StatusCreated, status, "body: %s", body)
	created := decode[catalogsdk.UserResponse](t, body)
	require.Equal(t, "moderator", created.Role)

	status, body = e.do(http.MethodGet, "/v1/users?search=created_by", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, decode[[]catalogsdk.UserResponse](t, body), 1)

	status, body = e.do(http.MethodPatch, "/v1/users/created_by_admin", adminToken,
		map[string]any{"role": "user"})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "user", decode[catalogsdk.UserResponse](t, body).Role)

	status, _ = e.do(http.MethodDelete, "/v1/users/created_by_admin", adminToken, nil)
	require.Equal(t, http.StatusNoContent, status)
	status, _ = e.do(http.MethodGet, "/v1/users/created_by_admin", adminToken, nil)
	require.Equal(t, http.StatusNotFound, status)
}

func TestSelfPatchCannotElevateRole(t *testing.T) {
	e := setup(t)
	_, userToken := e.seedUser(domain.RoleUser, false)

	status, body := e.do(http.MethodPatch, "/v1/users/me", userToken, map[string]any{
		"role": "admin",
		"bio":  "still just me",
	})
	require.Equal(t, http.StatusOK, status)
	me := decode[catalogsdk.UserResponse](t, body)
	require.Equal(t, "user", me.Role, "role change must be silently ignored")
	require.Equal(t, "still just me", me.Bio)
}
