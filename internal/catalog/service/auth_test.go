package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/internal/catalog/store"
)

func TestSignupCreatesUser(t *testing.T) {
	st := newTestStore(t)
	auth, sender, _ := newTestAuth(t, st)
	ctx := context.Background()

	user, err := auth.Signup(ctx, SignupParams{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.False(t, user.Superuser)
	assert.NotEmpty(t, sender.lastCode("alice"))

	stored, err := st.Users().GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestSignupIdempotentOnExactPair(t *testing.T) {
	st := newTestStore(t)
	auth, sender, _ := newTestAuth(t, st)
	ctx := context.Background()

	first, err := auth.Signup(ctx, SignupParams{Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)
	firstCode := sender.lastCode("bob")

	second, err := auth.Signup(ctx, SignupParams{Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.NotEmpty(t, sender.lastCode("bob"))
	assert.Equal(t, firstCode, sender.lastCode("bob")) // same window, same identity

	users, err := st.Users().List(ctx, "bob", store.Page{})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestSignupRejectsPartialCollisions(t *testing.T) {
	st := newTestStore(t)
	auth, _, _ := newTestAuth(t, st)
	ctx := context.Background()

	_, err := auth.Signup(ctx, SignupParams{Username: "carol", Email: "carol@example.com"})
	require.NoError(t, err)

	_, err = auth.Signup(ctx, SignupParams{Username: "carol", Email: "other@example.com"})
	requireFieldError(t, err, "username")

	_, err = auth.Signup(ctx, SignupParams{Username: "other", Email: "carol@example.com"})
	requireFieldError(t, err, "email")
}

func TestSignupRejectsBadUsernames(t *testing.T) {
	st := newTestStore(t)
	auth, _, _ := newTestAuth(t, st)
	ctx := context.Background()

	_, err := auth.Signup(ctx, SignupParams{Username: "me", Email: "me@example.com"})
	requireFieldError(t, err, "username")

	_, err = auth.Signup(ctx, SignupParams{Username: "has spaces", Email: "x@example.com"})
	requireFieldError(t, err, "username")

	_, err = auth.Signup(ctx, SignupParams{Username: "", Email: "x@example.com"})
	requireFieldError(t, err, "username")

	_, err = auth.Signup(ctx, SignupParams{Username: "ok.name+tag", Email: "not-an-email"})
	requireFieldError(t, err, "email")
}

func TestLoginMintsVerifiableToken(t *testing.T) {
	st := newTestStore(t)
	auth, sender, tokens := newTestAuth(t, st)
	ctx := context.Background()

	user, err := auth.Signup(ctx, SignupParams{Username: "dave", Email: "dave@example.com"})
	require.NoError(t, err)

	raw, err := auth.Login(ctx, LoginParams{Username: "dave", ConfirmationCode: sender.lastCode("dave")})
	require.NoError(t, err)

	claims, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "dave", claims.Username)
	assert.Equal(t, string(domain.RoleUser), claims.Role)
}

func TestLoginUnknownUsernameIsNotFound(t *testing.T) {
	st := newTestStore(t)
	auth, _, _ := newTestAuth(t, st)

	_, err := auth.Login(context.Background(), LoginParams{Username: "ghost", ConfirmationCode: "anything"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestLoginRejectsBadCode(t *testing.T) {
	st := newTestStore(t)
	auth, _, _ := newTestAuth(t, st)
	ctx := context.Background()

	_, err := auth.Signup(ctx, SignupParams{Username: "erin", Email: "erin@example.com"})
	require.NoError(t, err)

	_, err = auth.Login(ctx, LoginParams{Username: "erin", ConfirmationCode: "abc-00000000000000000000"})
	requireFieldError(t, err, "confirmation_code")
}

func TestIdentityChangeInvalidatesCode(t *testing.T) {
	st := newTestStore(t)
	auth, sender, _ := newTestAuth(t, st)
	users := NewUserService(st)
	admin := actorFor(seedUser(t, st, domain.RoleAdmin, false))
	ctx := context.Background()

	_, err := auth.Signup(ctx, SignupParams{Username: "frank", Email: "frank@example.com"})
	require.NoError(t, err)
	code := sender.lastCode("frank")

	newEmail := "frank+new@example.com"
	updated, err := users.Update(ctx, admin, "frank", UpdateUserParams{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.IdentityVersion)

	_, err = auth.Login(ctx, LoginParams{Username: "frank", ConfirmationCode: code})
	requireFieldError(t, err, "confirmation_code")

	// A fresh signup against the new pair issues a working code.
	_, err = auth.Signup(ctx, SignupParams{Username: "frank", Email: newEmail})
	require.NoError(t, err)
	_, err = auth.Login(ctx, LoginParams{Username: "frank", ConfirmationCode: sender.lastCode("frank")})
	require.NoError(t, err)
}
