package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/internal/catalog/store"
)

func TestUserListIsAdminOnly(t *testing.T) {
	st := newTestStore(t)
	svc := NewUserService(st)
	ctx := context.Background()

	plain := actorFor(seedUser(t, st, domain.RoleUser, false))
	mod := actorFor(seedUser(t, st, domain.RoleModerator, false))
	admin := actorFor(seedUser(t, st, domain.RoleAdmin, false))
	super := actorFor(seedUser(t, st, domain.RoleUser, true))

	_, err := svc.List(ctx, plain, "", store.Page{})
	require.ErrorIs(t, err, ErrPermissionDenied)
	_, err = svc.List(ctx, mod, "", store.Page{})
	require.ErrorIs(t, err, ErrPermissionDenied)

	users, err := svc.List(ctx, admin, "", store.Page{})
	require.NoError(t, err)
	assert.Len(t, users, 4)

	_, err = svc.List(ctx, super, "", store.Page{})
	require.NoError(t, err)
}

func TestAdminCreatesUserWithRole(t *testing.T) {
	st := newTestStore(t)
	svc := NewUserService(st)
	admin := actorFor(seedUser(t, st, domain.RoleAdmin, false))
	ctx := context.Background()

	user, err := svc.Create(ctx, admin, CreateUserParams{
		Username: "newmod",
		Email:    "newmod@example.com",
		Role:     "moderator",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleModerator, user.Role)

	// Role defaults to user when omitted.
	user, err = svc.Create(ctx, admin, CreateUserParams{
		Username: "plainuser",
		Email:    "plainuser@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)

	_, err = svc.Create(ctx, admin, CreateUserParams{
		Username: "badrole",
		Email:    "badrole@example.com",
		Role:     "owner",
	})
	requireFieldError(t, err, "role")
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	st := newTestStore(t)
	svc := NewUserService(st)
	admin := actorFor(seedUser(t, st, domain.RoleAdmin, false))
	existing := seedUser(t, st, domain.RoleUser, false)
	ctx := context.Background()

	_, err := svc.Create(ctx, admin, CreateUserParams{
		Username: existing.Username,
		Email:    "fresh@example.com",
	})
	requireFieldError(t, err, "username")

	_, err = svc.Create(ctx, admin, CreateUserParams{
		Username: "freshname",
		Email:    existing.Email,
	})
	requireFieldError(t, err, "email")
}

func TestUpdateBumpsIdentityVersion(t *testing.T) {
	st := newTestStore(t)
	svc := NewUserService(st)
	admin := actorFor(seedUser(t, st, domain.RoleAdmin, false))
	target := seedUser(t, st, domain.RoleUser, false)
	ctx := context.Background()

	bio := "updated bio"
	updated, err := svc.Update(ctx, admin, target.Username, UpdateUserParams{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.IdentityVersion, "bio change must not bump identity")

	newName := uniqueName("renamed")
	updated, err = svc.Update(ctx, admin, target.Username, UpdateUserParams{Username: &newName})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.IdentityVersion)
	assert.Equal(t, newName, updated.Username)

	_, err = st.Users().GetByUsername(ctx, target.Username)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateRejectsTakenIdentity(t *testing.T) {
	st := newTestStore(t)
	svc := NewUserService(st)
	admin := actorFor(seedUser(t, st, domain.RoleAdmin, false))
	a := seedUser(t, st, domain.RoleUser, false)
	b := seedUser(t, st, domain.RoleUser, false)
	ctx := context.Background()

	_, err := svc.Update(ctx, admin, a.Username, UpdateUserParams{Username: &b.Username})
	requireFieldError(t, err, "username")

	_, err = svc.Update(ctx, admin, a.Username, UpdateUserParams{Email: &b.Email})
	requireFieldError(t, err, "email")
}

func TestUpdateMeIgnoresRoleForNonAdmins(t *testing.T) {
	st := newTestStore(t)
	svc := NewUserService(st)
	user := seedUser(t, st, domain.RoleUser, false)
	ctx := context.Background()

	role := "admin"
	bio := "self-service bio"
	updated, err := svc.UpdateMe(ctx, actorFor(user), UpdateUserParams{Role: &role, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, updated.Role, "role escalation must be dropped")
	assert.Equal(t, bio, updated.Bio)

	admin := seedUser(t, st, domain.RoleAdmin, false)
	demote := "moderator"
	updated, err = svc.UpdateMe(ctx, actorFor(admin), UpdateUserParams{Role: &demote})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleModerator, updated.Role)
}

func TestMeRequiresAuth(t *testing.T) {
	st := newTestStore(t)
	svc := NewUserService(st)
	ctx := context.Background()

	_, err := svc.Me(ctx, actorForAnonymous())
	require.ErrorIs(t, err, ErrPermissionDenied)

	user := seedUser(t, st, domain.RoleUser, false)
	got, err := svc.Me(ctx, actorFor(user))
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestDeleteUser(t *testing.T) {
	st := newTestStore(t)
	svc := NewUserService(st)
	admin := actorFor(seedUser(t, st, domain.RoleAdmin, false))
	target := seedUser(t, st, domain.RoleUser, false)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, admin, target.Username))
	require.ErrorIs(t, svc.Delete(ctx, admin, target.Username), store.ErrNotFound)

	mod := actorFor(seedUser(t, st, domain.RoleModerator, false))
	require.ErrorIs(t, svc.Delete(ctx, mod, admin.ID.String()), ErrPermissionDenied)
}
