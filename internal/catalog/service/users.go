package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/critiqhq/critiq/internal/catalog/authz"
	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/pkg/idx"
)

// UserService covers the admin-gated user management resource and the
// self-profile operations available to any authenticated user.
type UserService struct {
	store store.Store

	now func() time.Time
}

func NewUserService(st store.Store) *UserService {
	return &UserService{store: st, now: time.Now}
}

func (s *UserService) List(ctx context.Context, actor authz.Actor, search string, page store.Page) ([]domain.User, error) {
	if !authz.AdminOnly(actor, authz.ActionList) {
		return nil, ErrPermissionDenied
	}
	return s.store.Users().List(ctx, search, page)
}

func (s *UserService) Get(ctx context.Context, actor authz.Actor, username string) (domain.User, error) {
	if !authz.AdminOnly(actor, authz.ActionRetrieve) {
		return domain.User{}, ErrPermissionDenied
	}
	return s.store.Users().GetByUsername(ctx, username)
}

type CreateUserParams struct {
	Username  string `json:"username" validate:"required,max=150,username"`
	Email     string `json:"email" validate:"required,email,max=254"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Bio       string `json:"bio"`
	Role      string `json:"role" validate:"omitempty,oneof=user moderator admin"`
}

// Create registers a user on behalf of an admin. No confirmation code is
// sent; the new user obtains one through the regular signup flow.
func (s *UserService) Create(ctx context.Context, actor authz.Actor, params CreateUserParams) (domain.User, error) {
	if !authz.AdminOnly(actor, authz.ActionCreate) {
		return domain.User{}, ErrPermissionDenied
	}
	if err := validateStruct(params); err != nil {
		return domain.User{}, err
	}

	role := domain.RoleUser
	if params.Role != "" {
		role = domain.Role(params.Role)
	}

	now := s.now().UTC()
	user := domain.User{
		ID:        idx.New(),
		Username:  params.Username,
		Email:     params.Email,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Bio:       params.Bio,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.store.WithTx(ctx, func(tx store.Tx) error {
		if err := checkUserUnique(ctx, tx, params.Username, params.Email, idx.Zero); err != nil {
			return err
		}
		return tx.Users().Create(ctx, user)
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// UpdateUserParams carries a partial update; nil pointers leave the field
// untouched.
type UpdateUserParams struct {
	Username  *string `json:"username" validate:"omitempty,max=150,username"`
	Email     *string `json:"email" validate:"omitempty,email,max=254"`
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role" validate:"omitempty,oneof=user moderator admin"`
}

// Update applies an admin partial update. Changing username or email bumps
// the identity version, killing every outstanding confirmation code.
func (s *UserService) Update(ctx context.Context, actor authz.Actor, username string, params UpdateUserParams) (domain.User, error) {
	if !authz.AdminOnly(actor, authz.ActionUpdate) {
		return domain.User{}, ErrPermissionDenied
	}
	if err := validateStruct(params); err != nil {
		return domain.User{}, err
	}
	return s.apply(ctx, username, params, true)
}

func (s *UserService) Delete(ctx context.Context, actor authz.Actor, username string) error {
	if !authz.AdminOnly(actor, authz.ActionDelete) {
		return ErrPermissionDenied
	}
	return s.store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		return tx.Users().Delete(ctx, user.ID)
	})
}

// Me returns the caller's own record.
func (s *UserService) Me(ctx context.Context, actor authz.Actor) (domain.User, error) {
	if !actor.Authenticated {
		return domain.User{}, ErrPermissionDenied
	}
	return s.store.Users().GetByID(ctx, actor.ID)
}

// UpdateMe applies a self-service partial update. A role change in the
// payload is silently dropped unless the caller is an admin, matching the
// read-only treatment of the field rather than rejecting the request.
func (s *UserService) UpdateMe(ctx context.Context, actor authz.Actor, params UpdateUserParams) (domain.User, error) {
	if !actor.Authenticated {
		return domain.User{}, ErrPermissionDenied
	}
	if err := validateStruct(params); err != nil {
		return domain.User{}, err
	}

	allowRole := authz.AdminOnly(actor, authz.ActionUpdate)
	if !allowRole {
		params.Role = nil
	}

	user, err := s.store.Users().GetByID(ctx, actor.ID)
	if err != nil {
		return domain.User{}, err
	}
	return s.apply(ctx, user.Username, params, allowRole)
}

// apply loads the user by username inside a transaction and rewrites the
// requested fields.
func (s *UserService) apply(ctx context.Context, username string, params UpdateUserParams, allowRole bool) (domain.User, error) {
	var user domain.User
	err := s.store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		user, err = tx.Users().GetByUsername(ctx, username)
		if err != nil {
			return err
		}

		identityChanged := false
		if params.Username != nil && *params.Username != user.Username {
			user.Username = *params.Username
			identityChanged = true
		}
		if params.Email != nil && *params.Email != user.Email {
			user.Email = *params.Email
			identityChanged = true
		}
		if identityChanged {
			if err := checkUserUnique(ctx, tx, user.Username, user.Email, user.ID); err != nil {
				return err
			}
			user.IdentityVersion++
		}

		if params.FirstName != nil {
			user.FirstName = *params.FirstName
		}
		if params.LastName != nil {
			user.LastName = *params.LastName
		}
		if params.Bio != nil {
			user.Bio = *params.Bio
		}
		if allowRole && params.Role != nil {
			user.Role = domain.Role(*params.Role)
		}

		user.UpdatedAt = s.now().UTC()
		return tx.Users().Update(ctx, user)
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// checkUserUnique reports field-keyed validation errors when username or
// email belongs to a user other than self. The schema's unique indexes
// remain the backstop under concurrent writes.
func checkUserUnique(ctx context.Context, tx store.Tx, username, email string, self idx.ID) error {
	if other, err := tx.Users().GetByUsername(ctx, username); err == nil {
		if other.ID != self {
			return NewValidationError("username", "a user with that username already exists")
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("lookup username: %w", err)
	}

	if other, err := tx.Users().GetByEmail(ctx, email); err == nil {
		if other.ID != self {
			return NewValidationError("email", "a user with that email already exists")
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("lookup email: %w", err)
	}
	return nil
}
