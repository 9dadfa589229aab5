package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/internal/catalog/mail"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/pkg/confirmcode"
	"github.com/critiqhq/critiq/pkg/idx"
	"github.com/critiqhq/critiq/pkg/jwtx"
)

// AuthService implements the passwordless signup and login flow: signup
// creates (or re-finds) a user and emails a confirmation code; login
// exchanges a valid username+code pair for a JWT access token.
type AuthService struct {
	store  store.Store
	codes  *confirmcode.Generator
	tokens *jwtx.Codec
	mail   mail.Sender
	logger *slog.Logger

	now func() time.Time
}

func NewAuthService(st store.Store, codes *confirmcode.Generator, tokens *jwtx.Codec, sender mail.Sender, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:  st,
		codes:  codes,
		tokens: tokens,
		mail:   sender,
		logger: logger,
		now:    time.Now,
	}
}

type SignupParams struct {
	Username string `json:"username" validate:"required,max=150,username"`
	Email    string `json:"email" validate:"required,email,max=254"`
}

// Signup registers a new user or re-issues a code for a returning one.
// The operation is idempotent on the exact (username, email) pair; a
// collision on either field alone is a validation error. Code delivery
// failure is logged but does not fail the request: the user can retry
// signup with the same pair to get a fresh send.
func (s *AuthService) Signup(ctx context.Context, params SignupParams) (domain.User, error) {
	if err := validateStruct(params); err != nil {
		return domain.User{}, err
	}

	var user domain.User
	err := s.store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Users().GetByUsername(ctx, params.Username)
		switch {
		case err == nil:
			if existing.Email != params.Email {
				return NewValidationError("username", "a user with that username already exists")
			}
			user = existing
			return nil
		case !errors.Is(err, store.ErrNotFound):
			return fmt.Errorf("lookup username: %w", err)
		}

		if _, err := tx.Users().GetByEmail(ctx, params.Email); err == nil {
			return NewValidationError("email", "a user with that email already exists")
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("lookup email: %w", err)
		}

		now := s.now().UTC()
		user = domain.User{
			ID:        idx.New(),
			Username:  params.Username,
			Email:     params.Email,
			Role:      domain.RoleUser,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tx.Users().Create(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	code := s.codes.Issue(codeIdentity(user), s.now())
	if err := s.mail.SendConfirmationCode(ctx, user.Email, user.Username, code); err != nil {
		s.logger.ErrorContext(ctx, "failed to send confirmation code",
			slog.String("username", user.Username),
			slog.Any("error", err),
		)
	}

	return user, nil
}

type LoginParams struct {
	Username         string `json:"username" validate:"required"`
	ConfirmationCode string `json:"confirmation_code" validate:"required"`
}

// Login validates the confirmation code against the user's current
// identity and mints an access token. An unknown username surfaces as
// store.ErrNotFound, kept distinct from a bad code on purpose.
func (s *AuthService) Login(ctx context.Context, params LoginParams) (string, error) {
	if err := validateStruct(params); err != nil {
		return "", err
	}

	user, err := s.store.Users().GetByUsername(ctx, params.Username)
	if err != nil {
		return "", err
	}

	if !s.codes.Validate(params.ConfirmationCode, codeIdentity(user), s.now()) {
		return "", NewValidationError("confirmation_code", "confirmation code is invalid or expired")
	}

	token, err := s.tokens.Sign(user.ID.String(), user.Username, string(user.Role), s.now())
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func codeIdentity(u domain.User) confirmcode.Identity {
	return confirmcode.Identity{
		UserID:   u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		Version:  u.IdentityVersion,
	}
}
