package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"github.com/critiqhq/critiq/internal/catalog/authz"
	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/internal/catalog/store/drivers/sqlite"
	"github.com/critiqhq/critiq/pkg/confirmcode"
	"github.com/critiqhq/critiq/pkg/idx"
	"github.com/critiqhq/critiq/pkg/jwtx"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// captureSender records the last confirmation code per username instead of
// sending mail.
type captureSender struct {
	mu    sync.Mutex
	codes map[string]string
}

func newCaptureSender() *captureSender {
	return &captureSender{codes: map[string]string{}}
}

func (c *captureSender) SendConfirmationCode(_ context.Context, _, username, code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.codes[username] = code
	return nil
}

func (c *captureSender) lastCode(username string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.codes[username]
}

func newTestAuth(t *testing.T, st store.Store) (*AuthService, *captureSender, *jwtx.Codec) {
	t.Helper()

	codes, err := confirmcode.New(confirmcode.Config{Secret: []byte("test-code-secret")})
	require.NoError(t, err)

	tokens, err := jwtx.NewCodec([]byte("test-jwt-secret"), "critiq-test", time.Hour)
	require.NoError(t, err)

	sender := newCaptureSender()
	logger := slog.New(slog.DiscardHandler)
	return NewAuthService(st, codes, tokens, sender, logger), sender, tokens
}

// uniqueName generates a username-safe unique string. gofakeit covers the
// free-text fields; identity fields need guaranteed uniqueness.
func uniqueName(prefix string) string {
	return prefix + "_" + strings.ToLower(idx.New().String())
}

func seedUser(t *testing.T, st store.Store, role domain.Role, superuser bool) domain.User {
	t.Helper()

	now := time.Now().UTC()
	u := domain.User{
		ID:        idx.New(),
		Username:  uniqueName("user"),
		Email:     uniqueName("mail") + "@example.com",
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Bio:       gofakeit.Sentence(8),
		Role:      role,
		Superuser: superuser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Users().Create(context.Background(), u))
	return u
}

func actorFor(u domain.User) authz.Actor {
	return authz.ActorFor(u)
}

func actorForAnonymous() authz.Actor {
	return authz.Actor{}
}

func seedCategory(t *testing.T, st store.Store) domain.Category {
	t.Helper()

	c := domain.Category{
		ID:        idx.New(),
		Name:      gofakeit.BookGenre(),
		Slug:      uniqueName("cat"),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.Categories().Create(context.Background(), c))
	return c
}

func seedGenre(t *testing.T, st store.Store) domain.Genre {
	t.Helper()

	g := domain.Genre{
		ID:        idx.New(),
		Name:      gofakeit.MovieGenre(),
		Slug:      uniqueName("genre"),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, st.Genres().Create(context.Background(), g))
	return g
}

func seedTitle(t *testing.T, st store.Store, category domain.Category, genres ...domain.Genre) domain.Title {
	t.Helper()

	now := time.Now().UTC()
	title := domain.Title{
		ID:          idx.New(),
		Name:        gofakeit.MovieName(),
		Year:        2001,
		Description: gofakeit.Sentence(10),
		Category:    &category,
		Genres:      genres,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, st.Titles().Create(context.Background(), title))
	return title
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()

	ve, ok := AsValidationError(err)
	require.True(t, ok, "expected validation error, got %v", err)
	require.Contains(t, ve.Fields, field)
}
