package catalog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/critiqhq/critiq/internal/catalog/domain"
	httpapi "github.com/critiqhq/critiq/internal/catalog/http"
	"github.com/critiqhq/critiq/internal/catalog/service"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/internal/catalog/store/drivers/sqlite"
	"github.com/critiqhq/critiq/pkg/catalogsdk"
	"github.com/critiqhq/critiq/pkg/confirmcode"
	"github.com/critiqhq/critiq/pkg/idx"
	"github.com/critiqhq/critiq/pkg/jwtx"
)

var ipCounter atomic.Int64

// captureSender records confirmation codes instead of sending mail.
type captureSender struct {
	mu    sync.Mutex
	codes map[string]string
}

func (c *captureSender) SendConfirmationCode(_ context.Context, _, username, code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.codes[username] = code
	return nil
}

func (c *captureSender) code(username string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.codes[username]
}

// env is a fully wired in-process deployment: in-memory store, captured
// mail, real router behind an httptest server.
type env struct {
	t      *testing.T
	server *httptest.Server
	store  store.Store
	sender *captureSender
	tokens *jwtx.Codec

	// clientIP feeds X-Forwarded-For so each env gets its own rate
	// limit bucket.
	clientIP string
}

func setup(t *testing.T) *env {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codes, err := confirmcode.New(confirmcode.Config{Secret: []byte("e2e-code-secret")})
	require.NoError(t, err)
	tokens, err := jwtx.NewCodec([]byte("e2e-jwt-secret"), "critiq-e2e", time.Hour)
	require.NoError(t, err)

	sender := &captureSender{codes: map[string]string{}}
	logger := slog.New(slog.DiscardHandler)

	router := httpapi.NewRouter(tokens, "e2e", st, logger)
	router.AuthService = service.NewAuthService(st, codes, tokens, sender, logger)
	router.UserService = service.NewUserService(st)
	router.CatalogService = service.NewCatalogService(st)
	router.ReviewService = service.NewReviewService(st)
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &env{
		t:        t,
		server:   server,
		store:    st,
		sender:   sender,
		tokens:   tokens,
		clientIP: fmt.Sprintf("10.1.%d.%d", ipCounter.Add(1)/250, ipCounter.Load()%250+1),
	}
}

// do performs a JSON request and returns status plus raw body.
func (e *env) do(method, path, token string, body any) (int, []byte) {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(e.t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", e.clientIP)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(e.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), "body: %s", raw)
	return v
}

// signup registers via the API and returns the captured confirmation code.
func (e *env) signup(username, email string) string {
	e.t.Helper()

	status, body := e.do(http.MethodPost, "/v1/auth/signup", "", catalogsdk.SignupRequest{
		Username: username,
		Email:    email,
	})
	require.Equal(e.t, http.StatusOK, status, "signup body: %s", body)
	code := e.sender.code(username)
	require.NotEmpty(e.t, code)
	return code
}

// login exchanges the captured code for an access token.
func (e *env) login(username string) string {
	e.t.Helper()

	status, body := e.do(http.MethodPost, "/v1/auth/token", "", catalogsdk.TokenRequest{
		Username:         username,
		ConfirmationCode: e.sender.code(username),
	})
	require.Equal(e.t, http.StatusOK, status, "login body: %s", body)
	return decode[catalogsdk.TokenResponse](e.t, body).Access
}

// seedUser writes a user straight to the store and mints its token,
// bypassing the rate-limited auth endpoints.
func (e *env) seedUser(role domain.Role, superuser bool) (domain.User, string) {
	e.t.Helper()

	suffix := strings.ToLower(idx.New().String())
	now := time.Now().UTC()
	u := domain.User{
		ID:        idx.New(),
		Username:  "seed_" + suffix,
		Email:     "seed_" + suffix + "@example.com",
		Role:      role,
		Superuser: superuser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(e.t, e.store.Users().Create(context.Background(), u))

	token, err := e.tokens.Sign(u.ID.String(), u.Username, string(u.Role), time.Now())
	require.NoError(e.t, err)
	return u, token
}

// seedCatalog creates a category, a genre and a title through the admin API.
func (e *env) seedCatalog(adminToken string) (category, genre string, titleID string) {
	e.t.Helper()

	suffix := strings.ToLower(idx.New().String())
	category = "cat-" + suffix
	genre = "genre-" + suffix

	status, body := e.do(http.MethodPost, "/v1/categories", adminToken,
		map[string]string{"name": "Category " + suffix, "slug": category})
	require.Equal(e.t, http.StatusCreated, status, "category body: %s", body)

	status, body = e.do(http.MethodPost, "/v1/genres", adminToken,
		map[string]string{"name": "Genre " + suffix, "slug": genre})
	require.Equal(e.t, http.StatusCreated, status, "genre body: %s", body)

	status, body = e.do(http.MethodPost, "/v1/titles", adminToken, map[string]any{
		"name":     "Title " + suffix,
		"year":     2005,
		"category": category,
		"genre":    []string{genre},
	})
	require.Equal(e.t, http.StatusCreated, status, "title body: %s", body)
	titleID = decode[catalogsdk.TitleResponse](e.t, body).ID
	return category, genre, titleID
}
