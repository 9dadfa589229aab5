package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/critiqhq/critiq/internal/catalog/service"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/pkg/httpx"
	"github.com/critiqhq/critiq/pkg/jwtx"
	"github.com/critiqhq/critiq/pkg/slogx"

	_ "github.com/critiqhq/critiq/api/critiq" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	tokens       *jwtx.Codec
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AuthService    *service.AuthService
	UserService    *service.UserService
	CatalogService *service.CatalogService
	ReviewService  *service.ReviewService
}

func NewRouter(tokens *jwtx.Codec, buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		tokens:       tokens,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
	}

	// Actor resolution runs on every route: a bad bearer token is a 401
	// even on anonymous-readable endpoints.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		r.actorMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerCategories()
	r.registerGenres()
	r.registerTitles()
	r.registerReviews()
	r.registerComments()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Critiq Catalog API
//	@version		0.1.0
//	@description	Review-and-rating catalog backend: passwordless email signup,
//	@description	JWT access tokens, role-based authorization and CRUD for
//	@description	categories, genres, titles, reviews and comments.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	signup := &SignupHandler{AuthService: r.AuthService}
	token := &TokenHandler{AuthService: r.AuthService}

	// Strict limits: both endpoints trigger outbound mail or mint tokens.
	r.Mux.Handle("POST /v1/auth/signup",
		httpx.Chain(signup, httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /v1/auth/token",
		httpx.Chain(token, httpx.RateLimitByIP(httpx.StrictLimit)))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}
	limit := httpx.RateLimitByIP(httpx.ModerateLimit)

	// "me" is registered before the wildcard so the literal wins.
	r.Mux.Handle("GET /v1/users/me", httpx.Chain(http.HandlerFunc(h.Me), limit))
	r.Mux.Handle("PATCH /v1/users/me", httpx.Chain(http.HandlerFunc(h.PatchMe), limit))

	r.Mux.Handle("GET /v1/users", httpx.Chain(http.HandlerFunc(h.List), limit))
	r.Mux.Handle("POST /v1/users", httpx.Chain(http.HandlerFunc(h.Create), limit))
	r.Mux.Handle("GET /v1/users/{username}", httpx.Chain(http.HandlerFunc(h.Get), limit))
	r.Mux.Handle("PATCH /v1/users/{username}", httpx.Chain(http.HandlerFunc(h.Patch), limit))
	r.Mux.Handle("DELETE /v1/users/{username}", httpx.Chain(http.HandlerFunc(h.Delete), limit))
}

func (r *Router) registerCategories() {
	h := &CategoriesHandler{CatalogService: r.CatalogService}
	read := httpx.RateLimitByIP(httpx.PublicLimit)
	write := httpx.RateLimitByIP(httpx.ModerateLimit)

	r.Mux.Handle("GET /v1/categories", httpx.Chain(http.HandlerFunc(h.List), read))
	r.Mux.Handle("POST /v1/categories", httpx.Chain(http.HandlerFunc(h.Create), write))
	r.Mux.Handle("DELETE /v1/categories/{slug}", httpx.Chain(http.HandlerFunc(h.Delete), write))

	// Detail reads and edits are deliberately unsupported on classifiers.
	r.Mux.HandleFunc("GET /v1/categories/{slug}", methodNotAllowed)
	r.Mux.HandleFunc("PATCH /v1/categories/{slug}", methodNotAllowed)
	r.Mux.HandleFunc("PUT /v1/categories/{slug}", methodNotAllowed)
}

func (r *Router) registerGenres() {
	h := &GenresHandler{CatalogService: r.CatalogService}
	read := httpx.RateLimitByIP(httpx.PublicLimit)
	write := httpx.RateLimitByIP(httpx.ModerateLimit)

	r.Mux.Handle("GET /v1/genres", httpx.Chain(http.HandlerFunc(h.List), read))
	r.Mux.Handle("POST /v1/genres", httpx.Chain(http.HandlerFunc(h.Create), write))
	r.Mux.Handle("DELETE /v1/genres/{slug}", httpx.Chain(http.HandlerFunc(h.Delete), write))

	r.Mux.HandleFunc("GET /v1/genres/{slug}", methodNotAllowed)
	r.Mux.HandleFunc("PATCH /v1/genres/{slug}", methodNotAllowed)
	r.Mux.HandleFunc("PUT /v1/genres/{slug}", methodNotAllowed)
}

func (r *Router) registerTitles() {
	h := &TitlesHandler{CatalogService: r.CatalogService}
	read := httpx.RateLimitByIP(httpx.PublicLimit)
	write := httpx.RateLimitByIP(httpx.ModerateLimit)

	r.Mux.Handle("GET /v1/titles", httpx.Chain(http.HandlerFunc(h.List), read))
	r.Mux.Handle("GET /v1/titles/{titleID}", httpx.Chain(http.HandlerFunc(h.Get), read))
	r.Mux.Handle("POST /v1/titles", httpx.Chain(http.HandlerFunc(h.Create), write))
	r.Mux.Handle("PATCH /v1/titles/{titleID}", httpx.Chain(http.HandlerFunc(h.Patch), write))
	r.Mux.Handle("DELETE /v1/titles/{titleID}", httpx.Chain(http.HandlerFunc(h.Delete), write))
}

func (r *Router) registerReviews() {
	h := &ReviewsHandler{ReviewService: r.ReviewService}
	read := httpx.RateLimitByIP(httpx.PublicLimit)
	write := httpx.RateLimitByIP(httpx.LenientLimit)

	r.Mux.Handle("GET /v1/titles/{titleID}/reviews", httpx.Chain(http.HandlerFunc(h.List), read))
	r.Mux.Handle("GET /v1/titles/{titleID}/reviews/{reviewID}", httpx.Chain(http.HandlerFunc(h.Get), read))
	r.Mux.Handle("POST /v1/titles/{titleID}/reviews", httpx.Chain(http.HandlerFunc(h.Create), write))
	r.Mux.Handle("PATCH /v1/titles/{titleID}/reviews/{reviewID}", httpx.Chain(http.HandlerFunc(h.Patch), write))
	r.Mux.Handle("DELETE /v1/titles/{titleID}/reviews/{reviewID}", httpx.Chain(http.HandlerFunc(h.Delete), write))
}

func (r *Router) registerComments() {
	h := &CommentsHandler{ReviewService: r.ReviewService}
	read := httpx.RateLimitByIP(httpx.PublicLimit)
	write := httpx.RateLimitByIP(httpx.LenientLimit)

	r.Mux.Handle("GET /v1/titles/{titleID}/reviews/{reviewID}/comments",
		httpx.Chain(http.HandlerFunc(h.List), read))
	r.Mux.Handle("GET /v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}",
		httpx.Chain(http.HandlerFunc(h.Get), read))
	r.Mux.Handle("POST /v1/titles/{titleID}/reviews/{reviewID}/comments",
		httpx.Chain(http.HandlerFunc(h.Create), write))
	r.Mux.Handle("PATCH /v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}",
		httpx.Chain(http.HandlerFunc(h.Patch), write))
	r.Mux.Handle("DELETE /v1/titles/{titleID}/reviews/{reviewID}/comments/{commentID}",
		httpx.Chain(http.HandlerFunc(h.Delete), write))
}

func (r *Router) registerSystem() {
	r.Mux.HandleFunc("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.HandleFunc("GET /readyz", ReadyzHandler(r.store))
}
