package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/critiqhq/critiq/internal/catalog/authz"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/pkg/idx"
	"github.com/critiqhq/critiq/pkg/slogx"
)

type ctxKey int

const actorKey ctxKey = iota

// actorMiddleware resolves the caller from the Authorization header. The
// user record is re-read per request so role changes and deletions take
// effect immediately instead of riding out the token's lifetime. Requests
// without a header proceed anonymously; a present-but-invalid token is
// rejected outright.
func (rt *Router) actorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r.WithContext(withActor(r.Context(), authz.Actor{})))
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeUnauthorized(w, "invalid authorization header")
			return
		}

		claims, err := rt.tokens.Verify(raw)
		if err != nil {
			writeUnauthorized(w, "token is invalid or expired")
			return
		}

		id, err := idx.Parse(claims.Subject)
		if err != nil {
			writeUnauthorized(w, "token is invalid or expired")
			return
		}

		user, err := rt.store.Users().GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeUnauthorized(w, "token user no longer exists")
				return
			}
			slogx.FromContext(r.Context()).Error("failed to resolve token user", "error", err)
			writeServerError(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), authz.ActorFor(user))))
	})
}

func withActor(ctx context.Context, actor authz.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// actorFrom returns the resolved caller; the zero Actor is anonymous.
func actorFrom(ctx context.Context) authz.Actor {
	actor, _ := ctx.Value(actorKey).(authz.Actor)
	return actor
}
