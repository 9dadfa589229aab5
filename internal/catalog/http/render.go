package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/critiqhq/critiq/internal/catalog/domain"
	"github.com/critiqhq/critiq/internal/catalog/service"
	"github.com/critiqhq/critiq/internal/catalog/store"
	"github.com/critiqhq/critiq/pkg/catalogsdk"
	"github.com/critiqhq/critiq/pkg/httpx"
	"github.com/critiqhq/critiq/pkg/idx"
	"github.com/critiqhq/critiq/pkg/slogx"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. Unknown fields are ignored,
// matching the permissive input handling of the API.
func decodeJSON(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	defer func() { _, _ = io.Copy(io.Discard, body) }()
	return json.NewDecoder(body).Decode(dst)
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	httpx.WriteJSON(w, http.StatusUnauthorized, catalogsdk.ErrorResponse{Detail: detail})
}

func writeServerError(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusInternalServerError, catalogsdk.ErrorResponse{Detail: "internal server error"})
}

func writeBadRequest(w http.ResponseWriter, detail string) {
	httpx.WriteJSON(w, http.StatusBadRequest, catalogsdk.ErrorResponse{Detail: detail})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusMethodNotAllowed, catalogsdk.ErrorResponse{Detail: "method not allowed"})
}

// renderError maps service-layer failures onto the HTTP error taxonomy.
// A policy denial is a 401 for anonymous callers and a 403 for
// authenticated ones.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	if ve, ok := service.AsValidationError(err); ok {
		httpx.WriteJSON(w, http.StatusBadRequest, catalogsdk.ValidationErrorResponse(ve.Fields))
		return
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, catalogsdk.ErrorResponse{Detail: "not found"})
	case errors.Is(err, service.ErrPermissionDenied):
		if !actorFrom(r.Context()).Authenticated {
			writeUnauthorized(w, "authentication credentials were not provided")
			return
		}
		httpx.WriteJSON(w, http.StatusForbidden, catalogsdk.ErrorResponse{
			Detail: "you do not have permission to perform this action",
		})
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		writeServerError(w)
	}
}

// parsePage reads limit/offset query parameters; malformed values fall
// back to defaults rather than erroring.
func parsePage(r *http.Request) store.Page {
	var p store.Page
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		p.Limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		p.Offset = v
	}
	return p
}

// pathID parses a ULID path segment. Failure reads as a missing resource,
// not a validation error: the identifier space is opaque to clients.
func pathID(r *http.Request, name string) (idx.ID, error) {
	id, err := idx.Parse(r.PathValue(name))
	if err != nil {
		return idx.Zero, store.ErrNotFound
	}
	return id, nil
}

func toUserResponse(u domain.User) catalogsdk.UserResponse {
	return catalogsdk.UserResponse{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		Role:      string(u.Role),
	}
}

func toClassifierResponse(name, slug string) catalogsdk.ClassifierResponse {
	return catalogsdk.ClassifierResponse{Name: name, Slug: slug}
}

func toTitleResponse(t domain.Title) catalogsdk.TitleResponse {
	resp := catalogsdk.TitleResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Year:        t.Year,
		Rating:      t.Rating,
		Description: t.Description,
		Genres:      make([]catalogsdk.ClassifierResponse, 0, len(t.Genres)),
	}
	for _, g := range t.Genres {
		resp.Genres = append(resp.Genres, toClassifierResponse(g.Name, g.Slug))
	}
	if t.Category != nil {
		c := toClassifierResponse(t.Category.Name, t.Category.Slug)
		resp.Category = &c
	}
	return resp
}

func toReviewResponse(r domain.Review) catalogsdk.ReviewResponse {
	return catalogsdk.ReviewResponse{
		ID:      r.ID.String(),
		Text:    r.Text,
		Author:  r.AuthorUsername,
		Score:   r.Score,
		PubDate: r.PubDate.UTC().Format(time.RFC3339),
	}
}

func toCommentResponse(c domain.Comment) catalogsdk.CommentResponse {
	return catalogsdk.CommentResponse{
		ID:      c.ID.String(),
		Text:    c.Text,
		Author:  c.AuthorUsername,
		PubDate: c.PubDate.UTC().Format(time.RFC3339),
	}
}
