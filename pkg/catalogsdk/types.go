// Package catalogsdk defines the wire types of the catalog HTTP API. The
// server renders them and Go clients (including the e2e suite) decode them.
package catalogsdk

// ErrorResponse is the generic error body. Detail carries a single
// human-readable message for non-validation failures.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse maps each rejected field to its messages.
type ValidationErrorResponse map[string][]string

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenRequest struct {
	Username         string `json:"username"`
	ConfirmationCode string `json:"confirmation_code"`
}

type TokenResponse struct {
	Access string `json:"access"`
}

type UserResponse struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

type ClassifierResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TitleResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Year        int                  `json:"year"`
	Rating      *float64             `json:"rating"`
	Description string               `json:"description"`
	Genres      []ClassifierResponse `json:"genre"`
	Category    *ClassifierResponse  `json:"category"`
}

type ReviewResponse struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Author  string `json:"author"`
	Score   int    `json:"score"`
	PubDate string `json:"pub_date"`
}

type CommentResponse struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Author  string `json:"author"`
	PubDate string `json:"pub_date"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
