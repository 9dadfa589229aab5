// Package jwtx issues and verifies the service's access tokens. A single
// HS256 key is enough here: tokens are only ever minted and checked by this
// service, so there is no cross-service verification to support.
package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens. The
// confirmation-code flow has no refresh step, so these run longer than a
// typical OAuth2 access token.
const DefaultAccessTokenTTL = 24 * time.Hour

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")
	ErrIssuer     = errors.New("jwtx: issuer mismatch")
)

// Claims are the access-token claims. Subject carries the user ID; role is a
// snapshot for observability only; authorization always re-reads the user
// record, so a role change takes effect before the token expires.
type Claims struct {
	jwt.RegisteredClaims

	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Codec signs and verifies access tokens with a shared secret.
type Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewCodec builds a Codec. A zero ttl falls back to DefaultAccessTokenTTL.
func NewCodec(secret []byte, issuer string, ttl time.Duration) (*Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwtx: secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &Codec{secret: secret, issuer: issuer, ttl: ttl}, nil
}

// Sign mints an access token for the given subject.
func (c *Codec) Sign(subject, username, role string, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			ID:        newJTI(),
		},
		Username: username,
		Role:     role,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates a token string, returning its claims.
func (c *Codec) Verify(raw string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)

	var claims Claims
	token, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrExpired
	case errors.Is(err, jwt.ErrSignatureInvalid):
		return Claims{}, ErrInvalidSig
	case err != nil:
		return Claims{}, ErrMalformed
	case !token.Valid:
		return Claims{}, ErrMalformed
	}

	if c.issuer != "" && claims.Issuer != c.issuer {
		return Claims{}, ErrIssuer
	}

	return claims, nil
}

// newJTI returns a URL-safe random identifier for the "jti" claim.
func newJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
