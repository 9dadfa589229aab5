// Package confirmcode implements the stateless confirmation-code scheme used
// for passwordless signup. A code is a keyed hash over the user's stable
// identity fields and a coarse time bucket; it is never stored server-side
// and is recomputed from the current user record at validation time.
package confirmcode

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

const (
	// DefaultWindow is the time bucket size. Codes are stable within a
	// window and roll over across windows.
	DefaultWindow = 24 * time.Hour

	// digestSize is the truncated digest length in bytes (40 hex chars
	// would be overkill for an emailed code; 10 bytes keeps it compact
	// while leaving 80 bits against forgery).
	digestSize = 10
)

var (
	// ErrMalformed reports a code that does not have the expected
	// bucket-digest shape.
	ErrMalformed = errors.New("confirmcode: malformed code")
)

// Identity is the subset of user state a code is bound to. Any change to
// these fields invalidates every previously issued code for the user.
type Identity struct {
	UserID   string
	Username string
	Email    string

	// Version increments whenever username or email is rewritten, so a
	// code issued against the old identity dies even if the new values
	// were later reverted.
	Version int
}

// Config holds the injected generator state. There are deliberately no
// package-level defaults for the secret.
type Config struct {
	// Secret is the server-held key for the keyed hash. Required.
	Secret []byte

	// Window is the bucket size; zero means DefaultWindow.
	Window time.Duration

	// MaxWindows bounds how many windows may elapse between issue and
	// validation. Zero means codes never expire by age.
	MaxWindows int
}

// Generator issues and validates confirmation codes. It is stateless and
// safe for concurrent use.
type Generator struct {
	secret     []byte
	window     time.Duration
	maxWindows int
}

// New builds a Generator from cfg.
func New(cfg Config) (*Generator, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("confirmcode: secret is required")
	}
	if len(cfg.Secret) > blake2b.Size {
		return nil, fmt.Errorf("confirmcode: secret exceeds %d bytes", blake2b.Size)
	}

	window := cfg.Window
	if window <= 0 {
		window = DefaultWindow
	}

	return &Generator{
		secret:     cfg.Secret,
		window:     window,
		maxWindows: cfg.MaxWindows,
	}, nil
}

// Issue derives the code for id at time now. Pure computation, no side
// effects.
func (g *Generator) Issue(id Identity, now time.Time) string {
	bucket := g.bucket(now)
	return strconv.FormatInt(bucket, 36) + "-" + g.digest(id, bucket)
}

// Validate reports whether code is a currently valid confirmation code for
// id. The digest comparison is constant time; the bucket prefix is public
// information so it is parsed normally.
func (g *Generator) Validate(code string, id Identity, now time.Time) bool {
	bucketPart, digestPart, ok := strings.Cut(code, "-")
	if !ok {
		return false
	}

	bucket, err := strconv.ParseInt(bucketPart, 36, 64)
	if err != nil || bucket < 0 {
		return false
	}

	want := g.digest(id, bucket)
	if subtle.ConstantTimeCompare([]byte(want), []byte(digestPart)) != 1 {
		return false
	}

	if g.maxWindows > 0 {
		elapsed := g.bucket(now) - bucket
		if elapsed < 0 || elapsed > int64(g.maxWindows) {
			return false
		}
	}

	return true
}

func (g *Generator) bucket(now time.Time) int64 {
	return now.Unix() / int64(g.window/time.Second)
}

func (g *Generator) digest(id Identity, bucket int64) string {
	// Keyed BLAKE2b acts as the MAC here; the key never leaves the server.
	h, err := blake2b.New256(g.secret)
	if err != nil {
		// Key length is checked in New; reaching this is a programmer error.
		panic(err)
	}

	fmt.Fprintf(h, "%s\x00%d\x00%s\x00%s\x00%d",
		id.UserID, bucket, id.Username, id.Email, id.Version)

	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:digestSize])
}
