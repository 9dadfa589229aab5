package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T, ttl time.Duration) *Codec {
	t.Helper()
	c, err := NewCodec([]byte("test-signing-secret"), "critiq", ttl)
	require.NoError(t, err)
	return c
}

func TestNewCodecRequiresSecret(t *testing.T) {
	_, err := NewCodec(nil, "critiq", 0)
	require.Error(t, err)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	c := newTestCodec(t, time.Hour)
	now := time.Now()

	raw, err := c.Sign("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "alice", "user", now)
	require.NoError(t, err)

	claims, err := c.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", claims.Subject)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "user", claims.Role)
	require.Equal(t, "critiq", claims.Issuer)
	require.NotEmpty(t, claims.ID)
	require.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestVerifyRejectsExpired(t *testing.T) {
	c := newTestCodec(t, time.Minute)

	raw, err := c.Sign("sub", "alice", "user", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = c.Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	a := newTestCodec(t, time.Hour)
	b, err := NewCodec([]byte("a-different-secret"), "critiq", time.Hour)
	require.NoError(t, err)

	raw, err := a.Sign("sub", "alice", "user", time.Now())
	require.NoError(t, err)

	_, err = b.Verify(raw)
	require.Error(t, err)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	a, err := NewCodec([]byte("shared"), "issuer-a", time.Hour)
	require.NoError(t, err)
	b, err := NewCodec([]byte("shared"), "issuer-b", time.Hour)
	require.NoError(t, err)

	raw, err := a.Sign("sub", "alice", "user", time.Now())
	require.NoError(t, err)

	_, err = b.Verify(raw)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	c := newTestCodec(t, time.Hour)

	for _, raw := range []string{"", "abc", "a.b.c"} {
		_, err := c.Verify(raw)
		require.Error(t, err, "token %q", raw)
	}
}
