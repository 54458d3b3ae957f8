package token_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-profile-server/internal/errors"
	"github.com/jrsteele09/go-profile-server/token"
	"github.com/stretchr/testify/require"
)

const (
	secretStr  = "1234"
	testUserID = "user-1"
)

var issuedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newManager(t *testing.T, secret string, c *clock) *token.Manager {
	t.Helper()
	signer, err := token.NewHMACSigner(secret)
	require.NoError(t, err)
	return token.NewManager(signer, token.DefaultTTL, token.WithClock(c.Now))
}

func TestManager_IssueVerify(t *testing.T) {
	c := &clock{now: issuedAt}
	m := newManager(t, secretStr, c)

	tok, err := m.Issue(testUserID)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(tok, "."))

	got, err := m.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, testUserID, got)

	t.Run("still valid just before expiry", func(t *testing.T) {
		c.now = issuedAt.Add(token.DefaultTTL - time.Second)
		got, err := m.Verify(tok)
		require.NoError(t, err)
		require.Equal(t, testUserID, got)
	})

	t.Run("expired after ttl", func(t *testing.T) {
		c.now = issuedAt.Add(token.DefaultTTL + time.Second)
		_, err := m.Verify(tok)
		require.ErrorIs(t, err, errors.ErrTokenExpired)
		require.ErrorIs(t, err, errors.ErrUnauthenticated)
	})
}

func TestManager_Claims(t *testing.T) {
	m := newManager(t, secretStr, &clock{now: issuedAt})
	tok, err := m.Issue(testUserID)
	require.NoError(t, err)

	claims := decodePayload(t, tok)
	require.Equal(t, map[string]any{"id": testUserID}, claims["user"])
	require.EqualValues(t, issuedAt.Unix(), claims["iat"])
	require.EqualValues(t, issuedAt.Add(10*time.Hour).Unix(), claims["exp"])
}

func TestManager_Rejections(t *testing.T) {
	c := &clock{now: issuedAt}
	m := newManager(t, secretStr, c)
	tok, err := m.Issue(testUserID)
	require.NoError(t, err)

	t.Run("malformed", func(t *testing.T) {
		for _, bad := range []string{"", "abc", "a.b", "a.b.c", "!!!.???.***"} {
			_, err := m.Verify(bad)
			require.ErrorIs(t, err, errors.ErrTokenMalformed, bad)
		}
	})

	t.Run("tampered signature byte", func(t *testing.T) {
		sigStart := strings.LastIndex(tok, ".") + 1
		for _, i := range []int{sigStart, sigStart + 5, sigStart + 20} {
			_, err := m.Verify(flipChar(tok, i))
			require.ErrorIs(t, err, errors.ErrTokenSignature)
		}
	})

	t.Run("tampered header or payload byte", func(t *testing.T) {
		sigDot := strings.LastIndex(tok, ".")
		for i := 0; i < sigDot; i++ {
			if tok[i] == '.' {
				continue
			}
			_, err := m.Verify(flipChar(tok, i))
			require.ErrorIs(t, err, errors.ErrTokenSignature, "index %d", i)
		}
	})

	t.Run("tampered payload re-encoded", func(t *testing.T) {
		parts := strings.Split(tok, ".")
		claims := decodePayload(t, tok)
		claims["user"] = map[string]any{"id": "someone-else"}
		raw, err := json.Marshal(claims)
		require.NoError(t, err)
		forged := parts[0] + "." + base64.RawURLEncoding.EncodeToString(raw) + "." + parts[2]

		_, err = m.Verify(forged)
		require.ErrorIs(t, err, errors.ErrTokenSignature)
	})

	t.Run("different secret", func(t *testing.T) {
		other := newManager(t, "another-secret", c)
		_, err := other.Verify(tok)
		require.ErrorIs(t, err, errors.ErrTokenSignature)
	})

	t.Run("unsigned token", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, token.Claims{
			User:             token.ClaimsUser{ID: testUserID},
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour))},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Verify(unsigned)
		require.ErrorIs(t, err, errors.ErrTokenSignature)
	})

	t.Run("missing user id", func(t *testing.T) {
		tok, err := m.Issue("")
		require.NoError(t, err)
		_, err = m.Verify(tok)
		require.ErrorIs(t, err, errors.ErrTokenMalformed)
	})
}

func TestNewHMACSigner_EmptySecret(t *testing.T) {
	_, err := token.NewHMACSigner("")
	require.Error(t, err)
}

func TestNewManager_DefaultTTL(t *testing.T) {
	signer, err := token.NewHMACSigner(secretStr)
	require.NoError(t, err)
	require.Equal(t, token.DefaultTTL, token.NewManager(signer, 0).TTL())
}

func decodePayload(t *testing.T, tok string) map[string]any {
	t.Helper()
	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	claims := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &claims))
	return claims
}

func flipChar(s string, i int) string {
	b := []byte(s)
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return string(b)
}
