package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jrsteele09/go-profile-server/internal/errors"
)

// DefaultTTL is the lifetime of an issued session token.
const DefaultTTL = 10 * time.Hour

// ClaimsUser identifies the principal a token was issued to.
type ClaimsUser struct {
	ID string `json:"id"`
}

// Claims is the session token payload: {user: {id}, iat, exp, jti}.
type Claims struct {
	User ClaimsUser `json:"user"`
	jwt.RegisteredClaims
}

// Manager issues and verifies stateless session tokens. It holds no mutable
// state; the signer's secret is fixed for the life of the process.
//
// There is no revocation: a correctly signed token is accepted until it expires,
// regardless of what happened to the principal since it was issued.
type Manager struct {
	signer Signer
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Manager)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func NewManager(signer Signer, ttl time.Duration, opts ...Option) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Manager{
		signer: signer,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue returns a signed token for userID that expires after the manager's TTL.
func (m *Manager) Issue(userID string) (string, error) {
	now := m.now()
	claims := Claims{
		User: ClaimsUser{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        uuid.New().String(),
		},
	}
	signed, err := m.signer.Sign(claims)
	if err != nil {
		return "", errors.Wrapf(err, "[token Issue]")
	}
	return signed, nil
}

// Verify checks the signature and expiry of tokenString and returns the user id it
// carries. Rejections wrap errors.ErrTokenMalformed, errors.ErrTokenSignature or
// errors.ErrTokenExpired.
func (m *Manager) Verify(tokenString string) (string, error) {
	if err := m.verifySignature(tokenString); err != nil {
		return "", err
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, m.signer.GetVerificationKey,
		jwt.WithValidMethods([]string{m.signer.GetSigningMethod().Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", classify(err)
	}
	if claims.User.ID == "" {
		return "", errors.ErrTokenMalformed
	}
	return claims.User.ID, nil
}

// verifySignature checks the signature over the raw header.payload text before
// anything is decoded, so any edit to a well formed token is a signature mismatch.
func (m *Manager) verifySignature(tokenString string) error {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return errors.ErrTokenMalformed
	}
	sig, err := jwt.NewParser().DecodeSegment(parts[2])
	if err != nil {
		return errors.ErrTokenMalformed
	}

	method := m.signer.GetSigningMethod()
	key, err := m.signer.GetVerificationKey(&jwt.Token{Method: method})
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidToken, "%v", err)
	}
	if err := method.Verify(parts[0]+"."+parts[1], sig, key); err != nil {
		return errors.ErrTokenSignature
	}
	return nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return errors.ErrTokenSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return errors.ErrTokenMalformed
	default:
		return errors.Wrapf(errors.ErrInvalidToken, "%v", err)
	}
}
