package users

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strings"
	"time"

	"github.com/jrsteele09/go-profile-server/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt work factor used when none is configured.
	DefaultCost = 10

	gravatarBaseURL = "https://www.gravatar.com/avatar/"
	avatarSize      = "200"
	avatarRating    = "pg"
	avatarDefault   = "mm"
)

type User struct {
	ID           string    `json:"id"`               // Unique identifier, assigned by the store
	Name         string    `json:"name"`             // Display name
	Email        string    `json:"email"`            // Unique, compared exactly as stored
	Avatar       string    `json:"avatar,omitempty"` // Derived from the email at registration
	PasswordHash string    `json:"-"`                // Hashed version of the user's password - never serialize
	CreatedAt    time.Time `json:"date"`             // Date and time when the user registered
}

// Summary is the public part of a user that is embedded in profile responses.
type Summary struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

func (u *User) Summary() *Summary {
	if u == nil {
		return nil
	}
	return &Summary{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

// Hasher hashes and verifies passwords.
type Hasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. Malformed hashes never match.
	Verify(password, hash string) bool
}

// BcryptHasher implements Hasher with bcrypt. Each Hash call uses a fresh random salt.
type BcryptHasher struct {
	cost int
}

var _ Hasher = (*BcryptHasher)(nil)

// NewBcryptHasher returns a hasher with the given cost, falling back to DefaultCost
// when cost is outside bcrypt's accepted range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrapf(err, "[users Hash]")
	}
	return string(bytes), nil
}

func (h *BcryptHasher) Verify(password, hash string) bool {
	return CheckPasswordHash(password, hash)
}

// CheckPasswordHash compares in constant time and returns false for malformed hashes.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// AvatarURL derives the Gravatar image URL for an email address.
// The URL is a pure function of the email; no request is made.
func AvatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	q := url.Values{}
	q.Set("s", avatarSize)
	q.Set("r", avatarRating)
	q.Set("d", avatarDefault)
	return gravatarBaseURL + hex.EncodeToString(sum[:]) + "?" + q.Encode()
}
