package access

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrNotEntitled means the email is not on the roster.
	ErrNotEntitled = errors.New("email not entitled")
	// ErrLookupFailed means the roster could not be consulted at all.
	ErrLookupFailed = errors.New("roster lookup failed")
)

const tokenTTL = 72 * time.Hour

// Service checks an email against the roster and, on a match, issues a
// signed time-bounded token. The token replaces the old unexpiring local
// authorization flag: access now lapses on its own instead of persisting
// until an explicit logout.
type Service struct {
	roster Roster
	secret []byte
}

func NewService(roster Roster, secret []byte) *Service {
	return &Service{roster: roster, secret: secret}
}

// NormalizeEmail trims and lowercases, the same canonical form the roster
// stores.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Verify returns a signed admin token for the email, or ErrNotEntitled /
// ErrLookupFailed. There is no retry: a failed lookup surfaces immediately.
func (s *Service) Verify(ctx context.Context, email string) (string, error) {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return "", ErrNotEntitled
	}

	ok, err := s.roster.HasEmail(ctx, normalized)
	if err != nil {
		return "", ErrLookupFailed
	}
	if !ok {
		return "", ErrNotEntitled
	}

	claims := jwt.MapClaims{
		"email": normalized,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
