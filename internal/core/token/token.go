// Package token issues and verifies the signed bearer tokens that carry a
// user's identity between requests. Verify is the single choke point for
// trusting a claimed identity: a token is either valid (signature correct,
// not expired, subject present) or invalid — there is no third state.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for every failure mode: bad
// signature, wrong signing method, malformed input, expired, or missing
// subject. Callers must not be able to tell these apart.
var ErrInvalidToken = errors.New("invalid token")

// Service signs and verifies HS256 JWTs. The secret and TTL are loaded
// once at startup and never change for the process lifetime.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token binding subject to an expiry of now + TTL.
func (s *Service) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates the signature and expiry of raw and returns the subject.
// Any failure yields ErrInvalidToken.
func (s *Service) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !t.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
