// Package auth verifies bearer credentials and carries the caller's user id
// through the request context.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const minSecretLength = 16

var (
	ErrShortSecret  = fmt.Errorf("jwt secret must be at least %d bytes", minSecretLength)
	ErrEmptyIssuer  = errors.New("jwt issuer is empty")
	ErrInvalidTTL   = errors.New("jwt ttl must be positive")
	ErrEmptySubject = errors.New("empty user id")
	ErrInvalidToken = errors.New("invalid token")
)

// TokenService signs and verifies HS256 access tokens. The user id travels in
// the standard "sub" claim and is treated as an opaque string.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	const op = "auth.NewTokenService"

	switch {
	case len(secret) < minSecretLength:
		return nil, fmt.Errorf("%s: %w", op, ErrShortSecret)
	case issuer == "":
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyIssuer)
	case ttl <= 0:
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidTTL)
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (s *TokenService) Sign(userID string) (string, error) {
	const op = "auth.TokenService.Sign"

	if userID == "" {
		return "", fmt.Errorf("%s: %w", op, ErrEmptySubject)
	}

	now := s.now()

	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%s: failed to sign token: %w", op, err)
	}

	return token, nil
}

// Verify returns the user id of a valid token. Tokens signed with another
// algorithm, issued by someone else, expired or lacking exp are rejected.
func (s *TokenService) Verify(token string) (string, error) {
	const op = "auth.TokenService.Verify"

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	var claims jwt.RegisteredClaims

	_, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%s: %w: %w", op, ErrInvalidToken, ErrEmptySubject)
	}

	return claims.Subject, nil
}
