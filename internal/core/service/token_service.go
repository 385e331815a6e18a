package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bankstack/bankstack/internal/core/domain"
)

const defaultTokenTTL = 60 * time.Minute

// TokenService issues and verifies signed, time-limited session tokens.
// Tokens are stateless: validity is purely cryptographic plus time-based,
// and Verify never touches storage.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	method jwt.SigningMethod
}

// NewTokenService builds a TokenService signing with the given HMAC
// algorithm tag (e.g. "HS256"). The secret and TTL are fixed for the
// lifetime of the process.
func NewTokenService(secret, algorithm string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token service: empty signing secret")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("token service: unsupported signing algorithm %q", algorithm)
	}

	return &TokenService{secret: []byte(secret), ttl: ttl, method: method}, nil
}

// Issue creates a signed token binding the subject to an expiry of now+TTL.
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// Verify parses and validates a token, returning the subject it asserts.
// Failures map onto the domain taxonomy: ErrTokenExpired when the signature
// is good but the expiry has passed, ErrTokenSignatureInvalid for a bad
// signature, ErrTokenMalformed for anything that does not parse.
func (s *TokenService) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}))
	if err != nil {
		return "", classifyTokenError(err)
	}
	return claims.Subject, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domain.ErrTokenMalformed
	default:
		return domain.ErrTokenMalformed
	}
}
