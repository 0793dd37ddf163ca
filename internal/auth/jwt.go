// Package auth provides bearer-token authentication middleware for the
// planning API.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dananau/gtpyhop-go/internal/config"
)

// Claims represents the claims from a validated bearer token.
type Claims struct {
	Subject   string
	Issuer    string
	ExpiresAt int64
}

// TokenValidator validates HS256 bearer tokens against a shared secret. The
// teacher this package is adapted from fetched RSA keys from an OIDC
// provider's JWKS endpoint; a planning service with no external identity
// provider has no JWKS to fetch, so validation is reduced to a shared
// secret, the simplest case the underlying jwt library supports.
type TokenValidator struct {
	secret []byte
	issuer string
}

// NewTokenValidator creates a validator from the given auth configuration.
func NewTokenValidator(cfg *config.AuthConfig) *TokenValidator {
	return &TokenValidator{secret: []byte(cfg.Secret), issuer: cfg.Issuer}
}

// ValidateToken validates a bearer token and returns its claims.
func (v *TokenValidator) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is required")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	subject, _ := mapClaims.GetSubject()
	issuer, _ := mapClaims.GetIssuer()
	var expUnix int64
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		expUnix = exp.Unix()
	}
	return &Claims{Subject: subject, Issuer: issuer, ExpiresAt: expUnix}, nil
}

// IssueToken is a convenience for tests and local tooling: it mints a
// short-lived HS256 token for the given subject, signed with the same
// secret the validator checks against.
func (v *TokenValidator) IssueToken(subject string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"iss": v.issuer,
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
