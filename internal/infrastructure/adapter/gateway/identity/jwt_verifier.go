// Package identity verifies bearer tokens minted by the external identity
// provider.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/gateway"
	"github.com/golang-jwt/jwt/v5"
)

const clockSkew = 30 * time.Second

// Claims is the session token payload. A role claim may be present but is
// not trusted; roles come from the local account.
type Claims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier implements gateway.IdentityVerifier for HS256 tokens
type JWTVerifier struct {
	secret       []byte
	issuer       string
	timeProvider core.TimeProvider
}

// NewJWTVerifier creates a verifier. An empty issuer skips the issuer check.
func NewJWTVerifier(secret, issuer string, timeProvider core.TimeProvider) *JWTVerifier {
	return &JWTVerifier{
		secret:       []byte(secret),
		issuer:       issuer,
		timeProvider: timeProvider,
	}
}

var _ gateway.IdentityVerifier = (*JWTVerifier)(nil)

func (v *JWTVerifier) Verify(_ context.Context, token string) (*entity.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", errs.ErrUnauthorized)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.timeProvider.Now),
		jwt.WithLeeway(clockSkew),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnauthorized, reason(err))
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", errs.ErrUnauthorized)
	}
	email := entity.NormalizeEmail(claims.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: token has no email", errs.ErrUnauthorized)
	}

	return &entity.Identity{
		Subject:  claims.Subject,
		Email:    email,
		Username: strings.TrimSpace(claims.Username),
	}, nil
}

// Sign mints a token for claims. Used by tests and local tooling.
func (v *JWTVerifier) Sign(claims Claims) (string, error) {
	if claims.Issuer == "" {
		claims.Issuer = v.issuer
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

func reason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "bad signature"
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return "wrong issuer"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed token"
	default:
		return "invalid token"
	}
}
