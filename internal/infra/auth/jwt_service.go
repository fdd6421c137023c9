// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"strings"
	"time"

	"vacuum/config"
	"vacuum/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// sessionClaims is the payload of a session token: the registered claims plus
// the verified email of the subject.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// jwtVerifier is a SessionVerifier for HS256 tokens signed with a shared secret.
type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier is the constructor for jwtVerifier. Issuer and audience are
// only enforced when configured.
func NewJWTVerifier(cfg config.JWTConfig) (service.SessionVerifier, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5 * time.Second),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &jwtVerifier{
		secret: []byte(cfg.Secret),
		parser: jwt.NewParser(opts...),
	}, nil
}

// VerifySession checks the signature and time claims and returns the subject.
func (v *jwtVerifier) VerifySession(_ context.Context, token string) (*service.SessionIdentity, error) {
	claims := &sessionClaims{}
	if _, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}); err != nil {
		return nil, errors.Wrap(service.ErrInvalidSession, err.Error())
	}

	if claims.Subject == "" || strings.TrimSpace(claims.Email) == "" {
		return nil, errors.Wrap(service.ErrInvalidSession, "token lacks subject or email")
	}

	return &service.SessionIdentity{
		Subject: claims.Subject,
		Email:   strings.ToLower(strings.TrimSpace(claims.Email)),
	}, nil
}

// SignSession issues a token the verifier accepts. It backs local tooling and
// tests; production sessions come from the identity provider.
func SignSession(cfg config.JWTConfig, subject, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{cfg.Audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}
