package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrInvalidSession is returned for tokens that fail verification.
var ErrInvalidSession = errors.New("invalid session token")

// SessionIdentity is what a verified session token proves about the caller.
type SessionIdentity struct {
	Subject string // Identity provider user id (the token's "sub").
	Email   string
}

// SessionVerifier checks session tokens issued by the identity provider.
type SessionVerifier interface {
	// VerifySession returns ErrInvalidSession for tokens that are malformed,
	// expired or signed by someone else.
	VerifySession(ctx context.Context, token string) (*SessionIdentity, error)
}

// NewAccount is the data needed to open an account at the identity provider.
type NewAccount struct {
	Email       string
	Password    string
	DisplayName string
}

// IdentityProvider administers accounts at the external identity provider.
type IdentityProvider interface {
	// CreateAccount returns the subject of the new account.
	CreateAccount(ctx context.Context, account NewAccount) (string, error)
	DeleteAccount(ctx context.Context, subject string) error
	// SendPasswordReset mails a reset link to the account holder. The link
	// returns to continueURL when it is set.
	SendPasswordReset(ctx context.Context, email, continueURL string) error
}
