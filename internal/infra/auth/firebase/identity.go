// Package firebase bridges Firebase Authentication to the session and
// account services.
package firebase

import (
	"context"
	"strings"

	"vacuum/config"
	"vacuum/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	identitytoolkit "google.golang.org/api/identitytoolkit/v1"
	"google.golang.org/api/option"
)

const requestTypePasswordReset = "PASSWORD_RESET"

// authClient is the part of *auth.Client the adapter calls.
type authClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
}

// oobSender asks Identity Toolkit to mail an out-of-band action link. The
// Admin SDK only generates links, it never sends them.
type oobSender interface {
	SendOobCode(ctx context.Context, req *identitytoolkit.GoogleCloudIdentitytoolkitV1GetOobCodeRequest) error
}

type toolkitAccounts struct {
	accounts *identitytoolkit.AccountsService
}

func (t *toolkitAccounts) SendOobCode(ctx context.Context, req *identitytoolkit.GoogleCloudIdentitytoolkitV1GetOobCodeRequest) error {
	_, err := t.accounts.SendOobCode(req).Context(ctx).Do()

	return err
}

// Identity implements both service.SessionVerifier and service.IdentityProvider.
type Identity struct {
	client    authClient
	oob       oobSender
	projectID string
}

// NewIdentity initializes the Firebase app from a service account file.
func NewIdentity(ctx context.Context, cfg *config.FirebaseConfig) (*Identity, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	toolkit, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit client")
	}

	return &Identity{
		client:    client,
		oob:       &toolkitAccounts{accounts: toolkit.Accounts},
		projectID: cfg.ProjectID,
	}, nil
}

// VerifySession verifies a Firebase ID token.
func (i *Identity) VerifySession(ctx context.Context, token string) (*service.SessionIdentity, error) {
	verified, err := i.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidSession, err.Error())
	}

	email, _ := verified.Claims["email"].(string)
	email = strings.ToLower(strings.TrimSpace(email))
	if verified.UID == "" || email == "" {
		return nil, errors.Wrap(service.ErrInvalidSession, "token lacks subject or email")
	}

	return &service.SessionIdentity{Subject: verified.UID, Email: email}, nil
}

// CreateAccount opens an email/password account and returns its uid.
func (i *Identity) CreateAccount(ctx context.Context, account service.NewAccount) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(account.Email).
		Password(account.Password)
	if account.DisplayName != "" {
		params = params.DisplayName(account.DisplayName)
	}

	record, err := i.client.CreateUser(ctx, params)
	if err != nil {
		return "", errors.Wrap(err, "failed to create Firebase account")
	}

	return record.UID, nil
}

// DeleteAccount removes the account. An unknown uid counts as deleted.
func (i *Identity) DeleteAccount(ctx context.Context, subject string) error {
	if err := i.client.DeleteUser(ctx, subject); err != nil && !auth.IsUserNotFound(err) {
		return errors.Wrap(err, "failed to delete Firebase account")
	}

	return nil
}

// SendPasswordReset has Firebase mail its password reset email to the account.
func (i *Identity) SendPasswordReset(ctx context.Context, email, continueURL string) error {
	err := i.oob.SendOobCode(ctx, &identitytoolkit.GoogleCloudIdentitytoolkitV1GetOobCodeRequest{
		RequestType:     requestTypePasswordReset,
		Email:           email,
		ContinueUrl:     continueURL,
		TargetProjectId: i.projectID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send Firebase password reset")
	}

	return nil
}
