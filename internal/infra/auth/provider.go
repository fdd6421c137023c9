package auth

import (
	"context"
	"log/slog"

	"vacuum/config"
	"vacuum/internal/domain/service"
	"vacuum/internal/infra/auth/firebase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopIdentityProvider stands in when sessions are verified locally and no
// external account store exists. Users are matched by email on first login.
type noopIdentityProvider struct {
	logger *slog.Logger
}

func (p *noopIdentityProvider) CreateAccount(_ context.Context, account service.NewAccount) (string, error) {
	p.logger.Debug("[NoopIdentity] Account creation skipped", slog.String("email", account.Email))

	return "", nil
}

func (p *noopIdentityProvider) DeleteAccount(_ context.Context, subject string) error {
	p.logger.Debug("[NoopIdentity] Account deletion skipped", slog.String("subject", subject))

	return nil
}

func (p *noopIdentityProvider) SendPasswordReset(_ context.Context, email, _ string) error {
	p.logger.Debug("[NoopIdentity] Password reset skipped", slog.String("email", email))

	return nil
}

// IdentityParams holds dependencies for the identity services, injected by Fx
type IdentityParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentity picks the session verifier and account provider from configuration.
func NewIdentity(params IdentityParams) (service.SessionVerifier, service.IdentityProvider, error) {
	cfg := params.Config.Identity
	logger := params.Logger

	switch cfg.Provider {
	case config.IdentityProviderJWT:
		verifier, err := NewJWTVerifier(cfg.JWT)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using JWT session verifier", slog.String("issuer", cfg.JWT.Issuer))

		return verifier, &noopIdentityProvider{logger: logger}, nil

	case config.IdentityProviderFirebase:
		if cfg.Firebase == nil {
			return nil, nil, errors.New("firebase section is required for firebase provider")
		}
		identity, err := firebase.NewIdentity(params.Ctx, cfg.Firebase)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using Firebase identity provider", slog.String("project_id", cfg.Firebase.ProjectID))

		return identity, identity, nil

	default:
		return nil, nil, errors.Errorf("unknown identity provider: %s", cfg.Provider)
	}
}

// Module provides the identity FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdentity),
)
