package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "vacuum/internal/delivery/context"
	"vacuum/internal/domain/entity"
	domainerrors "vacuum/internal/domain/errors"
	"vacuum/internal/domain/service"
	"vacuum/internal/errors"
	"vacuum/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionCookieName is the cookie checked when no bearer token is sent.
const SessionCookieName = "access_token"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Verifier service.SessionVerifier
	UserUC   usecase.UserUsecase
	Logger   *slog.Logger
}

// AuthMiddleware authenticates requests against the identity provider and
// gates routes by role.
type AuthMiddleware struct {
	verifier service.SessionVerifier
	userUC   usecase.UserUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: params.Verifier,
		userUC:   params.UserUC,
		logger:   params.Logger,
	}
}

// Authenticate verifies the session token and stores the matching active
// user in the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := sessionToken(c)
		if token == "" {
			return domainerrors.ErrUnauthorized
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.VerifySession(ctx, token)
		if errors.Is(err, service.ErrInvalidSession) {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Session rejected", slog.Any("error", err))

			return domainerrors.ErrInvalidSession
		}
		if err != nil {
			return errors.Wrap(err, "failed to verify session")
		}

		user, err := m.userUC.ResolveIdentity(ctx, identity)
		if err != nil {
			return err
		}

		deliverycontext.SetCurrentUser(c, user)
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", user.ID.String()))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}

// RequireRole is a middleware factory that admits users holding one of
// roles. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.RoleName) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := deliverycontext.GetCurrentUser(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if !user.HasRole(roles...) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

func sessionToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			return ""
		}

		return strings.TrimSpace(token)
	}

	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}

	return ""
}
