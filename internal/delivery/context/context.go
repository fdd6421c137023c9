// Package context carries per-request values between the echo middleware,
// the handlers and the use cases: request id, scoped logger and the
// authenticated user.
package context

import (
	"context"
	"log/slog"

	"vacuum/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header echoed back with every response.
const HeaderXRequestID = "X-Request-Id"

type key int

const (
	requestIDKey key = iota
	loggerKey
)

// echo.Context store names.
const (
	echoRequestID   = "request_id"
	echoCurrentUser = "current_user"
)

// GetRequestID returns the id of the request. Requests that skipped the
// request id middleware get one assigned on first use so every envelope
// of the same request agrees.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestID).(string); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	SetRequestID(c, id)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestID, requestID)
}

// GetRequestIDFromContext returns "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault is GetLogger with a fallback for background work and
// tests.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// SetCurrentUser stores the authenticated user, role included.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(echoCurrentUser, user)
}

// GetCurrentUser returns the user stored by the auth middleware.
func GetCurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(echoCurrentUser).(*entity.User)

	return user, ok && user != nil
}
