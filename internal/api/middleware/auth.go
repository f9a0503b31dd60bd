package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskdeck/task-api/internal/api/metrics"
	"github.com/taskdeck/task-api/internal/core/ports"
	"github.com/taskdeck/task-api/internal/core/token"
)

// UserContextKey is the echo context key under which Auth stores the
// resolved *domain.User.
const UserContextKey = "current_user"

// Auth resolves the bearer token to a concrete user record and injects it
// into the context. Every failure mode (missing header, malformed header,
// invalid or expired token, unknown subject) surfaces as the same 401; the
// internal reason is only logged and counted.
func Auth(tokens *token.Service, users ports.UserReader, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject(c, log, "missing_header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return reject(c, log, "malformed_header")
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				return reject(c, log, "invalid_token")
			}

			user, err := users.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				// Covers users deleted after token issuance.
				return reject(c, log, "unknown_user")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

func reject(c echo.Context, log zerolog.Logger, reason string) error {
	metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
	log.Debug().
		Str("reason", reason).
		Str("path", c.Path()).
		Msg("request rejected by auth middleware")
	return echo.NewHTTPError(http.StatusUnauthorized, "invalid authentication credentials")
}
