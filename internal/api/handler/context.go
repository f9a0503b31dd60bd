package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskdeck/task-api/internal/api/middleware"
	"github.com/taskdeck/task-api/internal/core/domain"
)

// currentUser extracts the authenticated user injected by the Auth
// middleware. Its presence proves the middleware ran; a protected route
// reached without it is a wiring error and is rejected with 401, never
// served anonymously.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
