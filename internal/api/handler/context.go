package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/barangaylink/records-system/internal/api/middleware"
)

// actor returns the username attached by the Auth middleware, for audit
// attribution. Empty on unauthenticated routes.
func actor(c echo.Context) string {
	username, _ := c.Get(middleware.CtxUsername).(string)
	return username
}
