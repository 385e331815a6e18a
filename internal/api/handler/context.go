package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bankstack/bankstack/internal/api/middleware"
)

// ctxEmail extracts the subject email injected by the session gate and
// fast-fails before any service call. An empty email means the gate did not
// run for this route, which is a wiring bug surfaced as 401 rather than a
// handler acting on a blank identity.
func ctxEmail(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.EmailContextKey).(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated identity")
	}
	return email, nil
}
