package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxPrincipal extracts the authenticated username injected by the Auth
// middleware. Its presence proves the middleware ran; every engine
// operation receives it explicitly rather than reading ambient state.
func ctxPrincipal(c echo.Context) (string, error) {
	username, _ := c.Get("username").(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, nil
}
