package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// principal is the authenticated identity extracted from the verified token.
// Handlers receive it as an explicit value, never through shared state.
type principal struct {
	ID   string
	Role string
}

// principalFromContext reads the claims injected by the Auth middleware. An
// empty id or role means the middleware did not run or the token carried no
// usable identity; either way the request is unauthenticated.
func principalFromContext(c echo.Context) (principal, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return principal{}, echo.NewHTTPError(http.StatusUnauthorized, "Missing token")
	}
	return principal{ID: id, Role: role}, nil
}
