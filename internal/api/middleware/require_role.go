package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tendermarket/tendering-api/internal/api/metrics"
)

// RequireRole gates an endpoint subtree to a single role. A role mismatch is
// a 401-class rejection: role-gated endpoints sit outside the ownership
// model, so the response intentionally reveals nothing beyond "unauthorized".
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actual, _ := c.Get("role").(string)
			if actual != role {
				metrics.AuthFailuresTotal.WithLabelValues("wrong_role").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			return next(c)
		}
	}
}
