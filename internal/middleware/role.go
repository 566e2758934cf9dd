package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/royalvilla/villa-catalog-api/internal/response"
)

// RequireRole returns a middleware that enforces that the authenticated
// user's role claim is one of the allowed roles. Comparison is
// case-insensitive so "customer" and "Customer" match. It assumes
// JWTAuth has already stored the role in the context. Role restriction
// is a configuration point: the router only applies this middleware when
// AUTH_REQUIRED_ROLES is set.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || !allowed[strings.ToLower(role)] {
				r := response.Error(http.StatusForbidden, "Access denied: ", "role is not permitted for this operation")
				return c.JSON(r.StatusCode, r)
			}
			return next(c)
		}
	}
}
