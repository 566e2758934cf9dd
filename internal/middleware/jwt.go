package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/royalvilla/villa-catalog-api/internal/response"
)

// JWTAuth returns an Echo middleware that validates a Bearer token and
// injects the subject, email and role claims into the request context.
// The provided secret must match the one used when issuing tokens at
// login. Expiry is enforced by the jwt library through the exp claim, so
// a token older than its 7-day lifetime is rejected here without any
// stored state. Rejections use the same envelope as every other
// response.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				r := response.Error(http.StatusUnauthorized, "Authentication required: ", "missing bearer token")
				return c.JSON(r.StatusCode, r)
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// The callback supplies the signing key and pins the
			// algorithm to HMAC; tokens signed any other way are
			// rejected before the signature is checked.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				r := response.Error(http.StatusUnauthorized, "Authentication required: ", "invalid or expired token")
				return c.JSON(r.StatusCode, r)
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				r := response.Error(http.StatusUnauthorized, "Authentication required: ", "invalid claims")
				return c.JSON(r.StatusCode, r)
			}

			// Handlers and downstream middleware read these via c.Get.
			c.Set("user_id", claims["sub"])
			c.Set("email", claims["email"])
			c.Set("role", claims["role"])
			return next(c)
		}
	}
}
