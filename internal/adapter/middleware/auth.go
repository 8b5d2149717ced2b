package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"land-registry-backend/internal/token"
)

const claimsKey = "authClaims"

// RequireAuth verifies the bearer token and, when roles are given, that the
// caller holds one of them.
func RequireAuth(tokens *token.Service, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}

			if len(roles) > 0 {
				allowed := false
				for _, r := range roles {
					if claims.Role == r {
						allowed = true
						break
					}
				}
				if !allowed {
					return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
				}
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// AuthClaims returns the verified claims set by RequireAuth, or nil.
func AuthClaims(c echo.Context) *token.Claims {
	v, _ := c.Get(claimsKey).(*token.Claims)
	return v
}
