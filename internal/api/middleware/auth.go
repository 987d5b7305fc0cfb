package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/compayre/account-service/internal/core/ports"
)

// CallerKey is the context key under which the resolved caller account is
// stored by Auth.
const CallerKey = "caller"

// Auth validates the JWT, then loads the caller's account and injects it
// into the request context. Authorization never trusts the role embedded in
// the token: the effective role is recomputed from the loaded account on
// every check, so a token issued before a tier change cannot grant stale
// access.
func Auth(jwtSecret string, accounts ports.AccountLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}

			caller, err := accounts.Load(c.Request().Context(), sub)
			if err != nil {
				// A valid token for a deleted account is no identity at all.
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown account")
			}

			c.Set(CallerKey, caller)
			return next(c)
		}
	}
}
