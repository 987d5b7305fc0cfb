package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/compayre/account-service/internal/api/metrics"
	"github.com/compayre/account-service/internal/core/authz"
	"github.com/compayre/account-service/internal/core/domain"
)

// Predicate is a pure authorization check over the caller's account.
type Predicate func(caller *domain.User) authz.Decision

// Require wraps a permission predicate as route middleware. The name labels
// denial metrics. An absent caller yields 401; a rejected predicate yields
// 403 carrying the predicate's reason string.
func Require(name string, pred Predicate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, _ := c.Get(CallerKey).(*domain.User)
			if caller == nil {
				metrics.AuthzDenialsTotal.WithLabelValues(name).Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}

			if d := pred(caller); !d.Allowed {
				metrics.AuthzDenialsTotal.WithLabelValues(name).Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": d.Reason})
			}
			return next(c)
		}
	}
}
