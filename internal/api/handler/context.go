package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/compayre/account-service/internal/api/middleware"
	"github.com/compayre/account-service/internal/core/domain"
)

// ctxCaller extracts the caller account injected by the Auth middleware.
// A missing caller means the middleware did not run or the token resolved
// to nothing; either way the request has no identity.
func ctxCaller(c echo.Context) (*domain.User, error) {
	caller, _ := c.Get(middleware.CallerKey).(*domain.User)
	if caller == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return caller, nil
}
