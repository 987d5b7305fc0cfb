package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/compayre/account-service/internal/api/metrics"
	"github.com/compayre/account-service/internal/api/middleware"
	"github.com/compayre/account-service/internal/core/authz"
	"github.com/compayre/account-service/internal/core/domain"
)

// DataHandler answers entitlement questions for the gated data categories.
type DataHandler struct{}

func NewDataHandler() *DataHandler {
	return &DataHandler{}
}

// CheckAccess reports whether the caller may read the given data category.
// The data product itself lives elsewhere; this endpoint is the
// authorization boundary its gateways consult.
//
// @Summary      Check data category access
// @Tags         data
// @Produce      json
// @Param        category  path      string  true  "Data category"
// @Success      200       {object}  accessResponse
// @Failure      400       {object}  errorResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Router       /data/{category}/access [get]
func (h *DataHandler) CheckAccess(c echo.Context) error {
	category, err := domain.ParseDataCategory(c.Param("category"))
	if err != nil {
		return err
	}

	// The caller may legitimately be nil here; RequireDataAccess rejects
	// unauthenticated callers before it ever consults the matrix.
	caller, _ := c.Get(middleware.CallerKey).(*domain.User)

	d := authz.RequireDataAccess(caller, category)
	if !d.Allowed {
		metrics.DataAccessChecksTotal.WithLabelValues(string(category), "denied").Inc()
		if caller == nil {
			return domain.ErrUnauthenticated
		}
		return domain.Forbid(d.Reason)
	}

	metrics.DataAccessChecksTotal.WithLabelValues(string(category), "allowed").Inc()
	return c.JSON(http.StatusOK, accessResponse{Category: string(category), Allowed: true})
}
