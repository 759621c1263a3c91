package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sentinel/internal/errors"
	"sentinel/internal/service"
)

// AnalyticsHandler handles analytics and earnings endpoints.
type AnalyticsHandler struct {
	svc service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(svc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Analytics godoc
// @Summary Platform analytics
// @Description Counts and grouped statistics over users and tasks. The
// @Description report is a best-effort snapshot; sub-queries may reflect
// @Description slightly different instants.
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.AnalyticsReport
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /mongo/analytics [get]
func (h *AnalyticsHandler) Analytics(c echo.Context) error {
	report, err := h.svc.Analytics(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, report)
}

// Earnings godoc
// @Summary Estimated platform earnings
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.EarningsReport
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /mongo/earnings [get]
func (h *AnalyticsHandler) Earnings(c echo.Context) error {
	report, err := h.svc.Earnings(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, report)
}
