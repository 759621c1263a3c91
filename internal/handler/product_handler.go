package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sentinel/internal/errors"
	"sentinel/internal/service"
)

// ProductHandler handles the task/product listing endpoint.
type ProductHandler struct {
	svc service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// ListProducts godoc
// @Summary List all tasks with creator identity
// @Description Each task carries a creator field holding the creator's
// @Description name/email/phone, or null when the creator no longer exists.
// @Description Unpaginated; acceptable only for small admin datasets.
// @Tags products
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string][]model.EnrichedTask
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /mongo/products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.svc.ListProducts(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"products": products})
}
