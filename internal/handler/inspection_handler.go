package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sentinel/internal/errors"
	"sentinel/internal/service"
)

// InspectionHandler handles introspection endpoints.
type InspectionHandler struct {
	svc service.InspectionService
}

// NewInspectionHandler creates a new introspection handler.
func NewInspectionHandler(svc service.InspectionService) *InspectionHandler {
	return &InspectionHandler{svc: svc}
}

// ListCollections godoc
// @Summary List collection names
// @Tags introspection
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /mongo/collections [get]
func (h *InspectionHandler) ListCollections(c echo.Context) error {
	names, err := h.svc.Collections(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"collections": names})
}

// Inspect godoc
// @Summary Inspect a collection
// @Description Returns the document count, up to 5 sample documents, and a
// @Description best-effort schema inferred from a single sample document.
// @Description The schema is a sampling heuristic, not a verified contract.
// @Tags introspection
// @Produce json
// @Param collection path string true "Collection name"
// @Success 200 {object} model.CollectionReport
// @Failure 500 {object} errors.ErrorResponse
// @Router /mongo/inspect/{collection} [get]
func (h *InspectionHandler) Inspect(c echo.Context) error {
	report, err := h.svc.Inspect(c.Request().Context(), c.Param("collection"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, report)
}
