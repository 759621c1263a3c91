package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sentinel/internal/errors"
	"sentinel/internal/model"
	"sentinel/internal/service"
)

// UserHandler handles user administration endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UserStats summarizes the user listing.
type UserStats struct {
	Total int64 `json:"total"`
}

// UserListResponse is the user listing response.
type UserListResponse struct {
	Users []model.User `json:"users"`
	Stats UserStats    `json:"stats"`
}

// UpdateStatusRequest carries the optional status mutation fields.
type UpdateStatusRequest struct {
	Status  *string `json:"status"`
	Blocked *bool   `json:"blocked"`
}

// UpdateStatusResponse reports the mutation outcome.
type UpdateStatusResponse struct {
	Success  bool  `json:"success"`
	Modified int64 `json:"modified"`
}

// ListUsers godoc
// @Summary List all users
// @Description Credential fields (password, access_token, otp) are excluded
// @Description at the query level. Unpaginated; acceptable only for small
// @Description admin datasets.
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} UserListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /mongo/users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, total, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, UserListResponse{
		Users: users,
		Stats: UserStats{Total: total},
	})
}

// UpdateStatus godoc
// @Summary Update a user's status or blocked flag
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID (hex ObjectID)"
// @Param request body UpdateStatusRequest true "Fields to update"
// @Success 200 {object} UpdateStatusResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /mongo/users/{userId}/status [patch]
func (h *UserHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body"})
	}

	modified, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("userId"), service.StatusUpdate{
		Status:  req.Status,
		Blocked: req.Blocked,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, UpdateStatusResponse{Success: true, Modified: modified})
}
