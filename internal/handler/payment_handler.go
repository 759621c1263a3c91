package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"sentinel/internal/errors"
	"sentinel/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	svc service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// RecordPaymentRequest represents a payment insertion request. Amount is a
// json.Number so callers may send it as a string or a number.
type RecordPaymentRequest struct {
	UserID      string      `json:"userId" validate:"required"`
	Amount      json.Number `json:"amount" validate:"required"`
	Method      string      `json:"method" validate:"required"`
	ProductID   string      `json:"productId"`
	Description string      `json:"description"`
}

// RecordPaymentResponse reports the inserted payment's identity.
type RecordPaymentResponse struct {
	Success   bool   `json:"success"`
	PaymentID string `json:"paymentId"`
}

// RecordPayment godoc
// @Summary Record a completed payment
// @Tags payments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body RecordPaymentRequest true "Payment data"
// @Success 200 {object} RecordPaymentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /mongo/payments [post]
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: err.Error()})
	}

	paymentID, err := h.svc.RecordPayment(c.Request().Context(), service.RecordPaymentInput{
		UserID:      req.UserID,
		Amount:      req.Amount.String(),
		Method:      req.Method,
		ProductID:   req.ProductID,
		Description: req.Description,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, RecordPaymentResponse{Success: true, PaymentID: paymentID})
}

// ListPayments godoc
// @Summary List all payments with payer identity
// @Description Each payment carries a user field holding the payer's
// @Description name/email/phone, or null when the payer no longer exists.
// @Tags payments
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string][]model.EnrichedPayment
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /mongo/payments [get]
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	payments, err := h.svc.ListPayments(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"payments": payments})
}
