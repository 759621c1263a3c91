package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"sentinel/internal/auth"
	"sentinel/internal/config"
	"sentinel/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	inspectionHandler *handler.InspectionHandler,
	userHandler *handler.UserHandler,
	analyticsHandler *handler.AnalyticsHandler,
	productHandler *handler.ProductHandler,
	paymentHandler *handler.PaymentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":  "ok",
			"message": "MongoDB API Server Running",
		})
	})

	mongoAPI := api.Group("/mongo")

	// Public introspection routes
	mongoAPI.GET("/collections", inspectionHandler.ListCollections)
	mongoAPI.GET("/inspect/:collection", inspectionHandler.Inspect)

	// Secured routes (require the shared admin API key)
	secured := mongoAPI.Group("", auth.RequireAPIKey(cfg.AdminAPIKey))
	secured.GET("/users", userHandler.ListUsers)
	secured.PATCH("/users/:userId/status", userHandler.UpdateStatus)
	secured.GET("/analytics", analyticsHandler.Analytics)
	secured.GET("/earnings", analyticsHandler.Earnings)
	secured.GET("/products", productHandler.ListProducts)
	secured.GET("/payments", paymentHandler.ListPayments)
	secured.POST("/payments", paymentHandler.RecordPayment)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
