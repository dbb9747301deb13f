package http

import (
	"context"
	"log/slog"
	"net/http"

	"shippix/internal/adapters/in/http/apidocs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the Echo instance serving s: middleware, renderer, the HTML
// routes and the OpenAPI-validated JSON API.
func NewRouter(ctx context.Context, s *Server) (*echo.Echo, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	doc, err := apidocs.Load(ctx)
	if err != nil {
		return nil, err
	}
	openapiValidator, err := apidocs.RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	apidocs.Register()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			s.logger.LogAttrs(c.Request().Context(), level, "Request handled", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	// Public pages
	e.GET("/", s.Landing)
	e.POST("/track", s.Track)
	e.GET("/help", s.Help)
	e.GET("/shipment/:id", s.Shipment)
	e.GET("/shipment/:id/reschedule", s.RescheduleForm)
	e.POST("/shipment/:id/reschedule", s.Reschedule)

	// Accounts
	e.GET("/signup", s.AccountForm)
	e.POST("/signup", s.SubmitAccountForm)
	e.GET("/login", s.AccountForm)
	e.POST("/login", s.SubmitAccountForm)
	e.GET("/admin-login", s.AccountForm)
	e.POST("/admin-login", s.SubmitAccountForm)

	// Order workflow
	e.GET("/dashboard", s.Dashboard)
	e.GET("/create-order", s.CreateOrderForm)
	e.POST("/create-order", s.CreateOrder)
	e.GET("/review-order", s.ReviewOrder)
	e.POST("/review-order/approve", s.ApproveOrder)
	e.POST("/review-order/edit", s.EditOrder)
	e.POST("/review-order/draft", s.SaveDraft)
	e.GET("/payment", s.PaymentForm)
	e.POST("/payment", s.Pay)
	e.GET("/order-status", s.OrderStatus)

	// Admin console
	admin := e.Group("/admin")
	admin.GET("/dashboard", s.AdminOverview)
	admin.GET("/orders", s.AdminOrders)
	admin.POST("/orders/:id/:decision", s.DecideOrder)
	admin.GET("/business-owners", s.AdminBusinessOwners)
	admin.GET("/analytics", s.AdminAnalytics)

	// JSON API
	e.GET("/api/openapi.json", func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, apidocs.Document())
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", openapiValidator)
	api.POST("/forms/:form/validate", s.ValidateForm)
	api.POST("/shipping/estimate", s.EstimateShipping)
	api.GET("/shipments/:id", s.GetShipment)
	api.GET("/chrome", s.GetChrome)

	return e, nil
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
