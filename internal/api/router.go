package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/tendermarket/tendering-api/docs"
	"github.com/tendermarket/tendering-api/internal/api/handler"
	"github.com/tendermarket/tendering-api/internal/api/middleware"
	"github.com/tendermarket/tendering-api/internal/core/domain"
)

// RouterParams carries the constructed handlers and the settings shared by
// the middleware chain.
type RouterParams struct {
	Auth      *handler.AuthHandler
	Tenders   *handler.TenderHandler
	Bids      *handler.BidHandler
	Readiness *handler.ReadinessHandler // optional; skipped when nil
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(p RouterParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(p.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("tendering"))

	// --- Public endpoints ---
	e.POST("/register", p.Auth.Register)
	e.POST("/login", p.Auth.Login)

	// --- Authenticated API ---
	authMiddleware := middleware.Auth(p.JWTSecret)

	client := e.Group("/api/client", authMiddleware, middleware.RequireRole(domain.RoleClient))
	client.POST("/tenders", p.Tenders.Create)
	client.GET("/tenders", p.Tenders.List)
	client.PUT("/tenders/:id", p.Tenders.UpdateStatus)
	client.DELETE("/tenders/:id", p.Tenders.Delete)
	client.GET("/tenders/:id/bids", p.Bids.ListForTender)
	client.POST("/tenders/:id/award/:bidId", p.Bids.Award)

	contractor := e.Group("/api/contractor", authMiddleware, middleware.RequireRole(domain.RoleContractor))
	contractor.POST("/tenders/:id/bid", p.Bids.Submit)
	contractor.GET("/bids", p.Bids.ListMine)
	contractor.DELETE("/bids/:id", p.Bids.Delete)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if p.Readiness != nil {
		e.GET("/health/ready", p.Readiness.Readiness)
	}

	return e
}
