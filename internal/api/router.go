package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/mediguard/security-dashboard/internal/api/handler"
	"github.com/mediguard/security-dashboard/internal/api/middleware"
	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/ports"
)

// Deps are the services the router wires into handlers.
type Deps struct {
	Session    ports.SessionService
	Tokens     handler.TokenIssuer
	Telemetry  ports.TelemetryService
	Settings   ports.SettingsService
	Operations ports.OperationsService
	Feed       handler.Feed
	Pingers    []handler.Pinger

	JWTSecret string
	Log       zerolog.Logger

	// Registerer and Gatherer back the HTTP metrics and /metrics. Nil means
	// the prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "mediguard",
		Registerer: d.Registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Session, d.Tokens)
	pageHandler := handler.NewPageHandler(d.Session, d.Telemetry, d.Settings)
	telemetryHandler := handler.NewTelemetryHandler(d.Session, d.Telemetry)
	settingsHandler := handler.NewSettingsHandler(d.Settings)
	opsHandler := handler.NewOperationsHandler(d.Operations)
	notificationHandler := handler.NewNotificationHandler(d.Feed)

	// --- Pages (route guard) ---
	guard := middleware.RouteGuard(d.Session)
	e.GET(string(domain.RouteRoot), pageHandler.Root, guard)
	e.GET(string(domain.RouteLogin), pageHandler.Login, guard)
	e.GET(string(domain.RouteRegister), pageHandler.Register, guard)
	e.GET(string(domain.RouteNotFound), pageHandler.NotFound, guard)
	for _, dest := range domain.ProtectedDestinations() {
		e.GET(string(dest), pageHandler.Protected, guard)
	}
	e.RouteNotFound("/*", pageHandler.NotFound, guard)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	e.GET("/notifications", notificationHandler.List)

	// --- Programmatic API (bearer token bound to the session) ---
	v1 := e.Group("/api/v1", middleware.Auth(d.JWTSecret), middleware.SessionBound(d.Session))
	v1.GET("/dashboard", telemetryHandler.Dashboard)
	v1.GET("/risk-analysis", telemetryHandler.RiskAnalysis)
	v1.GET("/usb-monitoring", telemetryHandler.UsbMonitoring)
	v1.GET("/user-behavior", telemetryHandler.UserBehavior)
	v1.GET("/system-security", telemetryHandler.SystemSecurity)

	v1.GET("/settings", settingsHandler.Get)
	v1.PUT("/settings", settingsHandler.Update, middleware.RBAC(domain.RoleAdmin))

	v1.POST("/usb/devices/:id/block", opsHandler.BlockDevice)
	v1.POST("/usb/devices/:id/authorize", opsHandler.AuthorizeDevice)
	v1.POST("/usb/refresh", opsHandler.RefreshUsb)
	v1.POST("/behaviors/:id/investigate", opsHandler.Investigate)
	v1.POST("/updates/:id/install", opsHandler.InstallUpdate)
	v1.POST("/vulnerabilities/:id/mitigate", opsHandler.Mitigate)
	v1.POST("/system/scan", opsHandler.StartScan)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Pingers...)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
