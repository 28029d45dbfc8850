// README: HTTP server; registers routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Castanheira1/leopardo-api/internal/auth"
	"github.com/Castanheira1/leopardo-api/internal/http/handlers"
	"github.com/Castanheira1/leopardo-api/internal/http/middleware"
	"github.com/Castanheira1/leopardo-api/internal/modules/account"
	"github.com/Castanheira1/leopardo-api/internal/modules/booking"
	"github.com/Castanheira1/leopardo-api/internal/modules/reporting"
	"github.com/Castanheira1/leopardo-api/internal/modules/vehicle"
)

type ServerDeps struct {
	Accounts      *account.Service
	Vehicles      *vehicle.Service
	Booking       *booking.Service
	Reporting     *reporting.Service
	Issuer        *auth.Issuer
	Logger        *zap.Logger
	MaxPhotoBytes int64
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(s.deps.Logger), middleware.Logging(s.deps.Logger))

	authHandler := handlers.NewAuthHandler(s.deps.Accounts, s.deps.Issuer)
	vehicleHandler := handlers.NewVehicleHandler(s.deps.Vehicles, s.deps.MaxPhotoBytes)
	bookingHandler := handlers.NewBookingHandler(s.deps.Booking)
	reportingHandler := handlers.NewReportingHandler(s.deps.Reporting)

	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "OK") })

	api := r.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("", middleware.Auth(s.deps.Issuer))
	authed.GET("/vehicles/available", vehicleHandler.ListAvailable)
	authed.POST("/trips", bookingHandler.Request)
	authed.GET("/trips/mine", reportingHandler.ListOwn)

	admin := authed.Group("", middleware.RequireAdmin())
	admin.POST("/accounts/:id/reset-password", authHandler.ResetPassword)
	admin.POST("/vehicles", vehicleHandler.Create)
	admin.PATCH("/vehicles/:id/active", vehicleHandler.SetActive)
	admin.DELETE("/vehicles/:id", vehicleHandler.Delete)
	admin.POST("/trips/:id/start", bookingHandler.Start)
	admin.POST("/trips/:id/stop", bookingHandler.Stop)
	admin.GET("/trips/pending", reportingHandler.ListPending)
	admin.GET("/trips/active", reportingHandler.ListActive)
	admin.GET("/stats", reportingHandler.Stats)
	admin.GET("/reports/completed", reportingHandler.ExportCompleted)

	return r
}
