// Package api implements the HTTP surface of the application
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
	"storeapi.app/config"
	apperr "storeapi.app/errors"
	"storeapi.app/metrics"
	"storeapi.app/models"
	"storeapi.app/service"
)

// ServerOptions carries the dependencies of the HTTP server
type ServerOptions struct {
	DB             *gorm.DB
	Config         *config.Config
	CatalogService service.CatalogServiceInterface
	OTPService     service.OTPServiceInterface
	RatingService  service.RatingServiceInterface
}

// Validate checks that all required dependencies are present
func (o *ServerOptions) Validate() error {
	if o.Config == nil {
		return fmt.Errorf("config is required")
	}
	if o.CatalogService == nil {
		return fmt.Errorf("catalog service is required")
	}
	if o.OTPService == nil {
		return fmt.Errorf("otp service is required")
	}
	if o.RatingService == nil {
		return fmt.Errorf("rating service is required")
	}
	return nil
}

// Server represents the HTTP server and API handler
type Server struct {
	router         *gin.Engine
	db             *gorm.DB
	config         *config.Config
	catalogService service.CatalogServiceInterface
	otpService     service.OTPServiceInterface
	ratingService  service.RatingServiceInterface
	httpMetrics    *metrics.HTTPMetrics
}

// NewServer creates and configures a new HTTP server
func NewServer(opts ServerOptions) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.Default()

	server := &Server{
		router:         router,
		db:             opts.DB,
		config:         opts.Config,
		catalogService: opts.CatalogService,
		otpService:     opts.OTPService,
		ratingService:  opts.RatingService,
		httpMetrics:    metrics.NewHTTPMetrics(),
	}

	server.setupMiddleware()
	server.setupRoutes()
	return server, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(corsMiddleware(&s.config.Server))
	s.router.Use(requestIDMiddleware())
	s.router.Use(timeoutMiddleware(time.Duration(s.config.Server.RequestTimeoutSeconds) * time.Second))
	s.router.Use(metricsMiddleware(s.httpMetrics))
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.root)
	s.router.GET("/health", s.health)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Geo catalog. The /autoform path is a legacy artifact: it serves the
	// store catalog despite its name.
	s.router.GET("/autoform", s.listStores)
	s.router.GET("/getallstate", s.listStates)
	s.router.POST("/getCitiesByState", s.getCitiesByState)
	s.router.POST("/getStore", s.getStoresByCity)
	s.router.POST("/getStorebyname", s.getStoresByCityName)
	s.router.POST("/getStorebyState", s.getStoresByState)
	s.router.POST("/getStoreTimings", s.getStoreTimings)
	s.router.POST("/getStateDescription", s.getStateDescription)

	api := s.router.Group("/api")
	{
		api.POST("/sendOTP", s.sendOTP)
		api.POST("/verifyOTP", s.verifyOTP)
		api.POST("/submitRating", s.submitRating)
	}

	s.router.GET("/getRatings/:StoreID", s.getRatings)
	s.router.GET("/getAllRatings/:StoreID", s.getAllRatings)
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// handleError maps application errors to HTTP status codes. Infrastructure
// failures are reported with a generic message so driver details never leak.
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *apperr.AppError
	var statusCode int
	var message string

	// A request that ran out its deadline is an overload signal, whatever
	// error type it got wrapped into on the way up
	if errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Message: "Request timed out"})
		return
	}

	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperr.ValidationError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case apperr.NotFoundError:
			statusCode = http.StatusNotFound
			message = appErr.Message
		case apperr.ForbiddenError:
			statusCode = http.StatusForbidden
			message = appErr.Message
		case apperr.OTPError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case apperr.AlreadyExistsError:
			statusCode = http.StatusConflict
			message = appErr.Message
		case apperr.DatabaseError:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		case apperr.EmailError:
			statusCode = http.StatusServiceUnavailable
			message = "Unable to send email"
		default:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, models.ErrorResponse{Message: message})
}
