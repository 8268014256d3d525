package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"storeapi.app/database"
	apperr "storeapi.app/errors"
	"storeapi.app/models"
)

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Store ratings API running"})
}

func (s *Server) health(c *gin.Context) {
	if s.db != nil {
		if err := database.Ping(s.db); err != nil {
			slog.Error("Health check database ping failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
}

func (s *Server) listStates(c *gin.Context) {
	states, err := s.catalogService.ListStates(c.Request.Context())
	if err != nil {
		slog.Error("List states error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, states)
}

func (s *Server) listStores(c *gin.Context) {
	stores, err := s.catalogService.ListStores(c.Request.Context())
	if err != nil {
		slog.Error("List stores error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stores)
}

func (s *Server) getCitiesByState(c *gin.Context) {
	var req models.CitiesByStateRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	cities, err := s.catalogService.GetCitiesByState(c.Request.Context(), req.StateID)
	if err != nil {
		slog.Error("Cities by state error", "error", err, "state_id", req.StateID)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cities)
}

func (s *Server) getStoresByCity(c *gin.Context) {
	var req models.StoresByCityRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	stores, err := s.catalogService.GetStoresByCity(c.Request.Context(), req.CityID)
	if err != nil {
		slog.Error("Stores by city error", "error", err, "cityid", req.CityID)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stores)
}

func (s *Server) getStoresByCityName(c *gin.Context) {
	var req models.StoresByCityNameRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	stores, err := s.catalogService.GetStoresByCityName(c.Request.Context(), req.CityName)
	if err != nil {
		slog.Error("Stores by city name error", "error", err, "cityname", req.CityName)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stores)
}

func (s *Server) getStoresByState(c *gin.Context) {
	var req models.StoresByStateRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	stores, err := s.catalogService.GetStoresByState(c.Request.Context(), req.StateID, req.StateName)
	if err != nil {
		slog.Error("Stores by state error", "error", err, "stateid", req.StateID, "statename", req.StateName)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stores)
}

func (s *Server) getStoreTimings(c *gin.Context) {
	var req models.StoreTimingsRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	timings, err := s.catalogService.GetStoreTimings(c.Request.Context(), req.StoreID)
	if err != nil {
		slog.Error("Store timings error", "error", err, "storeid", req.StoreID)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, timings)
}

func (s *Server) getStateDescription(c *gin.Context) {
	var req models.StateDescriptionRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	description, err := s.catalogService.GetStateDescription(c.Request.Context(), &req)
	if err != nil {
		slog.Error("State description error", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, description)
}
