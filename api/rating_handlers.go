package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperr "storeapi.app/errors"
	"storeapi.app/models"
)

func (s *Server) sendOTP(c *gin.Context) {
	var req models.SendOTPRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	slog.Debug("Sending OTP", "email", req.Email)

	if err := s.otpService.SendOTP(c.Request.Context(), req.Email); err != nil {
		slog.Error("Send OTP error", "error", err, "email", req.Email)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

func (s *Server) verifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	slog.Debug("Verifying OTP", "email", req.Email)

	if err := s.otpService.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		slog.Error("Verify OTP error", "error", err, "email", req.Email)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

func (s *Server) submitRating(c *gin.Context) {
	var req models.SubmitRatingRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, apperr.NewValidationError("invalid request format"))
		return
	}

	slog.Debug("Submitting rating", "email", req.Email, "store_id", req.StoreID, "rating", req.Rating)

	if err := s.ratingService.SubmitRating(c.Request.Context(), &req); err != nil {
		slog.Error("Submit rating error", "error", err, "email", req.Email, "store_id", req.StoreID)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating submitted successfully"})
}

func (s *Server) storeIDParam(c *gin.Context) (uint, bool) {
	storeID, err := strconv.ParseUint(c.Param("StoreID"), 10, 32)
	if err != nil || storeID == 0 {
		s.handleError(c, apperr.NewValidationError("Store ID is required"))
		return 0, false
	}
	return uint(storeID), true
}

func (s *Server) getRatings(c *gin.Context) {
	storeID, ok := s.storeIDParam(c)
	if !ok {
		return
	}

	summary, err := s.ratingService.GetRatingSummary(c.Request.Context(), storeID)
	if err != nil {
		slog.Error("Rating summary error", "error", err, "store_id", storeID)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (s *Server) getAllRatings(c *gin.Context) {
	storeID, ok := s.storeIDParam(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	ratings, err := s.ratingService.ListRatings(c.Request.Context(), storeID, page, limit)
	if err != nil {
		slog.Error("List ratings error", "error", err, "store_id", storeID)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ratings)
}
