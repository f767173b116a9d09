package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"intelliwheels/internal/service"
)

type WatchlistHandler struct {
	Service *service.WatchlistService
	Logger  *zap.Logger
}

func (h *WatchlistHandler) Register(r *gin.Engine) {
	group := r.Group("/api/watchlist")
	group.GET("", h.listWatchlist)
	group.POST("", h.addToWatchlist)
	group.DELETE("/:car_id", h.removeFromWatchlist)
}

// @Summary List the current user's watched cars
// @Tags watchlist
// @Success 200 {object} apiResponse
// @Router /api/watchlist [get]
func (h *WatchlistHandler) listWatchlist(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		Error(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	cars, err := h.Service.List(c.Request.Context(), userID)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("list watchlist failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, cars, map[string]any{"count": len(cars)})
}

type watchlistAddRequest struct {
	CarID uint64 `json:"car_id"`
}

// @Summary Add a car to the current user's watchlist
// @Tags watchlist
// @Success 200 {object} apiResponse
// @Router /api/watchlist [post]
func (h *WatchlistHandler) addToWatchlist(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		Error(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	var req watchlistAddRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CarID == 0 {
		Error(c, http.StatusBadRequest, "car_id is required", nil)
		return
	}
	if err := h.Service.Add(c.Request.Context(), userID, req.CarID); err != nil {
		if errors.Is(err, service.ErrCarNotFound) {
			Error(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		if h.Logger != nil {
			h.Logger.Warn("add to watchlist failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"message": "added to watchlist"}, nil)
}

// @Summary Remove a car from the current user's watchlist
// @Tags watchlist
// @Param car_id path int true "car id"
// @Success 200 {object} apiResponse
// @Router /api/watchlist/{car_id} [delete]
func (h *WatchlistHandler) removeFromWatchlist(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		Error(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	carID, err := strconv.ParseUint(strings.TrimSpace(c.Param("car_id")), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid car id", nil)
		return
	}
	if err := h.Service.Remove(c.Request.Context(), userID, carID); err != nil {
		if h.Logger != nil {
			h.Logger.Warn("remove from watchlist failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, gin.H{"message": "removed from watchlist"}, nil)
}
