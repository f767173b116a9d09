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

type DealerHandler struct {
	Service *service.DealerService
	Logger  *zap.Logger
}

func (h *DealerHandler) Register(r *gin.Engine) {
	group := r.Group("/api/dealers")
	group.GET("", h.listDealers)
	group.GET("/profile", h.getProfile)
	group.PUT("/profile", h.updateProfile)
	group.POST("/register", h.registerDealer)
	group.POST("/showroom", h.appendShowroomImage)
	group.GET("/:id", h.getDealer)
}

// @Summary List verified dealers, optionally proximity-filtered
// @Tags dealers
// @Param lat query number false "query latitude"
// @Param lng query number false "query longitude"
// @Param radius query number false "radius in km (default 50)"
// @Success 200 {object} apiResponse
// @Router /api/dealers [get]
func (h *DealerHandler) listDealers(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	lat := floatQueryPtr(c, "lat")
	lng := floatQueryPtr(c, "lng")
	radius := floatQueryPtr(c, "radius")

	dealers, err := h.Service.ListDealers(c.Request.Context(), lat, lng, radius)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("list dealers failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, dealers, map[string]any{"count": len(dealers)})
}

// @Summary Get one dealer with inventory and reviews
// @Tags dealers
// @Param id path int true "dealer id"
// @Success 200 {object} apiResponse
// @Router /api/dealers/{id} [get]
func (h *DealerHandler) getDealer(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid dealer id", nil)
		return
	}
	dealer, err := h.Service.GetDealer(c.Request.Context(), id)
	if err != nil {
		h.replyError(c, err)
		return
	}
	Ok(c, dealer, nil)
}

// @Summary Register the current user as a dealer
// @Tags dealers
// @Success 200 {object} apiResponse
// @Router /api/dealers/register [post]
func (h *DealerHandler) registerDealer(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		Error(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	dealerID, err := h.Service.Register(c.Request.Context(), userID, input)
	if err != nil {
		h.replyError(c, err)
		return
	}
	Ok(c, gin.H{
		"dealer_id": dealerID,
		"message":   "dealer registration submitted for verification",
	}, nil)
}

// @Summary Get the current user's dealer profile
// @Tags dealers
// @Success 200 {object} apiResponse
// @Router /api/dealers/profile [get]
func (h *DealerHandler) getProfile(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		Error(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	profile, err := h.Service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.replyError(c, err)
		return
	}
	Ok(c, profile, nil)
}

// @Summary Update the current user's dealer profile
// @Tags dealers
// @Success 200 {object} apiResponse
// @Router /api/dealers/profile [put]
func (h *DealerHandler) updateProfile(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		Error(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	var input service.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := h.Service.UpdateProfile(c.Request.Context(), userID, input); err != nil {
		h.replyError(c, err)
		return
	}
	Ok(c, gin.H{"message": "dealer profile updated"}, nil)
}

type showroomUploadRequest struct {
	ImageURL string `json:"image_url"`
}

// @Summary Append a showroom image to the current user's profile
// @Tags dealers
// @Success 200 {object} apiResponse
// @Router /api/dealers/showroom [post]
func (h *DealerHandler) appendShowroomImage(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		Error(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	var req showroomUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ImageURL) == "" {
		Error(c, http.StatusBadRequest, "image_url is required", nil)
		return
	}
	images, err := h.Service.AppendShowroomImage(c.Request.Context(), userID, req.ImageURL)
	if err != nil {
		h.replyError(c, err)
		return
	}
	Ok(c, gin.H{"showroom_images": images}, nil)
}

func (h *DealerHandler) replyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDealerNotFound), errors.Is(err, service.ErrProfileNotFound):
		Error(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, service.ErrProfileExists),
		errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrNoFields):
		Error(c, http.StatusBadRequest, err.Error(), nil)
	default:
		if h.Logger != nil {
			h.Logger.Warn("dealer request failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
	}
}
