package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"intelliwheels/internal/service"
)

type ImportHandler struct {
	Service *service.ImportService
	Logger  *zap.Logger
}

func (h *ImportHandler) Register(r *gin.Engine) {
	group := r.Group("/api/admin")
	group.POST("/import", h.runImport)
}

// @Summary Run the catalog and dealer import
// @Tags admin
// @Param force query bool false "wipe and reload both tables"
// @Success 200 {object} apiResponse
// @Router /api/admin/import [post]
func (h *ImportHandler) runImport(c *gin.Context) {
	if h.Service == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	force := boolQueryDefault(c, "force", false)
	result, err := h.Service.Run(c.Request.Context(), force)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("import failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, result, nil)
}
