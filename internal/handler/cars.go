package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"intelliwheels/internal/repository"
	"intelliwheels/internal/service"
)

type CarHandler struct {
	Query  *service.CatalogQueryService
	Logger *zap.Logger
}

func (h *CarHandler) Register(r *gin.Engine) {
	group := r.Group("/api/cars")
	group.GET("", h.listCars)
	group.GET("/:id", h.getCar)
}

// @Summary List catalog cars
// @Tags cars
// @Param limit query int false "limit"
// @Param offset query int false "offset"
// @Param make query string false "make"
// @Param model query string false "model"
// @Param year query int false "year"
// @Param order_by query string false "order by field"
// @Param ascending query bool false "ascending"
// @Success 200 {object} apiResponse
// @Router /api/cars [get]
func (h *CarHandler) listCars(c *gin.Context) {
	if h.Query == nil || h.Query.Repo == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)
	makeFilter := strQueryPtr(c, "make")
	modelFilter := strQueryPtr(c, "model")
	year := intQueryPtr(c, "year")
	orderBy := parseOrder(c.Query("order_by"), map[string]string{
		"created_at": "created_at",
		"rating":     "rating",
		"price":      "price",
		"year":       "year",
	})
	asc := boolQueryPtr(c, "ascending")

	result, err := h.Query.ListCars(c.Request.Context(), repository.ListCarsParams{
		Limit:   limit,
		Offset:  offset,
		Make:    makeFilter,
		Model:   modelFilter,
		Year:    year,
		OrderBy: orderBy,
		Asc:     asc,
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("list cars failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, result.Items, paginationMeta(limit, offset, result.Total))
}

// @Summary Get one catalog car
// @Tags cars
// @Param id path int true "car id"
// @Success 200 {object} apiResponse
// @Router /api/cars/{id} [get]
func (h *CarHandler) getCar(c *gin.Context) {
	if h.Query == nil || h.Query.Repo == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, "invalid car id", nil)
		return
	}
	car, err := h.Query.GetCar(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCarNotFound) {
			Error(c, http.StatusNotFound, err.Error(), nil)
			return
		}
		if h.Logger != nil {
			h.Logger.Warn("get car failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, car, nil)
}

func intQuery(c *gin.Context, key string, def int) int {
	if val := c.Query(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

func intQueryPtr(c *gin.Context, key string) *int {
	if val := c.Query(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return &i
		}
	}
	return nil
}

func boolQueryPtr(c *gin.Context, key string) *bool {
	if val := c.Query(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return &b
		}
	}
	return nil
}

func strQueryPtr(c *gin.Context, key string) *string {
	if val := strings.TrimSpace(c.Query(key)); val != "" {
		return &val
	}
	return nil
}

func floatQueryPtr(c *gin.Context, key string) *float64 {
	if val := strings.TrimSpace(c.Query(key)); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return &f
		}
	}
	return nil
}

func boolQueryDefault(c *gin.Context, key string, def bool) bool {
	if val := c.Query(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return def
}

func parseOrder(value string, allow map[string]string) string {
	key := strings.TrimSpace(strings.ToLower(value))
	if key == "" {
		return ""
	}
	if mapped, ok := allow[key]; ok {
		return mapped
	}
	return ""
}

func paginationMeta(limit, offset int, total int64) map[string]any {
	if limit <= 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	hasNext := int64(offset+limit) < total
	return map[string]any{
		"limit":    limit,
		"offset":   offset,
		"total":    total,
		"has_next": hasNext,
	}
}
