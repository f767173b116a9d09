package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// apiResponse is the envelope every JSON endpoint returns. Status is "ok" or
// "error"; Meta carries listing counts and pagination for the catalog and
// dealer list endpoints.
type apiResponse struct {
	Status string         `json:"status"`
	Error  string         `json:"error,omitempty"`
	Data   any            `json:"data,omitempty"`
	Meta   map[string]any `json:"meta,omitempty"`
}

func Ok(c *gin.Context, data any, meta map[string]any) {
	c.JSON(http.StatusOK, apiResponse{
		Status: "ok",
		Data:   data,
		Meta:   meta,
	})
}

func Error(c *gin.Context, status int, message string, meta map[string]any) {
	c.JSON(status, apiResponse{
		Status: "error",
		Error:  message,
		Meta:   meta,
	})
}
