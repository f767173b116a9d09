package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Session verification lives in a separate service; by the time a request
// reaches this process the verified user id is carried in the X-User-ID
// header. Routes that act on behalf of a user read it through here.
func currentUserID(c *gin.Context) (uint64, bool) {
	raw := strings.TrimSpace(c.GetHeader("X-User-ID"))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
