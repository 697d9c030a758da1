package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetLimitParam extracts the optional result limit from the request.
// Absent, non-numeric, or non-positive values mean no limit.
func GetLimitParam(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0
	}
	return limit
}
