package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mukeshkumar286/chickegg/pkg/utils"
)

// parseIDParam reads the :id path segment. A malformed id responds 400 and
// returns false; no lookup is attempted.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondInvalidID(c)
		return 0, false
	}
	return id, true
}

// parseDateQuery reads a date query parameter, accepting RFC 3339 or a bare
// calendar date. Returns nil when the parameter is absent.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		utils.RespondValidationFailed(c, "invalid "+name+": expected RFC 3339 or YYYY-MM-DD")
		return nil, false
	}
	return &t, true
}

func stringQuery(c *gin.Context, name string) *string {
	if raw := c.Query(name); raw != "" {
		return &raw
	}
	return nil
}
