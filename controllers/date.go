package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// referenceDate resolves the calendar date an aggregation or counter write
// applies to. Defaults to the current server-local day; an optional
// ?date=YYYY-MM-DD query overrides it. Returns ok=false after writing a 400
// response for a malformed date.
func referenceDate(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now(), true
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}
