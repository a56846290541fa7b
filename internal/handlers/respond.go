package handlers

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// package-level settings injected by the router at startup
var maxEmployeeAssignments int

// Configure sets handler-wide options. Called once from server.NewRouter.
func Configure(maxAssignments int) {
	maxEmployeeAssignments = maxAssignments
}

func currentUserID(c *gin.Context) (uint, bool) {
	sess := sessions.Default(c)
	uid, ok := sess.Get("user_id").(uint)
	return uid, ok
}

func jsonError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// parseDate accepts the console's date-only format. Empty input is a nil
// date, not an error.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
