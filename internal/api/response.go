package api

import (
	"net/http" // HTTP status codes
	"strings"  // Role claim handling
	"time"     // Error timestamps

	"petstore/internal/apperr" // Domain errors
	"petstore/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ErrorResponse is the JSON body returned for every failed request
type ErrorResponse struct {
	Status    int    `json:"status"`    // HTTP status code
	Error     string `json:"error"`     // HTTP status text
	Message   string `json:"message"`   // Human-readable message
	Path      string `json:"path"`      // Request path that failed
	Code      string `json:"code"`      // Machine-readable error code
	Timestamp string `json:"timestamp"` // Time of the failure
}

// fail translates any error into the structured error body. Domain errors
// carry their own status and code; anything else becomes a non-leaking 500.
func fail(c *gin.Context, err error) {
	if e := apperr.From(err); e != nil {
		c.JSON(e.Status, ErrorResponse{
			Status:    e.Status,                  // HTTP status from the domain error
			Error:     http.StatusText(e.Status), // Status text
			Message:   e.Message,                 // Domain message
			Path:      c.Request.URL.Path,        // Failing path
			Code:      e.Code,                    // Machine code
			Timestamp: time.Now().Format("2006-01-02T15:04:05"),
		})
		return
	}
	// Unexpected error, log it and return a generic 500
	logrus.WithFields(logrus.Fields{
		"path":  c.Request.URL.Path, // Failing path
		"error": err.Error(),        // Underlying error
	}).Error("Unhandled error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Status:    http.StatusInternalServerError,
		Error:     http.StatusText(http.StatusInternalServerError),
		Message:   "Internal server error",
		Path:      c.Request.URL.Path,
		Code:      apperr.CodeInternal,
		Timestamp: time.Now().Format("2006-01-02T15:04:05"),
	})
}

// currentUserID returns the authenticated user's id from the request context
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID") // Set by the JWT middleware
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// callerIsAdmin reports whether the token's role claim includes ADMIN
func callerIsAdmin(c *gin.Context) bool {
	roles := c.GetString("roles") // Set by the JWT middleware
	for _, r := range strings.Split(roles, ",") {
		if strings.TrimSpace(r) == domain.RoleAdmin {
			return true
		}
	}
	return false
}
