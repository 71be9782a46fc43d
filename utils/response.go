package utils

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the per-request id
const RequestIDKey = "request_id"

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":     status,
		"message":    message,
		"data":       data,
		"request_id": c.GetString(RequestIDKey),
	})
}

// JSONError sends a structured error response. The error text is passed
// through untouched so provider messages reach the client as-is.
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":     status,
		"message":    message,
		"error":      err.Error(),
		"request_id": c.GetString(RequestIDKey),
	})
}

// JSONErrorWithData is JSONError plus a data field, for failures that still
// produced results the caller must know about.
func JSONErrorWithData(c *gin.Context, status int, err error, message string, data any) {
	c.JSON(status, gin.H{
		"status":     status,
		"message":    message,
		"error":      err.Error(),
		"data":       data,
		"request_id": c.GetString(RequestIDKey),
	})
}
