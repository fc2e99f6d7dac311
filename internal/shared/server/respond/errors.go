package respond

import (
	"github.com/gin-gonic/gin"

	"content-optimizer/internal/shared/telemetry"
)

// ErrorResponse is the standardized error envelope: success is always false
// and error carries the human-readable message.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Error   string `json:"error"`
}

// Error logs and sends a standardized error response.
func Error(c *gin.Context, status int, code, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Code:    code,
		Error:   message,
	})
}
