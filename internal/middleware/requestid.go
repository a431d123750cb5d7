package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Request identifiers flow through the header for callers and through
// the gin context for the logger and timeout envelopes.
const (
	HeaderXRequestID = "X-Request-ID"
	ContextRequestID = "request_id"
)

// RequestID tags every request with an identifier, reusing the
// caller's X-Request-ID when present so retries from the UI shell
// correlate in the logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Set(ContextRequestID, rid)
		c.Header(HeaderXRequestID, rid)
		c.Next()
	}
}
