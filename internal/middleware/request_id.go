package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates the caller's request id or mints one.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
