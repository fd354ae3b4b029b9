package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"json-error-responder/pkg/log"
)

// RequestIDHeader carries the request correlation id.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a correlation id, echoed in the response
// header and attached to the request context so diagnostic log lines for
// failed requests are correlatable. An inbound id is reused.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Writer.Header().Set(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.ContextWithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
