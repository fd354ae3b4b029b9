package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"json-error-responder/pkg/apierror"
)

// Recovery converts panics into server-class errors handled by the same
// response pipeline as ErrorResponder: the panic value becomes a 500 with a
// sanitized message, and the goroutine stack is captured for the diagnostic
// log (and for the body, when ShowStackTrace is enabled).
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := apierror.New(http.StatusInternalServerError, fmt.Sprintf("panic: %v", r)).
					WithStack(string(debug.Stack()))
				m.respond(c, err)
			}
		}()

		c.Next()
	}
}
