package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"json-error-responder/pkg/apierror"
	"json-error-responder/pkg/response"
)

// ErrorResponder converts errors recorded on the gin context into a JSON
// error response. Install it before the routes it covers; handlers report
// failures with c.Error(err) and the responder translates the last one after
// the chain returns.
//
// Field policy by status class:
//   - >= 500: message is replaced with the status reason phrase; nothing else
//     from the error value reaches the client except the stack, and only when
//     ShowStackTrace is enabled. The stack (when present) is always logged
//     server-side, regardless of that setting.
//   - 400..499: message, code, name and type pass through verbatim when
//     present; stack again only when ShowStackTrace is enabled.
//
// The responder never fails: attribute-sparse error values degrade to field
// omission, and a response already written by a handler is left alone.
func (m Middleware) ErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		m.respond(c, c.Errors.Last().Err)
	}
}

// respond terminates the request with the JSON body for err. A response
// already written by a handler is left alone.
func (m Middleware) respond(c *gin.Context, err error) {
	if c.Writer.Written() {
		return
	}

	apiErr := apierror.From(err)
	status := resolveStatus(apiErr)

	body := response.ErrBody{Status: status}

	if status >= http.StatusInternalServerError {
		// Reason phrase only; an unrecognized status yields the lookup
		// table's empty result.
		body.Message = http.StatusText(status)

		ctx := c.Request.Context()
		if apiErr != nil && apiErr.Stack != "" {
			m.l.Errorf(ctx, "%s %s failed: %v\n%s", c.Request.Method, c.Request.URL.Path, err, apiErr.Stack)
			if m.cfg.ShowStackTrace {
				body.Stack = apiErr.Stack
			}
		} else {
			m.l.Errorf(ctx, "%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		}
	} else {
		// Client class: apiErr is non-nil here, resolveStatus maps
		// everything else to 500.
		body.Message = apiErr.Message
		body.Code = apiErr.Code
		body.Name = apiErr.Name
		body.Type = apiErr.Type
		if m.cfg.ShowStackTrace {
			body.Stack = apiErr.Stack
		}
	}

	response.Err(c, body)
}

// resolveStatus picks the response status from the error attributes: Status
// first, then StatusCode; anything below 400, including no attribute at all,
// resolves to 500. Values >= 400 pass through unvalidated.
func resolveStatus(apiErr *apierror.Error) int {
	if apiErr == nil {
		return http.StatusInternalServerError
	}
	status := apiErr.Status
	if status == 0 {
		status = apiErr.StatusCode
	}
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	return status
}
