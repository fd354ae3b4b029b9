package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Message: MessageSuccess,
		Data:    data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Err terminates the request with body serialized as JSON and body.Status
// set on the response.
func Err(c *gin.Context, body ErrBody) {
	c.Abort()
	c.JSON(body.Status, body)
}
