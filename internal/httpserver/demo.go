package httpserver

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"json-error-responder/pkg/apierror"
)

// registerDemoRoutes exposes endpoints that fail on purpose so the error
// responder can be exercised end to end.
func (srv *HTTPServer) registerDemoRoutes() {
	demo := srv.gin.Group("/demo")

	demo.GET("/validation", srv.demoValidation)
	demo.GET("/not-found", srv.demoNotFound)
	demo.GET("/server-error", srv.demoServerError)
	demo.GET("/panic", srv.demoPanic)
}

// demoValidation reports a client-class error with full metadata.
// @Summary Demo validation failure
// @Description Always fails with a 422 carrying code, name and type
// @Tags Demo
// @Produce json
// @Failure 422 {object} response.ErrBody
// @Router /demo/validation [get]
func (srv *HTTPServer) demoValidation(c *gin.Context) {
	_ = c.Error(apierror.New(http.StatusUnprocessableEntity, "field 'email' is invalid").
		WithCode(42).
		WithName("ValidationError").
		WithType("field"))
}

// demoNotFound reports a bare 404 client-class error.
// @Summary Demo missing resource
// @Description Always fails with a 404
// @Tags Demo
// @Produce json
// @Failure 404 {object} response.ErrBody
// @Router /demo/not-found [get]
func (srv *HTTPServer) demoNotFound(c *gin.Context) {
	_ = c.Error(apierror.New(http.StatusNotFound, "no such resource"))
}

// demoServerError reports an unclassified failure, resolved to 500.
// @Summary Demo internal failure
// @Description Always fails with a 500; the original message is sanitized
// @Tags Demo
// @Produce json
// @Failure 500 {object} response.ErrBody
// @Router /demo/server-error [get]
func (srv *HTTPServer) demoServerError(c *gin.Context) {
	err := errors.New("database connection refused")
	_ = c.Error(apierror.New(0, err.Error()).WithStack(string(debug.Stack())))
}

// demoPanic panics, exercising the recovery path.
// @Summary Demo panic
// @Description Always panics; recovery converts it to a 500
// @Tags Demo
// @Produce json
// @Failure 500 {object} response.ErrBody
// @Router /demo/panic [get]
func (srv *HTTPServer) demoPanic(c *gin.Context) {
	panic("demo panic")
}
