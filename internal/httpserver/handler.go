package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDemoRoutes()

	return nil
}

// registerMiddlewares installs the global chain. Order matters: the request
// id must exist before the responder logs, and recovery must wrap everything
// the responder covers.
func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.Recovery())
	srv.gin.Use(srv.mw.ErrorResponder())

	ctx := context.Background()
	srv.l.Infof(ctx, "Error responder installed, environment: %s", srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
