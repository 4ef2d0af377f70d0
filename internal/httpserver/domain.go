package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	advisorHTTP "apple-orchard-advisor/internal/advisor/delivery/http"
	"apple-orchard-advisor/internal/middleware"
	sensorHTTP "apple-orchard-advisor/internal/sensor/delivery/http"
	"apple-orchard-advisor/internal/test"
)

// setupAdvisorDomain registers the chat endpoint under /api and its legacy alias at the root.
func (srv HTTPServer) setupAdvisorDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := advisorHTTP.New(srv.l, srv.advisorUC)

	advisorHTTP.RegisterRoutes(api, h, mw.RateLimit())
	advisorHTTP.RegisterRoutes(srv.gin, h, mw.RateLimit())

	srv.l.Infof(ctx, "Advisor domain registered at POST /api/chat and POST /chat")
	return nil
}

// setupSensorDomain registers the raw readings endpoint used by dashboards.
func (srv HTTPServer) setupSensorDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := sensorHTTP.New(srv.l, srv.sensorUC)
	sensorHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Sensor domain registered at GET /api/sensor-data/:device_id")
	return nil
}

// setupTestDomain registers the routing dry run endpoints.
func (srv HTTPServer) setupTestDomain(ctx context.Context) {
	h := test.New(srv.l, srv.router)
	g := srv.gin.Group("/test")
	g.POST("/classify", h.HandleClassify)
	g.GET("/health", h.HandleHealthCheck)

	srv.l.Infof(ctx, "Test routes registered at /test")
}
