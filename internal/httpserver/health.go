package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"apple-orchard-advisor/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "apple-orchard-advisor"

	uptimeHTML = `
    <html>
        <body>
            <h1>Hello, UpTimeRobot!</h1>
        </body>
    </html>
    `
)

// uptimePage serves the static page polled by the external uptime monitor.
func (srv HTTPServer) uptimePage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(uptimeHTML))
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy and whether a language model provider is configured
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	llm := "missing"
	if srv.llmName != "" {
		llm = "configured"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"api_connection": "active",
		"llm_api":        llm,
		"llm_provider":   srv.llmName,
		"version":        HealthVersion,
		"service":        ServiceName,
	})
}

// readyCheck reports ready once a language model provider is available.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "No language model provider"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.llmName == "" {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "no language model provider configured",
		})
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
