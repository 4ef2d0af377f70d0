package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the sensor dashboard endpoint.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/sensor-data/:device_id", h.List)
}
