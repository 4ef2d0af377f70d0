package test

import (
	"github.com/gin-gonic/gin"

	"apple-orchard-advisor/internal/router"
	pkgLog "apple-orchard-advisor/pkg/log"
)

// Handler is the interface for the test handler
type Handler interface {
	HandleClassify(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// New creates a new test handler
func New(l pkgLog.Logger, router router.Router) Handler {
	return &handler{
		l:      l,
		router: router,
	}
}
