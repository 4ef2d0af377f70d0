package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the chat endpoint. Extra middleware (rate limiting) runs before the handler.
func RegisterRoutes(rg gin.IRoutes, h *handler, mw ...gin.HandlerFunc) {
	chain := make([]gin.HandlerFunc, 0, len(mw)+1)
	chain = append(chain, mw...)
	chain = append(chain, h.Chat)
	rg.POST("/chat", chain...)
}
