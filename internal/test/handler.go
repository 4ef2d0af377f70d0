package test

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"apple-orchard-advisor/internal/router"
	pkgErrors "apple-orchard-advisor/pkg/errors"
	pkgLog "apple-orchard-advisor/pkg/log"
	"apple-orchard-advisor/pkg/response"
)

type handler struct {
	l      pkgLog.Logger
	router router.Router
}

// HandleClassify runs the semantic router on a message without answering it
// @Summary Test question routing
// @Description Classify a farmer question and show which advisor would handle it. No sensor data is fetched and no answer is generated.
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Question to classify"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} response.Resp
// @Failure 500 {object} ClassifyResponse
// @Router /test/classify [post]
func (h *handler) HandleClassify(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.ErrBadRequest, map[string]interface{}{"details": err.Error()})
		return
	}

	result, err := h.router.Classify(ctx, req.Message)
	if err != nil {
		h.l.Errorf(ctx, "internal.test.HandleClassify: Router classification failed: %v", err)
		c.JSON(http.StatusInternalServerError, ClassifyResponse{
			Success: false,
			Message: req.Message,
			Error:   "Router classification failed",
			Details: err.Error(),
		})
		return
	}

	h.l.Infof(ctx, "internal.test.HandleClassify: message=%q advisor=%s fallback=%t",
		req.Message, result.Label, result.Fallback)

	c.JSON(http.StatusOK, ClassifyResponse{
		Success:  true,
		Advisor:  result.Label.String(),
		Raw:      result.Raw,
		Fallback: result.Fallback,
		Message:  req.Message,
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
