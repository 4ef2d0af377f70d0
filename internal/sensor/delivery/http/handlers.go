package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "apple-orchard-advisor/pkg/errors"
	"apple-orchard-advisor/pkg/response"
)

// List godoc
// @Summary     Raw sensor readings
// @Description Returns the newest readings of a device with a structured summary, for dashboards.
// @Tags        Sensor
// @Produce     json
// @Param       device_id path  string true  "Sensor device ID"
// @Param       limit     query int    false "Number of readings, unbounded; 0 returns none (default: 10)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.DetailResp "Bad Request"
// @Failure     500 {object} response.DetailResp "Failed to fetch sensor data"
// @Router      /api/sensor-data/{device_id} [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		var httpErr *pkgErrors.HTTPError
		if errors.As(err, &httpErr) {
			response.Detail(c, httpErr.StatusCode, httpErr.Message)
			return
		}
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	output, err := h.uc.ListReadings(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListReadings: %v", err)
		httpErr := h.mapError(err)
		response.Detail(c, httpErr.StatusCode, httpErr.Message)
		return
	}

	c.JSON(http.StatusOK, h.newListResp(output))
}
