package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"apple-orchard-advisor/pkg/response"
)

// Chat godoc
// @Summary     Ask the orchard advisor
// @Description Routes the farmer's question to one specialist advisor, which may read live sensor data before answering.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body     chatReq true "Farmer question"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.DetailResp "Device ID is required"
// @Failure     422  {object} response.DetailResp "Invalid request body"
// @Failure     429  {object} response.Resp "Too many requests"
// @Failure     500  {object} response.DetailResp "Agent error"
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		httpErr := asHTTPError(err)
		response.Detail(c, httpErr.StatusCode, httpErr.Message)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		httpErr := h.mapError(err)
		response.Detail(c, httpErr.StatusCode, httpErr.Message)
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(req, output))
}
