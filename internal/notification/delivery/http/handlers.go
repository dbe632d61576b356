package http

import (
	"alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// SendDigest triggers the weekly maintenance digest for the caller's organization.
// @Summary Send weekly digest
// @Description Post the urgent maintenance digest to Discord. Force skips the weekday and once-a-day checks.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body digestReq false "Options"
// @Success 200 {object} digestResp
// @Failure 403 {object} response.Resp "Forbidden"
// @Failure 502 {object} response.Resp "Bad Gateway"
// @Router /notifications/digest [POST]
func (h *Handler) SendDigest(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDigestRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.notification.delivery.http.SendDigest.processDigestRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.SendWeeklyDigest(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.notification.delivery.http.SendDigest.SendWeeklyDigest: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDigestResp(o))
}
