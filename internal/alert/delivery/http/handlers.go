package http

import (
	"alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Dashboard returns every alert computed from the organization's current data.
// @Summary Alert dashboard
// @Description Evaluate maintenance, appointment, invoice and quote rules and return the consolidated alerts
// @Tags Alerts
// @Produce json
// @Security Bearer
// @Success 200 {object} dashboardResp
// @Failure 401 {object} response.Resp "Unauthorized"
// @Router /alerts/dashboard [GET]
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processDashboardRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.alert.delivery.http.Dashboard.processDashboardRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Evaluate(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.alert.delivery.http.Dashboard.Evaluate: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDashboardResp(o))
}
