package http

import (
	"alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// RunPass runs one stock monitoring pass for the caller's organization.
// @Summary Run stock monitor
// @Description Check every linked inventory item, create low stock alerts and auto-generated orders
// @Tags Stock
// @Produce json
// @Security Bearer
// @Success 200 {object} passResp
// @Failure 403 {object} response.Resp "Forbidden"
// @Router /stock/monitor/run [POST]
func (h *Handler) RunPass(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.stock.delivery.http.RunPass.processScope: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	res, err := h.uc.RunPass(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.stock.delivery.http.RunPass.RunPass: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.newPassResp(res))
}

// ActiveAlerts lists the open stock alerts.
// @Summary Active stock alerts
// @Tags Stock
// @Produce json
// @Security Bearer
// @Success 200 {array} stockAlertResp
// @Router /stock/alerts [GET]
func (h *Handler) ActiveAlerts(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.stock.delivery.http.ActiveAlerts.processScope: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	alerts, err := h.uc.ActiveAlerts(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.stock.delivery.http.ActiveAlerts.ActiveAlerts: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newStockAlertsResp(alerts))
}

// ResolveAlert resolves a stock alert after restocking.
// @Summary Resolve stock alert
// @Tags Stock
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Alert ID"
// @Param body body resolveReq false "Resolving service"
// @Success 200 {object} stockAlertResp
// @Failure 404 {object} response.Resp "Not Found"
// @Failure 409 {object} response.Resp "Conflict"
// @Router /stock/alerts/{id}/resolve [POST]
func (h *Handler) ResolveAlert(c *gin.Context) {
	ctx := c.Request.Context()

	ip, sc, err := h.processResolveRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.stock.delivery.http.ResolveAlert.processResolveRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	a, err := h.uc.ResolveAlert(ctx, sc, ip)
	if err != nil {
		h.l.Errorf(ctx, "internal.stock.delivery.http.ResolveAlert.ResolveAlert: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStockAlertResp(a))
}

// LinkProduct creates or updates the reorder link of an inventory item.
// @Summary Link inventory item to product
// @Tags Stock
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body linkReq true "Reorder link"
// @Success 200 {object} linkResp
// @Failure 400 {object} response.Resp "Bad Request"
// @Failure 404 {object} response.Resp "Not Found"
// @Router /stock/links [PUT]
func (h *Handler) LinkProduct(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processLinkRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.stock.delivery.http.LinkProduct.processLinkRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	link, err := h.uc.LinkProduct(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.stock.delivery.http.LinkProduct.LinkProduct: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newLinkResp(link))
}
