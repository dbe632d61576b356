package http

import (
	"alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Get lists persisted alerts, newest first.
// @Summary Alert history
// @Description List persisted alerts of the organization with optional filters
// @Tags Alert History
// @Produce json
// @Security Bearer
// @Param status query string false "Comma separated statuses (active, acknowledged, resolved, dismissed)"
// @Param priority query string false "Comma separated priorities (urgent, pending)"
// @Param type query string false "Comma separated alert types (tuning, regulation, repair, stock)"
// @Param piano_id query string false "Piano ID"
// @Param limit query int false "Page size, default 50, max 100"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} getResp
// @Failure 400 {object} response.Resp "Bad Request"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Router /alerts/history [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.history.delivery.http.Get.processGetRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.history.delivery.http.Get.Get: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGetResp(o))
}

// Create stores a new maintenance alert.
// @Summary Create alert
// @Description Persist a tuning, regulation or repair alert. Viewers are rejected.
// @Tags Alert History
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body createReq true "Alert"
// @Success 201 {object} alertResp
// @Failure 400 {object} response.Resp "Bad Request"
// @Failure 403 {object} response.Resp "Forbidden"
// @Failure 409 {object} response.Resp "Conflict"
// @Router /alerts [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.history.delivery.http.Create.processCreateRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	a, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.history.delivery.http.Create.Create: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, newAlertResp(a))
}

// Detail returns one persisted alert.
// @Summary Alert detail
// @Tags Alert History
// @Produce json
// @Security Bearer
// @Param id path string true "Alert ID"
// @Success 200 {object} alertResp
// @Failure 404 {object} response.Resp "Not Found"
// @Router /alerts/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.history.delivery.http.Detail.processIDRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	a, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "internal.history.delivery.http.Detail.Detail: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newAlertResp(a))
}

// Acknowledge moves an active alert to acknowledged.
// @Summary Acknowledge alert
// @Tags Alert History
// @Produce json
// @Security Bearer
// @Param id path string true "Alert ID"
// @Success 200 {object} alertResp
// @Failure 404 {object} response.Resp "Not Found"
// @Failure 409 {object} response.Resp "Conflict"
// @Router /alerts/{id}/acknowledge [POST]
func (h *Handler) Acknowledge(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.history.delivery.http.Acknowledge.processIDRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	a, err := h.uc.Acknowledge(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "internal.history.delivery.http.Acknowledge.Acknowledge: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newAlertResp(a))
}

// Resolve closes an open alert, optionally linking the service that fixed it.
// @Summary Resolve alert
// @Tags Alert History
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Alert ID"
// @Param body body resolveReq false "Resolving service"
// @Success 200 {object} alertResp
// @Failure 404 {object} response.Resp "Not Found"
// @Failure 409 {object} response.Resp "Conflict"
// @Router /alerts/{id}/resolve [POST]
func (h *Handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	ip, sc, err := h.processResolveRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.history.delivery.http.Resolve.processResolveRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	a, err := h.uc.Resolve(ctx, sc, ip)
	if err != nil {
		h.l.Errorf(ctx, "internal.history.delivery.http.Resolve.Resolve: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newAlertResp(a))
}

// Dismiss closes an open alert without resolving it.
// @Summary Dismiss alert
// @Tags Alert History
// @Produce json
// @Security Bearer
// @Param id path string true "Alert ID"
// @Success 200 {object} alertResp
// @Failure 404 {object} response.Resp "Not Found"
// @Failure 409 {object} response.Resp "Conflict"
// @Router /alerts/{id}/dismiss [POST]
func (h *Handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.history.delivery.http.Dismiss.processIDRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	a, err := h.uc.Dismiss(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "internal.history.delivery.http.Dismiss.Dismiss: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newAlertResp(a))
}

// Statistics returns open alert counts and the resolution pace of the last 30 days.
// @Summary Alert statistics
// @Tags Alert History
// @Produce json
// @Security Bearer
// @Success 200 {object} statisticsResp
// @Router /alerts/statistics [GET]
func (h *Handler) Statistics(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.history.delivery.http.Statistics.processScope: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	s, err := h.uc.Statistics(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.history.delivery.http.Statistics.Statistics: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newStatisticsResp(s))
}
