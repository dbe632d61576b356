package http

import (
	"alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Assemble
// @Summary Alert report
// @Description Document model for a renderer: metrics, distribution, service types, top 10 pianos and optional details
// @Tags Reports
// @Produce json
// @Security Bearer
// @Param start_date query string false "Inclusive start, YYYY-MM-DD or RFC3339"
// @Param end_date query string false "Exclusive end, YYYY-MM-DD or RFC3339"
// @Param format query string false "pdf (default), excel or csv"
// @Param include_details query bool false "Include every alert, oldest first"
// @Success 200 {object} reportResp
// @Failure 400 {object} response.Resp "Bad Request"
// @Failure 503 {object} response.Resp "Service Unavailable"
// @Router /reports/alerts [GET]
func (h *Handler) Assemble(c *gin.Context) {
	ctx := c.Request.Context()

	ip, sc, err := h.processAssembleRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.report.delivery.http.Assemble.processAssembleRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	r, err := h.uc.Assemble(ctx, sc, ip)
	if err != nil {
		h.l.Errorf(ctx, "internal.report.delivery.http.Assemble.Assemble: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newReportResp(r))
}

// Export
// @Summary Export alert report
// @Description Stores the report document in object storage and returns a presigned download URL
// @Tags Reports
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body assembleReq true "Report parameters"
// @Success 200 {object} exportResp
// @Failure 400 {object} response.Resp "Bad Request"
// @Failure 502 {object} response.Resp "Bad Gateway"
// @Router /reports/alerts/export [POST]
func (h *Handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	ip, sc, err := h.processExportRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.report.delivery.http.Export.processExportRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Export(ctx, sc, ip)
	if err != nil {
		h.l.Errorf(ctx, "internal.report.delivery.http.Export.Export: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newExportResp(o))
}
