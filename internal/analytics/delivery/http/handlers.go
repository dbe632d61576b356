package http

import (
	"alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Metrics
// @Summary Performance metrics
// @Description Alert counts by status, resolution rate (%) and mean resolution time (days)
// @Tags Analytics
// @Produce json
// @Security Bearer
// @Param start_date query string false "Inclusive start, YYYY-MM-DD or RFC3339"
// @Param end_date query string false "Exclusive end, YYYY-MM-DD or RFC3339"
// @Success 200 {object} model.PerformanceMetrics
// @Failure 400 {object} response.Resp "Bad Request"
// @Router /analytics/metrics [GET]
func (h *Handler) Metrics(c *gin.Context) {
	ctx := c.Request.Context()

	w, sc, err := h.processWindowRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.analytics.delivery.http.Metrics.processWindowRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.uc.PerformanceMetrics(ctx, sc, w))
}

// TimeSeries
// @Summary Alert time series
// @Description Alerts bucketed by creation day, week (starting Sunday) or month
// @Tags Analytics
// @Produce json
// @Security Bearer
// @Param start_date query string false "Inclusive start"
// @Param end_date query string false "Exclusive end"
// @Param granularity query string false "day (default), week or month"
// @Success 200 {array} model.TimeSeriesBucket
// @Failure 400 {object} response.Resp "Bad Request"
// @Router /analytics/timeseries [GET]
func (h *Handler) TimeSeries(c *gin.Context) {
	ctx := c.Request.Context()

	w, g, sc, err := h.processTimeSeriesRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.analytics.delivery.http.TimeSeries.processTimeSeriesRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.uc.TimeSeries(ctx, sc, w, g))
}

// Distribution
// @Summary Alert type distribution
// @Tags Analytics
// @Produce json
// @Security Bearer
// @Param start_date query string false "Inclusive start"
// @Param end_date query string false "Exclusive end"
// @Success 200 {array} model.TypeDistribution
// @Failure 400 {object} response.Resp "Bad Request"
// @Router /analytics/distribution [GET]
func (h *Handler) Distribution(c *gin.Context) {
	ctx := c.Request.Context()

	w, sc, err := h.processWindowRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.analytics.delivery.http.Distribution.processWindowRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.uc.Distribution(ctx, sc, w))
}

// Trends
// @Summary Alert trends
// @Description Trailing periods, oldest first
// @Tags Analytics
// @Produce json
// @Security Bearer
// @Param period query string false "month (default), quarter or year"
// @Param periods query int false "Number of periods, default 12, max 60"
// @Success 200 {array} trendResp
// @Failure 400 {object} response.Resp "Bad Request"
// @Router /analytics/trends [GET]
func (h *Handler) Trends(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processTrendsRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.analytics.delivery.http.Trends.processTrendsRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.newTrendsResp(h.uc.Trends(ctx, sc, req.period(), req.Periods)))
}

// ServiceTypes
// @Summary Maintenance alerts by service type
// @Tags Analytics
// @Produce json
// @Security Bearer
// @Param start_date query string false "Inclusive start"
// @Param end_date query string false "Exclusive end"
// @Success 200 {array} model.ServiceTypeAnalysis
// @Failure 400 {object} response.Resp "Bad Request"
// @Router /analytics/service-types [GET]
func (h *Handler) ServiceTypes(c *gin.Context) {
	ctx := c.Request.Context()

	w, sc, err := h.processWindowRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.analytics.delivery.http.ServiceTypes.processWindowRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.uc.ServiceTypeAnalysis(ctx, sc, w))
}

// TopPianos
// @Summary Pianos with the most alerts
// @Tags Analytics
// @Produce json
// @Security Bearer
// @Param start_date query string false "Inclusive start"
// @Param end_date query string false "Exclusive end"
// @Param limit query int false "Default 10, max 100"
// @Success 200 {array} model.TopEntity
// @Failure 400 {object} response.Resp "Bad Request"
// @Router /analytics/top-pianos [GET]
func (h *Handler) TopPianos(c *gin.Context) {
	ctx := c.Request.Context()

	w, n, sc, err := h.processTopPianosRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.analytics.delivery.http.TopPianos.processTopPianosRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	response.OK(c, h.uc.TopPianos(ctx, sc, w, n))
}

// Compare
// @Summary Compare two periods
// @Description Without dates, compares the current calendar month with the previous one
// @Tags Analytics
// @Produce json
// @Security Bearer
// @Param current_start query string false "Current window start"
// @Param current_end query string false "Current window end"
// @Param previous_start query string false "Previous window start"
// @Param previous_end query string false "Previous window end"
// @Success 200 {object} model.PeriodComparison
// @Failure 400 {object} response.Resp "Bad Request"
// @Router /analytics/compare [GET]
func (h *Handler) Compare(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCompareRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.analytics.delivery.http.Compare.processCompareRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if req.monthly() {
		response.OK(c, h.uc.MonthlyComparison(ctx, sc))
		return
	}

	cur, prev, _ := req.toWindows()
	response.OK(c, h.uc.ComparePeriods(ctx, sc, cur, prev))
}
