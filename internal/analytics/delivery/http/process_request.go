package http

import (
	"net/http"

	"alert-srv/internal/model"
	"alert-srv/pkg/errors"
	"alert-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = errors.NewHTTPError(http.StatusBadRequest, "Invalid request")

func (h *Handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errors.NewUnauthorizedHTTPError()
	}
	return sc, nil
}

func (h *Handler) processWindowRequest(c *gin.Context) (model.Window, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return model.Window{}, model.Scope{}, err
	}

	var req windowReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return model.Window{}, model.Scope{}, errInvalidRequest
	}
	w, err := req.toWindow()
	if err != nil {
		return model.Window{}, model.Scope{}, h.mapError(err)
	}

	return w, sc, nil
}

func (h *Handler) processTimeSeriesRequest(c *gin.Context) (model.Window, model.Granularity, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return model.Window{}, "", model.Scope{}, err
	}

	var req timeSeriesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return model.Window{}, "", model.Scope{}, errInvalidRequest
	}
	if err := req.validate(); err != nil {
		return model.Window{}, "", model.Scope{}, h.mapError(err)
	}
	w, err := req.toWindow()
	if err != nil {
		return model.Window{}, "", model.Scope{}, h.mapError(err)
	}

	return w, req.granularity(), sc, nil
}

func (h *Handler) processTrendsRequest(c *gin.Context) (trendsReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return trendsReq{}, model.Scope{}, err
	}

	var req trendsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return trendsReq{}, model.Scope{}, errInvalidRequest
	}
	if err := req.validate(); err != nil {
		return trendsReq{}, model.Scope{}, h.mapError(err)
	}

	return req, sc, nil
}

func (h *Handler) processTopPianosRequest(c *gin.Context) (model.Window, int, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return model.Window{}, 0, model.Scope{}, err
	}

	var req topPianosReq
	if err := c.ShouldBindQuery(&req); err != nil || req.Limit < 0 {
		return model.Window{}, 0, model.Scope{}, errInvalidRequest
	}
	w, err := req.toWindow()
	if err != nil {
		return model.Window{}, 0, model.Scope{}, h.mapError(err)
	}

	return w, req.Limit, sc, nil
}

func (h *Handler) processCompareRequest(c *gin.Context) (compareReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return compareReq{}, model.Scope{}, err
	}

	var req compareReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return compareReq{}, model.Scope{}, errInvalidRequest
	}
	if !req.monthly() {
		if _, _, err := req.toWindows(); err != nil {
			return compareReq{}, model.Scope{}, h.mapError(err)
		}
	}

	return req, sc, nil
}
