package http

import (
	"alert-srv/internal/model"
	"alert-srv/internal/report"
	"alert-srv/pkg/errors"
	"alert-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errors.NewUnauthorizedHTTPError()
	}
	return sc, nil
}

func (h *Handler) processAssembleRequest(c *gin.Context) (report.AssembleInput, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return report.AssembleInput{}, model.Scope{}, err
	}

	var req assembleReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return report.AssembleInput{}, model.Scope{}, errInvalidRequest
	}
	ip, err := req.toInput()
	if err != nil {
		return report.AssembleInput{}, model.Scope{}, err
	}

	return ip, sc, nil
}

func (h *Handler) processExportRequest(c *gin.Context) (report.AssembleInput, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return report.AssembleInput{}, model.Scope{}, err
	}

	var req assembleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return report.AssembleInput{}, model.Scope{}, errInvalidRequest
	}
	ip, err := req.toInput()
	if err != nil {
		return report.AssembleInput{}, model.Scope{}, err
	}

	return ip, sc, nil
}
