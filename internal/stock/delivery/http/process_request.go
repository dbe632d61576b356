package http

import (
	"net/http"

	"alert-srv/internal/model"
	"alert-srv/internal/stock"
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

func (h *Handler) processResolveRequest(c *gin.Context) (stock.ResolveInput, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return stock.ResolveInput{}, model.Scope{}, err
	}

	var req resolveReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return stock.ResolveInput{}, model.Scope{}, errInvalidRequest
		}
	}

	return stock.ResolveInput{ID: c.Param("id"), ResolvedByServiceID: req.ResolvedByServiceID}, sc, nil
}

func (h *Handler) processLinkRequest(c *gin.Context) (linkReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return linkReq{}, model.Scope{}, err
	}

	var req linkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return linkReq{}, model.Scope{}, errInvalidRequest
	}
	if err := req.validate(); err != nil {
		return linkReq{}, model.Scope{}, err
	}

	return req, sc, nil
}
