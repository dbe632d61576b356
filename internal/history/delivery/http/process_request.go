package http

import (
	"net/http"

	"alert-srv/internal/history"
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

func (h *Handler) processGetRequest(c *gin.Context) (getReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return getReq{}, model.Scope{}, err
	}

	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return getReq{}, model.Scope{}, errInvalidRequest
	}
	if err := req.validate(); err != nil {
		return getReq{}, model.Scope{}, h.mapError(err)
	}

	return req, sc, nil
}

func (h *Handler) processCreateRequest(c *gin.Context) (createReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return createReq{}, model.Scope{}, err
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return createReq{}, model.Scope{}, errInvalidRequest
	}

	return req, sc, nil
}

func (h *Handler) processIDRequest(c *gin.Context) (string, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return "", model.Scope{}, err
	}

	id := c.Param("id")
	if id == "" {
		return "", model.Scope{}, h.mapError(history.ErrAlertNotFound)
	}

	return id, sc, nil
}

func (h *Handler) processResolveRequest(c *gin.Context) (history.ResolveInput, model.Scope, error) {
	id, sc, err := h.processIDRequest(c)
	if err != nil {
		return history.ResolveInput{}, model.Scope{}, err
	}

	// The body is optional.
	var req resolveReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return history.ResolveInput{}, model.Scope{}, errInvalidRequest
		}
	}

	return history.ResolveInput{ID: id, ResolvedByServiceID: req.ResolvedByServiceID}, sc, nil
}
