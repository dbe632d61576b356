package http

import (
	"net/http"

	"alert-srv/internal/model"
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

func (h *Handler) processUpdateRequest(c *gin.Context) (updateReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return updateReq{}, model.Scope{}, err
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return updateReq{}, model.Scope{}, errors.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}
	if err := req.validate(); err != nil {
		return updateReq{}, model.Scope{}, err
	}

	return req, sc, nil
}
