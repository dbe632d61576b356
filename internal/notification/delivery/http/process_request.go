package http

import (
	"net/http"

	"alert-srv/internal/model"
	"alert-srv/pkg/errors"
	"alert-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processDigestRequest(c *gin.Context) (digestReq, model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return digestReq{}, model.Scope{}, errors.NewUnauthorizedHTTPError()
	}

	var req digestReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return digestReq{}, model.Scope{}, errors.NewHTTPError(http.StatusBadRequest, "Invalid request")
		}
	}

	return req, sc, nil
}
