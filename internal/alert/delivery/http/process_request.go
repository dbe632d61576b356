package http

import (
	"alert-srv/internal/model"
	"alert-srv/pkg/errors"
	"alert-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processDashboardRequest(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errors.NewUnauthorizedHTTPError()
	}
	return sc, nil
}
