package http

import (
	"alert-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Get returns the organization-wide alert settings.
// @Summary Organization alert settings
// @Tags Alert Settings
// @Produce json
// @Security Bearer
// @Success 200 {object} settingsResp
// @Failure 401 {object} response.Resp "Unauthorized"
// @Router /settings/alerts [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.settings.delivery.http.Get.processScope: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	s, err := h.uc.Get(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.settings.delivery.http.Get.Get: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSettingsResp(s))
}

// Update changes the organization-wide alert settings. Admin only.
// @Summary Update organization alert settings
// @Tags Alert Settings
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body updateReq true "Fields to change"
// @Success 200 {object} settingsResp
// @Failure 400 {object} response.Resp "Bad Request"
// @Failure 403 {object} response.Resp "Forbidden"
// @Router /settings/alerts [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.settings.delivery.http.Update.processUpdateRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	s, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.settings.delivery.http.Update.Update: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSettingsResp(s))
}

// GetMine returns the caller's effective alert settings.
// @Summary My alert settings
// @Tags Alert Settings
// @Produce json
// @Security Bearer
// @Success 200 {object} settingsResp
// @Router /settings/alerts/me [GET]
func (h *Handler) GetMine(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.settings.delivery.http.GetMine.processScope: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	s, err := h.uc.GetMine(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "internal.settings.delivery.http.GetMine.GetMine: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSettingsResp(s))
}

// UpdateMine stores the caller's own alert settings.
// @Summary Update my alert settings
// @Tags Alert Settings
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body updateReq true "Fields to change"
// @Success 200 {object} settingsResp
// @Failure 400 {object} response.Resp "Bad Request"
// @Router /settings/alerts/me [PUT]
func (h *Handler) UpdateMine(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.settings.delivery.http.UpdateMine.processUpdateRequest: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	s, err := h.uc.UpdateMine(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.settings.delivery.http.UpdateMine.UpdateMine: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSettingsResp(s))
}
