package http

import (
	"alert-srv/internal/alert"
	"alert-srv/internal/model"
	"alert-srv/pkg/response"
)

type dashboardResp struct {
	Alerts      []model.Alert     `json:"alerts"`
	Stats       model.Stats       `json:"stats"`
	ByCategory  model.ByCategory  `json:"by_category"`
	Degraded    []string          `json:"degraded,omitempty"`
	EvaluatedAt response.DateTime `json:"evaluated_at"`
}

func (h *Handler) newDashboardResp(o alert.EvaluateOutput) dashboardResp {
	return dashboardResp{
		Alerts:      o.Alerts,
		Stats:       o.Stats,
		ByCategory:  o.ByCategory,
		Degraded:    o.Degraded,
		EvaluatedAt: response.DateTime(o.EvaluatedAt),
	}
}
