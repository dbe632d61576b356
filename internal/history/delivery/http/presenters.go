package http

import (
	"strings"

	"alert-srv/internal/history"
	"alert-srv/internal/model"
	"alert-srv/pkg/paginator"
	"alert-srv/pkg/response"
)

type getReq struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Type     string `form:"type"`
	PianoID  string `form:"piano_id"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r getReq) validate() error {
	for _, s := range splitList(r.Status) {
		if !model.AlertStatus(s).IsValid() {
			return history.ErrInvalidStatus
		}
	}
	for _, p := range splitList(r.Priority) {
		if !model.AlertPriority(p).IsValid() {
			return history.ErrInvalidPriority
		}
	}
	for _, t := range splitList(r.Type) {
		if !model.AlertType(t).IsValid() {
			return history.ErrInvalidAlertType
		}
	}
	return nil
}

func (r getReq) toInput() history.GetInput {
	var f history.Filter
	for _, s := range splitList(r.Status) {
		f.Statuses = append(f.Statuses, model.AlertStatus(s))
	}
	for _, p := range splitList(r.Priority) {
		f.Priorities = append(f.Priorities, model.AlertPriority(p))
	}
	for _, t := range splitList(r.Type) {
		f.Types = append(f.Types, model.AlertType(t))
	}
	f.PianoID = r.PianoID

	return history.GetInput{
		Filter: f,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// splitList accepts both repeated and comma separated values.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

type createReq struct {
	AlertType            string `json:"alert_type" binding:"required"`
	Priority             string `json:"priority" binding:"required"`
	Message              string `json:"message" binding:"required"`
	PianoID              string `json:"piano_id"`
	ClientID             string `json:"client_id"`
	DaysSinceLastService *int   `json:"days_since_last_service"`
}

func (r createReq) toInput() history.CreateInput {
	return history.CreateInput{
		AlertType:            model.AlertType(r.AlertType),
		Priority:             model.AlertPriority(r.Priority),
		Message:              r.Message,
		PianoID:              r.PianoID,
		ClientID:             r.ClientID,
		DaysSinceLastService: r.DaysSinceLastService,
	}
}

type resolveReq struct {
	ResolvedByServiceID string `json:"resolved_by_service_id"`
}

type alertResp struct {
	ID                   string             `json:"id"`
	AlertType            string             `json:"alert_type"`
	Priority             string             `json:"priority"`
	Status               string             `json:"status"`
	Message              string             `json:"message"`
	PianoID              *string            `json:"piano_id,omitempty"`
	ClientID             *string            `json:"client_id,omitempty"`
	InventoryID          *string            `json:"inventory_id,omitempty"`
	DaysSinceLastService *int               `json:"days_since_last_service,omitempty"`
	CurrentStock         *int               `json:"current_stock,omitempty"`
	Threshold            *int               `json:"threshold,omitempty"`
	AutoOrderID          *string            `json:"auto_order_id,omitempty"`
	ResolvedByServiceID  *string            `json:"resolved_by_service_id,omitempty"`
	CreatedAt            response.DateTime  `json:"created_at"`
	AcknowledgedAt       *response.DateTime `json:"acknowledged_at,omitempty"`
	ResolvedAt           *response.DateTime `json:"resolved_at,omitempty"`
}

func newAlertResp(a model.PersistedAlert) alertResp {
	r := alertResp{
		ID:                   a.ID,
		AlertType:            string(a.AlertType),
		Priority:             string(a.Priority),
		Status:               string(a.Status),
		Message:              a.Message,
		PianoID:              a.PianoID,
		ClientID:             a.ClientID,
		InventoryID:          a.InventoryID,
		DaysSinceLastService: a.DaysSinceLastService,
		CurrentStock:         a.CurrentStock,
		Threshold:            a.Threshold,
		AutoOrderID:          a.AutoOrderID,
		ResolvedByServiceID:  a.ResolvedByServiceID,
		CreatedAt:            response.DateTime(a.CreatedAt),
	}
	if a.AcknowledgedAt != nil {
		t := response.DateTime(*a.AcknowledgedAt)
		r.AcknowledgedAt = &t
	}
	if a.ResolvedAt != nil {
		t := response.DateTime(*a.ResolvedAt)
		r.ResolvedAt = &t
	}
	return r
}

type getResp struct {
	Alerts    []alertResp                 `json:"alerts"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
	HasMore   bool                        `json:"has_more"`
}

func (h *Handler) newGetResp(o history.GetOutput) getResp {
	alerts := make([]alertResp, 0, len(o.Alerts))
	for _, a := range o.Alerts {
		alerts = append(alerts, newAlertResp(a))
	}
	return getResp{
		Alerts:    alerts,
		Paginator: o.Paginator.ToResponse(),
		HasMore:   o.HasMore,
	}
}

type statisticsResp struct {
	ActiveUrgent       int `json:"active_urgent"`
	ActivePending      int `json:"active_pending"`
	ResolvedLast30Days int `json:"resolved_last_30_days"`
	AvgResolutionDays  int `json:"avg_resolution_days"`
}

func (h *Handler) newStatisticsResp(s history.Statistics) statisticsResp {
	return statisticsResp{
		ActiveUrgent:       s.ActiveUrgent,
		ActivePending:      s.ActivePending,
		ResolvedLast30Days: s.ResolvedLast30Days,
		AvgResolutionDays:  s.AvgResolutionDays,
	}
}
