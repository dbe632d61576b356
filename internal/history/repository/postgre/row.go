package postgres

import (
	"time"

	"alert-srv/internal/model"

	"github.com/aarondl/null/v8"
)

const alertColumns = `id, organization_id, user_id, alert_type, priority, status, message,
	piano_id, client_id, inventory_id, days_since_last_service, current_stock, threshold,
	auto_order_id, resolved_by_service_id, created_at, acknowledged_at, resolved_at`

type alertRow struct {
	ID                   string      `boil:"id"`
	OrganizationID       string      `boil:"organization_id"`
	UserID               null.String `boil:"user_id"`
	AlertType            string      `boil:"alert_type"`
	Priority             string      `boil:"priority"`
	Status               string      `boil:"status"`
	Message              string      `boil:"message"`
	PianoID              null.String `boil:"piano_id"`
	ClientID             null.String `boil:"client_id"`
	InventoryID          null.String `boil:"inventory_id"`
	DaysSinceLastService null.Int    `boil:"days_since_last_service"`
	CurrentStock         null.Int    `boil:"current_stock"`
	Threshold            null.Int    `boil:"threshold"`
	AutoOrderID          null.String `boil:"auto_order_id"`
	ResolvedByServiceID  null.String `boil:"resolved_by_service_id"`
	CreatedAt            time.Time   `boil:"created_at"`
	AcknowledgedAt       null.Time   `boil:"acknowledged_at"`
	ResolvedAt           null.Time   `boil:"resolved_at"`
}

func (r alertRow) toModel() model.PersistedAlert {
	return model.PersistedAlert{
		ID:                   r.ID,
		OrganizationID:       r.OrganizationID,
		UserID:               r.UserID.Ptr(),
		AlertType:            model.AlertType(r.AlertType),
		Priority:             model.AlertPriority(r.Priority),
		Status:               model.AlertStatus(r.Status),
		Message:              r.Message,
		PianoID:              r.PianoID.Ptr(),
		ClientID:             r.ClientID.Ptr(),
		InventoryID:          r.InventoryID.Ptr(),
		DaysSinceLastService: r.DaysSinceLastService.Ptr(),
		CurrentStock:         r.CurrentStock.Ptr(),
		Threshold:            r.Threshold.Ptr(),
		AutoOrderID:          r.AutoOrderID.Ptr(),
		ResolvedByServiceID:  r.ResolvedByServiceID.Ptr(),
		CreatedAt:            r.CreatedAt,
		AcknowledgedAt:       r.AcknowledgedAt.Ptr(),
		ResolvedAt:           r.ResolvedAt.Ptr(),
	}
}

func toModels(rows []alertRow) []model.PersistedAlert {
	res := make([]model.PersistedAlert, len(rows))
	for i, r := range rows {
		res[i] = r.toModel()
	}
	return res
}

type statisticsRow struct {
	ActiveUrgent      int64   `boil:"active_urgent"`
	ActivePending     int64   `boil:"active_pending"`
	ResolvedSince     int64   `boil:"resolved_since"`
	AvgResolutionDays float64 `boil:"avg_resolution_days"`
}

type countRow struct {
	Count int64 `boil:"count"`
}
