package model

import "time"

type AlertType string

const (
	AlertTypeTuning     AlertType = "tuning"
	AlertTypeRegulation AlertType = "regulation"
	AlertTypeRepair     AlertType = "repair"
	AlertTypeStock      AlertType = "stock"
)

// MaintenanceAlertTypes lists the alert types produced by piano maintenance.
var MaintenanceAlertTypes = []AlertType{AlertTypeTuning, AlertTypeRegulation, AlertTypeRepair}

func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeTuning, AlertTypeRegulation, AlertTypeRepair, AlertTypeStock:
		return true
	}
	return false
}

type AlertPriority string

const (
	AlertPriorityUrgent  AlertPriority = "urgent"
	AlertPriorityPending AlertPriority = "pending"
)

func (p AlertPriority) IsValid() bool {
	return p == AlertPriorityUrgent || p == AlertPriorityPending
}

type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
	AlertStatusDismissed    AlertStatus = "dismissed"
)

func (s AlertStatus) IsValid() bool {
	switch s {
	case AlertStatusActive, AlertStatusAcknowledged, AlertStatusResolved, AlertStatusDismissed:
		return true
	}
	return false
}

// IsOpen reports whether the alert still needs attention.
func (s AlertStatus) IsOpen() bool {
	return s == AlertStatusActive || s == AlertStatusAcknowledged
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Resolved and dismissed are terminal.
func (s AlertStatus) CanTransitionTo(next AlertStatus) bool {
	switch s {
	case AlertStatusActive:
		return next == AlertStatusAcknowledged || next == AlertStatusResolved || next == AlertStatusDismissed
	case AlertStatusAcknowledged:
		return next == AlertStatusResolved || next == AlertStatusDismissed
	}
	return false
}

// PersistedAlert is an alert with an identity and a lifecycle.
// ResolvedAt is set if and only if Status is resolved.
type PersistedAlert struct {
	ID                   string        `json:"id"`
	OrganizationID       string        `json:"organization_id"`
	UserID               *string       `json:"user_id,omitempty"`
	AlertType            AlertType     `json:"alert_type"`
	Priority             AlertPriority `json:"priority"`
	Status               AlertStatus   `json:"status"`
	Message              string        `json:"message"`
	PianoID              *string       `json:"piano_id,omitempty"`
	ClientID             *string       `json:"client_id,omitempty"`
	InventoryID          *string       `json:"inventory_id,omitempty"`
	DaysSinceLastService *int          `json:"days_since_last_service,omitempty"`
	CurrentStock         *int          `json:"current_stock,omitempty"`
	Threshold            *int          `json:"threshold,omitempty"`
	AutoOrderID          *string       `json:"auto_order_id,omitempty"`
	ResolvedByServiceID  *string       `json:"resolved_by_service_id,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	AcknowledgedAt       *time.Time    `json:"acknowledged_at,omitempty"`
	ResolvedAt           *time.Time    `json:"resolved_at,omitempty"`
}

// HasOrder reports whether a remediation order is already linked.
func (a PersistedAlert) HasOrder() bool {
	return a.AutoOrderID != nil && *a.AutoOrderID != ""
}
