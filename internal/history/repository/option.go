package repository

import (
	"time"

	"alert-srv/internal/model"
)

type Filter struct {
	Statuses    []model.AlertStatus
	Priorities  []model.AlertPriority
	Types       []model.AlertType
	PianoID     string
	InventoryID string
	Window      model.Window
}

// CreateOptions carries the alert to insert; ID and CreatedAt are filled by the repository when empty.
type CreateOptions struct {
	Alert model.PersistedAlert
}

// UpdateStatusOptions moves an alert from From to To.
// The update only applies while the stored status still equals From.
type UpdateStatusOptions struct {
	ID                  string
	From                model.AlertStatus
	To                  model.AlertStatus
	At                  time.Time
	ResolvedByServiceID string
}

type GetOptions struct {
	Filter Filter
	Limit  int
	Offset int
}

type ListOptions struct {
	Filter Filter
}

type Statistics struct {
	ActiveUrgent      int
	ActivePending     int
	ResolvedSince     int
	AvgResolutionDays float64
}
