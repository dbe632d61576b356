package history

import (
	"alert-srv/internal/model"
	"alert-srv/pkg/paginator"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

type Filter struct {
	Statuses    []model.AlertStatus
	Priorities  []model.AlertPriority
	Types       []model.AlertType
	PianoID     string
	InventoryID string
}

type CreateInput struct {
	AlertType            model.AlertType
	Priority             model.AlertPriority
	Message              string
	PianoID              string
	ClientID             string
	DaysSinceLastService *int
}

type CreateStockInput struct {
	InventoryID  string
	Priority     model.AlertPriority
	Message      string
	CurrentStock int
	Threshold    int
}

type GetInput struct {
	Filter Filter
	Limit  int
	Offset int
}

type GetOutput struct {
	Alerts    []model.PersistedAlert
	Paginator paginator.Paginator
	HasMore   bool
}

type ListInput struct {
	Filter Filter
	Window model.Window
}

type ResolveInput struct {
	ID                  string
	ResolvedByServiceID string
}

type Statistics struct {
	ActiveUrgent       int
	ActivePending      int
	ResolvedLast30Days int
	AvgResolutionDays  int
}

type RecordOutput struct {
	Created []model.PersistedAlert
	Skipped int
}
