package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertKind is the domain an ephemeral alert was computed from.
type AlertKind string

const (
	KindMaintenance AlertKind = "maintenance"
	KindAppointment AlertKind = "appointment"
	KindInvoice     AlertKind = "invoice"
	KindQuote       AlertKind = "quote"
)

// Priority of an ephemeral alert.
type Priority string

const (
	PriorityUrgent  Priority = "urgent"
	PriorityWarning Priority = "warning"
	PriorityInfo    Priority = "info"
)

// Rank orders priorities; lower is more important.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityWarning:
		return 1
	default:
		return 2
	}
}

// Alert is computed on read from current entity state and never persisted.
type Alert struct {
	ID                 string    `json:"id"`
	Kind               AlertKind `json:"kind"`
	Priority           Priority  `json:"priority"`
	Title              string    `json:"title"`
	Message            string    `json:"message"`
	ActionRef          string    `json:"action_ref"`
	Payload            Payload   `json:"payload"`
	DaysSinceReference int       `json:"days_since_reference"`
}

// Payload carries exactly one of its members, the one matching Kind.
type Payload struct {
	Kind         AlertKind           `json:"kind"`
	Maintenance  *MaintenancePayload `json:"maintenance,omitempty"`
	Appointments *AppointmentPayload `json:"appointments,omitempty"`
	Invoices     *DocumentPayload    `json:"invoices,omitempty"`
	Quotes       *DocumentPayload    `json:"quotes,omitempty"`
}

type MaintenancePayload struct {
	PianoID     string           `json:"piano_id"`
	ClientID    string           `json:"client_id"`
	Brand       string           `json:"brand,omitempty"`
	Model       string           `json:"model,omitempty"`
	ServiceType ServiceType      `json:"service_type"`
	Level       MaintenanceLevel `json:"level"`
	DaysSince   int              `json:"days_since"`
	// Since is the reference date DaysSince counts from.
	Since time.Time `json:"since"`
}

type AppointmentPayload struct {
	Count          int      `json:"count"`
	AppointmentIDs []string `json:"appointment_ids"`
}

// DocumentPayload summarises a set of invoices or quotes.
type DocumentPayload struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
	IDs   []string        `json:"ids"`
}

// MaintenanceLevel is the due-state of a piano for one service type.
type MaintenanceLevel string

const (
	LevelUrgent  MaintenanceLevel = "urgent"
	LevelPending MaintenanceLevel = "pending"
	LevelOK      MaintenanceLevel = "ok"
)

// Stats counts consolidated alerts by priority.
type Stats struct {
	Total   int `json:"total"`
	Urgent  int `json:"urgent"`
	Warning int `json:"warning"`
	Info    int `json:"info"`
}

// ByCategory groups alerts by kind, keeping emission order.
type ByCategory struct {
	Maintenance  []Alert `json:"maintenance"`
	Appointments []Alert `json:"appointments"`
	Invoices     []Alert `json:"invoices"`
	Quotes       []Alert `json:"quotes"`
}

// Consolidated is the merged, priority-sorted output of one evaluation pass.
type Consolidated struct {
	Alerts     []Alert    `json:"alerts"`
	Stats      Stats      `json:"stats"`
	ByCategory ByCategory `json:"by_category"`
}
