package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PianoCondition string

const (
	ConditionGood        PianoCondition = "good"
	ConditionFair        PianoCondition = "fair"
	ConditionPoor        PianoCondition = "poor"
	ConditionNeedsRepair PianoCondition = "needs_repair"
)

type ServiceType string

const (
	ServiceTuning     ServiceType = "tuning"
	ServiceRegulation ServiceType = "regulation"
	ServiceRepair     ServiceType = "repair"
)

type Piano struct {
	ID        string         `json:"id"`
	ClientID  string         `json:"client_id"`
	Brand     string         `json:"brand"`
	Model     string         `json:"model"`
	Condition PianoCondition `json:"condition"`
	CreatedAt time.Time      `json:"created_at"`
	Services  []Service      `json:"services"`
}

type Service struct {
	ID   string      `json:"id"`
	Type ServiceType `json:"type"`
	Date time.Time   `json:"date"`
}

type Appointment struct {
	ID       string    `json:"id"`
	ClientID string    `json:"client_id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
}

type DocumentStatus string

const (
	DocumentDraft    DocumentStatus = "draft"
	DocumentSent     DocumentStatus = "sent"
	DocumentPaid     DocumentStatus = "paid"
	DocumentAccepted DocumentStatus = "accepted"
	DocumentRejected DocumentStatus = "rejected"
)

type Invoice struct {
	ID       string          `json:"id"`
	Number   string          `json:"number"`
	ClientID string          `json:"client_id"`
	Status   DocumentStatus  `json:"status"`
	DueDate  *time.Time      `json:"due_date,omitempty"`
	Total    decimal.Decimal `json:"total"`
}

type Quote struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"`
	ClientID   string          `json:"client_id"`
	Status     DocumentStatus  `json:"status"`
	ValidUntil *time.Time      `json:"valid_until,omitempty"`
	Total      decimal.Decimal `json:"total"`
}
