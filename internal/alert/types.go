package alert

import (
	"time"

	"alert-srv/internal/model"
)

// Collection names reported in EvaluateOutput.Degraded.
const (
	CollectionPianos       = "pianos"
	CollectionAppointments = "appointments"
	CollectionInvoices     = "invoices"
	CollectionQuotes       = "quotes"
)

type EvaluateOutput struct {
	model.Consolidated
	// Degraded lists the collections that could not be read during this pass.
	Degraded    []string
	EvaluatedAt time.Time
}
