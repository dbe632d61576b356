package postgres

import (
	"time"

	"alert-srv/internal/model"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type pianoRow struct {
	ID        string      `boil:"id"`
	ClientID  string      `boil:"client_id"`
	Brand     null.String `boil:"brand"`
	Model     null.String `boil:"model"`
	Condition string      `boil:"condition"`
	CreatedAt time.Time   `boil:"created_at"`
}

func (r pianoRow) toModel() model.Piano {
	return model.Piano{
		ID:        r.ID,
		ClientID:  r.ClientID,
		Brand:     r.Brand.String,
		Model:     r.Model.String,
		Condition: model.PianoCondition(r.Condition),
		CreatedAt: r.CreatedAt,
	}
}

type serviceRow struct {
	ID          string    `boil:"id"`
	PianoID     string    `boil:"piano_id"`
	ServiceType string    `boil:"service_type"`
	ServiceDate time.Time `boil:"service_date"`
}

type appointmentRow struct {
	ID          string      `boil:"id"`
	ClientID    null.String `boil:"client_id"`
	Title       null.String `boil:"title"`
	ScheduledAt time.Time   `boil:"scheduled_at"`
}

type documentRow struct {
	ID       string          `boil:"id"`
	Number   null.String     `boil:"number"`
	ClientID null.String     `boil:"client_id"`
	Status   string          `boil:"status"`
	Deadline null.Time       `boil:"deadline"`
	Total    decimal.Decimal `boil:"total"`
}

func (r documentRow) toInvoice() model.Invoice {
	return model.Invoice{
		ID:       r.ID,
		Number:   r.Number.String,
		ClientID: r.ClientID.String,
		Status:   model.DocumentStatus(r.Status),
		DueDate:  r.Deadline.Ptr(),
		Total:    r.Total,
	}
}

func (r documentRow) toQuote() model.Quote {
	return model.Quote{
		ID:         r.ID,
		Number:     r.Number.String,
		ClientID:   r.ClientID.String,
		Status:     model.DocumentStatus(r.Status),
		ValidUntil: r.Deadline.Ptr(),
		Total:      r.Total,
	}
}

type organizationRow struct {
	OrganizationID string `boil:"organization_id"`
}
