package repository

import (
	"context"

	"alert-srv/internal/model"
)

// Repository reads the business entities the rule evaluators run on.
//
//go:generate mockery --name Repository
type Repository interface {
	ListPianos(ctx context.Context, sc model.Scope) ([]model.Piano, error)
	ListAppointments(ctx context.Context, sc model.Scope, opts ListAppointmentsOptions) ([]model.Appointment, error)
	ListInvoices(ctx context.Context, sc model.Scope) ([]model.Invoice, error)
	ListQuotes(ctx context.Context, sc model.Scope) ([]model.Quote, error)
	// ListOrganizations returns every organization owning pianos or linked inventory.
	ListOrganizations(ctx context.Context) ([]string, error)
}
