package postgres

import (
	"context"

	"alert-srv/internal/alert/repository"
	"alert-srv/internal/model"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) ListPianos(ctx context.Context, sc model.Scope) ([]model.Piano, error) {
	var pianos []pianoRow
	if err := queries.Raw(listPianosQuery, sc.OrganizationID).Bind(ctx, r.db, &pianos); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.ListPianos.BindPianos: %v", err)
		return nil, errors.Wrap(err, "list pianos")
	}

	var services []serviceRow
	if err := queries.Raw(listServicesQuery, sc.OrganizationID).Bind(ctx, r.db, &services); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.ListPianos.BindServices: %v", err)
		return nil, errors.Wrap(err, "list services")
	}

	byPiano := make(map[string][]model.Service, len(pianos))
	for _, s := range services {
		byPiano[s.PianoID] = append(byPiano[s.PianoID], model.Service{
			ID:   s.ID,
			Type: model.ServiceType(s.ServiceType),
			Date: s.ServiceDate,
		})
	}

	res := make([]model.Piano, len(pianos))
	for i, p := range pianos {
		res[i] = p.toModel()
		res[i].Services = byPiano[p.ID]
	}

	return res, nil
}

func (r *implRepository) ListAppointments(ctx context.Context, sc model.Scope, opts repository.ListAppointmentsOptions) ([]model.Appointment, error) {
	var rows []appointmentRow
	if err := queries.Raw(listAppointmentsQuery, sc.OrganizationID, opts.From, opts.To).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.ListAppointments.Bind: %v", err)
		return nil, errors.Wrap(err, "list appointments")
	}

	res := make([]model.Appointment, len(rows))
	for i, a := range rows {
		res[i] = model.Appointment{
			ID:       a.ID,
			ClientID: a.ClientID.String,
			Title:    a.Title.String,
			Date:     a.ScheduledAt,
		}
	}

	return res, nil
}

func (r *implRepository) ListInvoices(ctx context.Context, sc model.Scope) ([]model.Invoice, error) {
	var rows []documentRow
	if err := queries.Raw(listInvoicesQuery, sc.OrganizationID).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.ListInvoices.Bind: %v", err)
		return nil, errors.Wrap(err, "list invoices")
	}

	res := make([]model.Invoice, len(rows))
	for i, d := range rows {
		res[i] = d.toInvoice()
	}

	return res, nil
}

func (r *implRepository) ListQuotes(ctx context.Context, sc model.Scope) ([]model.Quote, error) {
	var rows []documentRow
	if err := queries.Raw(listQuotesQuery, sc.OrganizationID).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.ListQuotes.Bind: %v", err)
		return nil, errors.Wrap(err, "list quotes")
	}

	res := make([]model.Quote, len(rows))
	for i, d := range rows {
		res[i] = d.toQuote()
	}

	return res, nil
}

func (r *implRepository) ListOrganizations(ctx context.Context) ([]string, error) {
	var rows []organizationRow
	if err := queries.Raw(listOrganizationsQuery).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgres.ListOrganizations.Bind: %v", err)
		return nil, errors.Wrap(err, "list organizations")
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.OrganizationID
	}
	return ids, nil
}
