package usecase

import (
	"context"
	"sync"

	"alert-srv/internal/alert"
	"alert-srv/internal/alert/repository"
	"alert-srv/internal/alert/rule"
	"alert-srv/internal/model"

	"golang.org/x/sync/errgroup"
)

// Evaluate reads the four entity collections concurrently and consolidates the rule output.
// A collection that cannot be read is evaluated as empty and reported in Degraded.
func (uc *implUseCase) Evaluate(ctx context.Context, sc model.Scope) (alert.EvaluateOutput, error) {
	if sc.OrganizationID == "" {
		return alert.EvaluateOutput{}, alert.ErrOrganizationRequired
	}

	now := uc.clock()
	th := uc.thresholds(ctx, sc)

	var (
		pianos   []model.Piano
		appts    []model.Appointment
		invoices []model.Invoice
		quotes   []model.Quote

		mu       sync.Mutex
		degraded []string
	)
	degrade := func(name string, err error) {
		uc.l.Warnf(ctx, "internal.alert.usecase.Evaluate.%s: %v", name, err)
		mu.Lock()
		degraded = append(degraded, name)
		mu.Unlock()
	}

	// readers never return an error to the group so one failure does not cancel the others
	var g errgroup.Group
	g.Go(func() error {
		res, err := uc.repo.ListPianos(ctx, sc)
		if err != nil {
			degrade(alert.CollectionPianos, err)
			return nil
		}
		pianos = res
		return nil
	})
	g.Go(func() error {
		today := rule.StartOfDay(now)
		res, err := uc.repo.ListAppointments(ctx, sc, repository.ListAppointmentsOptions{
			From: today,
			To:   today.AddDate(0, 0, 8),
		})
		if err != nil {
			degrade(alert.CollectionAppointments, err)
			return nil
		}
		appts = res
		return nil
	})
	g.Go(func() error {
		res, err := uc.repo.ListInvoices(ctx, sc)
		if err != nil {
			degrade(alert.CollectionInvoices, err)
			return nil
		}
		invoices = res
		return nil
	})
	g.Go(func() error {
		res, err := uc.repo.ListQuotes(ctx, sc)
		if err != nil {
			degrade(alert.CollectionQuotes, err)
			return nil
		}
		quotes = res
		return nil
	})
	_ = g.Wait()

	out := alert.EvaluateOutput{
		Consolidated: rule.Consolidate(
			rule.Maintenance(pianos, now, th),
			rule.Appointments(appts, now),
			rule.Invoices(invoices, now),
			rule.Quotes(quotes, now),
		),
		Degraded:    sortedCollections(degraded),
		EvaluatedAt: now,
	}

	return out, nil
}

// Maintenance returns the maintenance alerts for the organization's pianos.
func (uc *implUseCase) Maintenance(ctx context.Context, sc model.Scope) ([]model.Alert, error) {
	if sc.OrganizationID == "" {
		return nil, alert.ErrOrganizationRequired
	}

	pianos, err := uc.repo.ListPianos(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Maintenance.ListPianos: %v", err)
		return nil, alert.ErrEntitiesUnavailable
	}

	return rule.Maintenance(pianos, uc.clock(), uc.thresholds(ctx, sc)), nil
}

func (uc *implUseCase) thresholds(ctx context.Context, sc model.Scope) model.Thresholds {
	s, err := uc.settings.GetMine(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "internal.alert.usecase.thresholds.GetMine: %v", err)
		return model.DefaultThresholds()
	}
	return s.Thresholds
}

var collectionOrder = []string{
	alert.CollectionPianos,
	alert.CollectionAppointments,
	alert.CollectionInvoices,
	alert.CollectionQuotes,
}

func sortedCollections(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	res := make([]string, 0, len(names))
	for _, n := range collectionOrder {
		if set[n] {
			res = append(res, n)
		}
	}
	return res
}
