package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"alert-srv/internal/alert"
	"alert-srv/internal/alert/repository"
	"alert-srv/internal/model"
	"alert-srv/internal/settings"
	"alert-srv/pkg/log"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

type fakeRepo struct {
	pianos   []model.Piano
	appts    []model.Appointment
	invoices []model.Invoice
	quotes   []model.Quote

	pianosErr error
	apptsErr  error
	invErr    error
	quotesErr error

	apptOpts repository.ListAppointmentsOptions

	orgs    []string
	orgsErr error
}

func (f *fakeRepo) ListPianos(ctx context.Context, sc model.Scope) ([]model.Piano, error) {
	return f.pianos, f.pianosErr
}

func (f *fakeRepo) ListAppointments(ctx context.Context, sc model.Scope, opts repository.ListAppointmentsOptions) ([]model.Appointment, error) {
	f.apptOpts = opts
	return f.appts, f.apptsErr
}

func (f *fakeRepo) ListInvoices(ctx context.Context, sc model.Scope) ([]model.Invoice, error) {
	return f.invoices, f.invErr
}

func (f *fakeRepo) ListQuotes(ctx context.Context, sc model.Scope) ([]model.Quote, error) {
	return f.quotes, f.quotesErr
}

func (f *fakeRepo) ListOrganizations(ctx context.Context) ([]string, error) {
	return f.orgs, f.orgsErr
}

type fakeSettings struct {
	settings.UseCase
	th  model.Thresholds
	err error
}

func (f fakeSettings) GetMine(ctx context.Context, sc model.Scope) (model.AlertSettings, error) {
	if f.err != nil {
		return model.AlertSettings{}, f.err
	}
	s := model.DefaultAlertSettings(sc.OrganizationID)
	s.Thresholds = f.th
	return s, nil
}

func newTestUseCase(repo repository.Repository, st settings.UseCase) *implUseCase {
	return &implUseCase{
		l:        log.NewNop(),
		repo:     repo,
		settings: st,
		clock:    func() time.Time { return now },
	}
}

func TestEvaluate(t *testing.T) {
	due := now.AddDate(0, 0, -3)
	repo := &fakeRepo{
		pianos: []model.Piano{{ID: "p1", CreatedAt: now.AddDate(0, 0, -300)}},
		appts:  []model.Appointment{{ID: "a1", Date: now.Add(2 * time.Hour)}},
		invoices: []model.Invoice{
			{ID: "i1", Status: model.DocumentSent, DueDate: &due, Total: decimal.NewFromInt(80)},
		},
		quotes: []model.Quote{{ID: "q1", Status: model.DocumentSent}},
	}
	uc := newTestUseCase(repo, fakeSettings{th: model.DefaultThresholds()})

	out, err := uc.Evaluate(context.Background(), model.Scope{OrganizationID: "org-1"})

	require.NoError(t, err)
	assert.Empty(t, out.Degraded)
	assert.Equal(t, now, out.EvaluatedAt)
	assert.Equal(t, model.Stats{Total: 4, Urgent: 3, Info: 1}, out.Stats)
	assert.Equal(t, "maintenance-p1-0", out.Alerts[0].ID)
	assert.Equal(t, "quote-pending-0", out.Alerts[3].ID)
	assert.Equal(t, time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC), repo.apptOpts.From)
	assert.Equal(t, time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC), repo.apptOpts.To)
}

func TestEvaluate_DegradesFailedCollections(t *testing.T) {
	repo := &fakeRepo{
		pianos:    []model.Piano{{ID: "p1", Condition: model.ConditionNeedsRepair, CreatedAt: now}},
		invErr:    errors.New("connection refused"),
		quotesErr: errors.New("timeout"),
	}
	uc := newTestUseCase(repo, fakeSettings{th: model.DefaultThresholds()})

	out, err := uc.Evaluate(context.Background(), model.Scope{OrganizationID: "org-1"})

	require.NoError(t, err)
	assert.Equal(t, []string{alert.CollectionInvoices, alert.CollectionQuotes}, out.Degraded)
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, model.KindMaintenance, out.Alerts[0].Kind)
}

func TestEvaluate_UsesSettingsThresholds(t *testing.T) {
	repo := &fakeRepo{
		pianos: []model.Piano{{ID: "p1", CreatedAt: now.AddDate(0, 0, -40)}},
	}

	uc := newTestUseCase(repo, fakeSettings{th: model.Thresholds{
		TuningPending: 30, TuningUrgent: 90, RegulationPending: 730, RegulationUrgent: 1095,
	}})
	out, err := uc.Evaluate(context.Background(), model.Scope{OrganizationID: "org-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Stats.Warning)

	uc = newTestUseCase(repo, fakeSettings{err: errors.New("db down")})
	out, err = uc.Evaluate(context.Background(), model.Scope{OrganizationID: "org-1"})
	require.NoError(t, err)
	assert.Zero(t, out.Stats.Total)
}

func TestEvaluate_RequiresOrganization(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, fakeSettings{})

	_, err := uc.Evaluate(context.Background(), model.Scope{})

	assert.ErrorIs(t, err, alert.ErrOrganizationRequired)
}

func TestMaintenance(t *testing.T) {
	repo := &fakeRepo{pianos: []model.Piano{{ID: "p1", CreatedAt: now.AddDate(0, 0, -200)}}}
	uc := newTestUseCase(repo, fakeSettings{th: model.DefaultThresholds()})

	got, err := uc.Maintenance(context.Background(), model.Scope{OrganizationID: "org-1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.PriorityWarning, got[0].Priority)

	repo.pianosErr = errors.New("boom")
	_, err = uc.Maintenance(context.Background(), model.Scope{OrganizationID: "org-1"})
	assert.ErrorIs(t, err, alert.ErrEntitiesUnavailable)
}

func TestOrganizations(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{orgs: []string{"org-1", "org-2"}}, fakeSettings{})
	got, err := uc.Organizations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"org-1", "org-2"}, got)

	uc = newTestUseCase(&fakeRepo{orgsErr: errors.New("down")}, fakeSettings{})
	_, err = uc.Organizations(context.Background())
	assert.ErrorIs(t, err, alert.ErrEntitiesUnavailable)
}
