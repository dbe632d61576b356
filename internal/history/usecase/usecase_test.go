package usecase

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"alert-srv/internal/history"
	"alert-srv/internal/history/repository"
	"alert-srv/internal/model"
	"alert-srv/internal/notification"
	"alert-srv/pkg/log"
	"alert-srv/pkg/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

var adminScope = model.Scope{UserID: "u1", OrganizationID: "org-1", Role: model.RoleAdmin}

type fakeRepo struct {
	mu       sync.Mutex
	alerts   map[string]model.PersistedAlert
	seq      int
	stats    repository.Statistics
	statsErr error
	since    time.Time
	getOpts  repository.GetOptions
	total    int64
	listErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{alerts: map[string]model.PersistedAlert{}}
}

func (f *fakeRepo) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.PersistedAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a := opts.Alert
	for _, ex := range f.alerts {
		if !ex.Status.IsOpen() || ex.AlertType != a.AlertType {
			continue
		}
		if a.AlertType == model.AlertTypeStock && *ex.InventoryID == *a.InventoryID {
			return model.PersistedAlert{}, repository.ErrDuplicate
		}
		if a.PianoID != nil && ex.PianoID != nil && *ex.PianoID == *a.PianoID {
			return model.PersistedAlert{}, repository.ErrDuplicate
		}
	}

	f.seq++
	a.ID = string(rune('a' + f.seq - 1))
	a.OrganizationID = sc.OrganizationID
	f.alerts[a.ID] = a
	return a, nil
}

func (f *fakeRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.PersistedAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.alerts[id]
	if !ok {
		return model.PersistedAlert{}, repository.ErrNotFound
	}
	return a, nil
}

func (f *fakeRepo) FindActiveStock(ctx context.Context, sc model.Scope, inventoryID string) (model.PersistedAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.alerts {
		if a.AlertType == model.AlertTypeStock && a.Status.IsOpen() && *a.InventoryID == inventoryID {
			return a, nil
		}
	}
	return model.PersistedAlert{}, repository.ErrNotFound
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, sc model.Scope, opts repository.UpdateStatusOptions) (model.PersistedAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.alerts[opts.ID]
	if !ok || a.Status != opts.From {
		return model.PersistedAlert{}, repository.ErrNotFound
	}
	a.Status = opts.To
	switch opts.To {
	case model.AlertStatusAcknowledged:
		a.AcknowledgedAt = &opts.At
	case model.AlertStatusResolved:
		a.ResolvedAt = &opts.At
		if opts.ResolvedByServiceID != "" {
			a.ResolvedByServiceID = &opts.ResolvedByServiceID
		}
	}
	f.alerts[a.ID] = a
	return a, nil
}

func (f *fakeRepo) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.PersistedAlert, paginator.Paginator, error) {
	f.getOpts = opts
	return nil, paginator.Paginator{Total: f.total}, nil
}

func (f *fakeRepo) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.PersistedAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}

	fl := opts.Filter
	var out []model.PersistedAlert
	for _, a := range f.alerts {
		if len(fl.Statuses) > 0 && !slices.Contains(fl.Statuses, a.Status) {
			continue
		}
		if len(fl.Types) > 0 && !slices.Contains(fl.Types, a.AlertType) {
			continue
		}
		if fl.PianoID != "" && (a.PianoID == nil || *a.PianoID != fl.PianoID) {
			continue
		}
		if !fl.Window.Start.IsZero() && a.CreatedAt.Before(fl.Window.Start) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepo) rows(pianoID string, t model.AlertType) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, a := range f.alerts {
		if a.PianoID != nil && *a.PianoID == pianoID && a.AlertType == t {
			n++
		}
	}
	return n
}

func (f *fakeRepo) Statistics(ctx context.Context, sc model.Scope, since time.Time) (repository.Statistics, error) {
	f.since = since
	return f.stats, f.statsErr
}

type fakeNotifier struct {
	notification.UseCase
	mu        sync.Mutex
	published []model.PersistedAlert
	err       error
}

func (f *fakeNotifier) PublishAlert(ctx context.Context, sc model.Scope, a model.PersistedAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, a)
	return f.err
}

func newTestUseCase(repo *fakeRepo, n *fakeNotifier) *usecase {
	return &usecase{l: log.NewNop(), repo: repo, notifier: n, clock: func() time.Time { return now }}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name    string
		sc      model.Scope
		input   history.CreateInput
		wantErr error
	}{
		{
			name:  "valid",
			sc:    adminScope,
			input: history.CreateInput{AlertType: model.AlertTypeTuning, Priority: model.AlertPriorityUrgent, Message: "tune", PianoID: "p1"},
		},
		{
			name:    "viewer",
			sc:      model.Scope{OrganizationID: "org-1", Role: model.RoleViewer},
			input:   history.CreateInput{AlertType: model.AlertTypeTuning, Priority: model.AlertPriorityUrgent, Message: "tune"},
			wantErr: history.ErrPermissionDenied,
		},
		{
			name:    "stock type",
			sc:      adminScope,
			input:   history.CreateInput{AlertType: model.AlertTypeStock, Priority: model.AlertPriorityUrgent, Message: "x"},
			wantErr: history.ErrInvalidAlertType,
		},
		{
			name:    "bad priority",
			sc:      adminScope,
			input:   history.CreateInput{AlertType: model.AlertTypeRepair, Priority: "ok", Message: "x"},
			wantErr: history.ErrInvalidPriority,
		},
		{
			name:    "blank message",
			sc:      adminScope,
			input:   history.CreateInput{AlertType: model.AlertTypeRepair, Priority: model.AlertPriorityPending, Message: "  "},
			wantErr: history.ErrMessageRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &fakeNotifier{}
			uc := newTestUseCase(newFakeRepo(), n)

			got, err := uc.Create(context.Background(), tt.sc, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, n.published)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.AlertStatusActive, got.Status)
			assert.Equal(t, now, got.CreatedAt)
			assert.Equal(t, "u1", *got.UserID)
			assert.Len(t, n.published, 1)
		})
	}
}

func TestCreate_PublishFailureDoesNotFail(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), &fakeNotifier{err: errors.New("redis down")})

	_, err := uc.Create(context.Background(), adminScope, history.CreateInput{
		AlertType: model.AlertTypeRepair, Priority: model.AlertPriorityUrgent, Message: "broken string",
	})

	assert.NoError(t, err)
}

func TestLifecycle(t *testing.T) {
	tests := []struct {
		name    string
		steps   []model.AlertStatus
		wantErr error
	}{
		{name: "acknowledge then resolve", steps: []model.AlertStatus{model.AlertStatusAcknowledged, model.AlertStatusResolved}},
		{name: "acknowledge then dismiss", steps: []model.AlertStatus{model.AlertStatusAcknowledged, model.AlertStatusDismissed}},
		{name: "resolve directly", steps: []model.AlertStatus{model.AlertStatusResolved}},
		{name: "dismiss directly", steps: []model.AlertStatus{model.AlertStatusDismissed}},
		{name: "resolved is terminal", steps: []model.AlertStatus{model.AlertStatusResolved, model.AlertStatusDismissed}, wantErr: history.ErrInvalidTransition},
		{name: "dismissed is terminal", steps: []model.AlertStatus{model.AlertStatusDismissed, model.AlertStatusAcknowledged}, wantErr: history.ErrInvalidTransition},
		{name: "no double acknowledge", steps: []model.AlertStatus{model.AlertStatusAcknowledged, model.AlertStatusAcknowledged}, wantErr: history.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(newFakeRepo(), &fakeNotifier{})
			ctx := context.Background()
			a, err := uc.Create(ctx, adminScope, history.CreateInput{
				AlertType: model.AlertTypeTuning, Priority: model.AlertPriorityPending, Message: "m", PianoID: "p1",
			})
			require.NoError(t, err)

			for i, step := range tt.steps {
				switch step {
				case model.AlertStatusAcknowledged:
					a, err = uc.Acknowledge(ctx, adminScope, a.ID)
				case model.AlertStatusResolved:
					a, err = uc.Resolve(ctx, adminScope, history.ResolveInput{ID: a.ID, ResolvedByServiceID: "svc-1"})
				case model.AlertStatusDismissed:
					a, err = uc.Dismiss(ctx, adminScope, a.ID)
				}
				if i == len(tt.steps)-1 && tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, step, a.Status)
				assert.Equal(t, step == model.AlertStatusResolved, a.ResolvedAt != nil)
			}
		})
	}
}

func TestTransition_NotFoundAndViewer(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), &fakeNotifier{})

	_, err := uc.Acknowledge(context.Background(), adminScope, "missing")
	assert.ErrorIs(t, err, history.ErrAlertNotFound)

	_, err = uc.Dismiss(context.Background(), model.Scope{OrganizationID: "org-1", Role: model.RoleViewer}, "missing")
	assert.ErrorIs(t, err, history.ErrPermissionDenied)
}

func TestCreateStock_Duplicate(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), &fakeNotifier{})
	ip := history.CreateStockInput{InventoryID: "inv-1", Priority: model.AlertPriorityUrgent, Message: "low", CurrentStock: 3, Threshold: 10}

	first, err := uc.CreateStock(context.Background(), adminScope, ip)
	require.NoError(t, err)
	assert.Equal(t, 3, *first.CurrentStock)

	_, err = uc.CreateStock(context.Background(), adminScope, ip)
	assert.ErrorIs(t, err, history.ErrDuplicateAlert)

	found, err := uc.FindActiveStock(context.Background(), adminScope, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = uc.FindActiveStock(context.Background(), adminScope, "inv-2")
	assert.ErrorIs(t, err, history.ErrAlertNotFound)
}

func TestGet_ClampsAndHasMore(t *testing.T) {
	repo := newFakeRepo()
	repo.total = 120
	uc := newTestUseCase(repo, &fakeNotifier{})

	out, err := uc.Get(context.Background(), adminScope, history.GetInput{Limit: 500, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, history.MaxLimit, repo.getOpts.Limit)
	assert.Equal(t, 0, repo.getOpts.Offset)
	assert.True(t, out.HasMore)

	out, err = uc.Get(context.Background(), adminScope, history.GetInput{Offset: 100})
	require.NoError(t, err)
	assert.Equal(t, history.DefaultLimit, repo.getOpts.Limit)
	assert.False(t, out.HasMore)
}

func TestStatistics(t *testing.T) {
	repo := newFakeRepo()
	repo.stats = repository.Statistics{ActiveUrgent: 2, ActivePending: 5, ResolvedSince: 7, AvgResolutionDays: 3.6}
	uc := newTestUseCase(repo, &fakeNotifier{})

	got, err := uc.Statistics(context.Background(), adminScope)

	require.NoError(t, err)
	assert.Equal(t, history.Statistics{ActiveUrgent: 2, ActivePending: 5, ResolvedLast30Days: 7, AvgResolutionDays: 4}, got)
	assert.Equal(t, now.AddDate(0, 0, -30), repo.since)
}

func TestRecordMaintenance(t *testing.T) {
	uc := newTestUseCase(newFakeRepo(), &fakeNotifier{})
	alerts := []model.Alert{
		{Kind: model.KindMaintenance, Message: "tune", Payload: model.Payload{Kind: model.KindMaintenance, Maintenance: &model.MaintenancePayload{
			PianoID: "p1", ServiceType: model.ServiceTuning, Level: model.LevelUrgent, DaysSince: 300,
		}}},
		{Kind: model.KindMaintenance, Message: "regulate", Payload: model.Payload{Kind: model.KindMaintenance, Maintenance: &model.MaintenancePayload{
			PianoID: "p1", ServiceType: model.ServiceRegulation, Level: model.LevelPending, DaysSince: 800,
		}}},
		{Kind: model.KindInvoice, Payload: model.Payload{Kind: model.KindInvoice}},
	}

	out, err := uc.RecordMaintenance(context.Background(), adminScope, alerts)
	require.NoError(t, err)
	require.Len(t, out.Created, 2)
	assert.Equal(t, model.AlertPriorityUrgent, out.Created[0].Priority)
	assert.Equal(t, model.AlertTypeRegulation, out.Created[1].AlertType)
	assert.Equal(t, 300, *out.Created[0].DaysSinceLastService)

	out, err = uc.RecordMaintenance(context.Background(), adminScope, alerts)
	require.NoError(t, err)
	assert.Empty(t, out.Created)
	assert.Equal(t, 2, out.Skipped)
}

func TestRecordMaintenance_HonoursOperatorActions(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo, &fakeNotifier{})
	ctx := context.Background()
	lastTuned := now.AddDate(0, 0, -300)
	tuning := []model.Alert{{Kind: model.KindMaintenance, Message: "tune", Payload: model.Payload{Kind: model.KindMaintenance, Maintenance: &model.MaintenancePayload{
		PianoID: "p1", ServiceType: model.ServiceTuning, Level: model.LevelUrgent, DaysSince: 300, Since: lastTuned,
	}}}}

	out, err := uc.RecordMaintenance(ctx, adminScope, tuning)
	require.NoError(t, err)
	require.Len(t, out.Created, 1)
	id := out.Created[0].ID

	_, err = uc.Acknowledge(ctx, adminScope, id)
	require.NoError(t, err)

	out, err = uc.RecordMaintenance(ctx, adminScope, tuning)
	require.NoError(t, err)
	assert.Empty(t, out.Created, "acknowledged alert still counts as open")
	assert.Equal(t, 1, out.Skipped)

	_, err = uc.Dismiss(ctx, adminScope, id)
	require.NoError(t, err)

	out, err = uc.RecordMaintenance(ctx, adminScope, tuning)
	require.NoError(t, err)
	assert.Empty(t, out.Created, "dismissed condition stays silent")
	assert.Equal(t, 1, out.Skipped)
	assert.Equal(t, 1, repo.rows("p1", model.AlertTypeTuning))

	// A tuning after the dismissal starts a new overdue period.
	uc.clock = func() time.Time { return now.AddDate(0, 10, 0) }
	retuned := []model.Alert{{Kind: model.KindMaintenance, Message: "tune", Payload: model.Payload{Kind: model.KindMaintenance, Maintenance: &model.MaintenancePayload{
		PianoID: "p1", ServiceType: model.ServiceTuning, Level: model.LevelUrgent, DaysSince: 280, Since: now.AddDate(0, 0, 1),
	}}}}

	out, err = uc.RecordMaintenance(ctx, adminScope, retuned)
	require.NoError(t, err)
	require.Len(t, out.Created, 1)
	assert.Equal(t, 2, repo.rows("p1", model.AlertTypeTuning))
}

func TestRecordMaintenance_DismissalLookupFails(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("db down")
	uc := newTestUseCase(repo, &fakeNotifier{})
	alerts := []model.Alert{{Kind: model.KindMaintenance, Payload: model.Payload{Kind: model.KindMaintenance, Maintenance: &model.MaintenancePayload{
		PianoID: "p1", ServiceType: model.ServiceRepair, Level: model.LevelUrgent, Since: now.AddDate(-1, 0, 0),
	}}}}

	_, err := uc.RecordMaintenance(context.Background(), adminScope, alerts)

	assert.Error(t, err)
	assert.Equal(t, 0, repo.rows("p1", model.AlertTypeRepair))
}
