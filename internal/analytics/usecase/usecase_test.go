package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"alert-srv/internal/history"
	"alert-srv/internal/model"
	"alert-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	sc  = model.Scope{OrganizationID: "org-1", Role: model.RoleTechnician}
)

type fakeHistory struct {
	history.UseCase
	alerts  []model.PersistedAlert
	err     error
	windows []model.Window
	cancel  context.CancelFunc
}

func (f *fakeHistory) List(ctx context.Context, sc model.Scope, ip history.ListInput) ([]model.PersistedAlert, error) {
	f.windows = append(f.windows, ip.Window)
	if f.cancel != nil {
		f.cancel()
	}
	if f.err != nil {
		return nil, f.err
	}

	var out []model.PersistedAlert
	for _, a := range f.alerts {
		if ip.Window.Contains(a.CreatedAt) {
			out = append(out, a)
		}
	}
	return out, nil
}

func newTestUseCase(h *fakeHistory) *implUseCase {
	return &implUseCase{
		l:       log.NewNop(),
		history: h,
		clock:   func() time.Time { return now },
	}
}

func ptr[T any](v T) *T { return &v }

type alertOpt func(*model.PersistedAlert)

func resolvedAfter(d time.Duration) alertOpt {
	return func(a *model.PersistedAlert) {
		a.Status = model.AlertStatusResolved
		a.ResolvedAt = ptr(a.CreatedAt.Add(d))
	}
}

func withStatus(s model.AlertStatus) alertOpt {
	return func(a *model.PersistedAlert) { a.Status = s }
}

func onPiano(id string) alertOpt {
	return func(a *model.PersistedAlert) { a.PianoID = ptr(id) }
}

func newAlert(t model.AlertType, p model.AlertPriority, created time.Time, opts ...alertOpt) model.PersistedAlert {
	a := model.PersistedAlert{
		ID:             fmt.Sprintf("%s-%d", t, created.UnixNano()),
		OrganizationID: sc.OrganizationID,
		AlertType:      t,
		Priority:       p,
		Status:         model.AlertStatusActive,
		CreatedAt:      created,
	}
	for _, o := range opts {
		o(&a)
	}
	return a
}

func TestPerformanceMetrics_ResolutionRate(t *testing.T) {
	var alerts []model.PersistedAlert
	for i := 0; i < 10; i++ {
		var opts []alertOpt
		switch {
		case i < 4:
			opts = append(opts, resolvedAfter(time.Duration(i+2)*day))
		case i == 4:
			opts = append(opts, withStatus(model.AlertStatusDismissed))
		case i == 5:
			opts = append(opts, withStatus(model.AlertStatusAcknowledged))
		}
		alerts = append(alerts, newAlert(model.AlertTypeTuning, model.AlertPriorityPending, now.Add(-time.Duration(i+1)*time.Hour), opts...))
	}
	uc := newTestUseCase(&fakeHistory{alerts: alerts})

	m := uc.PerformanceMetrics(context.Background(), sc, model.Window{})

	assert.Equal(t, model.PerformanceMetrics{
		Total:        10,
		Active:       4,
		Acknowledged: 1,
		Resolved:     4,
		Dismissed:    1,
		// 4 resolved of 10
		ResolutionRate: 40,
		// (2+3+4+5)/4 = 3.5
		AverageResolutionTime: 4,
	}, m)
}

func TestPerformanceMetrics_Empty(t *testing.T) {
	uc := newTestUseCase(&fakeHistory{})

	m := uc.PerformanceMetrics(context.Background(), sc, model.Window{})

	assert.Equal(t, model.PerformanceMetrics{}, m)
}

func TestDegradesToZero(t *testing.T) {
	h := &fakeHistory{
		alerts: []model.PersistedAlert{newAlert(model.AlertTypeRepair, model.AlertPriorityUrgent, now.Add(-time.Hour))},
		err:    history.ErrStoreUnavailable,
	}
	uc := newTestUseCase(h)
	ctx := context.Background()

	assert.Equal(t, model.PerformanceMetrics{}, uc.PerformanceMetrics(ctx, sc, model.Window{}))
	assert.Empty(t, uc.TimeSeries(ctx, sc, model.Window{}, model.GranularityDay))
	assert.Empty(t, uc.Distribution(ctx, sc, model.Window{}))
	assert.Empty(t, uc.Trends(ctx, sc, model.TrendMonth, 3))
	assert.Empty(t, uc.ServiceTypeAnalysis(ctx, sc, model.Window{}))
	assert.Empty(t, uc.TopPianos(ctx, sc, model.Window{}, 5))
	assert.Equal(t, model.PeriodComparison{}, uc.MonthlyComparison(ctx, sc))
}

func TestTimeSeries(t *testing.T) {
	// 2026-04-05 is a Sunday.
	sat := time.Date(2026, 4, 4, 9, 0, 0, 0, time.UTC)
	sun := time.Date(2026, 4, 5, 9, 0, 0, 0, time.UTC)
	wed := time.Date(2026, 4, 8, 9, 0, 0, 0, time.UTC)
	march := time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC)

	alerts := []model.PersistedAlert{
		newAlert(model.AlertTypeTuning, model.AlertPriorityUrgent, wed, resolvedAfter(day)),
		newAlert(model.AlertTypeTuning, model.AlertPriorityPending, sun),
		newAlert(model.AlertTypeRepair, model.AlertPriorityUrgent, sat),
		newAlert(model.AlertTypeStock, model.AlertPriorityPending, march, resolvedAfter(day)),
	}

	tests := []struct {
		name string
		g    model.Granularity
		want []model.TimeSeriesBucket
	}{
		{
			name: "day",
			g:    model.GranularityDay,
			want: []model.TimeSeriesBucket{
				{Key: "2026-03-20", Pending: 1, Resolved: 1},
				{Key: "2026-04-04", Urgent: 1},
				{Key: "2026-04-05", Pending: 1},
				{Key: "2026-04-08", Urgent: 1, Resolved: 1},
			},
		},
		{
			name: "week starts on sunday",
			g:    model.GranularityWeek,
			want: []model.TimeSeriesBucket{
				{Key: "2026-03-15", Pending: 1, Resolved: 1},
				{Key: "2026-03-29", Urgent: 1},
				{Key: "2026-04-05", Urgent: 1, Pending: 1, Resolved: 1},
			},
		},
		{
			name: "month",
			g:    model.GranularityMonth,
			want: []model.TimeSeriesBucket{
				{Key: "2026-03", Pending: 1, Resolved: 1},
				{Key: "2026-04", Urgent: 2, Pending: 1, Resolved: 1},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeHistory{alerts: alerts})
			assert.Equal(t, tc.want, uc.TimeSeries(context.Background(), sc, model.Window{}, tc.g))
		})
	}
}

func TestDistribution(t *testing.T) {
	at := now.Add(-time.Hour)
	alerts := []model.PersistedAlert{
		newAlert(model.AlertTypeTuning, model.AlertPriorityUrgent, at),
		newAlert(model.AlertTypeTuning, model.AlertPriorityUrgent, at.Add(time.Minute)),
		newAlert(model.AlertTypeTuning, model.AlertPriorityPending, at.Add(2*time.Minute)),
		newAlert(model.AlertTypeStock, model.AlertPriorityPending, at.Add(3*time.Minute)),
		newAlert(model.AlertTypeRepair, model.AlertPriorityUrgent, at.Add(4*time.Minute)),
		newAlert(model.AlertTypeRegulation, model.AlertPriorityPending, at.Add(5*time.Minute)),
	}
	uc := newTestUseCase(&fakeHistory{alerts: alerts})

	got := uc.Distribution(context.Background(), sc, model.Window{})

	assert.Equal(t, []model.TypeDistribution{
		{AlertType: model.AlertTypeTuning, Count: 3, Percentage: 50},
		{AlertType: model.AlertTypeRegulation, Count: 1, Percentage: 17},
		{AlertType: model.AlertTypeRepair, Count: 1, Percentage: 17},
		{AlertType: model.AlertTypeStock, Count: 1, Percentage: 17},
	}, got)
}

func TestTrends(t *testing.T) {
	alerts := []model.PersistedAlert{
		newAlert(model.AlertTypeTuning, model.AlertPriorityUrgent, time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), resolvedAfter(2*day)),
		newAlert(model.AlertTypeTuning, model.AlertPriorityUrgent, time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)),
		newAlert(model.AlertTypeRepair, model.AlertPriorityUrgent, time.Date(2026, 2, 28, 23, 0, 0, 0, time.UTC)),
		newAlert(model.AlertTypeRepair, model.AlertPriorityUrgent, time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)),
	}

	t.Run("month", func(t *testing.T) {
		uc := newTestUseCase(&fakeHistory{alerts: alerts})

		got := uc.Trends(context.Background(), sc, model.TrendMonth, 3)

		require.Len(t, got, 3)
		assert.Equal(t, []string{"Feb 2026", "Mar 2026", "Apr 2026"}, []string{got[0].Label, got[1].Label, got[2].Label})
		assert.Equal(t, 1, got[0].AlertsCreated)
		assert.Equal(t, 0, got[1].AlertsCreated)
		assert.Equal(t, 2, got[2].AlertsCreated)
		assert.Equal(t, 1, got[2].AlertsResolved)
		assert.Equal(t, 50, got[2].ResolutionRate)
		assert.Equal(t, 2, got[2].AverageResolutionTime)
		assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), got[2].Start)
		assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), got[2].End)
	})

	t.Run("quarter crosses year", func(t *testing.T) {
		uc := newTestUseCase(&fakeHistory{alerts: alerts})

		got := uc.Trends(context.Background(), sc, model.TrendQuarter, 3)

		require.Len(t, got, 3)
		assert.Equal(t, "Q4 2025", got[0].Label)
		assert.Equal(t, "Q1 2026", got[1].Label)
		assert.Equal(t, "Q2 2026", got[2].Label)
		assert.Equal(t, []int{1, 1, 2}, []int{got[0].AlertsCreated, got[1].AlertsCreated, got[2].AlertsCreated})
	})

	t.Run("year", func(t *testing.T) {
		uc := newTestUseCase(&fakeHistory{alerts: alerts})

		got := uc.Trends(context.Background(), sc, model.TrendYear, 2)

		require.Len(t, got, 2)
		assert.Equal(t, "2025", got[0].Label)
		assert.Equal(t, "2026", got[1].Label)
		assert.Equal(t, 1, got[0].AlertsCreated)
		assert.Equal(t, 3, got[1].AlertsCreated)
	})

	t.Run("defaults and clamps", func(t *testing.T) {
		h := &fakeHistory{}
		uc := newTestUseCase(h)

		assert.Len(t, uc.Trends(context.Background(), sc, "weird", 0), 12)
		assert.Len(t, uc.Trends(context.Background(), sc, model.TrendMonth, 1000), 60)
	})
}

func TestTrends_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := &fakeHistory{cancel: cancel}
	uc := newTestUseCase(h)

	got := uc.Trends(ctx, sc, model.TrendMonth, 12)

	assert.Empty(t, got)
	assert.Len(t, h.windows, 1)
}

func TestServiceTypeAnalysis(t *testing.T) {
	at := now.Add(-48 * time.Hour)
	alerts := []model.PersistedAlert{
		newAlert(model.AlertTypeRegulation, model.AlertPriorityPending, at),
		newAlert(model.AlertTypeRegulation, model.AlertPriorityUrgent, at.Add(time.Minute), resolvedAfter(day)),
		newAlert(model.AlertTypeRepair, model.AlertPriorityUrgent, at.Add(2*time.Minute)),
		newAlert(model.AlertTypeStock, model.AlertPriorityUrgent, at.Add(3*time.Minute)),
	}
	uc := newTestUseCase(&fakeHistory{alerts: alerts})

	got := uc.ServiceTypeAnalysis(context.Background(), sc, model.Window{})

	assert.Equal(t, []model.ServiceTypeAnalysis{
		{ServiceType: model.AlertTypeRegulation, Total: 2, Urgent: 1, Pending: 1, Resolved: 1, AverageResolutionTime: 1},
		{ServiceType: model.AlertTypeRepair, Total: 1, Urgent: 1},
		{ServiceType: model.AlertTypeTuning},
	}, got)
}

func TestTopPianos(t *testing.T) {
	at := now.Add(-time.Hour)
	var alerts []model.PersistedAlert
	add := func(piano string, p model.AlertPriority) {
		alerts = append(alerts, newAlert(model.AlertTypeTuning, p, at.Add(time.Duration(len(alerts))*time.Minute), onPiano(piano)))
	}
	add("p-b", model.AlertPriorityUrgent)
	add("p-b", model.AlertPriorityPending)
	add("p-a", model.AlertPriorityUrgent)
	add("p-c", model.AlertPriorityPending)
	add("p-a", model.AlertPriorityUrgent)
	add("p-a", model.AlertPriorityPending)
	alerts = append(alerts, newAlert(model.AlertTypeStock, model.AlertPriorityUrgent, at.Add(time.Hour)))

	uc := newTestUseCase(&fakeHistory{alerts: alerts})

	got := uc.TopPianos(context.Background(), sc, model.Window{}, 2)

	assert.Equal(t, []model.TopEntity{
		{EntityID: "p-a", Total: 3, Urgent: 2, Pending: 1},
		{EntityID: "p-b", Total: 2, Urgent: 1, Pending: 1},
	}, got)
}

func TestComparePeriods(t *testing.T) {
	cur := model.Window{Start: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)}
	prev := model.Window{Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), End: cur.Start}
	alerts := []model.PersistedAlert{
		newAlert(model.AlertTypeTuning, model.AlertPriorityUrgent, time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), resolvedAfter(day)),
		newAlert(model.AlertTypeTuning, model.AlertPriorityUrgent, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), resolvedAfter(5*day)),
		newAlert(model.AlertTypeTuning, model.AlertPriorityUrgent, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)),
		newAlert(model.AlertTypeTuning, model.AlertPriorityUrgent, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)),
		newAlert(model.AlertTypeTuning, model.AlertPriorityUrgent, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)),
	}

	t.Run("explicit windows", func(t *testing.T) {
		uc := newTestUseCase(&fakeHistory{alerts: alerts})

		got := uc.ComparePeriods(context.Background(), sc, cur, prev)

		assert.Equal(t, 1, got.Current.Total)
		assert.Equal(t, 4, got.Previous.Total)
		assert.Equal(t, model.MetricsDelta{Total: -3, ResolutionRate: 75, AverageResolutionTime: -4}, got.Delta)
	})

	t.Run("monthly", func(t *testing.T) {
		h := &fakeHistory{alerts: alerts}
		uc := newTestUseCase(h)

		got := uc.MonthlyComparison(context.Background(), sc)

		assert.Equal(t, []model.Window{cur, prev}, h.windows)
		assert.Equal(t, -3, got.Delta.Total)
	})
}

func TestBucketKey(t *testing.T) {
	tests := []struct {
		in   time.Time
		g    model.Granularity
		want string
	}{
		{time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), model.GranularityWeek, "2025-12-28"},
		{time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC), model.GranularityWeek, "2026-01-04"},
		{time.Date(2026, 1, 10, 23, 59, 0, 0, time.UTC), model.GranularityWeek, "2026-01-04"},
		{time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC), model.GranularityMonth, "2026-12"},
		{time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC), model.GranularityDay, "2026-12-31"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, bucketKey(tc.in, tc.g), "%s %s", tc.in, tc.g)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, percent(0, 0))
	assert.Equal(t, 40, percent(4, 10))
	assert.Equal(t, 33, percent(1, 3))
	assert.Equal(t, 67, percent(2, 3))
}
