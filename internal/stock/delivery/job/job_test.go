package job

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"alert-srv/internal/alert"
	"alert-srv/internal/history"
	"alert-srv/internal/model"
	"alert-srv/internal/notification"
	"alert-srv/internal/settings"
	"alert-srv/internal/stock"
	"alert-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, s)
}

func (r *recorder) sorted() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]string(nil), r.calls...)
	sort.Strings(out)
	return out
}

type fakeStock struct {
	stock.UseCase
	rec *recorder
	err error
}

func (f *fakeStock) RunPass(ctx context.Context, sc model.Scope) (stock.PassResult, error) {
	f.rec.add("pass:" + sc.OrganizationID + ":" + sc.Role)
	return stock.PassResult{Checked: 1}, f.err
}

type fakeAlert struct {
	alert.UseCase
	rec     *recorder
	orgs    []string
	orgsErr error
	alerts  map[string][]model.Alert
}

func (f *fakeAlert) Organizations(ctx context.Context) ([]string, error) {
	return f.orgs, f.orgsErr
}

func (f *fakeAlert) Maintenance(ctx context.Context, sc model.Scope) ([]model.Alert, error) {
	f.rec.add("maintenance:" + sc.OrganizationID)
	return f.alerts[sc.OrganizationID], nil
}

type fakeHistory struct {
	history.UseCase
	rec *recorder
}

func (f *fakeHistory) RecordMaintenance(ctx context.Context, sc model.Scope, alerts []model.Alert) (history.RecordOutput, error) {
	f.rec.add("record:" + sc.OrganizationID)
	return history.RecordOutput{Created: make([]model.PersistedAlert, len(alerts))}, nil
}

type fakeNotification struct {
	notification.UseCase
	rec *recorder
}

func (f *fakeNotification) SendWeeklyDigest(ctx context.Context, sc model.Scope, ip notification.DigestInput) (notification.DigestOutput, error) {
	f.rec.add("digest:" + sc.OrganizationID)
	return notification.DigestOutput{Sent: true, AlertCount: 1}, nil
}

type fakeSettings struct {
	settings.UseCase
	list  []model.AlertSettings
	err   error
	calls int
}

func (f *fakeSettings) ListDigestEnabled(ctx context.Context) ([]model.AlertSettings, error) {
	f.calls++
	return f.list, f.err
}

// 2026-04-06 is a Monday.
var monday = time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC)

func newTestJob(rec *recorder, a *fakeAlert, s *fakeSettings) *Job {
	j := New(log.NewNop(),
		&fakeStock{rec: rec},
		a,
		&fakeHistory{rec: rec},
		&fakeNotification{rec: rec},
		s,
		Config{Interval: time.Hour, Concurrency: 2, DigestHour: 8},
	)
	j.clock = func() time.Time { return monday }
	return j
}

func TestTick_RunsEveryOrganization(t *testing.T) {
	rec := &recorder{}
	a := &fakeAlert{
		rec:  rec,
		orgs: []string{"org-a", "org-b", "org-c"},
		alerts: map[string][]model.Alert{
			"org-b": {{ID: "m-1", Kind: model.KindMaintenance}},
		},
	}
	j := newTestJob(rec, a, &fakeSettings{})

	j.Tick(context.Background())

	assert.Equal(t, []string{
		"maintenance:org-a",
		"maintenance:org-b",
		"maintenance:org-c",
		"pass:org-a:ADMIN",
		"pass:org-b:ADMIN",
		"pass:org-c:ADMIN",
		"record:org-b",
	}, rec.sorted())
}

func TestTick_OrganizationsUnavailable(t *testing.T) {
	rec := &recorder{}
	s := &fakeSettings{}
	j := newTestJob(rec, &fakeAlert{rec: rec, orgsErr: errors.New("db down")}, s)

	j.Tick(context.Background())

	assert.Empty(t, rec.sorted())
	assert.Equal(t, 0, s.calls)
}

func TestTick_PassFailureStillRecordsMaintenance(t *testing.T) {
	rec := &recorder{}
	a := &fakeAlert{
		rec:    rec,
		orgs:   []string{"org-a"},
		alerts: map[string][]model.Alert{"org-a": {{ID: "m-1"}}},
	}
	j := newTestJob(rec, a, &fakeSettings{})
	j.stock = &fakeStock{rec: rec, err: errors.New("boom")}

	j.Tick(context.Background())

	assert.Contains(t, rec.sorted(), "record:org-a")
}

func TestDigests(t *testing.T) {
	rec := &recorder{}
	s := &fakeSettings{list: []model.AlertSettings{
		{OrganizationID: "org-mon", WeeklyDigestEnabled: true, WeeklyDigestDay: 1},
		{OrganizationID: "org-fri", WeeklyDigestEnabled: true, WeeklyDigestDay: 5},
	}}
	j := newTestJob(rec, &fakeAlert{rec: rec}, s)

	j.Tick(context.Background())
	j.Tick(context.Background())

	assert.Equal(t, []string{"digest:org-mon"}, rec.sorted())
	assert.Equal(t, 1, s.calls)
}

func TestDigests_BeforeHour(t *testing.T) {
	rec := &recorder{}
	s := &fakeSettings{list: []model.AlertSettings{{OrganizationID: "org-mon", WeeklyDigestDay: 1}}}
	j := newTestJob(rec, &fakeAlert{rec: rec}, s)
	j.clock = func() time.Time { return monday.Add(-2 * time.Hour) }

	j.Tick(context.Background())

	assert.Empty(t, rec.sorted())
	assert.Equal(t, 0, s.calls)
}

func TestDigests_RetriedAfterListFailure(t *testing.T) {
	rec := &recorder{}
	s := &fakeSettings{err: errors.New("db down")}
	j := newTestJob(rec, &fakeAlert{rec: rec}, s)

	j.Tick(context.Background())
	s.err = nil
	s.list = []model.AlertSettings{{OrganizationID: "org-mon", WeeklyDigestDay: 1}}
	j.Tick(context.Background())

	assert.Equal(t, []string{"digest:org-mon"}, rec.sorted())
	assert.Equal(t, 2, s.calls)
}

func TestRun_StopsOnCancel(t *testing.T) {
	rec := &recorder{}
	j := newTestJob(rec, &fakeAlert{rec: rec, orgs: []string{"org-a"}}, &fakeSettings{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Run(ctx) }()

	require.Eventually(t, func() bool {
		return len(rec.sorted()) > 0
	}, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
