package usecase

import (
	"context"
	"errors"
	"testing"

	"alert-srv/internal/model"
	"alert-srv/internal/settings"
	"alert-srv/internal/settings/repository"
	"alert-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	rows    map[string]model.AlertSettings
	err     error
	upserts []model.AlertSettings
}

func key(orgID, userID string) string { return orgID + "/" + userID }

func (f *fakeRepo) Detail(ctx context.Context, opts repository.DetailOptions) (model.AlertSettings, error) {
	if f.err != nil {
		return model.AlertSettings{}, f.err
	}
	s, ok := f.rows[key(opts.OrganizationID, opts.UserID)]
	if !ok {
		return model.AlertSettings{}, repository.ErrNotFound
	}
	return s, nil
}

func (f *fakeRepo) Upsert(ctx context.Context, opts repository.UpsertOptions) (model.AlertSettings, error) {
	s := opts.Settings
	userID := ""
	if s.UserID != nil {
		userID = *s.UserID
	}
	f.rows[key(s.OrganizationID, userID)] = s
	f.upserts = append(f.upserts, s)
	return s, nil
}

func (f *fakeRepo) ListDigestEnabled(ctx context.Context) ([]model.AlertSettings, error) {
	var out []model.AlertSettings
	for _, s := range f.rows {
		if s.UserID == nil && s.WeeklyDigestEnabled {
			out = append(out, s)
		}
	}
	return out, nil
}

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }

var (
	admin  = model.Scope{UserID: "u-admin", OrganizationID: "org-1", Role: model.RoleAdmin}
	tech   = model.Scope{UserID: "u-tech", OrganizationID: "org-1", Role: model.RoleTechnician}
	nobody = model.Scope{OrganizationID: "org-1", Role: model.RoleTechnician}
)

func newTestUseCase(repo *fakeRepo) *usecase {
	return &usecase{l: log.NewNop(), repo: repo}
}

func TestGet_Defaults(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{rows: map[string]model.AlertSettings{}})

	got, err := uc.Get(context.Background(), admin)

	require.NoError(t, err)
	assert.Equal(t, model.DefaultAlertSettings("org-1"), got)
}

func TestGet_StoreError(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{err: errors.New("down")})

	_, err := uc.Get(context.Background(), admin)

	assert.Error(t, err)
}

func TestGetMine_Fallback(t *testing.T) {
	orgRow := model.DefaultAlertSettings("org-1")
	orgRow.ID = "s-org"
	orgRow.Thresholds.TuningPending = 90

	userID := "u-tech"
	userRow := model.DefaultAlertSettings("org-1")
	userRow.ID = "s-user"
	userRow.UserID = &userID
	userRow.Thresholds.TuningPending = 120

	tests := []struct {
		name string
		rows map[string]model.AlertSettings
		want int
	}{
		{name: "user row", rows: map[string]model.AlertSettings{key("org-1", ""): orgRow, key("org-1", "u-tech"): userRow}, want: 120},
		{name: "organization row", rows: map[string]model.AlertSettings{key("org-1", ""): orgRow}, want: 90},
		{name: "defaults", rows: map[string]model.AlertSettings{}, want: model.DefaultTuningPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeRepo{rows: tt.rows})

			got, err := uc.GetMine(context.Background(), tech)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Thresholds.TuningPending)
		})
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name    string
		sc      model.Scope
		input   settings.UpdateInput
		wantErr error
	}{
		{name: "admin", sc: admin, input: settings.UpdateInput{TuningPending: intPtr(150), WeeklyDigestEnabled: boolPtr(true)}},
		{name: "not admin", sc: tech, input: settings.UpdateInput{TuningPending: intPtr(150)}, wantErr: settings.ErrPermissionDenied},
		{name: "tuning pending out of range", sc: admin, input: settings.UpdateInput{TuningPending: intPtr(366)}, wantErr: settings.ErrInvalidTuningPending},
		{name: "tuning urgent zero", sc: admin, input: settings.UpdateInput{TuningUrgent: intPtr(0)}, wantErr: settings.ErrInvalidTuningUrgent},
		{name: "regulation pending out of range", sc: admin, input: settings.UpdateInput{RegulationPending: intPtr(1826)}, wantErr: settings.ErrInvalidRegulationPending},
		{name: "regulation urgent out of range", sc: admin, input: settings.UpdateInput{RegulationUrgent: intPtr(3651)}, wantErr: settings.ErrInvalidRegulationUrgent},
		{name: "tuning order", sc: admin, input: settings.UpdateInput{TuningPending: intPtr(270)}, wantErr: settings.ErrTuningOrder},
		{name: "regulation order", sc: admin, input: settings.UpdateInput{RegulationUrgent: intPtr(700)}, wantErr: settings.ErrRegulationOrder},
		{name: "digest day", sc: admin, input: settings.UpdateInput{WeeklyDigestDay: intPtr(8)}, wantErr: settings.ErrInvalidDigestDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{rows: map[string]model.AlertSettings{}}
			uc := newTestUseCase(repo)

			got, err := uc.Update(context.Background(), tt.sc, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.upserts)
				return
			}
			require.NoError(t, err)
			assert.Nil(t, got.UserID)
			assert.Equal(t, 150, got.Thresholds.TuningPending)
			assert.Equal(t, model.DefaultTuningUrgent, got.Thresholds.TuningUrgent)
			assert.True(t, got.WeeklyDigestEnabled)
		})
	}
}

func TestUpdateMine_CreatesUserRow(t *testing.T) {
	orgRow := model.DefaultAlertSettings("org-1")
	orgRow.ID = "s-org"
	orgRow.Thresholds.RegulationPending = 800
	repo := &fakeRepo{rows: map[string]model.AlertSettings{key("org-1", ""): orgRow}}
	uc := newTestUseCase(repo)

	got, err := uc.UpdateMine(context.Background(), tech, settings.UpdateInput{TuningUrgent: intPtr(300)})

	require.NoError(t, err)
	require.NotNil(t, got.UserID)
	assert.Equal(t, "u-tech", *got.UserID)
	assert.Empty(t, got.ID)
	assert.Equal(t, 800, got.Thresholds.RegulationPending)
	assert.Equal(t, 300, got.Thresholds.TuningUrgent)
	assert.Equal(t, "s-org", repo.rows[key("org-1", "")].ID)

	_, err = uc.UpdateMine(context.Background(), nobody, settings.UpdateInput{})
	assert.ErrorIs(t, err, settings.ErrUserRequired)
}

func TestListDigestEnabled(t *testing.T) {
	on := model.DefaultAlertSettings("org-1")
	on.WeeklyDigestEnabled = true
	off := model.DefaultAlertSettings("org-2")
	uc := newTestUseCase(&fakeRepo{rows: map[string]model.AlertSettings{key("org-1", ""): on, key("org-2", ""): off}})

	got, err := uc.ListDigestEnabled(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "org-1", got[0].OrganizationID)
}
