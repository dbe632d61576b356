package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"alert-srv/internal/analytics"
	"alert-srv/internal/history"
	"alert-srv/internal/model"
	"alert-srv/internal/report"
	"alert-srv/pkg/log"
	"alert-srv/pkg/minio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now = time.Date(2026, 4, 10, 12, 30, 5, 0, time.UTC)
	sc  = model.Scope{OrganizationID: "org-1", Role: model.RoleAdmin}
	win = model.Window{Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)}
)

type fakeAnalytics struct {
	analytics.UseCase
	topN int
}

func (f *fakeAnalytics) PerformanceMetrics(ctx context.Context, sc model.Scope, w model.Window) model.PerformanceMetrics {
	return model.PerformanceMetrics{Total: 3, Resolved: 1, ResolutionRate: 33}
}

func (f *fakeAnalytics) Distribution(ctx context.Context, sc model.Scope, w model.Window) []model.TypeDistribution {
	return []model.TypeDistribution{{AlertType: model.AlertTypeTuning, Count: 3, Percentage: 100}}
}

func (f *fakeAnalytics) ServiceTypeAnalysis(ctx context.Context, sc model.Scope, w model.Window) []model.ServiceTypeAnalysis {
	return []model.ServiceTypeAnalysis{{ServiceType: model.AlertTypeTuning, Total: 3}}
}

func (f *fakeAnalytics) TopPianos(ctx context.Context, sc model.Scope, w model.Window, n int) []model.TopEntity {
	f.topN = n
	return []model.TopEntity{{EntityID: "p-1", Total: 3}}
}

type fakeHistory struct {
	history.UseCase
	alerts []model.PersistedAlert
	err    error
}

func (f *fakeHistory) List(ctx context.Context, sc model.Scope, ip history.ListInput) ([]model.PersistedAlert, error) {
	return f.alerts, f.err
}

type fakeStorage struct {
	minio.MinIO
	uploaded  *minio.UploadRequest
	body      []byte
	uploadErr error
	urlErr    error
	deleted   []string
}

func (f *fakeStorage) UploadFile(ctx context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploaded = req
	b, err := io.ReadAll(req.Reader)
	if err != nil {
		return nil, err
	}
	f.body = b
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: int64(len(b))}, nil
}

func (f *fakeStorage) GetPresignedDownloadURL(ctx context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	if f.urlErr != nil {
		return nil, f.urlErr
	}
	return &minio.PresignedURLResponse{
		URL:       "https://storage.local/" + req.BucketName + "/" + req.ObjectName,
		ExpiresAt: now.Add(req.Expiry),
	}, nil
}

func (f *fakeStorage) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	f.deleted = append(f.deleted, objectName)
	return nil
}

func newTestUseCase(a *fakeAnalytics, h *fakeHistory, s *fakeStorage) *implUseCase {
	uc := New(log.NewNop(), a, h, s, report.Config{Bucket: "alert-reports"}).(*implUseCase)
	uc.clock = func() time.Time { return now }
	return uc
}

func alertAt(id string, created time.Time) model.PersistedAlert {
	return model.PersistedAlert{ID: id, AlertType: model.AlertTypeTuning, Priority: model.AlertPriorityUrgent, Status: model.AlertStatusActive, CreatedAt: created}
}

func TestAssemble(t *testing.T) {
	h := &fakeHistory{alerts: []model.PersistedAlert{
		alertAt("c", time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)),
		alertAt("a", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)),
		alertAt("b", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)),
	}}

	tests := []struct {
		name    string
		input   report.AssembleInput
		wantIDs []string
		wantErr error
	}{
		{
			name:    "summary only",
			input:   report.AssembleInput{Window: win, Format: model.ReportPDF},
			wantIDs: nil,
		},
		{
			name:    "details oldest first",
			input:   report.AssembleInput{Window: win, Format: model.ReportCSV, IncludeDetails: true},
			wantIDs: []string{"a", "b", "c"},
		},
		{
			name:    "unknown format",
			input:   report.AssembleInput{Window: win, Format: "docx"},
			wantErr: report.ErrInvalidFormat,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := &fakeAnalytics{}
			uc := newTestUseCase(a, h, &fakeStorage{})

			r, err := uc.Assemble(context.Background(), sc, tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tc.input.Format, r.Format)
			assert.Equal(t, win, r.Window)
			assert.Equal(t, now, r.GeneratedAt)
			assert.Equal(t, 3, r.Metrics.Total)
			assert.Len(t, r.Distribution, 1)
			assert.Len(t, r.ServiceTypeAnalysis, 1)
			assert.Len(t, r.TopPianos, 1)
			assert.Equal(t, report.TopPianos, a.topN)

			var ids []string
			for _, d := range r.DetailedAlerts {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestAssemble_DetailsUnavailable(t *testing.T) {
	uc := newTestUseCase(&fakeAnalytics{}, &fakeHistory{err: history.ErrStoreUnavailable}, &fakeStorage{})

	_, err := uc.Assemble(context.Background(), sc, report.AssembleInput{Format: model.ReportPDF, IncludeDetails: true})

	assert.ErrorIs(t, err, report.ErrDetailsUnavailable)
}

func TestExport(t *testing.T) {
	s := &fakeStorage{}
	uc := newTestUseCase(&fakeAnalytics{}, &fakeHistory{}, s)

	out, err := uc.Export(context.Background(), sc, report.AssembleInput{Window: win, Format: model.ReportExcel})
	require.NoError(t, err)

	assert.Equal(t, "reports/org-1/20260410T123005Z-excel.json", out.ObjectName)
	assert.Equal(t, "https://storage.local/alert-reports/reports/org-1/20260410T123005Z-excel.json", out.URL)
	assert.Equal(t, now.Add(report.DefaultURLExpiry), out.ExpiresAt)
	assert.Equal(t, int64(len(s.body)), out.Size)

	require.NotNil(t, s.uploaded)
	assert.Equal(t, "alert-reports", s.uploaded.BucketName)
	assert.Equal(t, "application/json", s.uploaded.ContentType)
	assert.Equal(t, "org-1", s.uploaded.Metadata["organization-id"])

	var doc model.Report
	require.NoError(t, json.Unmarshal(s.body, &doc))
	assert.Equal(t, model.ReportExcel, doc.Format)
	assert.Equal(t, 3, doc.Metrics.Total)
}

func TestExport_Failures(t *testing.T) {
	tests := []struct {
		name    string
		storage *fakeStorage
		input   report.AssembleInput
		wantErr error
	}{
		{
			name:    "invalid format",
			storage: &fakeStorage{},
			input:   report.AssembleInput{Format: "txt"},
			wantErr: report.ErrInvalidFormat,
		},
		{
			name:    "upload fails",
			storage: &fakeStorage{uploadErr: minio.NewConnectionError(errors.New("refused"))},
			input:   report.AssembleInput{Format: model.ReportPDF},
			wantErr: report.ErrExportFailed,
		},
		{
			name:    "presign fails",
			storage: &fakeStorage{urlErr: errors.New("boom")},
			input:   report.AssembleInput{Format: model.ReportPDF},
			wantErr: report.ErrExportFailed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeAnalytics{}, &fakeHistory{}, tc.storage)

			_, err := uc.Export(context.Background(), sc, tc.input)

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestExport_PresignFailureRemovesObject(t *testing.T) {
	s := &fakeStorage{urlErr: errors.New("boom")}
	uc := newTestUseCase(&fakeAnalytics{}, &fakeHistory{}, s)

	_, err := uc.Export(context.Background(), sc, report.AssembleInput{Format: model.ReportCSV})

	require.ErrorIs(t, err, report.ErrExportFailed)
	require.NotNil(t, s.uploaded)
	assert.Equal(t, []string{s.uploaded.ObjectName}, s.deleted)
}
