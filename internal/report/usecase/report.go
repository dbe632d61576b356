package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"alert-srv/internal/history"
	"alert-srv/internal/model"
	"alert-srv/internal/report"
	"alert-srv/pkg/minio"
)

func (uc *implUseCase) Assemble(ctx context.Context, sc model.Scope, ip report.AssembleInput) (model.Report, error) {
	if !ip.Format.IsValid() {
		return model.Report{}, report.ErrInvalidFormat
	}

	r := model.Report{
		Window:              ip.Window,
		Format:              ip.Format,
		Metrics:             uc.analytics.PerformanceMetrics(ctx, sc, ip.Window),
		Distribution:        uc.analytics.Distribution(ctx, sc, ip.Window),
		ServiceTypeAnalysis: uc.analytics.ServiceTypeAnalysis(ctx, sc, ip.Window),
		TopPianos:           uc.analytics.TopPianos(ctx, sc, ip.Window, report.TopPianos),
		GeneratedAt:         uc.clock(),
	}

	if ip.IncludeDetails {
		alerts, err := uc.history.List(ctx, sc, history.ListInput{Window: ip.Window})
		if err != nil {
			uc.l.Errorf(ctx, "internal.report.usecase.Assemble.List: %v", err)
			return model.Report{}, report.ErrDetailsUnavailable
		}
		sort.SliceStable(alerts, func(i, j int) bool {
			return alerts[i].CreatedAt.Before(alerts[j].CreatedAt)
		})
		r.DetailedAlerts = alerts
	}

	return r, nil
}

func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, ip report.AssembleInput) (report.ExportOutput, error) {
	r, err := uc.Assemble(ctx, sc, ip)
	if err != nil {
		return report.ExportOutput{}, err
	}

	body, err := json.Marshal(r)
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Export.Marshal: %v", err)
		return report.ExportOutput{}, report.ErrExportFailed
	}

	name := objectName(sc.OrganizationID, r)
	info, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.cfg.Bucket,
		ObjectName:  name,
		Reader:      bytes.NewReader(body),
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"organization-id": sc.OrganizationID,
			"format":          string(r.Format),
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Export.UploadFile: %v", err)
		return report.ExportOutput{}, report.ErrExportFailed
	}

	url, err := uc.storage.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.cfg.Bucket,
		ObjectName: name,
		Expiry:     uc.cfg.URLExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.report.usecase.Export.GetPresignedDownloadURL: %v", err)
		if derr := uc.storage.DeleteFile(ctx, uc.cfg.Bucket, name); derr != nil {
			uc.l.Warnf(ctx, "internal.report.usecase.Export.DeleteFile: %v", derr)
		}
		return report.ExportOutput{}, report.ErrExportFailed
	}

	return report.ExportOutput{
		ObjectName: name,
		Size:       info.Size,
		URL:        url.URL,
		ExpiresAt:  url.ExpiresAt,
	}, nil
}

// objectName is reports/<org>/<timestamp>-<format>.json.
func objectName(orgID string, r model.Report) string {
	return fmt.Sprintf("%s/%s/%s-%s.json", report.ObjectPrefix, orgID, r.GeneratedAt.UTC().Format("20060102T150405Z"), r.Format)
}
