package http

import (
	"time"

	"alert-srv/internal/model"
	"alert-srv/internal/report"
	"alert-srv/pkg/response"
)

const dateFormat = "2006-01-02"

type assembleReq struct {
	StartDate      string `form:"start_date" json:"start_date"`
	EndDate        string `form:"end_date" json:"end_date"`
	Format         string `form:"format" json:"format"`
	IncludeDetails bool   `form:"include_details" json:"include_details"`
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(dateFormat, s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (r assembleReq) toInput() (report.AssembleInput, error) {
	start, err := parseTime(r.StartDate)
	if err != nil {
		return report.AssembleInput{}, errInvalidWindow
	}
	end, err := parseTime(r.EndDate)
	if err != nil {
		return report.AssembleInput{}, errInvalidWindow
	}
	if !start.IsZero() && !end.IsZero() && !start.Before(end) {
		return report.AssembleInput{}, errInvalidWindow
	}

	format := model.ReportFormat(r.Format)
	if format == "" {
		format = model.ReportPDF
	}

	return report.AssembleInput{
		Window:         model.Window{Start: start, End: end},
		Format:         format,
		IncludeDetails: r.IncludeDetails,
	}, nil
}

type reportResp struct {
	Format              model.ReportFormat          `json:"format"`
	Window              model.Window                `json:"window"`
	Metrics             model.PerformanceMetrics    `json:"metrics"`
	Distribution        []model.TypeDistribution    `json:"distribution"`
	ServiceTypeAnalysis []model.ServiceTypeAnalysis `json:"service_type_analysis"`
	TopPianos           []model.TopEntity           `json:"top_pianos"`
	DetailedAlerts      []model.PersistedAlert      `json:"detailed_alerts,omitempty"`
	GeneratedAt         response.DateTime           `json:"generated_at"`
}

func (h *Handler) newReportResp(r model.Report) reportResp {
	return reportResp{
		Format:              r.Format,
		Window:              r.Window,
		Metrics:             r.Metrics,
		Distribution:        r.Distribution,
		ServiceTypeAnalysis: r.ServiceTypeAnalysis,
		TopPianos:           r.TopPianos,
		DetailedAlerts:      r.DetailedAlerts,
		GeneratedAt:         response.DateTime(r.GeneratedAt),
	}
}

type exportResp struct {
	ObjectName string            `json:"object_name"`
	Size       int64             `json:"size"`
	URL        string            `json:"url"`
	ExpiresAt  response.DateTime `json:"expires_at"`
}

func (h *Handler) newExportResp(o report.ExportOutput) exportResp {
	return exportResp{
		ObjectName: o.ObjectName,
		Size:       o.Size,
		URL:        o.URL,
		ExpiresAt:  response.DateTime(o.ExpiresAt),
	}
}
