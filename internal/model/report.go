package model

import "time"

type ReportFormat string

const (
	ReportPDF   ReportFormat = "pdf"
	ReportExcel ReportFormat = "excel"
	ReportCSV   ReportFormat = "csv"
)

func (f ReportFormat) IsValid() bool {
	return f == ReportPDF || f == ReportExcel || f == ReportCSV
}

// Report is the document model handed to renderers.
type Report struct {
	Window              Window                `json:"window"`
	Format              ReportFormat          `json:"format"`
	Metrics             PerformanceMetrics    `json:"metrics"`
	Distribution        []TypeDistribution    `json:"distribution"`
	ServiceTypeAnalysis []ServiceTypeAnalysis `json:"service_type_analysis"`
	TopPianos           []TopEntity           `json:"top_pianos"`
	DetailedAlerts      []PersistedAlert      `json:"detailed_alerts,omitempty"`
	GeneratedAt         time.Time             `json:"generated_at"`
}
