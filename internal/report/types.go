package report

import (
	"time"

	"alert-srv/internal/model"
)

const (
	TopPianos        = 10
	DefaultURLExpiry = time.Hour
	ObjectPrefix     = "reports"
)

type Config struct {
	Bucket    string
	URLExpiry time.Duration
}

type AssembleInput struct {
	Window         model.Window
	Format         model.ReportFormat
	IncludeDetails bool
}

type ExportOutput struct {
	ObjectName string
	Size       int64
	URL        string
	ExpiresAt  time.Time
}
