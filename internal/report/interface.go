package report

import (
	"context"

	"alert-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Assemble builds the renderer-agnostic document for the window.
	Assemble(ctx context.Context, sc model.Scope, ip AssembleInput) (model.Report, error)
	// Export assembles the document, stores it in object storage and returns a download link.
	Export(ctx context.Context, sc model.Scope, ip AssembleInput) (ExportOutput, error)
}
