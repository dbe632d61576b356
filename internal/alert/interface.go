package alert

import (
	"context"

	"alert-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Evaluate(ctx context.Context, sc model.Scope) (EvaluateOutput, error)
	Maintenance(ctx context.Context, sc model.Scope) ([]model.Alert, error)
	// Organizations lists the organizations background jobs run for.
	Organizations(ctx context.Context) ([]string, error)
}
