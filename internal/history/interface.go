package history

import (
	"context"

	"alert-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.PersistedAlert, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.PersistedAlert, error)
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	List(ctx context.Context, sc model.Scope, ip ListInput) ([]model.PersistedAlert, error)
	Acknowledge(ctx context.Context, sc model.Scope, id string) (model.PersistedAlert, error)
	Resolve(ctx context.Context, sc model.Scope, ip ResolveInput) (model.PersistedAlert, error)
	Dismiss(ctx context.Context, sc model.Scope, id string) (model.PersistedAlert, error)
	Statistics(ctx context.Context, sc model.Scope) (Statistics, error)
	RecordMaintenance(ctx context.Context, sc model.Scope, alerts []model.Alert) (RecordOutput, error)

	FindActiveStock(ctx context.Context, sc model.Scope, inventoryID string) (model.PersistedAlert, error)
	CreateStock(ctx context.Context, sc model.Scope, ip CreateStockInput) (model.PersistedAlert, error)
}
