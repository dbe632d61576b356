package repository

import (
	"context"
	"time"

	"alert-srv/internal/model"
	"alert-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.PersistedAlert, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.PersistedAlert, error)
	FindActiveStock(ctx context.Context, sc model.Scope, inventoryID string) (model.PersistedAlert, error)
	UpdateStatus(ctx context.Context, sc model.Scope, opts UpdateStatusOptions) (model.PersistedAlert, error)
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.PersistedAlert, paginator.Paginator, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.PersistedAlert, error)
	Statistics(ctx context.Context, sc model.Scope, resolvedSince time.Time) (Statistics, error)
}
