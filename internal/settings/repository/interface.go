package repository

import (
	"context"

	"alert-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// Detail returns the organization row when UserID is empty, the user's row otherwise.
	Detail(ctx context.Context, opts DetailOptions) (model.AlertSettings, error)
	Upsert(ctx context.Context, opts UpsertOptions) (model.AlertSettings, error)
	ListDigestEnabled(ctx context.Context) ([]model.AlertSettings, error)
}
