package repository

import (
	"context"

	"alert-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	ListItems(ctx context.Context, sc model.Scope) ([]model.StockItem, error)
	GetProduct(ctx context.Context, sc model.Scope, productID string) (model.Product, error)
	UpsertLink(ctx context.Context, sc model.Scope, opts UpsertLinkOptions) (model.ReorderLink, error)
	// CreateAutoOrder stores the order and links it to the alert in one transaction.
	// It returns ErrAlreadyLinked when the alert already carries an order.
	CreateAutoOrder(ctx context.Context, sc model.Scope, opts CreateAutoOrderOptions) (model.Order, error)
}
