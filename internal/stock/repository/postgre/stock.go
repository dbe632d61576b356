package postgres

import (
	"context"
	"database/sql"

	"alert-srv/internal/model"
	"alert-srv/internal/stock/repository"
	postgresPkg "alert-srv/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) ListItems(ctx context.Context, sc model.Scope) ([]model.StockItem, error) {
	var rows []itemRow
	if err := queries.Raw(listItemsQuery, sc.OrganizationID).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.stock.repository.postgres.ListItems.Bind: %v", err)
		return nil, errors.Wrap(err, "list stock items")
	}

	items := make([]model.StockItem, len(rows))
	for i, row := range rows {
		items[i] = row.toModel()
	}
	return items, nil
}

func (r *implRepository) GetProduct(ctx context.Context, sc model.Scope, productID string) (model.Product, error) {
	if err := postgresPkg.IsUUID(productID); err != nil {
		return model.Product{}, repository.ErrNotFound
	}

	var row productRow
	if err := queries.Raw(getProductQuery, sc.OrganizationID, productID).Bind(ctx, r.db, &row); err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return model.Product{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.stock.repository.postgres.GetProduct.Bind: %v", err)
		return model.Product{}, errors.Wrap(err, "get product")
	}

	return row.toModel(), nil
}

func (r *implRepository) UpsertLink(ctx context.Context, sc model.Scope, opts repository.UpsertLinkOptions) (model.ReorderLink, error) {
	l := opts.Link
	if err := postgresPkg.ValidateUUIDs([]string{l.InventoryID, l.ProductID}); err != nil {
		return model.ReorderLink{}, repository.ErrNotFound
	}
	if l.ID == "" {
		l.ID = postgresPkg.NewUUID()
	}

	var row itemRow
	err := queries.Raw(upsertLinkQuery,
		l.ID, sc.OrganizationID, l.InventoryID, l.ProductID,
		l.LowStockThreshold, l.ReorderQuantity, l.AutoReorderEnabled, r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		cause := errors.Cause(err)
		// No row comes back when the item belongs to another organization.
		if cause == sql.ErrNoRows || postgresPkg.IsForeignKeyViolation(cause) {
			return model.ReorderLink{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.stock.repository.postgres.UpsertLink.Bind: %v", err)
		return model.ReorderLink{}, errors.Wrap(err, "upsert reorder link")
	}

	return row.toLink(), nil
}
