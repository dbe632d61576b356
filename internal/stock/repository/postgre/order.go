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

func (r *implRepository) CreateAutoOrder(ctx context.Context, sc model.Scope, opts repository.CreateAutoOrderOptions) (o model.Order, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "internal.stock.repository.postgres.CreateAutoOrder.BeginTx: %v", err)
		return model.Order{}, errors.Wrap(err, "begin order tx")
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.l.Warnf(ctx, "internal.stock.repository.postgres.CreateAutoOrder.Rollback: %v", rbErr)
			}
		}
	}()

	var lock lockRow
	if err = queries.Raw(lockAlertQuery, sc.OrganizationID, opts.AlertID).Bind(ctx, tx, &lock); err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			err = repository.ErrNotFound
			return model.Order{}, err
		}
		r.l.Errorf(ctx, "internal.stock.repository.postgres.CreateAutoOrder.Lock: %v", err)
		return model.Order{}, errors.Wrap(err, "lock alert")
	}
	if lock.AutoOrderID.Valid {
		err = repository.ErrAlreadyLinked
		return model.Order{}, err
	}

	o = opts.Order
	o.ID = postgresPkg.NewUUID()
	o.OrganizationID = sc.OrganizationID
	o.StockAlertID = opts.AlertID
	if o.CreatedAt.IsZero() {
		o.CreatedAt = r.clock()
	}

	if _, err = queries.Raw(insertOrderQuery,
		o.ID, o.OrganizationID, string(o.Status), string(o.ApprovalStatus), o.Currency,
		o.Subtotal, o.VATAmount, o.Total, o.IsAutoGenerated, o.StockAlertID, o.Notes, o.CreatedAt,
	).ExecContext(ctx, tx); err != nil {
		r.l.Errorf(ctx, "internal.stock.repository.postgres.CreateAutoOrder.InsertOrder: %v", err)
		return model.Order{}, errors.Wrap(err, "insert order")
	}

	for _, line := range o.Lines {
		if _, err = queries.Raw(insertOrderLineQuery,
			postgresPkg.NewUUID(), o.ID, line.ProductID, line.Name, line.SKU, line.Quantity,
			line.UnitPrice, line.VATRate, line.Total,
		).ExecContext(ctx, tx); err != nil {
			r.l.Errorf(ctx, "internal.stock.repository.postgres.CreateAutoOrder.InsertLine: %v", err)
			return model.Order{}, errors.Wrap(err, "insert order line")
		}
	}

	if _, err = queries.Raw(linkOrderQuery, sc.OrganizationID, opts.AlertID, o.ID).ExecContext(ctx, tx); err != nil {
		r.l.Errorf(ctx, "internal.stock.repository.postgres.CreateAutoOrder.Link: %v", err)
		return model.Order{}, errors.Wrap(err, "link order to alert")
	}

	if err = tx.Commit(); err != nil {
		r.l.Errorf(ctx, "internal.stock.repository.postgres.CreateAutoOrder.Commit: %v", err)
		return model.Order{}, errors.Wrap(err, "commit order tx")
	}

	return o, nil
}
