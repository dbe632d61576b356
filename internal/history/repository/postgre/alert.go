package postgres

import (
	"context"
	"database/sql"

	"alert-srv/internal/history/repository"
	"alert-srv/internal/model"
	"alert-srv/pkg/paginator"
	postgresPkg "alert-srv/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.PersistedAlert, error) {
	a := opts.Alert
	if a.ID == "" {
		a.ID = postgresPkg.NewUUID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = r.clock()
	}
	if a.Status == "" {
		a.Status = model.AlertStatusActive
	}

	var row alertRow
	err := queries.Raw(insertAlertQuery,
		a.ID, sc.OrganizationID, null.StringFromPtr(a.UserID), string(a.AlertType), string(a.Priority), string(a.Status), a.Message,
		null.StringFromPtr(a.PianoID), null.StringFromPtr(a.ClientID), null.StringFromPtr(a.InventoryID),
		null.IntFromPtr(a.DaysSinceLastService), null.IntFromPtr(a.CurrentStock), null.IntFromPtr(a.Threshold),
		a.CreatedAt,
	).Bind(ctx, r.db, &row)
	if err != nil {
		cause := errors.Cause(err)
		if postgresPkg.IsUniqueViolation(cause, activeStockIndex) || postgresPkg.IsUniqueViolation(cause, activeMaintenanceIndex) {
			return model.PersistedAlert{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.history.repository.postgres.Create.Bind: %v", err)
		return model.PersistedAlert{}, errors.Wrap(err, "insert alert")
	}

	return row.toModel(), nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.PersistedAlert, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		return model.PersistedAlert{}, repository.ErrNotFound
	}

	var row alertRow
	if err := queries.Raw(detailAlertQuery, sc.OrganizationID, id).Bind(ctx, r.db, &row); err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return model.PersistedAlert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.history.repository.postgres.Detail.Bind: %v", err)
		return model.PersistedAlert{}, errors.Wrap(err, "detail alert")
	}

	return row.toModel(), nil
}

func (r *implRepository) FindActiveStock(ctx context.Context, sc model.Scope, inventoryID string) (model.PersistedAlert, error) {
	var row alertRow
	if err := queries.Raw(findActiveStockQuery, sc.OrganizationID, inventoryID).Bind(ctx, r.db, &row); err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return model.PersistedAlert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.history.repository.postgres.FindActiveStock.Bind: %v", err)
		return model.PersistedAlert{}, errors.Wrap(err, "find active stock alert")
	}

	return row.toModel(), nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, sc model.Scope, opts repository.UpdateStatusOptions) (model.PersistedAlert, error) {
	at := opts.At
	if at.IsZero() {
		at = r.clock()
	}

	var row alertRow
	err := queries.Raw(updateStatusQuery,
		sc.OrganizationID, opts.ID, string(opts.From), string(opts.To), at,
		null.NewString(opts.ResolvedByServiceID, opts.ResolvedByServiceID != ""),
	).Bind(ctx, r.db, &row)
	if err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return model.PersistedAlert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.history.repository.postgres.UpdateStatus.Bind: %v", err)
		return model.PersistedAlert{}, errors.Wrap(err, "update alert status")
	}

	return row.toModel(), nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.PersistedAlert, paginator.Paginator, error) {
	countQ, countArgs, listQ, listArgs := buildGetQuery(sc.OrganizationID, opts)

	var cnt countRow
	if err := queries.Raw(countQ, countArgs...).Bind(ctx, r.db, &cnt); err != nil {
		r.l.Errorf(ctx, "internal.history.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "count alerts")
	}

	var rows []alertRow
	if err := queries.Raw(listQ, listArgs...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.history.repository.postgres.Get.All: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "get alerts")
	}

	pag := paginator.Paginator{
		Total:   cnt.Count,
		Count:   int64(len(rows)),
		PerPage: int64(opts.Limit),
	}
	if opts.Limit > 0 {
		pag.CurrentPage = opts.Offset/opts.Limit + 1
	}

	return toModels(rows), pag, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.PersistedAlert, error) {
	q, args := buildListQuery(sc.OrganizationID, opts)

	var rows []alertRow
	if err := queries.Raw(q, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.history.repository.postgres.List.Bind: %v", err)
		return nil, errors.Wrap(err, "list alerts")
	}

	return toModels(rows), nil
}
