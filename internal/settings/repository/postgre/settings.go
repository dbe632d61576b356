package postgres

import (
	"context"
	"database/sql"

	"alert-srv/internal/model"
	"alert-srv/internal/settings/repository"
	postgresPkg "alert-srv/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) Detail(ctx context.Context, opts repository.DetailOptions) (model.AlertSettings, error) {
	q, args := detailOrgQuery, []interface{}{opts.OrganizationID}
	if opts.UserID != "" {
		q, args = detailUserQuery, []interface{}{opts.OrganizationID, opts.UserID}
	}

	var row settingsRow
	if err := queries.Raw(q, args...).Bind(ctx, r.db, &row); err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return model.AlertSettings{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.settings.repository.postgres.Detail.Bind: %v", err)
		return model.AlertSettings{}, errors.Wrap(err, "detail settings")
	}

	return row.toModel(), nil
}

func (r *implRepository) Upsert(ctx context.Context, opts repository.UpsertOptions) (model.AlertSettings, error) {
	s := opts.Settings
	if s.ID == "" {
		s.ID = postgresPkg.NewUUID()
	}
	s.UpdatedAt = r.clock()

	q := upsertOrgQuery
	if s.UserID != nil {
		q = upsertUserQuery
	}

	var row settingsRow
	err := queries.Raw(q,
		s.ID, s.OrganizationID, null.StringFromPtr(s.UserID),
		s.Thresholds.TuningPending, s.Thresholds.TuningUrgent,
		s.Thresholds.RegulationPending, s.Thresholds.RegulationUrgent,
		s.EmailNotificationsEnabled, s.WeeklyDigestEnabled, s.WeeklyDigestDay, s.UpdatedAt,
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.settings.repository.postgres.Upsert.Bind: %v", err)
		return model.AlertSettings{}, errors.Wrap(err, "upsert settings")
	}

	return row.toModel(), nil
}

func (r *implRepository) ListDigestEnabled(ctx context.Context) ([]model.AlertSettings, error) {
	var rows []settingsRow
	if err := queries.Raw(listDigestEnabledQuery).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.settings.repository.postgres.ListDigestEnabled.Bind: %v", err)
		return nil, errors.Wrap(err, "list digest settings")
	}

	res := make([]model.AlertSettings, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}
	return res, nil
}
