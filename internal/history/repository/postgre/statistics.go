package postgres

import (
	"context"
	"time"

	"alert-srv/internal/history/repository"
	"alert-srv/internal/model"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) Statistics(ctx context.Context, sc model.Scope, resolvedSince time.Time) (repository.Statistics, error) {
	var row statisticsRow
	if err := queries.Raw(statisticsQuery, sc.OrganizationID, resolvedSince).Bind(ctx, r.db, &row); err != nil {
		r.l.Errorf(ctx, "internal.history.repository.postgres.Statistics.Bind: %v", err)
		return repository.Statistics{}, errors.Wrap(err, "alert statistics")
	}

	return repository.Statistics{
		ActiveUrgent:      int(row.ActiveUrgent),
		ActivePending:     int(row.ActivePending),
		ResolvedSince:     int(row.ResolvedSince),
		AvgResolutionDays: row.AvgResolutionDays,
	}, nil
}
