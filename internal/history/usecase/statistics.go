package usecase

import (
	"context"
	"math"

	"alert-srv/internal/history"
	"alert-srv/internal/model"
)

const statisticsResolvedDays = 30

func (uc *usecase) Statistics(ctx context.Context, sc model.Scope) (history.Statistics, error) {
	since := uc.clock().AddDate(0, 0, -statisticsResolvedDays)

	st, err := uc.repo.Statistics(ctx, sc, since)
	if err != nil {
		uc.l.Errorf(ctx, "internal.history.usecase.Statistics: %v", err)
		return history.Statistics{}, err
	}

	return history.Statistics{
		ActiveUrgent:       st.ActiveUrgent,
		ActivePending:      st.ActivePending,
		ResolvedLast30Days: st.ResolvedSince,
		AvgResolutionDays:  int(math.Round(st.AvgResolutionDays)),
	}, nil
}
