package usecase

import (
	"context"

	"alert-srv/internal/analytics"
	"alert-srv/internal/history"
	"alert-srv/internal/model"
)

// fetch loads the alerts created inside w. ok is false when the caller is gone or the
// store failed, in which case the result must be treated as empty.
func (uc *implUseCase) fetch(ctx context.Context, sc model.Scope, w model.Window) ([]model.PersistedAlert, bool) {
	if err := ctx.Err(); err != nil {
		return nil, false
	}

	alerts, err := uc.history.List(ctx, sc, history.ListInput{Window: w})
	if err != nil {
		uc.l.Warnf(ctx, "internal.analytics.usecase.fetch.List: %v", err)
		return nil, false
	}
	return alerts, true
}

func (uc *implUseCase) PerformanceMetrics(ctx context.Context, sc model.Scope, w model.Window) model.PerformanceMetrics {
	alerts, ok := uc.fetch(ctx, sc, w)
	if !ok {
		return model.PerformanceMetrics{}
	}
	return computeMetrics(alerts)
}

func (uc *implUseCase) TimeSeries(ctx context.Context, sc model.Scope, w model.Window, g model.Granularity) []model.TimeSeriesBucket {
	if !g.IsValid() {
		g = model.GranularityDay
	}

	alerts, ok := uc.fetch(ctx, sc, w)
	if !ok {
		return []model.TimeSeriesBucket{}
	}
	return bucketize(alerts, g, uc.clock().Location())
}

func (uc *implUseCase) Distribution(ctx context.Context, sc model.Scope, w model.Window) []model.TypeDistribution {
	alerts, ok := uc.fetch(ctx, sc, w)
	if !ok {
		return []model.TypeDistribution{}
	}
	return distribution(alerts)
}

func (uc *implUseCase) Trends(ctx context.Context, sc model.Scope, p model.TrendPeriod, n int) []model.Trend {
	if !p.IsValid() {
		p = model.TrendMonth
	}
	if n <= 0 {
		n = analytics.DefaultTrendPeriods
	}
	if n > analytics.MaxTrendPeriods {
		n = analytics.MaxTrendPeriods
	}

	now := uc.clock()
	out := make([]model.Trend, 0, n)
	for back := n - 1; back >= 0; back-- {
		w := periodWindow(now, p, back)
		alerts, ok := uc.fetch(ctx, sc, w)
		if !ok {
			return []model.Trend{}
		}

		m := computeMetrics(alerts)
		out = append(out, model.Trend{
			Label:                 periodLabel(w.Start, p),
			Start:                 w.Start,
			End:                   w.End,
			AlertsCreated:         m.Total,
			AlertsResolved:        m.Resolved,
			AverageResolutionTime: m.AverageResolutionTime,
			ResolutionRate:        m.ResolutionRate,
		})
	}
	return out
}

func (uc *implUseCase) ServiceTypeAnalysis(ctx context.Context, sc model.Scope, w model.Window) []model.ServiceTypeAnalysis {
	alerts, ok := uc.fetch(ctx, sc, w)
	if !ok {
		return []model.ServiceTypeAnalysis{}
	}
	return serviceTypes(alerts)
}

func (uc *implUseCase) TopPianos(ctx context.Context, sc model.Scope, w model.Window, n int) []model.TopEntity {
	if n <= 0 {
		n = analytics.DefaultTopN
	}
	if n > analytics.MaxTopN {
		n = analytics.MaxTopN
	}

	alerts, ok := uc.fetch(ctx, sc, w)
	if !ok {
		return []model.TopEntity{}
	}
	return topPianos(alerts, n)
}

func (uc *implUseCase) ComparePeriods(ctx context.Context, sc model.Scope, current, previous model.Window) model.PeriodComparison {
	cur := uc.PerformanceMetrics(ctx, sc, current)
	if ctx.Err() != nil {
		return model.PeriodComparison{}
	}
	prev := uc.PerformanceMetrics(ctx, sc, previous)
	if ctx.Err() != nil {
		return model.PeriodComparison{}
	}
	return compare(cur, prev)
}

func (uc *implUseCase) MonthlyComparison(ctx context.Context, sc model.Scope) model.PeriodComparison {
	now := uc.clock()
	return uc.ComparePeriods(ctx, sc,
		periodWindow(now, model.TrendMonth, 0),
		periodWindow(now, model.TrendMonth, 1),
	)
}
