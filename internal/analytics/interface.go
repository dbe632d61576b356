package analytics

import (
	"context"

	"alert-srv/internal/model"
)

// UseCase aggregates persisted alerts. It never fails: an unreachable store or a canceled
// context yields zero values.
//
//go:generate mockery --name UseCase
type UseCase interface {
	PerformanceMetrics(ctx context.Context, sc model.Scope, w model.Window) model.PerformanceMetrics
	TimeSeries(ctx context.Context, sc model.Scope, w model.Window, g model.Granularity) []model.TimeSeriesBucket
	Distribution(ctx context.Context, sc model.Scope, w model.Window) []model.TypeDistribution
	// Trends returns n trailing periods ending with the current one, oldest first.
	Trends(ctx context.Context, sc model.Scope, p model.TrendPeriod, n int) []model.Trend
	ServiceTypeAnalysis(ctx context.Context, sc model.Scope, w model.Window) []model.ServiceTypeAnalysis
	TopPianos(ctx context.Context, sc model.Scope, w model.Window, n int) []model.TopEntity
	ComparePeriods(ctx context.Context, sc model.Scope, current, previous model.Window) model.PeriodComparison
	// MonthlyComparison compares the current calendar month with the previous one.
	MonthlyComparison(ctx context.Context, sc model.Scope) model.PeriodComparison
}
