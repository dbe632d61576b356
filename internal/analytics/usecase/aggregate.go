package usecase

import (
	"fmt"
	"math"
	"sort"
	"time"

	"alert-srv/internal/model"
)

const (
	dayKeyFormat   = "2006-01-02"
	monthKeyFormat = "2006-01"
	day            = 24 * time.Hour
)

// percent returns part/total as a rounded percentage, 0 when total is 0.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(total)))
}

// averageResolutionDays is the rounded mean of resolvedAt - createdAt over resolved alerts.
func averageResolutionDays(alerts []model.PersistedAlert) int {
	var (
		sum time.Duration
		n   int
	)
	for _, a := range alerts {
		if a.Status != model.AlertStatusResolved || a.ResolvedAt == nil {
			continue
		}
		sum += a.ResolvedAt.Sub(a.CreatedAt)
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(sum.Hours() / 24 / float64(n)))
}

func computeMetrics(alerts []model.PersistedAlert) model.PerformanceMetrics {
	m := model.PerformanceMetrics{Total: len(alerts)}
	for _, a := range alerts {
		switch a.Status {
		case model.AlertStatusActive:
			m.Active++
		case model.AlertStatusAcknowledged:
			m.Acknowledged++
		case model.AlertStatusResolved:
			m.Resolved++
		case model.AlertStatusDismissed:
			m.Dismissed++
		}
	}
	m.ResolutionRate = percent(m.Resolved, m.Total)
	m.AverageResolutionTime = averageResolutionDays(alerts)
	return m
}

// bucketKey maps t to its bucket. Weeks start on Sunday.
func bucketKey(t time.Time, g model.Granularity) string {
	switch g {
	case model.GranularityWeek:
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		return d.AddDate(0, 0, -int(d.Weekday())).Format(dayKeyFormat)
	case model.GranularityMonth:
		return t.Format(monthKeyFormat)
	default:
		return t.Format(dayKeyFormat)
	}
}

func bucketize(alerts []model.PersistedAlert, g model.Granularity, loc *time.Location) []model.TimeSeriesBucket {
	byKey := make(map[string]*model.TimeSeriesBucket)
	for _, a := range alerts {
		key := bucketKey(a.CreatedAt.In(loc), g)
		b, ok := byKey[key]
		if !ok {
			b = &model.TimeSeriesBucket{Key: key}
			byKey[key] = b
		}

		switch a.Priority {
		case model.AlertPriorityUrgent:
			b.Urgent++
		case model.AlertPriorityPending:
			b.Pending++
		}
		if a.Status == model.AlertStatusResolved {
			b.Resolved++
		}
	}

	out := make([]model.TimeSeriesBucket, 0, len(byKey))
	for _, b := range byKey {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func distribution(alerts []model.PersistedAlert) []model.TypeDistribution {
	counts := make(map[model.AlertType]int)
	for _, a := range alerts {
		counts[a.AlertType]++
	}

	out := make([]model.TypeDistribution, 0, len(counts))
	for t, c := range counts {
		out = append(out, model.TypeDistribution{
			AlertType:  t,
			Count:      c,
			Percentage: percent(c, len(alerts)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].AlertType < out[j].AlertType
	})
	return out
}

func serviceTypes(alerts []model.PersistedAlert) []model.ServiceTypeAnalysis {
	byType := make(map[model.AlertType][]model.PersistedAlert, len(model.MaintenanceAlertTypes))
	for _, a := range alerts {
		byType[a.AlertType] = append(byType[a.AlertType], a)
	}

	out := make([]model.ServiceTypeAnalysis, 0, len(model.MaintenanceAlertTypes))
	for _, t := range model.MaintenanceAlertTypes {
		row := model.ServiceTypeAnalysis{ServiceType: t}
		for _, a := range byType[t] {
			row.Total++
			switch a.Priority {
			case model.AlertPriorityUrgent:
				row.Urgent++
			case model.AlertPriorityPending:
				row.Pending++
			}
			if a.Status == model.AlertStatusResolved {
				row.Resolved++
			}
		}
		row.AverageResolutionTime = averageResolutionDays(byType[t])
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// topPianos groups alerts by the piano they reference. Alerts without a piano are ignored.
func topPianos(alerts []model.PersistedAlert, n int) []model.TopEntity {
	byPiano := make(map[string]*model.TopEntity)
	for _, a := range alerts {
		if a.PianoID == nil || *a.PianoID == "" {
			continue
		}
		e, ok := byPiano[*a.PianoID]
		if !ok {
			e = &model.TopEntity{EntityID: *a.PianoID}
			byPiano[*a.PianoID] = e
		}
		if e.ClientID == "" && a.ClientID != nil {
			e.ClientID = *a.ClientID
		}

		e.Total++
		if a.Priority == model.AlertPriorityUrgent {
			e.Urgent++
		} else {
			e.Pending++
		}
	}

	out := make([]model.TopEntity, 0, len(byPiano))
	for _, e := range byPiano {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].EntityID < out[j].EntityID
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// periodWindow returns the window of the period lying back periods before the one holding now.
func periodWindow(now time.Time, p model.TrendPeriod, back int) model.Window {
	loc := now.Location()
	switch p {
	case model.TrendYear:
		start := time.Date(now.Year()-back, time.January, 1, 0, 0, 0, 0, loc)
		return model.Window{Start: start, End: start.AddDate(1, 0, 0)}
	case model.TrendQuarter:
		first := time.Month((int(now.Month())-1)/3*3 + 1)
		start := time.Date(now.Year(), first-time.Month(3*back), 1, 0, 0, 0, 0, loc)
		return model.Window{Start: start, End: start.AddDate(0, 3, 0)}
	default:
		start := time.Date(now.Year(), now.Month()-time.Month(back), 1, 0, 0, 0, 0, loc)
		return model.Window{Start: start, End: start.AddDate(0, 1, 0)}
	}
}

func periodLabel(start time.Time, p model.TrendPeriod) string {
	switch p {
	case model.TrendYear:
		return start.Format("2006")
	case model.TrendQuarter:
		return fmt.Sprintf("Q%d %d", (int(start.Month())-1)/3+1, start.Year())
	default:
		return start.Format("Jan 2006")
	}
}

func compare(current, previous model.PerformanceMetrics) model.PeriodComparison {
	return model.PeriodComparison{
		Current:  current,
		Previous: previous,
		Delta: model.MetricsDelta{
			Total:                 current.Total - previous.Total,
			ResolutionRate:        current.ResolutionRate - previous.ResolutionRate,
			AverageResolutionTime: current.AverageResolutionTime - previous.AverageResolutionTime,
		},
	}
}
