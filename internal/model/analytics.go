package model

import "time"

// Window is a half-open [Start, End) range over alert creation time.
// A zero bound leaves that side open.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && !t.Before(w.End) {
		return false
	}
	return true
}

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

func (g Granularity) IsValid() bool {
	return g == GranularityDay || g == GranularityWeek || g == GranularityMonth
}

type TrendPeriod string

const (
	TrendMonth   TrendPeriod = "month"
	TrendQuarter TrendPeriod = "quarter"
	TrendYear    TrendPeriod = "year"
)

func (p TrendPeriod) IsValid() bool {
	return p == TrendMonth || p == TrendQuarter || p == TrendYear
}

// PerformanceMetrics summarises alert handling within a window.
// ResolutionRate is a rounded percentage, AverageResolutionTime rounded days.
type PerformanceMetrics struct {
	Total                 int `json:"total"`
	Active                int `json:"active"`
	Acknowledged          int `json:"acknowledged"`
	Resolved              int `json:"resolved"`
	Dismissed             int `json:"dismissed"`
	ResolutionRate        int `json:"resolution_rate"`
	AverageResolutionTime int `json:"average_resolution_time"`
}

// TimeSeriesBucket counts urgent and pending by priority, resolved by status.
type TimeSeriesBucket struct {
	Key      string `json:"key"`
	Urgent   int    `json:"urgent"`
	Pending  int    `json:"pending"`
	Resolved int    `json:"resolved"`
}

type TypeDistribution struct {
	AlertType  AlertType `json:"alert_type"`
	Count      int       `json:"count"`
	Percentage int       `json:"percentage"`
}

type Trend struct {
	Label                 string    `json:"label"`
	Start                 time.Time `json:"start"`
	End                   time.Time `json:"end"`
	AlertsCreated         int       `json:"alerts_created"`
	AlertsResolved        int       `json:"alerts_resolved"`
	AverageResolutionTime int       `json:"average_resolution_time"`
	ResolutionRate        int       `json:"resolution_rate"`
}

type ServiceTypeAnalysis struct {
	ServiceType           AlertType `json:"service_type"`
	Total                 int       `json:"total"`
	Urgent                int       `json:"urgent"`
	Pending               int       `json:"pending"`
	Resolved              int       `json:"resolved"`
	AverageResolutionTime int       `json:"average_resolution_time"`
}

// TopEntity counts alerts raised for one referenced entity, usually a piano.
type TopEntity struct {
	EntityID string `json:"entity_id"`
	ClientID string `json:"client_id,omitempty"`
	Total    int    `json:"total"`
	Urgent   int    `json:"urgent"`
	Pending  int    `json:"pending"`
}

type MetricsDelta struct {
	Total                 int `json:"total"`
	ResolutionRate        int `json:"resolution_rate"`
	AverageResolutionTime int `json:"average_resolution_time"`
}

type PeriodComparison struct {
	Current  PerformanceMetrics `json:"current"`
	Previous PerformanceMetrics `json:"previous"`
	Delta    MetricsDelta       `json:"delta"`
}
