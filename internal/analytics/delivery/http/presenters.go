package http

import (
	"time"

	"alert-srv/internal/analytics"
	"alert-srv/internal/model"
	"alert-srv/pkg/response"
)

const dateFormat = "2006-01-02"

// parseTime accepts a date or an RFC3339 timestamp. Empty means unbounded.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(dateFormat, s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func parseWindow(start, end string) (model.Window, error) {
	s, err := parseTime(start)
	if err != nil {
		return model.Window{}, analytics.ErrInvalidWindow
	}
	e, err := parseTime(end)
	if err != nil {
		return model.Window{}, analytics.ErrInvalidWindow
	}
	if !s.IsZero() && !e.IsZero() && !s.Before(e) {
		return model.Window{}, analytics.ErrInvalidWindow
	}
	return model.Window{Start: s, End: e}, nil
}

type windowReq struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

func (r windowReq) toWindow() (model.Window, error) {
	return parseWindow(r.StartDate, r.EndDate)
}

type timeSeriesReq struct {
	windowReq
	Granularity string `form:"granularity"`
}

func (r timeSeriesReq) validate() error {
	if r.Granularity != "" && !model.Granularity(r.Granularity).IsValid() {
		return analytics.ErrInvalidGranularity
	}
	return nil
}

func (r timeSeriesReq) granularity() model.Granularity {
	if r.Granularity == "" {
		return model.GranularityDay
	}
	return model.Granularity(r.Granularity)
}

type trendsReq struct {
	Period  string `form:"period"`
	Periods int    `form:"periods"`
}

func (r trendsReq) validate() error {
	if r.Period != "" && !model.TrendPeriod(r.Period).IsValid() {
		return analytics.ErrInvalidPeriod
	}
	if r.Periods < 0 {
		return analytics.ErrInvalidPeriod
	}
	return nil
}

func (r trendsReq) period() model.TrendPeriod {
	if r.Period == "" {
		return model.TrendMonth
	}
	return model.TrendPeriod(r.Period)
}

type topPianosReq struct {
	windowReq
	Limit int `form:"limit"`
}

// compareReq compares two explicit windows. With no dates at all it compares
// the current calendar month with the previous one.
type compareReq struct {
	CurrentStart  string `form:"current_start"`
	CurrentEnd    string `form:"current_end"`
	PreviousStart string `form:"previous_start"`
	PreviousEnd   string `form:"previous_end"`
}

func (r compareReq) monthly() bool {
	return r.CurrentStart == "" && r.CurrentEnd == "" && r.PreviousStart == "" && r.PreviousEnd == ""
}

func (r compareReq) toWindows() (model.Window, model.Window, error) {
	cur, err := parseWindow(r.CurrentStart, r.CurrentEnd)
	if err != nil {
		return model.Window{}, model.Window{}, err
	}
	prev, err := parseWindow(r.PreviousStart, r.PreviousEnd)
	if err != nil {
		return model.Window{}, model.Window{}, err
	}
	return cur, prev, nil
}

type trendResp struct {
	Label                 string            `json:"label"`
	Start                 response.DateTime `json:"start"`
	End                   response.DateTime `json:"end"`
	AlertsCreated         int               `json:"alerts_created"`
	AlertsResolved        int               `json:"alerts_resolved"`
	AverageResolutionTime int               `json:"average_resolution_time"`
	ResolutionRate        int               `json:"resolution_rate"`
}

func (h *Handler) newTrendsResp(trends []model.Trend) []trendResp {
	out := make([]trendResp, 0, len(trends))
	for _, t := range trends {
		out = append(out, trendResp{
			Label:                 t.Label,
			Start:                 response.DateTime(t.Start),
			End:                   response.DateTime(t.End),
			AlertsCreated:         t.AlertsCreated,
			AlertsResolved:        t.AlertsResolved,
			AverageResolutionTime: t.AverageResolutionTime,
			ResolutionRate:        t.ResolutionRate,
		})
	}
	return out
}
