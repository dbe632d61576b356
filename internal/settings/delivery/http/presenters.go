package http

import (
	"net/http"

	"alert-srv/internal/model"
	"alert-srv/internal/settings"
	"alert-srv/pkg/errors"
	"alert-srv/pkg/response"
)

type updateReq struct {
	TuningDaysPending         *int  `json:"tuning_days_pending"`
	TuningDaysUrgent          *int  `json:"tuning_days_urgent"`
	RegulationDaysPending     *int  `json:"regulation_days_pending"`
	RegulationDaysUrgent      *int  `json:"regulation_days_urgent"`
	EmailNotificationsEnabled *bool `json:"email_notifications_enabled"`
	WeeklyDigestEnabled       *bool `json:"weekly_digest_enabled"`
	WeeklyDigestDay           *int  `json:"weekly_digest_day"`
}

// validate checks each field on its own. Ordering between pending and urgent
// depends on stored values and is checked by the use case.
func (r updateReq) validate() error {
	c := errors.NewValidationErrorCollector()
	inRange := func(field string, v *int, hi int, err error) {
		if v != nil && (*v < 1 || *v > hi) {
			c.Add(errors.NewValidationError(http.StatusBadRequest, field, err.Error()))
		}
	}

	inRange("tuning_days_pending", r.TuningDaysPending, settings.MaxTuningPending, settings.ErrInvalidTuningPending)
	inRange("tuning_days_urgent", r.TuningDaysUrgent, settings.MaxTuningUrgent, settings.ErrInvalidTuningUrgent)
	inRange("regulation_days_pending", r.RegulationDaysPending, settings.MaxRegulationPending, settings.ErrInvalidRegulationPending)
	inRange("regulation_days_urgent", r.RegulationDaysUrgent, settings.MaxRegulationUrgent, settings.ErrInvalidRegulationUrgent)
	inRange("weekly_digest_day", r.WeeklyDigestDay, 7, settings.ErrInvalidDigestDay)

	if c.HasError() {
		return c
	}
	return nil
}

func (r updateReq) toInput() settings.UpdateInput {
	return settings.UpdateInput{
		TuningPending:             r.TuningDaysPending,
		TuningUrgent:              r.TuningDaysUrgent,
		RegulationPending:         r.RegulationDaysPending,
		RegulationUrgent:          r.RegulationDaysUrgent,
		EmailNotificationsEnabled: r.EmailNotificationsEnabled,
		WeeklyDigestEnabled:       r.WeeklyDigestEnabled,
		WeeklyDigestDay:           r.WeeklyDigestDay,
	}
}

type settingsResp struct {
	OrganizationID            string             `json:"organization_id"`
	UserID                    *string            `json:"user_id,omitempty"`
	TuningDaysPending         int                `json:"tuning_days_pending"`
	TuningDaysUrgent          int                `json:"tuning_days_urgent"`
	RegulationDaysPending     int                `json:"regulation_days_pending"`
	RegulationDaysUrgent      int                `json:"regulation_days_urgent"`
	EmailNotificationsEnabled bool               `json:"email_notifications_enabled"`
	WeeklyDigestEnabled       bool               `json:"weekly_digest_enabled"`
	WeeklyDigestDay           int                `json:"weekly_digest_day"`
	UpdatedAt                 *response.DateTime `json:"updated_at,omitempty"`
}

func (h *Handler) newSettingsResp(s model.AlertSettings) settingsResp {
	r := settingsResp{
		OrganizationID:            s.OrganizationID,
		UserID:                    s.UserID,
		TuningDaysPending:         s.Thresholds.TuningPending,
		TuningDaysUrgent:          s.Thresholds.TuningUrgent,
		RegulationDaysPending:     s.Thresholds.RegulationPending,
		RegulationDaysUrgent:      s.Thresholds.RegulationUrgent,
		EmailNotificationsEnabled: s.EmailNotificationsEnabled,
		WeeklyDigestEnabled:       s.WeeklyDigestEnabled,
		WeeklyDigestDay:           s.WeeklyDigestDay,
	}
	if !s.UpdatedAt.IsZero() {
		t := response.DateTime(s.UpdatedAt)
		r.UpdatedAt = &t
	}
	return r
}
