package postgres

import (
	"time"

	"alert-srv/internal/model"

	"github.com/aarondl/null/v8"
)

type settingsRow struct {
	ID                        string      `boil:"id"`
	OrganizationID            string      `boil:"organization_id"`
	UserID                    null.String `boil:"user_id"`
	TuningDaysPending         int         `boil:"tuning_days_pending"`
	TuningDaysUrgent          int         `boil:"tuning_days_urgent"`
	RegulationDaysPending     int         `boil:"regulation_days_pending"`
	RegulationDaysUrgent      int         `boil:"regulation_days_urgent"`
	EmailNotificationsEnabled bool        `boil:"email_notifications_enabled"`
	WeeklyDigestEnabled       bool        `boil:"weekly_digest_enabled"`
	WeeklyDigestDay           int         `boil:"weekly_digest_day"`
	UpdatedAt                 time.Time   `boil:"updated_at"`
}

func (r settingsRow) toModel() model.AlertSettings {
	return model.AlertSettings{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		UserID:         r.UserID.Ptr(),
		Thresholds: model.Thresholds{
			TuningPending:     r.TuningDaysPending,
			TuningUrgent:      r.TuningDaysUrgent,
			RegulationPending: r.RegulationDaysPending,
			RegulationUrgent:  r.RegulationDaysUrgent,
		},
		EmailNotificationsEnabled: r.EmailNotificationsEnabled,
		WeeklyDigestEnabled:       r.WeeklyDigestEnabled,
		WeeklyDigestDay:           r.WeeklyDigestDay,
		UpdatedAt:                 r.UpdatedAt,
	}
}
