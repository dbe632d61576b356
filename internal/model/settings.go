package model

import "time"

const (
	DefaultTuningPending     = 180
	DefaultTuningUrgent      = 270
	DefaultRegulationPending = 730
	DefaultRegulationUrgent  = 1095
	DefaultWeeklyDigestDay   = 1
)

// Thresholds are the day counts after which maintenance becomes due.
type Thresholds struct {
	TuningPending     int `json:"tuning_pending"`
	TuningUrgent      int `json:"tuning_urgent"`
	RegulationPending int `json:"regulation_pending"`
	RegulationUrgent  int `json:"regulation_urgent"`
}

// DefaultThresholds returns the stock maintenance intervals.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TuningPending:     DefaultTuningPending,
		TuningUrgent:      DefaultTuningUrgent,
		RegulationPending: DefaultRegulationPending,
		RegulationUrgent:  DefaultRegulationUrgent,
	}
}

// AlertSettings hold the alert preferences of an organization, or of one user when UserID is set.
type AlertSettings struct {
	ID                        string     `json:"id"`
	OrganizationID            string     `json:"organization_id"`
	UserID                    *string    `json:"user_id,omitempty"`
	Thresholds                Thresholds `json:"thresholds"`
	EmailNotificationsEnabled bool       `json:"email_notifications_enabled"`
	WeeklyDigestEnabled       bool       `json:"weekly_digest_enabled"`
	WeeklyDigestDay           int        `json:"weekly_digest_day"`
	UpdatedAt                 time.Time  `json:"updated_at"`
}

// DefaultAlertSettings returns the settings used when nothing is stored.
func DefaultAlertSettings(orgID string) AlertSettings {
	return AlertSettings{
		OrganizationID:            orgID,
		Thresholds:                DefaultThresholds(),
		EmailNotificationsEnabled: true,
		WeeklyDigestEnabled:       false,
		WeeklyDigestDay:           DefaultWeeklyDigestDay,
	}
}

// DigestWeekday maps WeeklyDigestDay (1=Monday .. 7=Sunday) to time.Weekday.
func (s AlertSettings) DigestWeekday() time.Weekday {
	return time.Weekday(s.WeeklyDigestDay % 7)
}
