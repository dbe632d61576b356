package notification

import (
	"time"

	"alert-srv/internal/model"
)

type MessageType string

const (
	MessageTypeAlertCreated MessageType = "ALERT_CREATED"
)

// ChannelPrefix is followed by the organization id.
const ChannelPrefix = "alerts:"

// Channel returns the redis channel an organization's alerts are published on.
func Channel(orgID string) string {
	return ChannelPrefix + orgID
}

// AlertMessage is the JSON envelope published for every new alert.
type AlertMessage struct {
	Type      MessageType          `json:"type"`
	Timestamp time.Time            `json:"timestamp"`
	Payload   model.PersistedAlert `json:"payload"`
}

type DigestInput struct {
	// Force sends outside the configured weekday and ignores an earlier send of the day.
	Force bool
}

type DigestOutput struct {
	Sent       bool
	AlertCount int
	Reason     string
}

const (
	ReasonDisabled     = "digest_disabled"
	ReasonNotScheduled = "not_scheduled_today"
	ReasonAlreadySent  = "already_sent"
	ReasonNoAlerts     = "no_urgent_alerts"
	ReasonNoChannel    = "no_channel_configured"
)
