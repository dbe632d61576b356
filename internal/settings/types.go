package settings

// Upper bounds, in days, for each threshold. Every threshold is at least 1.
const (
	MaxTuningPending     = 365
	MaxTuningUrgent      = 730
	MaxRegulationPending = 1825
	MaxRegulationUrgent  = 3650
)

// UpdateInput carries the fields to change; nil fields keep their current value.
type UpdateInput struct {
	TuningPending             *int
	TuningUrgent              *int
	RegulationPending         *int
	RegulationUrgent          *int
	EmailNotificationsEnabled *bool
	WeeklyDigestEnabled       *bool
	WeeklyDigestDay           *int
}
