package analytics

const (
	DefaultTrendPeriods = 12
	MaxTrendPeriods     = 60
	DefaultTopN         = 10
	MaxTopN             = 100
)
