package rule

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// DaysBetween returns the whole days between two instants, rounded up.
func DaysBetween(now, ref time.Time) int {
	d := now.Sub(ref)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(float64(d) / float64(day)))
}

// StartOfDay returns local midnight of t in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
