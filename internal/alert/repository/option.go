package repository

import "time"

// ListAppointmentsOptions bounds appointments to [From, To).
type ListAppointmentsOptions struct {
	From time.Time
	To   time.Time
}
