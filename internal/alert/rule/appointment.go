package rule

import (
	"fmt"
	"time"

	"alert-srv/internal/model"
)

// Appointments emits one alert for today's appointments and one for the next seven days.
func Appointments(appts []model.Appointment, now time.Time) []model.Alert {
	today := StartOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekEnd := today.AddDate(0, 0, 8)

	var todayIDs, weekIDs []string
	for _, a := range appts {
		switch {
		case !a.Date.Before(today) && a.Date.Before(tomorrow):
			todayIDs = append(todayIDs, a.ID)
		case !a.Date.Before(tomorrow) && a.Date.Before(weekEnd):
			weekIDs = append(weekIDs, a.ID)
		}
	}

	var alerts []model.Alert
	if len(todayIDs) > 0 {
		alerts = append(alerts, appointmentAlert("appointment-today-0", model.PriorityUrgent,
			"Appointments today", fmt.Sprintf("%d appointment(s) scheduled today", len(todayIDs)), todayIDs))
	}
	if len(weekIDs) > 0 {
		alerts = append(alerts, appointmentAlert("appointment-week-0", model.PriorityInfo,
			"Appointments this week", fmt.Sprintf("%d appointment(s) in the next 7 days", len(weekIDs)), weekIDs))
	}
	return alerts
}

func appointmentAlert(id string, prio model.Priority, title, msg string, ids []string) model.Alert {
	return model.Alert{
		ID:        id,
		Kind:      model.KindAppointment,
		Priority:  prio,
		Title:     title,
		Message:   msg,
		ActionRef: ids[0],
		Payload: model.Payload{
			Kind:         model.KindAppointment,
			Appointments: &model.AppointmentPayload{Count: len(ids), AppointmentIDs: ids},
		},
	}
}
