package rule

import (
	"fmt"
	"time"

	"alert-srv/internal/model"
)

// Maintenance evaluates piano maintenance against the given thresholds.
// A piano flagged needs_repair yields only a repair alert.
func Maintenance(pianos []model.Piano, now time.Time, th model.Thresholds) []model.Alert {
	var alerts []model.Alert
	for _, p := range pianos {
		idx := 0
		emit := func(a model.Alert) {
			a.ID = fmt.Sprintf("maintenance-%s-%d", p.ID, idx)
			alerts = append(alerts, a)
			idx++
		}

		if p.Condition == model.ConditionNeedsRepair {
			repairRef := p.CreatedAt
			if last, ok := lastService(p.Services, model.ServiceRepair); ok {
				repairRef = last
			}
			emit(maintenanceAlert(p, model.ServiceRepair, model.LevelUrgent, 0, repairRef))
			continue
		}

		tuningRef := p.CreatedAt
		if last, ok := lastService(p.Services, model.ServiceTuning); ok {
			tuningRef = last
		}
		days := DaysBetween(now, tuningRef)
		if lvl := level(days, th.TuningPending, th.TuningUrgent); lvl != model.LevelOK {
			emit(maintenanceAlert(p, model.ServiceTuning, lvl, days, tuningRef))
		}

		regRef, ok := lastService(p.Services, model.ServiceRegulation)
		if !ok {
			if DaysBetween(now, p.CreatedAt) < th.RegulationPending {
				continue
			}
			regRef = p.CreatedAt
		}
		days = DaysBetween(now, regRef)
		if lvl := level(days, th.RegulationPending, th.RegulationUrgent); lvl != model.LevelOK {
			emit(maintenanceAlert(p, model.ServiceRegulation, lvl, days, regRef))
		}
	}
	return alerts
}

func level(days, pending, urgent int) model.MaintenanceLevel {
	switch {
	case days >= urgent:
		return model.LevelUrgent
	case days >= pending:
		return model.LevelPending
	default:
		return model.LevelOK
	}
}

func lastService(services []model.Service, t model.ServiceType) (time.Time, bool) {
	var last time.Time
	found := false
	for _, s := range services {
		if s.Type != t {
			continue
		}
		if !found || s.Date.After(last) {
			last = s.Date
			found = true
		}
	}
	return last, found
}

func maintenanceAlert(p model.Piano, st model.ServiceType, lvl model.MaintenanceLevel, days int, since time.Time) model.Alert {
	prio := model.PriorityWarning
	if lvl == model.LevelUrgent {
		prio = model.PriorityUrgent
	}

	name := pianoName(p)
	var title, msg string
	switch st {
	case model.ServiceRepair:
		title = "Repair needed"
		msg = fmt.Sprintf("%s is flagged as needing repair", name)
	case model.ServiceTuning:
		title = "Tuning due"
		msg = fmt.Sprintf("%s was last tuned %d days ago", name, days)
	default:
		title = "Regulation due"
		msg = fmt.Sprintf("%s was last regulated %d days ago", name, days)
	}

	return model.Alert{
		Kind:      model.KindMaintenance,
		Priority:  prio,
		Title:     title,
		Message:   msg,
		ActionRef: p.ID,
		Payload: model.Payload{
			Kind: model.KindMaintenance,
			Maintenance: &model.MaintenancePayload{
				PianoID:     p.ID,
				ClientID:    p.ClientID,
				Brand:       p.Brand,
				Model:       p.Model,
				ServiceType: st,
				Level:       lvl,
				DaysSince:   days,
				Since:       since,
			},
		},
		DaysSinceReference: days,
	}
}

func pianoName(p model.Piano) string {
	switch {
	case p.Brand != "" && p.Model != "":
		return p.Brand + " " + p.Model
	case p.Brand != "":
		return p.Brand
	default:
		return "Piano " + p.ID
	}
}
