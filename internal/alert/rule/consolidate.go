package rule

import (
	"sort"

	"alert-srv/internal/model"
)

// Consolidate merges evaluator outputs in argument order and sorts them by priority.
// The sort is stable so alerts of equal priority keep their emission order.
func Consolidate(groups ...[]model.Alert) model.Consolidated {
	out := model.Consolidated{Alerts: []model.Alert{}}
	for _, g := range groups {
		out.Alerts = append(out.Alerts, g...)
	}

	sort.SliceStable(out.Alerts, func(i, j int) bool {
		return out.Alerts[i].Priority.Rank() < out.Alerts[j].Priority.Rank()
	})

	for _, a := range out.Alerts {
		out.Stats.Total++
		switch a.Priority {
		case model.PriorityUrgent:
			out.Stats.Urgent++
		case model.PriorityWarning:
			out.Stats.Warning++
		default:
			out.Stats.Info++
		}
	}

	// byCategory follows emission order, not priority order
	for _, g := range groups {
		for _, a := range g {
			switch a.Kind {
			case model.KindMaintenance:
				out.ByCategory.Maintenance = append(out.ByCategory.Maintenance, a)
			case model.KindAppointment:
				out.ByCategory.Appointments = append(out.ByCategory.Appointments, a)
			case model.KindInvoice:
				out.ByCategory.Invoices = append(out.ByCategory.Invoices, a)
			case model.KindQuote:
				out.ByCategory.Quotes = append(out.ByCategory.Quotes, a)
			}
		}
	}

	return out
}
