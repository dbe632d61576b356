package rule

import (
	"fmt"
	"time"

	"alert-srv/internal/model"

	"github.com/shopspring/decimal"
)

const expiringWindow = 7 * day

type docSet struct {
	ids   []string
	total decimal.Decimal
}

func (s *docSet) add(id string, total decimal.Decimal) {
	s.ids = append(s.ids, id)
	s.total = s.total.Add(total)
}

func (s docSet) payload() *model.DocumentPayload {
	return &model.DocumentPayload{Count: len(s.ids), Total: s.total, IDs: s.ids}
}

// Invoices emits an urgent alert for overdue sent invoices and a warning for the rest of the sent ones.
func Invoices(invoices []model.Invoice, now time.Time) []model.Alert {
	var overdue, pending docSet
	for _, inv := range invoices {
		if inv.Status != model.DocumentSent {
			continue
		}
		if inv.DueDate != nil && inv.DueDate.Before(now) {
			overdue.add(inv.ID, inv.Total)
			continue
		}
		pending.add(inv.ID, inv.Total)
	}

	var alerts []model.Alert
	if len(overdue.ids) > 0 {
		alerts = append(alerts, invoiceAlert("invoice-overdue-0", model.PriorityUrgent, "Overdue invoices",
			fmt.Sprintf("%d overdue invoice(s) totalling %s", len(overdue.ids), overdue.total.StringFixed(2)), overdue))
	}
	if len(pending.ids) > 0 {
		alerts = append(alerts, invoiceAlert("invoice-pending-0", model.PriorityWarning, "Pending invoices",
			fmt.Sprintf("%d invoice(s) awaiting payment totalling %s", len(pending.ids), pending.total.StringFixed(2)), pending))
	}
	return alerts
}

// Quotes emits an info alert for sent quotes and a warning for the sent ones expiring within seven days.
func Quotes(quotes []model.Quote, now time.Time) []model.Alert {
	var sent, expiring docSet
	limit := now.Add(expiringWindow)
	for _, q := range quotes {
		if q.Status != model.DocumentSent {
			continue
		}
		sent.add(q.ID, q.Total)
		if q.ValidUntil != nil && q.ValidUntil.After(now) && !q.ValidUntil.After(limit) {
			expiring.add(q.ID, q.Total)
		}
	}

	var alerts []model.Alert
	if len(sent.ids) > 0 {
		alerts = append(alerts, quoteAlert("quote-pending-0", model.PriorityInfo, "Pending quotes",
			fmt.Sprintf("%d quote(s) awaiting an answer", len(sent.ids)), sent))
	}
	if len(expiring.ids) > 0 {
		alerts = append(alerts, quoteAlert("quote-expiring-0", model.PriorityWarning, "Quotes expiring soon",
			fmt.Sprintf("%d quote(s) expire within 7 days", len(expiring.ids)), expiring))
	}
	return alerts
}

func invoiceAlert(id string, prio model.Priority, title, msg string, s docSet) model.Alert {
	return model.Alert{
		ID:        id,
		Kind:      model.KindInvoice,
		Priority:  prio,
		Title:     title,
		Message:   msg,
		ActionRef: s.ids[0],
		Payload:   model.Payload{Kind: model.KindInvoice, Invoices: s.payload()},
	}
}

func quoteAlert(id string, prio model.Priority, title, msg string, s docSet) model.Alert {
	return model.Alert{
		ID:        id,
		Kind:      model.KindQuote,
		Priority:  prio,
		Title:     title,
		Message:   msg,
		ActionRef: s.ids[0],
		Payload:   model.Payload{Kind: model.KindQuote, Quotes: s.payload()},
	}
}
