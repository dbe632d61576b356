package usecase

import (
	"context"

	"alert-srv/internal/history"
	"alert-srv/internal/history/repository"
	"alert-srv/internal/model"
)

// RecordMaintenance persists maintenance alerts as active alerts.
// A piano keeps at most one open alert per type, and a condition dismissed since its
// reference date is not raised again. Both cases are counted as skipped.
func (uc *usecase) RecordMaintenance(ctx context.Context, sc model.Scope, alerts []model.Alert) (history.RecordOutput, error) {
	var out history.RecordOutput
	for _, a := range alerts {
		p := a.Payload.Maintenance
		if a.Kind != model.KindMaintenance || p == nil {
			continue
		}

		dismissed, err := uc.dismissedSince(ctx, sc, p)
		if err != nil {
			uc.l.Errorf(ctx, "internal.history.usecase.RecordMaintenance.dismissedSince: %v", err)
			return out, err
		}
		if dismissed {
			out.Skipped++
			continue
		}

		prio := model.AlertPriorityPending
		if p.Level == model.LevelUrgent {
			prio = model.AlertPriorityUrgent
		}
		days := p.DaysSince

		created, err := uc.create(ctx, sc, model.PersistedAlert{
			AlertType:            model.AlertType(p.ServiceType),
			Priority:             prio,
			Status:               model.AlertStatusActive,
			Message:              a.Message,
			PianoID:              optional(p.PianoID),
			ClientID:             optional(p.ClientID),
			DaysSinceLastService: &days,
		})
		if err != nil {
			if err == history.ErrDuplicateAlert {
				out.Skipped++
				continue
			}
			uc.l.Errorf(ctx, "internal.history.usecase.RecordMaintenance.create: %v", err)
			return out, err
		}
		out.Created = append(out.Created, created)
	}

	return out, nil
}

// dismissedSince reports whether the piano's alert of this type was dismissed
// after being raised on or after p.Since. A zero Since never matches.
func (uc *usecase) dismissedSince(ctx context.Context, sc model.Scope, p *model.MaintenancePayload) (bool, error) {
	if p.Since.IsZero() {
		return false, nil
	}

	alerts, err := uc.repo.List(ctx, sc, repository.ListOptions{Filter: repository.Filter{
		Statuses: []model.AlertStatus{model.AlertStatusDismissed},
		Types:    []model.AlertType{model.AlertType(p.ServiceType)},
		PianoID:  p.PianoID,
		Window:   model.Window{Start: p.Since},
	}})
	if err != nil {
		return false, err
	}

	return len(alerts) > 0, nil
}
