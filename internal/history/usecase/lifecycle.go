package usecase

import (
	"context"

	"alert-srv/internal/history"
	"alert-srv/internal/history/repository"
	"alert-srv/internal/model"
)

func (uc *usecase) Acknowledge(ctx context.Context, sc model.Scope, id string) (model.PersistedAlert, error) {
	return uc.transition(ctx, sc, id, model.AlertStatusAcknowledged, "")
}

func (uc *usecase) Resolve(ctx context.Context, sc model.Scope, ip history.ResolveInput) (model.PersistedAlert, error) {
	return uc.transition(ctx, sc, ip.ID, model.AlertStatusResolved, ip.ResolvedByServiceID)
}

func (uc *usecase) Dismiss(ctx context.Context, sc model.Scope, id string) (model.PersistedAlert, error) {
	return uc.transition(ctx, sc, id, model.AlertStatusDismissed, "")
}

// transition applies one lifecycle step. The update is conditional on the status
// that was read, so a concurrent change surfaces as ErrInvalidTransition.
func (uc *usecase) transition(ctx context.Context, sc model.Scope, id string, to model.AlertStatus, serviceID string) (model.PersistedAlert, error) {
	if sc.IsViewer() {
		return model.PersistedAlert{}, history.ErrPermissionDenied
	}

	cur, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.PersistedAlert{}, history.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.history.usecase.transition.Detail: %v", err)
		return model.PersistedAlert{}, err
	}

	if !cur.Status.CanTransitionTo(to) {
		return model.PersistedAlert{}, history.ErrInvalidTransition
	}

	updated, err := uc.repo.UpdateStatus(ctx, sc, repository.UpdateStatusOptions{
		ID:                  id,
		From:                cur.Status,
		To:                  to,
		At:                  uc.clock(),
		ResolvedByServiceID: serviceID,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return model.PersistedAlert{}, history.ErrInvalidTransition
		}
		uc.l.Errorf(ctx, "internal.history.usecase.transition.UpdateStatus: %v", err)
		return model.PersistedAlert{}, err
	}

	return updated, nil
}
