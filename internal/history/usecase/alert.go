package usecase

import (
	"context"
	"strings"

	"alert-srv/internal/history"
	"alert-srv/internal/history/repository"
	"alert-srv/internal/model"
)

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip history.CreateInput) (model.PersistedAlert, error) {
	if sc.IsViewer() {
		return model.PersistedAlert{}, history.ErrPermissionDenied
	}
	if !ip.AlertType.IsValid() || ip.AlertType == model.AlertTypeStock {
		return model.PersistedAlert{}, history.ErrInvalidAlertType
	}
	if !ip.Priority.IsValid() {
		return model.PersistedAlert{}, history.ErrInvalidPriority
	}
	if strings.TrimSpace(ip.Message) == "" {
		return model.PersistedAlert{}, history.ErrMessageRequired
	}

	a := model.PersistedAlert{
		AlertType:            ip.AlertType,
		Priority:             ip.Priority,
		Status:               model.AlertStatusActive,
		Message:              ip.Message,
		PianoID:              optional(ip.PianoID),
		ClientID:             optional(ip.ClientID),
		UserID:               optional(sc.UserID),
		DaysSinceLastService: ip.DaysSinceLastService,
	}

	return uc.create(ctx, sc, a)
}

func (uc *usecase) CreateStock(ctx context.Context, sc model.Scope, ip history.CreateStockInput) (model.PersistedAlert, error) {
	if ip.InventoryID == "" {
		return model.PersistedAlert{}, history.ErrInventoryRequired
	}
	if !ip.Priority.IsValid() {
		return model.PersistedAlert{}, history.ErrInvalidPriority
	}

	stock, threshold := ip.CurrentStock, ip.Threshold
	a := model.PersistedAlert{
		AlertType:    model.AlertTypeStock,
		Priority:     ip.Priority,
		Status:       model.AlertStatusActive,
		Message:      ip.Message,
		InventoryID:  &ip.InventoryID,
		CurrentStock: &stock,
		Threshold:    &threshold,
	}

	return uc.create(ctx, sc, a)
}

func (uc *usecase) create(ctx context.Context, sc model.Scope, a model.PersistedAlert) (model.PersistedAlert, error) {
	a.CreatedAt = uc.clock()

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Alert: a})
	if err != nil {
		if err == repository.ErrDuplicate {
			return model.PersistedAlert{}, history.ErrDuplicateAlert
		}
		uc.l.Errorf(ctx, "internal.history.usecase.create.Create: %v", err)
		return model.PersistedAlert{}, err
	}

	if err := uc.notifier.PublishAlert(ctx, sc, created); err != nil {
		uc.l.Warnf(ctx, "internal.history.usecase.create.PublishAlert: %v", err)
	}

	return created, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.PersistedAlert, error) {
	a, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.PersistedAlert{}, history.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.history.usecase.Detail: %v", err)
		return model.PersistedAlert{}, err
	}

	return a, nil
}

func (uc *usecase) FindActiveStock(ctx context.Context, sc model.Scope, inventoryID string) (model.PersistedAlert, error) {
	a, err := uc.repo.FindActiveStock(ctx, sc, inventoryID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.PersistedAlert{}, history.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.history.usecase.FindActiveStock: %v", err)
		return model.PersistedAlert{}, err
	}

	return a, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip history.GetInput) (history.GetOutput, error) {
	limit := ip.Limit
	if limit <= 0 {
		limit = history.DefaultLimit
	} else if limit > history.MaxLimit {
		limit = history.MaxLimit
	}
	offset := ip.Offset
	if offset < 0 {
		offset = 0
	}

	alerts, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter: toRepoFilter(ip.Filter, model.Window{}),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.history.usecase.Get: %v", err)
		return history.GetOutput{}, err
	}

	return history.GetOutput{
		Alerts:    alerts,
		Paginator: pag,
		HasMore:   int64(offset+limit) < pag.Total,
	}, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip history.ListInput) ([]model.PersistedAlert, error) {
	alerts, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: toRepoFilter(ip.Filter, ip.Window),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.history.usecase.List: %v", err)
		return nil, history.ErrStoreUnavailable
	}

	return alerts, nil
}

func toRepoFilter(f history.Filter, w model.Window) repository.Filter {
	return repository.Filter{
		Statuses:    f.Statuses,
		Priorities:  f.Priorities,
		Types:       f.Types,
		PianoID:     f.PianoID,
		InventoryID: f.InventoryID,
		Window:      w,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
