package usecase

import (
	"context"

	"alert-srv/internal/history"
	"alert-srv/internal/model"
	"alert-srv/internal/stock"
	"alert-srv/internal/stock/repository"
)

func (uc *implUseCase) ActiveAlerts(ctx context.Context, sc model.Scope) ([]model.PersistedAlert, error) {
	alerts, err := uc.history.List(ctx, sc, history.ListInput{Filter: history.Filter{
		Types:    []model.AlertType{model.AlertTypeStock},
		Statuses: []model.AlertStatus{model.AlertStatusActive, model.AlertStatusAcknowledged},
	}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.stock.usecase.ActiveAlerts.List: %v", err)
		return nil, err
	}

	return alerts, nil
}

func (uc *implUseCase) ResolveAlert(ctx context.Context, sc model.Scope, ip stock.ResolveInput) (model.PersistedAlert, error) {
	if sc.IsViewer() {
		return model.PersistedAlert{}, stock.ErrPermissionDenied
	}

	a, err := uc.history.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == history.ErrAlertNotFound {
			return model.PersistedAlert{}, stock.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.stock.usecase.ResolveAlert.Detail: %v", err)
		return model.PersistedAlert{}, err
	}
	if a.AlertType != model.AlertTypeStock {
		return model.PersistedAlert{}, stock.ErrNotStockAlert
	}

	resolved, err := uc.history.Resolve(ctx, sc, history.ResolveInput{ID: a.ID, ResolvedByServiceID: ip.ResolvedByServiceID})
	if err != nil {
		switch err {
		case history.ErrInvalidTransition:
			return model.PersistedAlert{}, stock.ErrAlertClosed
		case history.ErrAlertNotFound:
			return model.PersistedAlert{}, stock.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.stock.usecase.ResolveAlert.Resolve: %v", err)
		return model.PersistedAlert{}, err
	}

	return resolved, nil
}

func (uc *implUseCase) LinkProduct(ctx context.Context, sc model.Scope, ip stock.LinkInput) (model.ReorderLink, error) {
	if sc.IsViewer() {
		return model.ReorderLink{}, stock.ErrPermissionDenied
	}
	switch {
	case ip.InventoryID == "":
		return model.ReorderLink{}, stock.ErrInventoryRequired
	case ip.ProductID == "":
		return model.ReorderLink{}, stock.ErrProductRequired
	case ip.LowStockThreshold <= 0:
		return model.ReorderLink{}, stock.ErrInvalidThreshold
	case ip.ReorderQuantity <= 0:
		return model.ReorderLink{}, stock.ErrInvalidReorderQuantity
	}

	if _, err := uc.repo.GetProduct(ctx, sc, ip.ProductID); err != nil {
		if err == repository.ErrNotFound {
			return model.ReorderLink{}, stock.ErrProductNotFound
		}
		uc.l.Errorf(ctx, "internal.stock.usecase.LinkProduct.GetProduct: %v", err)
		return model.ReorderLink{}, err
	}

	link, err := uc.repo.UpsertLink(ctx, sc, repository.UpsertLinkOptions{Link: model.ReorderLink{
		OrganizationID:     sc.OrganizationID,
		InventoryID:        ip.InventoryID,
		ProductID:          ip.ProductID,
		LowStockThreshold:  ip.LowStockThreshold,
		ReorderQuantity:    ip.ReorderQuantity,
		AutoReorderEnabled: ip.AutoReorderEnabled,
	}})
	if err != nil {
		if err == repository.ErrNotFound {
			return model.ReorderLink{}, stock.ErrInventoryNotFound
		}
		uc.l.Errorf(ctx, "internal.stock.usecase.LinkProduct.UpsertLink: %v", err)
		return model.ReorderLink{}, err
	}

	return link, nil
}
