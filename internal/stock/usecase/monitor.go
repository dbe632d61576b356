package usecase

import (
	"context"
	"fmt"
	"time"

	"alert-srv/internal/history"
	"alert-srv/internal/model"
	"alert-srv/internal/stock"
	"alert-srv/internal/stock/repository"
)

const (
	skipConfig  = "config"
	skipProduct = "product"
	skipStore   = "store"
	skipOrder   = "order"
)

type itemOutcome struct {
	alertCreated bool
	orderCreated bool
	skip         string
	err          error
}

func (uc *implUseCase) RunPass(ctx context.Context, sc model.Scope) (stock.PassResult, error) {
	start := time.Now()
	defer func() { passDuration.Observe(time.Since(start).Seconds()) }()

	items, err := uc.repo.ListItems(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.stock.usecase.RunPass.ListItems: %v", err)
		passTotal.WithLabelValues("error").Inc()
		return stock.PassResult{}, err
	}

	var res stock.PassResult
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			uc.l.Warnf(ctx, "internal.stock.usecase.RunPass.ctx: %v", err)
			passTotal.WithLabelValues("canceled").Inc()
			return res, err
		}

		res.Checked++
		itemsChecked.Inc()

		out := uc.checkItem(ctx, sc, item)
		if out.alertCreated {
			res.AlertsCreated++
		}
		if out.orderCreated {
			res.OrdersCreated++
			ordersCreated.Inc()
		}
		if out.err != nil {
			uc.l.Warnf(ctx, "internal.stock.usecase.RunPass.checkItem: inventory=%s: %v", item.InventoryID, out.err)
			res.Skipped++
			res.Failures = append(res.Failures, stock.ItemFailure{InventoryID: item.InventoryID, Reason: out.err.Error()})
			itemsSkipped.WithLabelValues(out.skip).Inc()
		}
	}

	passTotal.WithLabelValues("ok").Inc()
	return res, nil
}

func (uc *implUseCase) checkItem(ctx context.Context, sc model.Scope, item model.StockItem) itemOutcome {
	link := item.Link
	if link.LowStockThreshold <= 0 {
		return itemOutcome{skip: skipConfig, err: stock.ErrInvalidThreshold}
	}
	if link.ReorderQuantity <= 0 {
		return itemOutcome{skip: skipConfig, err: stock.ErrInvalidReorderQuantity}
	}
	// Recovery never resolves an open alert.
	if item.Quantity >= link.LowStockThreshold {
		return itemOutcome{}
	}

	unlock := uc.locks.Lock(sc.OrganizationID + "/" + item.InventoryID)
	defer unlock()

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.ItemTimeout)
	defer cancel()

	var out itemOutcome
	a, err := uc.history.FindActiveStock(ctx, sc, item.InventoryID)
	switch err {
	case nil:
	case history.ErrAlertNotFound:
		prio := uc.priority(item.Quantity, link.LowStockThreshold)
		a, err = uc.history.CreateStock(ctx, sc, history.CreateStockInput{
			InventoryID:  item.InventoryID,
			Priority:     prio,
			Message:      fmt.Sprintf("Low stock: %s has %d units left (threshold %d)", item.Name, item.Quantity, link.LowStockThreshold),
			CurrentStock: item.Quantity,
			Threshold:    link.LowStockThreshold,
		})
		if err == history.ErrDuplicateAlert {
			// Another instance created it; the next pass picks up its order step.
			return itemOutcome{}
		}
		if err != nil {
			return itemOutcome{skip: skipStore, err: err}
		}
		out.alertCreated = true
		alertsCreated.WithLabelValues(string(prio)).Inc()
	default:
		return itemOutcome{skip: skipStore, err: err}
	}

	if a.HasOrder() || !link.AutoReorderEnabled {
		return out
	}

	p, err := uc.repo.GetProduct(ctx, sc, link.ProductID)
	if err != nil {
		out.skip, out.err = skipStore, err
		if err == repository.ErrNotFound {
			out.skip, out.err = skipProduct, stock.ErrProductNotFound
		}
		return out
	}
	if !p.Available {
		out.skip, out.err = skipProduct, stock.ErrProductUnavailable
		return out
	}

	_, err = uc.repo.CreateAutoOrder(ctx, sc, repository.CreateAutoOrderOptions{
		AlertID: a.ID,
		Order:   buildOrder(item, p, uc.clock()),
	})
	switch err {
	case nil:
		out.orderCreated = true
	case repository.ErrAlreadyLinked, repository.ErrNotFound:
		// Linked or closed concurrently.
	default:
		out.skip, out.err = skipOrder, err
	}

	return out
}

func (uc *implUseCase) priority(qty, threshold int) model.AlertPriority {
	if float64(qty) < float64(threshold)*uc.cfg.UrgentRatio {
		return model.AlertPriorityUrgent
	}
	return model.AlertPriorityPending
}
