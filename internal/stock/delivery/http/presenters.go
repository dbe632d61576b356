package http

import (
	"net/http"

	"alert-srv/internal/model"
	"alert-srv/internal/stock"
	"alert-srv/pkg/errors"
	"alert-srv/pkg/response"
)

type linkReq struct {
	InventoryID        string `json:"inventory_id" binding:"required"`
	ProductID          string `json:"product_id" binding:"required"`
	LowStockThreshold  int    `json:"low_stock_threshold"`
	ReorderQuantity    int    `json:"reorder_quantity"`
	AutoReorderEnabled bool   `json:"auto_reorder_enabled"`
}

func (r linkReq) validate() error {
	c := errors.NewValidationErrorCollector()
	if r.LowStockThreshold <= 0 {
		c.Add(errors.NewValidationError(http.StatusBadRequest, "low_stock_threshold", stock.ErrInvalidThreshold.Error()))
	}
	if r.ReorderQuantity <= 0 {
		c.Add(errors.NewValidationError(http.StatusBadRequest, "reorder_quantity", stock.ErrInvalidReorderQuantity.Error()))
	}

	if c.HasError() {
		return c
	}
	return nil
}

func (r linkReq) toInput() stock.LinkInput {
	return stock.LinkInput{
		InventoryID:        r.InventoryID,
		ProductID:          r.ProductID,
		LowStockThreshold:  r.LowStockThreshold,
		ReorderQuantity:    r.ReorderQuantity,
		AutoReorderEnabled: r.AutoReorderEnabled,
	}
}

type resolveReq struct {
	ResolvedByServiceID string `json:"resolved_by_service_id"`
}

type failureResp struct {
	InventoryID string `json:"inventory_id"`
	Reason      string `json:"reason"`
}

type passResp struct {
	Checked       int           `json:"checked"`
	AlertsCreated int           `json:"alerts_created"`
	OrdersCreated int           `json:"orders_created"`
	Skipped       int           `json:"skipped"`
	Failures      []failureResp `json:"failures,omitempty"`
}

func (h *Handler) newPassResp(r stock.PassResult) passResp {
	resp := passResp{
		Checked:       r.Checked,
		AlertsCreated: r.AlertsCreated,
		OrdersCreated: r.OrdersCreated,
		Skipped:       r.Skipped,
	}
	for _, f := range r.Failures {
		resp.Failures = append(resp.Failures, failureResp{InventoryID: f.InventoryID, Reason: f.Reason})
	}
	return resp
}

type stockAlertResp struct {
	ID           string            `json:"id"`
	Priority     string            `json:"priority"`
	Status       string            `json:"status"`
	Message      string            `json:"message"`
	InventoryID  string            `json:"inventory_id"`
	CurrentStock int               `json:"current_stock"`
	Threshold    int               `json:"threshold"`
	AutoOrderID  *string           `json:"auto_order_id"`
	CreatedAt    response.DateTime `json:"created_at"`
}

func newStockAlertResp(a model.PersistedAlert) stockAlertResp {
	r := stockAlertResp{
		ID:          a.ID,
		Priority:    string(a.Priority),
		Status:      string(a.Status),
		Message:     a.Message,
		AutoOrderID: a.AutoOrderID,
		CreatedAt:   response.DateTime(a.CreatedAt),
	}
	if a.InventoryID != nil {
		r.InventoryID = *a.InventoryID
	}
	if a.CurrentStock != nil {
		r.CurrentStock = *a.CurrentStock
	}
	if a.Threshold != nil {
		r.Threshold = *a.Threshold
	}
	return r
}

func (h *Handler) newStockAlertsResp(alerts []model.PersistedAlert) []stockAlertResp {
	out := make([]stockAlertResp, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, newStockAlertResp(a))
	}
	return out
}

type linkResp struct {
	InventoryID        string `json:"inventory_id"`
	ProductID          string `json:"product_id"`
	LowStockThreshold  int    `json:"low_stock_threshold"`
	ReorderQuantity    int    `json:"reorder_quantity"`
	AutoReorderEnabled bool   `json:"auto_reorder_enabled"`
}

func (h *Handler) newLinkResp(l model.ReorderLink) linkResp {
	return linkResp{
		InventoryID:        l.InventoryID,
		ProductID:          l.ProductID,
		LowStockThreshold:  l.LowStockThreshold,
		ReorderQuantity:    l.ReorderQuantity,
		AutoReorderEnabled: l.AutoReorderEnabled,
	}
}
