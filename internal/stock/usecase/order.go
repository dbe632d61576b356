package usecase

import (
	"fmt"
	"time"

	"alert-srv/internal/model"
	"alert-srv/internal/stock"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// buildOrder prices a one-line draft order for the linked product.
func buildOrder(item model.StockItem, p model.Product, now time.Time) model.Order {
	qty := decimal.NewFromInt(int64(item.Link.ReorderQuantity))
	subtotal := p.Price.Mul(qty).Round(2)
	vat := subtotal.Mul(p.VATRate).Div(hundred).Round(2)
	total := subtotal.Add(vat)

	currency := p.Currency
	if currency == "" {
		currency = stock.DefaultCurrency
	}

	return model.Order{
		Status:          model.OrderStatusDraft,
		ApprovalStatus:  model.ApprovalPending,
		Currency:        currency,
		Subtotal:        subtotal,
		VATAmount:       vat,
		Total:           total,
		IsAutoGenerated: true,
		Notes:           fmt.Sprintf("auto-generated for low stock (%d units)", item.Quantity),
		Lines: []model.OrderLine{{
			ProductID: p.ID,
			Name:      p.Name,
			SKU:       p.SKU,
			Quantity:  item.Link.ReorderQuantity,
			UnitPrice: p.Price,
			VATRate:   p.VATRate,
			Total:     subtotal,
		}},
		CreatedAt: now,
	}
}
