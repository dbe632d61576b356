package postgres

import (
	"time"

	"alert-srv/internal/model"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type itemRow struct {
	ID                 string    `boil:"id"`
	OrganizationID     string    `boil:"organization_id"`
	InventoryID        string    `boil:"inventory_id"`
	ProductID          string    `boil:"product_id"`
	LowStockThreshold  int       `boil:"low_stock_threshold"`
	ReorderQuantity    int       `boil:"reorder_quantity"`
	AutoReorderEnabled bool      `boil:"auto_reorder_enabled"`
	UpdatedAt          time.Time `boil:"updated_at"`
	Name               string    `boil:"name"`
	Quantity           int       `boil:"quantity"`
}

func (r itemRow) toLink() model.ReorderLink {
	return model.ReorderLink{
		ID:                 r.ID,
		OrganizationID:     r.OrganizationID,
		InventoryID:        r.InventoryID,
		ProductID:          r.ProductID,
		LowStockThreshold:  r.LowStockThreshold,
		ReorderQuantity:    r.ReorderQuantity,
		AutoReorderEnabled: r.AutoReorderEnabled,
		UpdatedAt:          r.UpdatedAt,
	}
}

func (r itemRow) toModel() model.StockItem {
	return model.StockItem{
		InventoryID: r.InventoryID,
		Name:        r.Name,
		Quantity:    r.Quantity,
		Link:        r.toLink(),
	}
}

type productRow struct {
	ID        string          `boil:"id"`
	Name      string          `boil:"name"`
	SKU       null.String     `boil:"sku"`
	Price     decimal.Decimal `boil:"price"`
	VATRate   decimal.Decimal `boil:"vat_rate"`
	Currency  null.String     `boil:"currency"`
	Available bool            `boil:"available"`
}

func (r productRow) toModel() model.Product {
	return model.Product{
		ID:        r.ID,
		Name:      r.Name,
		SKU:       r.SKU.String,
		Price:     r.Price,
		VATRate:   r.VATRate,
		Currency:  r.Currency.String,
		Available: r.Available,
	}
}

type lockRow struct {
	AutoOrderID null.String `boil:"auto_order_id"`
}
