package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReorderLink binds an inventory item to a catalog product and a reorder policy.
type ReorderLink struct {
	ID                 string    `json:"id"`
	OrganizationID     string    `json:"organization_id"`
	InventoryID        string    `json:"inventory_id"`
	ProductID          string    `json:"product_id"`
	LowStockThreshold  int       `json:"low_stock_threshold"`
	ReorderQuantity    int       `json:"reorder_quantity"`
	AutoReorderEnabled bool      `json:"auto_reorder_enabled"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// StockItem is an inventory item with its current quantity and reorder link.
type StockItem struct {
	InventoryID string      `json:"inventory_id"`
	Name        string      `json:"name"`
	Quantity    int         `json:"quantity"`
	Link        ReorderLink `json:"link"`
}

// Product is a catalog entry orders are priced from.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Price     decimal.Decimal `json:"price"`
	VATRate   decimal.Decimal `json:"vat_rate"`
	Currency  string          `json:"currency"`
	Available bool            `json:"available"`
}

type OrderStatus string

const (
	OrderStatusDraft OrderStatus = "draft"
)

type ApprovalStatus string

const (
	ApprovalPending ApprovalStatus = "pending"
)

// Order is a remediation order generated for a stock alert.
type Order struct {
	ID              string          `json:"id"`
	OrganizationID  string          `json:"organization_id"`
	Status          OrderStatus     `json:"status"`
	ApprovalStatus  ApprovalStatus  `json:"approval_status"`
	Currency        string          `json:"currency"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	VATAmount       decimal.Decimal `json:"vat_amount"`
	Total           decimal.Decimal `json:"total"`
	IsAutoGenerated bool            `json:"is_auto_generated"`
	StockAlertID    string          `json:"stock_alert_id"`
	Notes           string          `json:"notes"`
	Lines           []OrderLine     `json:"lines"`
	CreatedAt       time.Time       `json:"created_at"`
}

type OrderLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	VATRate   decimal.Decimal `json:"vat_rate"`
	Total     decimal.Decimal `json:"total"`
}
