package stock

import "time"

const (
	DefaultItemTimeout = 10 * time.Second
	DefaultUrgentRatio = 0.5
	DefaultCurrency    = "EUR"
)

type Config struct {
	ItemTimeout time.Duration
	// UrgentRatio marks an alert urgent when stock < threshold * UrgentRatio.
	UrgentRatio float64
}

type PassResult struct {
	Checked       int
	AlertsCreated int
	OrdersCreated int
	Skipped       int
	Failures      []ItemFailure
}

// ItemFailure reports an item the pass could not process.
type ItemFailure struct {
	InventoryID string
	Reason      string
}

type ResolveInput struct {
	ID                  string
	ResolvedByServiceID string
}

type LinkInput struct {
	InventoryID        string
	ProductID          string
	LowStockThreshold  int
	ReorderQuantity    int
	AutoReorderEnabled bool
}
