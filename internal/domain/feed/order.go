package feed

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a read-only snapshot of one store order with its line items
type Order struct {
	ID           int64
	Status       string
	BillingEmail string
	Total        decimal.Decimal
	Currency     string
	CreatedAt    time.Time
	Items        []OrderItem
}

// OrderItem is one order line. Total and TaxTotal are line-level amounts,
// not unit amounts.
type OrderItem struct {
	ProductID int64
	Name      string
	Quantity  int
	Total     decimal.Decimal
	TaxTotal  decimal.Decimal
}
