package feed

// Availability is the stock availability of an exported product
type Availability string

const (
	AvailabilityInStock    Availability = "in_stock"
	AvailabilityOutOfStock Availability = "out_of_stock"
)

// ProductRecord is the flattened product shape consumed by the analytics service
type ProductRecord struct {
	SKU          string       `json:"sku"`
	Name         string       `json:"name"`
	Quantity     int          `json:"quantity"`
	Price        float64      `json:"price"`
	Currency     string       `json:"currency"`
	Availability Availability `json:"availability"`
	Description  string       `json:"description"`
	Manufacturer string       `json:"manufacturer"`
	Image        string       `json:"image"`
	URL          string       `json:"url"`
	Category     string       `json:"category"`
}

// OrderRecord is the flattened order shape consumed by the analytics service.
// CustomerID is a one-way digest of the billing contact; the raw identifier
// never appears in the output.
type OrderRecord struct {
	OrderID    int64             `json:"order_id"`
	CustomerID string            `json:"customer_id"`
	Total      float64           `json:"total"`
	Currency   string            `json:"currency"`
	Date       string            `json:"date"`
	Products   []OrderLineRecord `json:"products"`
}

// OrderLineRecord is one exported order line. Price is the tax-inclusive
// unit price.
type OrderLineRecord struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
