package feed

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ovesio/feed-exporter/internal/domain/feed"
	"github.com/ovesio/feed-exporter/internal/domain/shared"
)

// orderChunkSize bounds how many order ids are resolved per batch. Chunking
// only limits peak memory; it has no effect on the output.
const orderChunkSize = 250

// OrderExporter assembles flattened order records for the analytics feed
type OrderExporter struct {
	orders   feed.OrderReader
	settings feed.Settings
	logger   *zap.Logger
	now      func() time.Time
}

// NewOrderExporter creates a new OrderExporter
func NewOrderExporter(orders feed.OrderReader, settings feed.Settings, logger *zap.Logger) *OrderExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderExporter{
		orders:   orders,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
}

// ExportOrders returns one record per qualifying order: status in the
// configured allow-list and created within the trailing windowMonths window
// (calendar months, not fixed 30-day blocks). Orders that vanished since
// their id was retrieved are skipped, never fatal.
func (e *OrderExporter) ExportOrders(ctx context.Context, windowMonths int) ([]feed.OrderRecord, error) {
	if windowMonths <= 0 {
		windowMonths = feed.DefaultExportMonths
	}
	cutoff := e.now().AddDate(0, -windowMonths, 0)
	statuses := e.settings.StatusAllowList()

	ids, err := e.orders.FindOrderIDs(ctx, statuses, cutoff)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	records := make([]feed.OrderRecord, 0, len(ids))
	for start := 0; start < len(ids); start += orderChunkSize {
		end := min(start+orderChunkSize, len(ids))
		for _, id := range ids[start:end] {
			order, err := e.orders.LoadOrder(ctx, id)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					e.logger.Warn("order vanished during export, skipping",
						zap.Int64("order_id", id))
					continue
				}
				return nil, fmt.Errorf("load order %d: %w", id, err)
			}

			record, err := e.buildRecord(ctx, order)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
	}
	return records, nil
}

func (e *OrderExporter) buildRecord(ctx context.Context, order *feed.Order) (feed.OrderRecord, error) {
	lines := make([]feed.OrderLineRecord, 0, len(order.Items))
	for _, item := range order.Items {
		sku, err := e.orders.LookupProductSKU(ctx, item.ProductID)
		if err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return feed.OrderRecord{}, fmt.Errorf("lookup sku for product %d: %w", item.ProductID, err)
			}
			// product vanished: keep the line, fall back to the stored id
			sku = ""
		}
		if sku == "" {
			sku = strconv.FormatInt(item.ProductID, 10)
		}

		lines = append(lines, feed.OrderLineRecord{
			SKU:      sku,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    unitPrice(item.Total, item.TaxTotal, item.Quantity),
		})
	}

	return feed.OrderRecord{
		OrderID:    order.ID,
		CustomerID: customerDigest(order.BillingEmail),
		Total:      order.Total.InexactFloat64(),
		Currency:   order.Currency,
		Date:       order.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		Products:   lines,
	}, nil
}

// unitPrice is the tax-inclusive per-unit price. Zero quantity yields zero
// rather than a division failure.
func unitPrice(total, tax decimal.Decimal, quantity int) float64 {
	if quantity <= 0 {
		return 0
	}
	return total.Add(tax).Div(decimal.NewFromInt(int64(quantity))).InexactFloat64()
}

// customerDigest pseudonymizes the billing contact identifier. The digest is
// stable for a given identifier and one-way.
func customerDigest(email string) string {
	sum := sha256.Sum256([]byte(email))
	return hex.EncodeToString(sum[:])
}
