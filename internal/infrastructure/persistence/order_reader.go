package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ovesio/feed-exporter/internal/domain/feed"
	"github.com/ovesio/feed-exporter/internal/domain/shared"
)

// GormOrderReader implements feed.OrderReader using GORM
type GormOrderReader struct {
	db *gorm.DB
	// compatLookup selects the full-scan id path for stores where the status
	// column cannot be filtered efficiently. Both paths yield the same set.
	compatLookup bool
}

// NewGormOrderReader creates a new GormOrderReader
func NewGormOrderReader(db *gorm.DB, compatLookup bool) *GormOrderReader {
	return &GormOrderReader{db: db, compatLookup: compatLookup}
}

// FindOrderIDs returns the ids of orders matching the status allow-list and
// created at or after createdAfter, ordered by id
func (r *GormOrderReader) FindOrderIDs(ctx context.Context, statuses []string, createdAfter time.Time) ([]int64, error) {
	if r.compatLookup {
		return r.findOrderIDsCompat(ctx, statuses, createdAfter)
	}

	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&orderRow{}).
		Where("status IN ? AND created_at >= ?", statuses, createdAfter).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// findOrderIDsCompat retrieves candidate rows by date only and filters the
// status allow-list in memory
func (r *GormOrderReader) findOrderIDsCompat(ctx context.Context, statuses []string, createdAfter time.Time) ([]int64, error) {
	var rows []orderRow
	if err := r.db.WithContext(ctx).
		Select("id", "status").
		Where("created_at >= ?", createdAfter).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	allowed := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		if allowed[row.Status] {
			ids = append(ids, row.ID)
		}
	}
	return ids, nil
}

// LoadOrder loads one order with its items
func (r *GormOrderReader) LoadOrder(ctx context.Context, id int64) (*feed.Order, error) {
	var row orderRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	var itemRows []orderItemRow
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id).
		Order("id").
		Find(&itemRows).Error; err != nil {
		return nil, err
	}

	items := make([]feed.OrderItem, 0, len(itemRows))
	for _, item := range itemRows {
		items = append(items, feed.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Total:     item.Total,
			TaxTotal:  item.TaxTotal,
		})
	}

	return &feed.Order{
		ID:           row.ID,
		Status:       row.Status,
		BillingEmail: row.BillingEmail,
		Total:        row.Total,
		Currency:     row.Currency,
		CreatedAt:    row.CreatedAt,
		Items:        items,
	}, nil
}

// LookupProductSKU returns the SKU attribute of a catalog entry. The SKU may
// be empty; a missing entry maps to shared.ErrNotFound.
func (r *GormOrderReader) LookupProductSKU(ctx context.Context, productID int64) (string, error) {
	var entry catalogEntryRow
	if err := r.db.WithContext(ctx).
		Select("id").
		First(&entry, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", shared.ErrNotFound
		}
		return "", err
	}

	var attr entryAttributeRow
	err := r.db.WithContext(ctx).
		Where("entry_id = ? AND key = ?", productID, feed.AttrSKU).
		First(&attr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return attr.Value, nil
}
