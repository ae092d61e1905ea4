package persistence

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row types mapping the externally owned store schema. This package only
// reads them; any dynamic shape from the store stays behind this boundary
// and is mapped to typed domain records before leaving it.

type catalogEntryRow struct {
	ID               int64  `gorm:"column:id;primaryKey"`
	Kind             string `gorm:"column:kind;type:varchar(20)"`
	Title            string `gorm:"column:title;type:text"`
	Description      string `gorm:"column:description;type:text"`
	ShortDescription string `gorm:"column:short_description;type:text"`
	ParentID         int64  `gorm:"column:parent_id"`
	Status           string `gorm:"column:status;type:varchar(20)"`
}

func (catalogEntryRow) TableName() string { return "catalog_entries" }

type entryAttributeRow struct {
	EntryID int64  `gorm:"column:entry_id"`
	Key     string `gorm:"column:key;type:varchar(100)"`
	Value   string `gorm:"column:value;type:text"`
}

func (entryAttributeRow) TableName() string { return "entry_attributes" }

type taxonomyTermRow struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Taxonomy string `gorm:"column:taxonomy;type:varchar(100)"`
	Name     string `gorm:"column:name;type:varchar(200)"`
	ParentID int64  `gorm:"column:parent_id"`
}

func (taxonomyTermRow) TableName() string { return "taxonomy_terms" }

type entryTermRow struct {
	EntryID int64 `gorm:"column:entry_id"`
	TermID  int64 `gorm:"column:term_id"`
}

func (entryTermRow) TableName() string { return "entry_terms" }

type attachmentRow struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Path string `gorm:"column:path;type:text"`
}

func (attachmentRow) TableName() string { return "attachments" }

type orderRow struct {
	ID           int64           `gorm:"column:id;primaryKey"`
	Status       string          `gorm:"column:status;type:varchar(50)"`
	BillingEmail string          `gorm:"column:billing_email;type:varchar(200)"`
	Total        decimal.Decimal `gorm:"column:total;type:decimal(18,4)"`
	Currency     string          `gorm:"column:currency;type:varchar(10)"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
}

func (orderRow) TableName() string { return "orders" }

type orderItemRow struct {
	ID        int64           `gorm:"column:id;primaryKey"`
	OrderID   int64           `gorm:"column:order_id;index"`
	ProductID int64           `gorm:"column:product_id"`
	Name      string          `gorm:"column:name;type:varchar(200)"`
	Quantity  int             `gorm:"column:quantity"`
	Total     decimal.Decimal `gorm:"column:total;type:decimal(18,4)"`
	TaxTotal  decimal.Decimal `gorm:"column:tax_total;type:decimal(18,4)"`
}

func (orderItemRow) TableName() string { return "order_items" }
