package feed

// EntryKind distinguishes standalone catalog items from purchasable variants
// bound to a parent item.
type EntryKind string

const (
	EntryKindBase    EntryKind = "base"
	EntryKindVariant EntryKind = "variant"
)

// CatalogEntry is a read-only snapshot of one row of the store's entity table.
// Variants carry a ParentID; base entries have ParentID == 0.
type CatalogEntry struct {
	ID               int64
	Kind             EntryKind
	Title            string
	Description      string
	ShortDescription string
	ParentID         int64
}

// IsVariant returns true if the entry is a variant bound to a parent entry
func (e *CatalogEntry) IsVariant() bool {
	return e.Kind == EntryKindVariant
}

// HasParent returns true if the entry references a parent entry
func (e *CatalogEntry) HasParent() bool {
	return e.ParentID != 0
}

// Attribute keys read by the export. Absence of a key is meaningful and
// distinct from an empty value.
const (
	AttrSKU               = "sku"
	AttrPrice             = "price"
	AttrStock             = "stock"
	AttrStockStatus       = "stock_status"
	AttrThumbnailID       = "thumbnail_id"
	AttrProductAttributes = "product_attributes"
)

// ExportedAttributeKeys returns the attribute allow-list for the bulk load
func ExportedAttributeKeys() []string {
	return []string{AttrSKU, AttrPrice, AttrStock, AttrStockStatus, AttrThumbnailID, AttrProductAttributes}
}

// AttributeBag is the sparse key/value attribute set of one entry
type AttributeBag map[string]string

// Get returns the attribute value and whether the key is present at all
func (b AttributeBag) Get(key string) (string, bool) {
	if b == nil {
		return "", false
	}
	v, ok := b[key]
	return v, ok
}

// Value returns the attribute value, or empty when the key is absent
func (b AttributeBag) Value(key string) string {
	v, _ := b.Get(key)
	return v
}

// TaxonomyCategory is the hierarchical classification used for category paths.
const TaxonomyCategory = "category"

// BrandTaxonomies returns the brand-like taxonomies in lookup priority order.
func BrandTaxonomies() []string {
	return []string{"pa_manufacturer", "pa_brand", "brand", "manufacturer"}
}

// ExportedTaxonomies returns all taxonomies read by the bulk load
func ExportedTaxonomies() []string {
	return append([]string{TaxonomyCategory}, BrandTaxonomies()...)
}
