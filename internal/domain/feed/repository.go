package feed

import (
	"context"
	"time"
)

// CatalogReader provides the bulk read primitives the product export is built on
type CatalogReader interface {
	// FindPublishedEntries returns every publishable base and variant entry
	// in deterministic retrieval order.
	FindPublishedEntries(ctx context.Context) ([]CatalogEntry, error)

	// LoadAttributes bulk-loads the allow-listed attribute rows for the given
	// entry ids, keyed by entry id. Entries with no rows are absent from the map.
	LoadAttributes(ctx context.Context, entryIDs []int64, keys []string) (map[int64]AttributeBag, error)

	// LoadTaxonomies bulk-loads the taxonomy memberships of the given entry
	// ids, restricted to the given taxonomies.
	LoadTaxonomies(ctx context.Context, entryIDs []int64, taxonomies []string) (*TaxonomySet, error)
}

// OrderReader provides the order-side read primitives
type OrderReader interface {
	// FindOrderIDs returns the ids of orders with a status in statuses created
	// at or after createdAfter, in deterministic retrieval order.
	FindOrderIDs(ctx context.Context, statuses []string, createdAfter time.Time) ([]int64, error)

	// LoadOrder loads one order with its items. Returns shared.ErrNotFound if
	// the order vanished since the id was retrieved.
	LoadOrder(ctx context.Context, id int64) (*Order, error)

	// LookupProductSKU returns the SKU attribute of a catalog entry, which may
	// be empty. Returns shared.ErrNotFound if the entry no longer exists.
	LookupProductSKU(ctx context.Context, productID int64) (string, error)
}

// LinkResolver resolves store references to absolute URLs
type LinkResolver interface {
	// ImageURL resolves a thumbnail attachment reference to an absolute URL,
	// or empty when the attachment does not exist.
	ImageURL(ctx context.Context, thumbnailRef string) (string, error)

	// CanonicalURL returns the canonical product page URL for an entry.
	CanonicalURL(entryID int64) string
}
