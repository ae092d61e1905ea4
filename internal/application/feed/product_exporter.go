package feed

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ovesio/feed-exporter/internal/domain/feed"
)

// unmanagedStockQuantity is the sentinel emitted when an in-stock entry has
// no stock attribute at all, i.e. stock is not managed for it.
const unmanagedStockQuantity = 999

const stockStatusInStock = "instock"

// ProductExporter assembles flattened product records for the analytics feed.
// It bulk-loads entries, attributes and taxonomy memberships in three wide
// queries, then assembles records in one indexed pass.
type ProductExporter struct {
	catalog  feed.CatalogReader
	links    feed.LinkResolver
	settings feed.Settings
	logger   *zap.Logger
}

// NewProductExporter creates a new ProductExporter
func NewProductExporter(catalog feed.CatalogReader, links feed.LinkResolver, settings feed.Settings, logger *zap.Logger) *ProductExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductExporter{
		catalog:  catalog,
		links:    links,
		settings: settings,
		logger:   logger,
	}
}

// ExportProducts returns one record per publishable catalog entry, in the
// retrieval order of the entry load. Base entries without a price attribute
// are excluded: an absent price marks a non-buyable container whose variants
// are exported in their own right. Variants are always included, with price
// defaulting to 0 when absent.
func (e *ProductExporter) ExportProducts(ctx context.Context) ([]feed.ProductRecord, error) {
	entries, err := e.catalog.FindPublishedEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog entries: %w", err)
	}
	if len(entries) == 0 {
		return []feed.ProductRecord{}, nil
	}

	byID := make(map[int64]*feed.CatalogEntry, len(entries))
	ids := make([]int64, 0, len(entries))
	for i := range entries {
		byID[entries[i].ID] = &entries[i]
		ids = append(ids, entries[i].ID)
	}

	attrs, err := e.catalog.LoadAttributes(ctx, ids, feed.ExportedAttributeKeys())
	if err != nil {
		return nil, fmt.Errorf("load attributes: %w", err)
	}

	taxonomies, err := e.catalog.LoadTaxonomies(ctx, ids, feed.ExportedTaxonomies())
	if err != nil {
		return nil, fmt.Errorf("load taxonomies: %w", err)
	}

	records := make([]feed.ProductRecord, 0, len(entries))
	for i := range entries {
		entry := &entries[i]

		price := attrs[entry.ID].Value(feed.AttrPrice)
		if !entry.IsVariant() && price == "" {
			// no own price: a variable container parent or otherwise
			// non-buyable entry; its variants carry the prices
			continue
		}

		record, err := e.assemble(ctx, entry, byID, attrs, taxonomies)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (e *ProductExporter) assemble(
	ctx context.Context,
	entry *feed.CatalogEntry,
	byID map[int64]*feed.CatalogEntry,
	attrs map[int64]feed.AttributeBag,
	taxonomies *feed.TaxonomySet,
) (feed.ProductRecord, error) {
	bag := attrs[entry.ID]

	var parent *feed.CatalogEntry
	var parentBag feed.AttributeBag
	if entry.IsVariant() && entry.HasParent() {
		parent = byID[entry.ParentID]
		parentBag = attrs[entry.ParentID]
	}
	var parentDescription, parentShort, parentTitle string
	if parent != nil {
		parentDescription = parent.Description
		parentShort = parent.ShortDescription
		parentTitle = parent.Title
	}

	sku := bag.Value(feed.AttrSKU)
	if sku == "" {
		sku = strconv.FormatInt(entry.ID, 10)
	}

	quantity, availability := resolveStock(bag)

	description := cleanHTML(inherit(
		entry.Description,
		entry.ShortDescription,
		parentDescription,
		parentShort,
	))

	image := ""
	thumbnail := inherit(bag.Value(feed.AttrThumbnailID), parentBag.Value(feed.AttrThumbnailID))
	if thumbnail != "" {
		var err error
		image, err = e.links.ImageURL(ctx, thumbnail)
		if err != nil {
			return feed.ProductRecord{}, fmt.Errorf("resolve image for entry %d: %w", entry.ID, err)
		}
	}

	manufacturer := firstBrand(taxonomies, entry.ID)
	if manufacturer == "" && parent != nil {
		manufacturer = firstBrand(taxonomies, entry.ParentID)
	}

	categoryTarget := entry.ID
	if entry.IsVariant() {
		categoryTarget = entry.ParentID
	}

	name := entry.Title
	if entry.IsVariant() && entry.HasParent() {
		name = parentTitle + " - " + entry.Title
	}

	return feed.ProductRecord{
		SKU:          sku,
		Name:         name,
		Quantity:     quantity,
		Price:        parsePrice(bag.Value(feed.AttrPrice)),
		Currency:     e.settings.Currency,
		Availability: availability,
		Description:  description,
		Manufacturer: manufacturer,
		Image:        image,
		URL:          e.links.CanonicalURL(entry.ID),
		Category:     categoryPath(taxonomies, categoryTarget),
	}, nil
}

// resolveStock derives quantity and availability from the stock attributes.
// A quantity of zero or less with status "instock" stays in stock (backorder
// policies); a missing quantity with status "instock" means stock is not
// managed and yields the sentinel.
func resolveStock(bag feed.AttributeBag) (int, feed.Availability) {
	// only an absent status defaults to in stock; a present empty value is
	// a real status that simply is not "instock"
	status, ok := bag.Get(feed.AttrStockStatus)
	if !ok {
		status = stockStatusInStock
	}

	availability := feed.AvailabilityOutOfStock
	if status == stockStatusInStock {
		availability = feed.AvailabilityInStock
	}

	raw, hasQuantity := bag.Get(feed.AttrStock)
	quantity := 0
	if hasQuantity {
		if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			quantity = int(f)
		}
	} else if status == stockStatusInStock {
		quantity = unmanagedStockQuantity
	}
	return quantity, availability
}

// parsePrice parses a decimal price string, treating absent or malformed
// values as zero.
func parsePrice(raw string) float64 {
	if raw == "" {
		return 0
	}
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return price.InexactFloat64()
}

// firstBrand searches an entry's memberships across the brand taxonomies in
// priority order and returns the first term's name.
func firstBrand(taxonomies *feed.TaxonomySet, entryID int64) string {
	for _, taxonomy := range feed.BrandTaxonomies() {
		terms := taxonomies.Terms(entryID, taxonomy)
		if len(terms) == 0 {
			continue
		}
		if name, ok := taxonomies.Name(terms[0]); ok && name != "" {
			return name
		}
	}
	return ""
}

// categoryPath walks the first category term upward through parent links and
// joins the visited names root-to-leaf. The walk stops at a term with no
// parent, a term whose name is already on the path, or a missing name.
func categoryPath(taxonomies *feed.TaxonomySet, entryID int64) string {
	terms := taxonomies.Terms(entryID, feed.TaxonomyCategory)
	if len(terms) == 0 {
		return ""
	}

	var path []string
	seen := make(map[string]bool)
	for current := terms[0]; current != 0; current = taxonomies.Parent(current) {
		name, ok := taxonomies.Name(current)
		if !ok || seen[name] {
			break
		}
		path = append([]string{name}, path...)
		seen[name] = true
	}
	return strings.Join(path, " > ")
}
