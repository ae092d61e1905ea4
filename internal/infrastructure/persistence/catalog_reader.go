package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/ovesio/feed-exporter/internal/domain/feed"
)

const statusPublished = "publish"

// GormCatalogReader implements feed.CatalogReader using GORM
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a new GormCatalogReader
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// FindPublishedEntries returns all published base and variant entries ordered
// by id. The ordering fixes the export output order across runs.
func (r *GormCatalogReader) FindPublishedEntries(ctx context.Context) ([]feed.CatalogEntry, error) {
	var rows []catalogEntryRow
	if err := r.db.WithContext(ctx).
		Where("status = ? AND kind IN ?", statusPublished,
			[]string{string(feed.EntryKindBase), string(feed.EntryKindVariant)}).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]feed.CatalogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, feed.CatalogEntry{
			ID:               row.ID,
			Kind:             feed.EntryKind(row.Kind),
			Title:            row.Title,
			Description:      row.Description,
			ShortDescription: row.ShortDescription,
			ParentID:         row.ParentID,
		})
	}
	return entries, nil
}

// LoadAttributes bulk-loads the allow-listed attribute rows for the given
// entry ids in one query
func (r *GormCatalogReader) LoadAttributes(ctx context.Context, entryIDs []int64, keys []string) (map[int64]feed.AttributeBag, error) {
	bags := make(map[int64]feed.AttributeBag)
	if len(entryIDs) == 0 || len(keys) == 0 {
		return bags, nil
	}

	var rows []entryAttributeRow
	if err := r.db.WithContext(ctx).
		Where("entry_id IN ? AND key IN ?", entryIDs, keys).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		bag, ok := bags[row.EntryID]
		if !ok {
			bag = make(feed.AttributeBag)
			bags[row.EntryID] = bag
		}
		bag[row.Key] = row.Value
	}
	return bags, nil
}

// taxonomyJoinRow is the flattened shape of the membership join
type taxonomyJoinRow struct {
	EntryID  int64
	TermID   int64
	Taxonomy string
	Name     string
	ParentID int64
}

// LoadTaxonomies bulk-loads the taxonomy memberships of the given entries in
// one join query, ordered by (entry, term) for deterministic first-term picks.
func (r *GormCatalogReader) LoadTaxonomies(ctx context.Context, entryIDs []int64, taxonomies []string) (*feed.TaxonomySet, error) {
	set := feed.NewTaxonomySet()
	if len(entryIDs) == 0 || len(taxonomies) == 0 {
		return set, nil
	}

	var rows []taxonomyJoinRow
	if err := r.db.WithContext(ctx).
		Table("entry_terms").
		Select("entry_terms.entry_id AS entry_id, taxonomy_terms.id AS term_id, taxonomy_terms.taxonomy AS taxonomy, taxonomy_terms.name AS name, taxonomy_terms.parent_id AS parent_id").
		Joins("INNER JOIN taxonomy_terms ON taxonomy_terms.id = entry_terms.term_id").
		Where("entry_terms.entry_id IN ? AND taxonomy_terms.taxonomy IN ?", entryIDs, taxonomies).
		Order("entry_terms.entry_id, taxonomy_terms.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		set.Add(row.EntryID, row.Taxonomy, row.TermID, row.Name, row.ParentID)
	}

	// index the whole term forest of these taxonomies so parent walks reach
	// ancestors no entry is directly attached to
	var terms []taxonomyTermRow
	if err := r.db.WithContext(ctx).
		Where("taxonomy IN ?", taxonomies).
		Find(&terms).Error; err != nil {
		return nil, err
	}
	for _, term := range terms {
		set.Index(term.ID, term.Name, term.ParentID)
	}
	return set, nil
}
