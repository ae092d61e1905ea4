package feed

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ovesio/feed-exporter/internal/domain/feed"
)

// MockCatalogReader is a mock implementation of feed.CatalogReader
type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) FindPublishedEntries(ctx context.Context) ([]feed.CatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]feed.CatalogEntry), args.Error(1)
}

func (m *MockCatalogReader) LoadAttributes(ctx context.Context, entryIDs []int64, keys []string) (map[int64]feed.AttributeBag, error) {
	args := m.Called(ctx, entryIDs, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]feed.AttributeBag), args.Error(1)
}

func (m *MockCatalogReader) LoadTaxonomies(ctx context.Context, entryIDs []int64, taxonomies []string) (*feed.TaxonomySet, error) {
	args := m.Called(ctx, entryIDs, taxonomies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feed.TaxonomySet), args.Error(1)
}

// MockOrderReader is a mock implementation of feed.OrderReader
type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) FindOrderIDs(ctx context.Context, statuses []string, createdAfter time.Time) ([]int64, error) {
	args := m.Called(ctx, statuses, createdAfter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockOrderReader) LoadOrder(ctx context.Context, id int64) (*feed.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feed.Order), args.Error(1)
}

func (m *MockOrderReader) LookupProductSKU(ctx context.Context, productID int64) (string, error) {
	args := m.Called(ctx, productID)
	return args.String(0), args.Error(1)
}

// MockLinkResolver is a mock implementation of feed.LinkResolver
type MockLinkResolver struct {
	mock.Mock
}

func (m *MockLinkResolver) ImageURL(ctx context.Context, thumbnailRef string) (string, error) {
	args := m.Called(ctx, thumbnailRef)
	return args.String(0), args.Error(1)
}

func (m *MockLinkResolver) CanonicalURL(entryID int64) string {
	args := m.Called(entryID)
	return args.String(0)
}
