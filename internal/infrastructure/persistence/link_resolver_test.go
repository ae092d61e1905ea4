package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteLinkResolver_ImageURL(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&attachmentRow{ID: 77, Path: "2026/08/shirt.jpg"}).Error)
	require.NoError(t, db.Create(&attachmentRow{ID: 78, Path: "/2026/08/rooted.jpg"}).Error)
	require.NoError(t, db.Create(&attachmentRow{ID: 79, Path: ""}).Error)

	resolver := NewSiteLinkResolver(db, "https://shop.example/")

	url, err := resolver.ImageURL(context.Background(), "77")
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example/media/2026/08/shirt.jpg", url)

	url, err = resolver.ImageURL(context.Background(), " 78 ")
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example/media/2026/08/rooted.jpg", url)

	// pathless attachment resolves to empty
	url, err = resolver.ImageURL(context.Background(), "79")
	require.NoError(t, err)
	assert.Equal(t, "", url)

	// unknown and malformed references resolve to empty, never an error
	url, err = resolver.ImageURL(context.Background(), "999")
	require.NoError(t, err)
	assert.Equal(t, "", url)

	url, err = resolver.ImageURL(context.Background(), "not-a-number")
	require.NoError(t, err)
	assert.Equal(t, "", url)

	url, err = resolver.ImageURL(context.Background(), "0")
	require.NoError(t, err)
	assert.Equal(t, "", url)
}

func TestSiteLinkResolver_CanonicalURL(t *testing.T) {
	db := openTestDB(t)
	resolver := NewSiteLinkResolver(db, "https://shop.example/")

	assert.Equal(t, "https://shop.example/?p=42", resolver.CanonicalURL(42))
}
