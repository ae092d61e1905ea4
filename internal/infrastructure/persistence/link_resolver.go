package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// SiteLinkResolver implements feed.LinkResolver against the store's
// attachment table and public base URL
type SiteLinkResolver struct {
	db      *gorm.DB
	baseURL string
}

// NewSiteLinkResolver creates a new SiteLinkResolver
func NewSiteLinkResolver(db *gorm.DB, baseURL string) *SiteLinkResolver {
	return &SiteLinkResolver{
		db:      db,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ImageURL resolves a thumbnail attachment reference to an absolute media
// URL. Unknown or malformed references resolve to empty, never an error.
func (r *SiteLinkResolver) ImageURL(ctx context.Context, thumbnailRef string) (string, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(thumbnailRef), 10, 64)
	if err != nil || id == 0 {
		return "", nil
	}

	var attachment attachmentRow
	if err := r.db.WithContext(ctx).First(&attachment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	if attachment.Path == "" {
		return "", nil
	}
	return r.baseURL + "/media/" + strings.TrimLeft(attachment.Path, "/"), nil
}

// CanonicalURL returns the permalink of a catalog entry
func (r *SiteLinkResolver) CanonicalURL(entryID int64) string {
	return fmt.Sprintf("%s/?p=%d", r.baseURL, entryID)
}
