package handler

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ovesio/feed-exporter/internal/domain/feed"
	"github.com/ovesio/feed-exporter/internal/infrastructure/logger"
)

// ProductExportService is the product-side export operation the handler dispatches to
type ProductExportService interface {
	ExportProducts(ctx context.Context) ([]feed.ProductRecord, error)
}

// OrderExportService is the order-side export operation the handler dispatches to
type OrderExportService interface {
	ExportOrders(ctx context.Context, windowMonths int) ([]feed.OrderRecord, error)
}

// FeedHandler serves the export feed endpoint. It gates every request on the
// feed-enabled flag and the shared access hash before any exporter runs.
type FeedHandler struct {
	products ProductExportService
	orders   OrderExportService
	settings feed.Settings
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(products ProductExportService, orders OrderExportService, settings feed.Settings) *FeedHandler {
	return &FeedHandler{
		products: products,
		orders:   orders,
		settings: settings,
	}
}

// RegisterRoutes registers the feed routes
func (h *FeedHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/feed", h.Export)
}

// Export handles GET /feed?type=products|orders&key=<hash>
func (h *FeedHandler) Export(c *gin.Context) {
	if !h.settings.Enabled {
		c.JSON(http.StatusForbidden, gin.H{"error": "Module is disabled"})
		return
	}

	if !validKey(c.Query("key"), h.settings.AccessHash) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: Invalid Hash"})
		return
	}

	exportType := c.DefaultQuery("type", "products")
	if exportType != "orders" {
		exportType = "products"
	}

	var payload any
	var err error
	switch exportType {
	case "orders":
		payload, err = h.orders.ExportOrders(c.Request.Context(), h.settings.ExportDurationMonths)
	default:
		payload, err = h.products.ExportProducts(c.Request.Context())
	}
	if err != nil {
		logger.GetGinLogger(c).Error("export failed",
			zap.String("type", exportType),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
		return
	}

	filename := fmt.Sprintf("export_%s_%s.json", exportType, time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, gin.H{"data": payload})
}

// validKey compares the presented key against the configured hash in
// constant time. An unset hash rejects everything.
func validKey(presented, configured string) bool {
	if configured == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(configured)) == 1
}
