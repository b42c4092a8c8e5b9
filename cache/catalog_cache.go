package cache

import (
	"sync"
	"time"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
)

const TTL = 5 * time.Minute

// ── Catalog product list cache ───────────────────────────────────────────────
// Stores the normalized upstream product list. The storefront list endpoint
// and the filter metadata endpoint both read from this, so one upstream fetch
// serves many page views within the TTL.

type catalogEntry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	catalogMu    sync.RWMutex
	catalogCache *catalogEntry
)

func GetProducts() ([]models.Product, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	if catalogCache != nil && time.Since(catalogCache.fetchedAt) < TTL {
		return catalogCache.products, true
	}
	return nil, false
}

func SetProducts(products []models.Product) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalogCache = &catalogEntry{products: products, fetchedAt: time.Now()}
}

// ── Invalidate (tests and manual refresh) ────────────────────────────────────

func Invalidate() {
	catalogMu.Lock()
	catalogCache = nil
	catalogMu.Unlock()
}
