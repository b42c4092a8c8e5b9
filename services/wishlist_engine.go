package services

import (
	"context"
	"sync"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
)

// WishlistEngine owns the saved-product entries stored under one key.
// Entries are unique per product id and keep insertion order; same
// write-through and corrupt-fallback discipline as the cart.
type WishlistEngine struct {
	mu      sync.Mutex
	store   PersistentStore
	key     string
	entries []models.WishlistEntry
}

// NewWishlistEngine rehydrates the wishlist persisted under key.
func NewWishlistEngine(ctx context.Context, store PersistentStore, key string) *WishlistEngine {
	engine := &WishlistEngine{store: store, key: key}
	engine.entries = loadCollection[models.WishlistEntry](ctx, store, key)
	return engine
}

// AddToWishlist appends a snapshot entry. Adding a product that is already
// saved is a no-op.
func (e *WishlistEngine) AddToWishlist(ctx context.Context, product models.Addable) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, entry := range e.entries {
		if entry.ProductID == product.ID {
			return
		}
	}

	e.entries = append(e.entries, models.WishlistEntry{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Thumbnail: product.Thumbnail,
	})
	e.persist(ctx)
}

// RemoveFromWishlist deletes the entry for productID if present.
func (e *WishlistEngine) RemoveFromWishlist(ctx context.Context, productID int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.entries {
		if e.entries[i].ProductID == productID {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			break
		}
	}
	e.persist(ctx)
}

// IsInWishlist reports membership for productID.
func (e *WishlistEngine) IsInWishlist(productID int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, entry := range e.entries {
		if entry.ProductID == productID {
			return true
		}
	}
	return false
}

// Entry returns the saved entry for productID, if present.
func (e *WishlistEngine) Entry(productID int) (models.WishlistEntry, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, entry := range e.entries {
		if entry.ProductID == productID {
			return entry, true
		}
	}
	return models.WishlistEntry{}, false
}

// Items returns a copy of the entries in insertion order.
func (e *WishlistEngine) Items() []models.WishlistEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	entries := make([]models.WishlistEntry, len(e.entries))
	copy(entries, e.entries)
	return entries
}

func (e *WishlistEngine) persist(ctx context.Context) {
	saveCollection(ctx, e.store, e.key, e.entries)
}
