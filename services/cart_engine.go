package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
)

// CartEngine owns the cart line items stored under one key. Every mutation
// rewrites the whole collection to the store (write-through, no batching);
// the in-memory collection stays authoritative if a write fails.
type CartEngine struct {
	mu    sync.Mutex
	store PersistentStore
	key   string
	items []models.CartLineItem
}

// NewCartEngine rehydrates the cart persisted under key. A missing or
// unparseable payload yields an empty cart, never an error.
func NewCartEngine(ctx context.Context, store PersistentStore, key string) *CartEngine {
	engine := &CartEngine{store: store, key: key}
	engine.items = loadCollection[models.CartLineItem](ctx, store, key)
	return engine
}

// AddToCart merges quantity into an existing line item for the same product,
// or appends a new line item snapshotting the product's title, price and
// thumbnail. Quantities below 1 are clamped to 1. An existing snapshot is
// never overwritten by later adds.
func (e *CartEngine) AddToCart(ctx context.Context, product models.Addable, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].ProductID == product.ID {
			e.items[i].Quantity += quantity
			e.persist(ctx)
			return
		}
	}

	e.items = append(e.items, models.CartLineItem{
		ProductID: product.ID,
		Title:     product.Title,
		Price:     product.Price,
		Thumbnail: product.Thumbnail,
		Quantity:  quantity,
	})
	e.persist(ctx)
}

// RemoveFromCart deletes the line item for productID. Removing an absent id
// is a no-op.
func (e *CartEngine) RemoveFromCart(ctx context.Context, productID int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.removeLocked(productID)
	e.persist(ctx)
}

// UpdateQuantity sets the line item's quantity to the given absolute value.
// A quantity below 1 removes the line item instead; an absent id is a no-op.
func (e *CartEngine) UpdateQuantity(ctx context.Context, productID, quantity int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if quantity < 1 {
		e.removeLocked(productID)
		e.persist(ctx)
		return
	}

	for i := range e.items {
		if e.items[i].ProductID == productID {
			e.items[i].Quantity = quantity
			break
		}
	}
	e.persist(ctx)
}

// ClearCart empties the collection.
func (e *CartEngine) ClearCart(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = e.items[:0]
	e.persist(ctx)
}

// CartTotal is the sum of price × quantity over all line items.
func (e *CartEngine) CartTotal() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := 0.0
	for _, item := range e.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the total unit count, not the number of distinct products.
func (e *CartEngine) ItemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for _, item := range e.items {
		count += item.Quantity
	}
	return count
}

// Items returns a copy of the line items in insertion order.
func (e *CartEngine) Items() []models.CartLineItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := make([]models.CartLineItem, len(e.items))
	copy(items, e.items)
	return items
}

func (e *CartEngine) removeLocked(productID int) {
	for i := range e.items {
		if e.items[i].ProductID == productID {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return
		}
	}
}

func (e *CartEngine) persist(ctx context.Context) {
	saveCollection(ctx, e.store, e.key, e.items)
}

// ─────────────────────────────────────────────────────────────
// Shared persistence helpers
// ─────────────────────────────────────────────────────────────

// loadCollection reads and decodes a persisted JSON array. Corrupt payloads
// degrade to an empty collection so a bad save never breaks startup.
func loadCollection[T any](ctx context.Context, store PersistentStore, key string) []T {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		log.Printf("❌ Failed to load %q from store: %v", key, err)
		return nil
	}
	if !found {
		return nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("⚠️  Corrupt payload under %q, resetting to empty: %v", key, err)
		return nil
	}
	return items
}

func saveCollection[T any](ctx context.Context, store PersistentStore, key string, items []T) {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		log.Printf("❌ Failed to encode %q: %v", key, err)
		return
	}
	if err := store.Set(ctx, key, string(raw)); err != nil {
		log.Printf("❌ Failed to persist %q: %v", key, err)
	}
}
