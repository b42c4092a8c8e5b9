package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistEngine_AddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	engine := NewWishlistEngine(ctx, NewMemoryStore(), "wishlist:test")

	engine.AddToWishlist(ctx, addable(1, "A", 10))
	engine.AddToWishlist(ctx, addable(1, "A", 10))
	engine.AddToWishlist(ctx, addable(1, "Different Later", 99))

	entries := engine.Items()
	require.Len(t, entries, 1)
	assert.Equal(t, "A", entries[0].Title)
	assert.Equal(t, 10.0, entries[0].Price)
}

func TestWishlistEngine_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	engine := NewWishlistEngine(ctx, NewMemoryStore(), "wishlist:test")

	engine.AddToWishlist(ctx, addable(3, "C", 30))
	engine.AddToWishlist(ctx, addable(1, "A", 10))
	engine.AddToWishlist(ctx, addable(2, "B", 20))

	entries := engine.Items()
	require.Len(t, entries, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{entries[0].ProductID, entries[1].ProductID, entries[2].ProductID})
}

func TestWishlistEngine_RemoveAndMembership(t *testing.T) {
	ctx := context.Background()
	engine := NewWishlistEngine(ctx, NewMemoryStore(), "wishlist:test")

	engine.AddToWishlist(ctx, addable(1, "A", 10))
	engine.AddToWishlist(ctx, addable(2, "B", 20))

	assert.True(t, engine.IsInWishlist(1))
	assert.False(t, engine.IsInWishlist(42))

	engine.RemoveFromWishlist(ctx, 1)
	assert.False(t, engine.IsInWishlist(1))
	assert.Len(t, engine.Items(), 1)

	// Removing an absent id is a no-op.
	engine.RemoveFromWishlist(ctx, 42)
	assert.Len(t, engine.Items(), 1)
}

func TestWishlistEngine_EntryLookup(t *testing.T) {
	ctx := context.Background()
	engine := NewWishlistEngine(ctx, NewMemoryStore(), "wishlist:test")

	engine.AddToWishlist(ctx, addable(5, "Saved", 15))

	entry, ok := engine.Entry(5)
	require.True(t, ok)
	assert.Equal(t, "Saved", entry.Title)

	_, ok = engine.Entry(99)
	assert.False(t, ok)
}

func TestWishlistEngine_PersistsAndRehydrates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	engine := NewWishlistEngine(ctx, store, "wishlist:persist")
	engine.AddToWishlist(ctx, addable(1, "A", 10))
	engine.AddToWishlist(ctx, addable(2, "B", 20))

	rehydrated := NewWishlistEngine(ctx, store, "wishlist:persist")
	assert.Equal(t, engine.Items(), rehydrated.Items())
}

func TestWishlistEngine_CorruptPayloadFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "wishlist:bad", "null oops"))

	engine := NewWishlistEngine(ctx, store, "wishlist:bad")
	assert.Empty(t, engine.Items())
}
