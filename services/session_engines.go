package services

import (
	"context"
	"sync"
)

const (
	cartKeyPrefix     = "cart:"
	wishlistKeyPrefix = "wishlist:"
)

// SessionEngines hands out the cart and wishlist engine owned by each guest
// session. One engine exists per session for the life of the process; its
// state is rehydrated from the store on first access. The manager itself is
// constructed once at the composition root and passed to the controllers
// that need it.
type SessionEngines struct {
	mu        sync.Mutex
	store     PersistentStore
	carts     map[string]*CartEngine
	wishlists map[string]*WishlistEngine
}

func NewSessionEngines(store PersistentStore) *SessionEngines {
	return &SessionEngines{
		store:     store,
		carts:     make(map[string]*CartEngine),
		wishlists: make(map[string]*WishlistEngine),
	}
}

// Cart returns the session's cart engine, creating and rehydrating it on
// first access.
func (s *SessionEngines) Cart(ctx context.Context, sessionID string) *CartEngine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if engine, ok := s.carts[sessionID]; ok {
		return engine
	}
	engine := NewCartEngine(ctx, s.store, cartKeyPrefix+sessionID)
	s.carts[sessionID] = engine
	return engine
}

// Wishlist returns the session's wishlist engine, creating and rehydrating
// it on first access.
func (s *SessionEngines) Wishlist(ctx context.Context, sessionID string) *WishlistEngine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if engine, ok := s.wishlists[sessionID]; ok {
		return engine
	}
	engine := NewWishlistEngine(ctx, s.store, wishlistKeyPrefix+sessionID)
	s.wishlists[sessionID] = engine
	return engine
}
