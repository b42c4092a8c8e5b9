package models

import "time"

// ═══════════════════════════════════════════════════════════
// Catalog Product Model
// ═══════════════════════════════════════════════════════════

// Product is the normalized shape of one upstream catalog product.
// Normalization happens exactly once at ingestion (see services.CatalogClient):
// missing stock defaults to 0, missing images to an empty list, and a missing
// created-at timestamp to the ingestion time. Engines treat Products as
// immutable within a session.
type Product struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating"`
	Stock       int       `json:"stock"`
	Brand       string    `json:"brand,omitempty"`
	Category    string    `json:"category"`
	Thumbnail   string    `json:"thumbnail"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
}

// Addable is the canonical reduced form cart and wishlist operations accept.
// A full Product reduces to it, and so do the snapshots the engines persist,
// so "product-like" payloads all funnel through one shape.
type Addable struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Thumbnail string  `json:"thumbnail"`
}

// Addable reduces the product to the fields cart and wishlist snapshots keep.
func (p Product) Addable() Addable {
	return Addable{ID: p.ID, Title: p.Title, Price: p.Price, Thumbnail: p.Thumbnail}
}

// InStock reports whether the product has any units available.
func (p Product) InStock() bool {
	return p.Stock > 0
}
