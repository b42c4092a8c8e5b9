package models

// ═══════════════════════════════════════════════════════════
// Cart Models
// ═══════════════════════════════════════════════════════════

// CartLineItem is one row of a cart. Title, price and thumbnail are
// snapshotted when the product is first added; later adds of the same product
// only bump the quantity. At most one line item exists per product id and
// quantity never drops below 1 (a drop below 1 removes the line item).
type CartLineItem struct {
	ProductID int     `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Thumbnail string  `json:"thumbnail"`
	Quantity  int     `json:"quantity"`
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// AddToCartRequest carries the product snapshot from the client plus the
// desired quantity. Quantities below 1 are clamped to 1.
type AddToCartRequest struct {
	ProductID int     `json:"id" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Price     float64 `json:"price" binding:"min=0"`
	Thumbnail string  `json:"thumbnail"`
	Quantity  int     `json:"quantity"`
}

// Addable reduces the request to the canonical snapshot form.
func (r AddToCartRequest) Addable() Addable {
	return Addable{ID: r.ProductID, Title: r.Title, Price: r.Price, Thumbnail: r.Thumbnail}
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// CartResponse is the full cart view the storefront renders after every
// mutation: line items plus the derived total and unit count.
type CartResponse struct {
	Items     []CartLineItem `json:"items"`
	Total     float64        `json:"total"`
	ItemCount int            `json:"item_count"`
}
