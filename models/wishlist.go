package models

// WishlistEntry is one saved product reference. Entries snapshot the same
// reduced fields as cart line items and keep insertion order; at most one
// entry exists per product id.
type WishlistEntry struct {
	ProductID int     `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Thumbnail string  `json:"thumbnail"`
}

// Addable reduces the entry back to the canonical snapshot form, used when
// moving an entry into the cart.
func (e WishlistEntry) Addable() Addable {
	return Addable{ID: e.ProductID, Title: e.Title, Price: e.Price, Thumbnail: e.Thumbnail}
}

// AddToWishlistRequest carries the product snapshot from the client.
type AddToWishlistRequest struct {
	ProductID int     `json:"id" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Price     float64 `json:"price" binding:"min=0"`
	Thumbnail string  `json:"thumbnail"`
}

func (r AddToWishlistRequest) Addable() Addable {
	return Addable{ID: r.ProductID, Title: r.Title, Price: r.Price, Thumbnail: r.Thumbnail}
}

// WishlistResponse is the wishlist view in insertion order.
type WishlistResponse struct {
	Items []WishlistEntry `json:"items"`
	Count int             `json:"count"`
}
