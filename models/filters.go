package models

import "math"

// SortOption selects the single comparator applied to filtered products.
type SortOption string

const (
	SortFeatured  SortOption = "featured"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortNewest    SortOption = "newest"
	SortRating    SortOption = "rating"
)

// ParseSortOption maps a query value onto a SortOption, defaulting to
// featured for anything unrecognized.
func ParseSortOption(value string) SortOption {
	switch SortOption(value) {
	case SortPriceAsc, SortPriceDesc, SortNewest, SortRating:
		return SortOption(value)
	default:
		return SortFeatured
	}
}

// FilterSpec is the UI-driven filter/sort state for one catalog view.
type FilterSpec struct {
	SearchText       string     `json:"search_text"`
	CategoryID       string     `json:"category_id"`
	SubcategoryIDs   []string   `json:"subcategory_ids"`
	PriceMin         float64    `json:"price_min"`
	PriceMax         float64    `json:"price_max"`
	Sort             SortOption `json:"sort"`
	RatingThresholds []int      `json:"rating_thresholds"`
}

// DefaultFilterSpec returns a spec that keeps every product: no search, no
// category, unbounded price range, featured ordering.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		PriceMin: 0,
		PriceMax: math.MaxFloat64,
		Sort:     SortFeatured,
	}
}

// FilteredProducts is the displayed grouping of one filter run: every
// surviving product appears in exactly one of the two lists, both in the
// order the sort established.
type FilteredProducts struct {
	Featured []Product `json:"featured"`
	Regular  []Product `json:"regular"`
}

// Total is the number of products that survived filtering.
func (f FilteredProducts) Total() int {
	return len(f.Featured) + len(f.Regular)
}

// ═══════════════════════════════════════════════════════════
// Filter metadata (storefront sidebar data)
// ═══════════════════════════════════════════════════════════

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Availability *AvailabilityData `json:"availability"`
	Categories   []CategoryData    `json:"categories"`
	PriceRange   *PriceRangeData   `json:"priceRange"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// CategoryData represents a category with optional subcategories
type CategoryData struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	ParentID      string         `json:"parentId,omitempty"`
	Subcategories []CategoryData `json:"subcategories,omitempty"`
}

// PriceRangeData represents the minimum and maximum price in the store
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
