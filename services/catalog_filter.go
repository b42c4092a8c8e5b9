package services

import (
	"sort"
	"strings"

	"github.com/Velora-Commerce/velora-storefront-backend/models"
)

// Partition thresholds for the featured/regular display grouping: a product
// is featured when its rating is at least FeaturedRatingFloor or its stock is
// below FeaturedStockCeiling.
const (
	FeaturedRatingFloor  = 4.5
	FeaturedStockCeiling = 50
)

// FilterAndSort runs the storefront's catalog pipeline: search, category and
// subcategory membership, price bounds, rating thresholds, one sort, then the
// featured/regular partition. Filters are independent and AND-combined in
// that fixed order. The partition is display-only: every surviving product
// lands in exactly one group and both groups keep the sort order.
func FilterAndSort(products []models.Product, spec models.FilterSpec, taxonomy []models.Category) models.FilteredProducts {
	filtered := make([]models.Product, 0, len(products))
	for _, product := range products {
		if passesFilters(product, spec, taxonomy) {
			filtered = append(filtered, product)
		}
	}

	sortProducts(filtered, spec.Sort)

	result := models.FilteredProducts{
		Featured: make([]models.Product, 0, len(filtered)),
		Regular:  make([]models.Product, 0, len(filtered)),
	}
	for _, product := range filtered {
		if product.Rating >= FeaturedRatingFloor || product.Stock < FeaturedStockCeiling {
			result.Featured = append(result.Featured, product)
		} else {
			result.Regular = append(result.Regular, product)
		}
	}
	return result
}

func passesFilters(product models.Product, spec models.FilterSpec, taxonomy []models.Category) bool {
	// Search filter: case-insensitive title substring.
	if spec.SearchText != "" &&
		!strings.Contains(strings.ToLower(product.Title), strings.ToLower(spec.SearchText)) {
		return false
	}

	// Category filter. An unknown category id matches nothing.
	if spec.CategoryID != "" {
		category, ok := models.FindCategory(taxonomy, spec.CategoryID)
		if !ok {
			return false
		}
		if len(spec.SubcategoryIDs) > 0 {
			if !matchesAnySubcategory(product, category, spec.SubcategoryIDs) {
				return false
			}
		} else if !category.Matches(product.Category) {
			return false
		}
	}

	// Price filter. Inverted bounds simply match nothing; no swap.
	if product.Price < spec.PriceMin || product.Price > spec.PriceMax {
		return false
	}

	// Rating thresholds: any selected threshold admits the product.
	if len(spec.RatingThresholds) > 0 && !meetsAnyThreshold(product.Rating, spec.RatingThresholds) {
		return false
	}

	return true
}

func matchesAnySubcategory(product models.Product, category models.Category, subcategoryIDs []string) bool {
	for _, id := range subcategoryIDs {
		sub, ok := category.Subcategory(id)
		if ok && sub.Matches(product.Category) {
			return true
		}
	}
	return false
}

func meetsAnyThreshold(rating float64, thresholds []int) bool {
	for _, threshold := range thresholds {
		if rating >= float64(threshold) {
			return true
		}
	}
	return false
}

// sortProducts applies exactly one comparator in place. The sort is stable,
// and the featured option preserves filter-result order untouched.
func sortProducts(products []models.Product, option models.SortOption) {
	switch option {
	case models.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case models.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case models.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}
