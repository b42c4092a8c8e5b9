package filter_controller

import (
	"log"
	"net/http"

	"github.com/Velora-Commerce/velora-storefront-backend/config"
	"github.com/Velora-Commerce/velora-storefront-backend/models"
	"github.com/Velora-Commerce/velora-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// Controller computes the storefront filter sidebar data from the cached
// catalog and the static taxonomy.
type Controller struct {
	catalog  *services.CatalogClient
	taxonomy []models.Category
}

func NewController(catalog *services.CatalogClient, taxonomy []models.Category) *Controller {
	return &Controller{catalog: catalog, taxonomy: taxonomy}
}

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns availability counts, the category tree, and the catalog's price range for storefront filters
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 502 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func (ctl *Controller) GetFilterMetadata(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := ctl.catalog.Products(ctx)
	if err != nil {
		log.Printf("❌ Catalog fetch failed for filter metadata: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	metadata := &models.FilterMetadata{
		Availability: availabilityCounts(products),
		Categories:   categoryTree(ctl.taxonomy),
		PriceRange:   priceRange(products),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

// availabilityCounts splits the catalog into in-stock and out-of-stock counts.
func availabilityCounts(products []models.Product) *models.AvailabilityData {
	data := &models.AvailabilityData{}
	for _, product := range products {
		if product.InStock() {
			data.InStock++
		} else {
			data.OutOfStock++
		}
	}
	return data
}

// categoryTree maps the static taxonomy into the sidebar's tree shape.
func categoryTree(taxonomy []models.Category) []models.CategoryData {
	tree := make([]models.CategoryData, 0, len(taxonomy))
	for _, category := range taxonomy {
		node := models.CategoryData{
			ID:            category.ID,
			Name:          category.Name,
			Subcategories: make([]models.CategoryData, 0, len(category.Subcategories)),
		}
		for _, sub := range category.Subcategories {
			node.Subcategories = append(node.Subcategories, models.CategoryData{
				ID:       sub.ID,
				Name:     sub.Name,
				ParentID: sub.ParentID,
			})
		}
		tree = append(tree, node)
	}
	return tree
}

// priceRange finds the catalog's min and max price. An empty catalog yields
// the 0..1000 placeholder range so the slider still renders.
func priceRange(products []models.Product) *models.PriceRangeData {
	if len(products) == 0 {
		return &models.PriceRangeData{Min: 0, Max: 1000}
	}

	data := &models.PriceRangeData{Min: products[0].Price, Max: products[0].Price}
	for _, product := range products[1:] {
		if product.Price < data.Min {
			data.Min = product.Price
		}
		if product.Price > data.Max {
			data.Max = product.Price
		}
	}
	return data
}
